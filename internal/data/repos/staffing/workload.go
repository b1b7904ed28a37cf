package staffing

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type WorkloadRepo interface {
	Create(dbc dbctx.Context, workloads []*types.Workload) ([]*types.Workload, error)
	ListAll(dbc dbctx.Context) ([]*types.Workload, error)
	GetByLessonIDs(dbc dbctx.Context, lessonIDs []uuid.UUID) ([]*types.Workload, error)
	SetMegaWorkload(dbc dbctx.Context, workloadID uuid.UUID, megaWorkloadID uuid.UUID) error
}

type workloadRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkloadRepo(db *gorm.DB, baseLog *logger.Logger) WorkloadRepo {
	return &workloadRepo{db: db, log: baseLog.With("repo", "WorkloadRepo")}
}

// Create inserts the workloads and their group links. Groups must already
// exist; only the join rows are written for them.
func (r *workloadRepo) Create(dbc dbctx.Context, workloads []*types.Workload) ([]*types.Workload, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(workloads) == 0 {
		return []*types.Workload{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Omit("Groups.*", "Lesson", "Employee", "MegaWorkload").
		Create(&workloads).Error; err != nil {
		return nil, err
	}
	return workloads, nil
}

// ListAll loads every workload with its lesson, oldest first.
func (r *workloadRepo) ListAll(dbc dbctx.Context) ([]*types.Workload, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Workload
	if err := transaction.WithContext(dbc.Ctx).
		Preload("Lesson").
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *workloadRepo) GetByLessonIDs(dbc dbctx.Context, lessonIDs []uuid.UUID) ([]*types.Workload, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Workload
	if len(lessonIDs) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("lesson_id IN ?", lessonIDs).
		Order("type ASC, created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *workloadRepo) SetMegaWorkload(dbc dbctx.Context, workloadID uuid.UUID, megaWorkloadID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Model(&types.Workload{}).
		Where("id = ?", workloadID).
		Update("mega_workload_id", megaWorkloadID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
