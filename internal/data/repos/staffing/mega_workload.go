package staffing

import (
	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type MegaWorkloadFilter struct {
	Semester  *int
	Faculty   string
	TypeClass types.TypeClass
}

type MegaWorkloadRepo interface {
	Create(dbc dbctx.Context, megas []*types.MegaWorkload) ([]*types.MegaWorkload, error)
	GetByKey(dbc dbctx.Context, key types.MegaWorkloadKey) (*types.MegaWorkload, error)
	List(dbc dbctx.Context, filter MegaWorkloadFilter) ([]*types.MegaWorkload, error)
}

type megaWorkloadRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMegaWorkloadRepo(db *gorm.DB, baseLog *logger.Logger) MegaWorkloadRepo {
	return &megaWorkloadRepo{db: db, log: baseLog.With("repo", "MegaWorkloadRepo")}
}

func (r *megaWorkloadRepo) Create(dbc dbctx.Context, megas []*types.MegaWorkload) ([]*types.MegaWorkload, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(megas) == 0 {
		return []*types.MegaWorkload{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Omit("Workloads").Create(&megas).Error; err != nil {
		return nil, err
	}
	return megas, nil
}

// GetByKey returns nil, nil when no bucket matches.
func (r *megaWorkloadRepo) GetByKey(dbc dbctx.Context, key types.MegaWorkloadKey) (*types.MegaWorkload, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.MegaWorkload
	if err := transaction.WithContext(dbc.Ctx).
		Where("lesson_name = ? AND type_class = ? AND semester = ? AND faculty = ?",
			key.LessonName, key.TypeClass, key.Semester, key.Faculty).
		Order("created_at ASC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// List loads buckets with their workloads and the workloads' groups.
func (r *megaWorkloadRepo) List(dbc dbctx.Context, filter MegaWorkloadFilter) ([]*types.MegaWorkload, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(dbc.Ctx)
	if filter.Semester != nil {
		q = q.Where("semester = ?", *filter.Semester)
	}
	if filter.Faculty != "" {
		q = q.Where("faculty = ?", filter.Faculty)
	}
	if filter.TypeClass != "" {
		q = q.Where("type_class = ?", filter.TypeClass)
	}
	var out []*types.MegaWorkload
	if err := q.
		Preload("Workloads", func(db *gorm.DB) *gorm.DB { return db.Order("type ASC, created_at ASC") }).
		Preload("Workloads.Groups", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Order("faculty ASC, semester ASC, lesson_name ASC, type_class ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
