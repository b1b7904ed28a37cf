package staffing

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type LessonFilter struct {
	Semester *int
	Faculty  string
}

type LessonRepo interface {
	Create(dbc dbctx.Context, lessons []*types.Lesson) ([]*types.Lesson, error)
	GetByKey(dbc dbctx.Context, key types.LessonKey) (*types.Lesson, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Lesson, error)
	List(dbc dbctx.Context, filter LessonFilter) ([]*types.Lesson, error)
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return &lessonRepo{db: db, log: baseLog.With("repo", "LessonRepo")}
}

func (r *lessonRepo) Create(dbc dbctx.Context, lessons []*types.Lesson) ([]*types.Lesson, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(lessons) == 0 {
		return []*types.Lesson{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetByKey returns nil, nil when no lesson matches (name, semester, faculty).
func (r *lessonRepo) GetByKey(dbc dbctx.Context, key types.LessonKey) (*types.Lesson, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Lesson
	if err := transaction.WithContext(dbc.Ctx).
		Where("name = ? AND semester = ? AND faculty = ?", key.Name, key.Semester, key.Faculty).
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

func (r *lessonRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Lesson, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Lesson
	if len(ids) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *lessonRepo) List(dbc dbctx.Context, filter LessonFilter) ([]*types.Lesson, error) {
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
	var out []*types.Lesson
	if err := q.Order("faculty ASC, semester ASC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
