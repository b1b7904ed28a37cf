package staffing

import (
	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type GroupRepo interface {
	Create(dbc dbctx.Context, groups []*types.Group) ([]*types.Group, error)
	GetByName(dbc dbctx.Context, name string) (*types.Group, error)
	List(dbc dbctx.Context) ([]*types.Group, error)
}

type groupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return &groupRepo{db: db, log: baseLog.With("repo", "GroupRepo")}
}

func (r *groupRepo) Create(dbc dbctx.Context, groups []*types.Group) ([]*types.Group, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(groups) == 0 {
		return []*types.Group{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GetByName returns nil, nil when no group has that name.
func (r *groupRepo) GetByName(dbc dbctx.Context, name string) (*types.Group, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Group
	if err := transaction.WithContext(dbc.Ctx).
		Where("name = ?", name).
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

func (r *groupRepo) List(dbc dbctx.Context) ([]*types.Group, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Group
	if err := transaction.WithContext(dbc.Ctx).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
