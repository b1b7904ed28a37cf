package staffing

import (
	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type IngestRunRepo interface {
	Create(dbc dbctx.Context, run *types.IngestRun) (*types.IngestRun, error)
	GetLatest(dbc dbctx.Context) (*types.IngestRun, error)
}

type ingestRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngestRunRepo(db *gorm.DB, baseLog *logger.Logger) IngestRunRepo {
	return &ingestRunRepo{db: db, log: baseLog.With("repo", "IngestRunRepo")}
}

func (r *ingestRunRepo) Create(dbc dbctx.Context, run *types.IngestRun) (*types.IngestRun, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

// GetLatest returns nil, nil when no run was committed yet.
func (r *ingestRunRepo) GetLatest(dbc dbctx.Context) (*types.IngestRun, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.IngestRun
	if err := transaction.WithContext(dbc.Ctx).
		Order("finished_at DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
