package app

import (
	"github.com/yungbote/workload-backend/internal/data/aggregates"
	"github.com/yungbote/workload-backend/internal/data/db"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/data/runlock"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/ingestion/workload"
	"github.com/yungbote/workload-backend/internal/observability"
	"github.com/yungbote/workload-backend/internal/platform/logger"
	"github.com/yungbote/workload-backend/internal/services"
)

type Services struct {
	Staffing services.StaffingService
	Ingest   *IngestService
}

func wireServices(store *db.Service, log *logger.Logger, cfg Config, reposet repos.Set, metrics *observability.Metrics, locker runlock.Locker) Services {
	log.Info("Wiring services...")
	pipeline := workload.NewPipeline(workload.Deps{
		Log:          log,
		Schema:       store,
		Runner:       aggregates.NewGormTxRunner(store.DB()),
		Repos:        reposet,
		Hooks:        aggregates.NewObservabilityHooks(metrics),
		Lock:         locker,
		LockTTL:      cfg.Redis.LockTTL,
		AcademicYear: cfg.AcademicYear,
	})
	return Services{
		Staffing: services.NewStaffingService(reposet, log),
		Ingest:   NewIngestService(log, sheet.NewReader(log), pipeline),
	}
}
