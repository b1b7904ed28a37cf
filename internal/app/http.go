package app

import (
	"database/sql"

	apphttp "github.com/yungbote/workload-backend/internal/http"
	httpH "github.com/yungbote/workload-backend/internal/http/handlers"
	"github.com/yungbote/workload-backend/internal/observability"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type Handlers struct {
	Health       *httpH.HealthHandler
	Lesson       *httpH.LessonHandler
	MegaWorkload *httpH.MegaWorkloadHandler
	Directory    *httpH.DirectoryHandler
}

func wireHandlers(log *logger.Logger, services Services, sqlDB *sql.DB) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       httpH.NewHealthHandler(sqlDB),
		Lesson:       httpH.NewLessonHandler(services.Staffing),
		MegaWorkload: httpH.NewMegaWorkloadHandler(services.Staffing),
		Directory:    httpH.NewDirectoryHandler(services.Staffing),
	}
}

func wireServer(log *logger.Logger, cfg Config, services Services, metrics *observability.Metrics, sqlDB *sql.DB) *apphttp.Server {
	handlers := wireHandlers(log, services, sqlDB)
	return apphttp.NewServer(cfg.HTTPAddr, apphttp.RouterConfig{
		Log:                 log,
		Metrics:             metrics,
		ServiceName:         cfg.Telemetry.ServiceName,
		Tracing:             cfg.Telemetry.OtelEnabled,
		CORSOrigins:         cfg.CORSOrigins,
		HealthHandler:       handlers.Health,
		LessonHandler:       handlers.Lesson,
		MegaWorkloadHandler: handlers.MegaWorkload,
		DirectoryHandler:    handlers.Directory,
	})
}
