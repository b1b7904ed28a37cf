package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/workload-backend/internal/http/handlers"
	httpMW "github.com/yungbote/workload-backend/internal/http/middleware"
	"github.com/yungbote/workload-backend/internal/observability"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	Tracing     bool
	CORSOrigins []string

	HealthHandler       *httpH.HealthHandler
	LessonHandler       *httpH.LessonHandler
	MegaWorkloadHandler *httpH.MegaWorkloadHandler
	DirectoryHandler    *httpH.DirectoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Lessons
		if cfg.LessonHandler != nil {
			api.GET("/lessons", cfg.LessonHandler.ListLessons)
			api.GET("/lessons/:id/workloads", cfg.LessonHandler.ListLessonWorkloads)
		}

		// Mega workloads
		if cfg.MegaWorkloadHandler != nil {
			api.GET("/mega-workloads", cfg.MegaWorkloadHandler.ListMegaWorkloads)
		}

		// Groups, employees, ingestion runs
		if cfg.DirectoryHandler != nil {
			api.GET("/groups", cfg.DirectoryHandler.ListGroups)
			api.GET("/employees", cfg.DirectoryHandler.ListEmployees)
			api.GET("/ingest-runs/latest", cfg.DirectoryHandler.LatestIngestRun)
		}
	}

	return r
}
