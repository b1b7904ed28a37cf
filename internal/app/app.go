package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/workload-backend/internal/data/db"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/data/runlock"
	"github.com/yungbote/workload-backend/internal/observability"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    *db.Service
	Repos    repos.Set
	Services Services
	Metrics  *observability.Metrics

	redis        *goredis.Client
	otelShutdown func(context.Context) error
}

// New opens the store, migrates it and wires every component. The caller
// owns Close.
func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Telemetry.OtelEnabled,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.LogMode,
		Endpoint:    cfg.Telemetry.OtelEndpoint,
		Insecure:    cfg.Telemetry.OtelInsecure,
		Headers:     cfg.Telemetry.OtelHeaders,
		SampleRatio: cfg.Telemetry.OtelSampler,
	})
	metrics := observability.Init(log, cfg.Telemetry.MetricsEnabled)

	log.Info("Opening store...", "driver", cfg.Database.Driver)
	store, err := db.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Database.SQLitePath, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	locker := runlock.Noop()
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = runlock.Connect(ctx, runlock.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			_ = store.Close()
			log.Sync()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		locker = runlock.NewRedisLocker(rdb, log)
		log.Info("Ingest lock backed by redis", "addr", cfg.Redis.Addr)
	}

	reposet := wireRepos(store, log)
	serviceset := wireServices(store, log, cfg, reposet, metrics, locker)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Store:        store,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		redis:        rdb,
		otelShutdown: otelShutdown,
	}, nil
}

// Serve runs the read API until ctx is cancelled, then shuts it down.
func (a *App) Serve(ctx context.Context) error {
	if a == nil || a.Store == nil {
		return fmt.Errorf("app not initialized")
	}
	sqlDB, err := a.Store.DB().DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}
	server := wireServer(a.Log, a.Cfg, a.Services, a.Metrics, sqlDB)
	a.Metrics.StartDBCollector(ctx, a.Log, a.Store.DB(), 10*time.Second)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.HTTPAddr)
		return server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.Log.Info("HTTP server shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && a.Log != nil {
			a.Log.Warn("redis close failed", "error", err)
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && a.Log != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
