package workload

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	dataagg "github.com/yungbote/workload-backend/internal/data/aggregates"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/data/runlock"
	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/workload-backend/internal/ingestion/workload"

// LockKey guards the schema against concurrent runs.
const LockKey = "workload:ingest:lock"

const (
	PassNormalize = "normalize"
	PassAggregate = "aggregate"
	PassLink      = "link"
)

// SchemaResetter empties the store at the start of a run. It runs on the
// run's transaction so a failed run keeps the previous data.
type SchemaResetter interface {
	ResetSchema(dbc dbctx.Context) error
}

type Deps struct {
	Log          *logger.Logger
	Schema       SchemaResetter
	Runner       dataagg.TxRunner
	Repos        repos.Set
	Hooks        dataagg.Hooks
	Tracer       trace.Tracer
	Lock         runlock.Locker
	LockTTL      time.Duration
	AcademicYear string
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Hooks == nil {
		d.Hooks = dataagg.NoopHooks()
	}
	if d.Tracer == nil {
		d.Tracer = otel.Tracer(tracerName)
	}
	if d.Lock == nil {
		d.Lock = runlock.Noop()
	}
	if d.LockTTL <= 0 {
		d.LockTTL = 10 * time.Minute
	}
	return d
}

// Input is one ingestion request.
type Input struct {
	Rows       []sheet.Row
	SourcePath string
	SheetName  string
	// DryRun runs every pass and then rolls back. The schema is not reset.
	DryRun bool
}

type Summary struct {
	Normalize NormalizeStats `json:"normalize"`
	Aggregate AggregateStats `json:"aggregate"`
	Link      LinkStats      `json:"link"`
	DryRun    bool           `json:"dry_run"`
}

// Pipeline runs Normalizer, Aggregator and Linker over one row set inside a
// single transaction. Any pass failure rolls back the whole run.
type Pipeline struct {
	deps Deps
	log  *logger.Logger
}

func NewPipeline(deps Deps) *Pipeline {
	deps = deps.withDefaults()
	return &Pipeline{deps: deps, log: deps.Log.With("component", "IngestPipeline")}
}

func (p *Pipeline) Run(ctx context.Context, in Input) (*Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if p.deps.Runner == nil {
		return nil, aggregates.NewError(aggregates.CodeInternal, "ingest.run", "transaction runner is required", nil)
	}
	ctx, span := p.deps.Tracer.Start(ctx, "ingest.run", trace.WithAttributes(
		attribute.String("ingest.source", in.SourcePath),
		attribute.Int("ingest.rows", len(in.Rows)),
		attribute.Bool("ingest.dry_run", in.DryRun),
	))
	defer span.End()

	started := time.Now()
	summary := &Summary{DryRun: in.DryRun}
	err := p.locked(ctx, func() error { return p.run(ctx, in, summary, started) })
	err = dataagg.MapError("ingest.run", err)
	status := dataagg.StatusOf(err)
	p.deps.Hooks.ObserveRun(status)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.log.Error("Ingestion failed", "status", status, "error", err, "elapsed", time.Since(started))
		return nil, err
	}
	if !in.DryRun {
		p.reportCreated(summary)
	}
	if in.DryRun {
		p.log.Info("Dry run rolled back", "rows", len(in.Rows), "elapsed", time.Since(started))
	} else {
		p.log.Info("Ingestion committed", "rows", len(in.Rows), "elapsed", time.Since(started))
	}
	return summary, nil
}

// locked runs fn while holding the run lock. A failed release is logged; the
// lock then expires on its own.
func (p *Pipeline) locked(ctx context.Context, fn func() error) error {
	release, err := p.deps.Lock.Acquire(ctx, LockKey, p.deps.LockTTL)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			p.log.Warn("Run lock release failed", "error", err)
		}
	}()
	return fn()
}

func (p *Pipeline) run(ctx context.Context, in Input, summary *Summary, started time.Time) error {
	normalizer := NewNormalizer(p.deps.Repos, p.log, p.deps.AcademicYear)
	aggregator := NewAggregator(p.deps.Repos, p.log)
	linker := NewLinker(p.deps.Repos, p.log)

	return p.deps.Runner.InTx(ctx, func(dbc dbctx.Context) error {
		if !in.DryRun && p.deps.Schema != nil {
			if err := p.deps.Schema.ResetSchema(dbc); err != nil {
				return aggregates.Wrap(aggregates.CodeInternal, "ingest.reset", err)
			}
		}
		if err := p.pass(dbc, PassNormalize, func(dbc dbctx.Context) error {
			stats, err := normalizer.Run(dbc, in.Rows)
			summary.Normalize = stats
			return err
		}); err != nil {
			return err
		}
		if err := p.pass(dbc, PassAggregate, func(dbc dbctx.Context) error {
			stats, err := aggregator.Run(dbc, in.Rows)
			summary.Aggregate = stats
			return err
		}); err != nil {
			return err
		}
		if err := p.pass(dbc, PassLink, func(dbc dbctx.Context) error {
			stats, err := linker.Run(dbc)
			summary.Link = stats
			return err
		}); err != nil {
			return err
		}

		if in.DryRun {
			return dataagg.ErrRollback
		}
		return p.recordRun(dbc, in, summary, started)
	})
}

func (p *Pipeline) pass(dbc dbctx.Context, name string, fn func(dbc dbctx.Context) error) error {
	ctx, span := p.deps.Tracer.Start(dbc.Ctx, "ingest."+name)
	defer span.End()

	start := time.Now()
	err := fn(dbctx.Context{Ctx: ctx, Tx: dbc.Tx})
	err = dataagg.MapError("ingest."+name, err)
	p.deps.Hooks.ObservePass(name, dataagg.StatusOf(err), time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (p *Pipeline) recordRun(dbc dbctx.Context, in Input, summary *Summary, started time.Time) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return aggregates.Wrap(aggregates.CodeInternal, "ingest.record", err)
	}
	run := &types.IngestRun{
		SourcePath: in.SourcePath,
		SheetName:  in.SheetName,
		RowCount:   len(in.Rows),
		Summary:    datatypes.JSON(raw),
		StartedAt:  started.UTC(),
		FinishedAt: time.Now().UTC(),
	}
	if _, err := p.deps.Repos.IngestRun.Create(dbc, run); err != nil {
		return dataagg.MapError("ingest.record", err)
	}
	return nil
}

// reportCreated is only called once the run has committed.
func (p *Pipeline) reportCreated(s *Summary) {
	p.deps.Hooks.AddCreated("group", s.Normalize.Groups)
	p.deps.Hooks.AddCreated("lesson", s.Normalize.Lessons)
	p.deps.Hooks.AddCreated("workload", s.Normalize.Workloads+s.Aggregate.LectureWorkloads)
	p.deps.Hooks.AddCreated("mega_workload", s.Normalize.MegaWorkloads)
	p.deps.Hooks.AddIssue(PassNormalize, "student_count_conflict", s.Normalize.StudentCountConflicts)
}
