package aggregates

import (
	"time"

	"github.com/yungbote/workload-backend/internal/observability"
)

// Hooks captures per-pass observability events of an ingestion run.
type Hooks interface {
	ObservePass(name, status string, dur time.Duration)
	AddCreated(kind string, n int)
	AddIssue(stage, issue string, n int)
	ObserveRun(status string)
}

type noopHooks struct{}

func (noopHooks) ObservePass(string, string, time.Duration) {}
func (noopHooks) AddCreated(string, int)                    {}
func (noopHooks) AddIssue(string, string, int)              {}
func (noopHooks) ObserveRun(string)                         {}

func NoopHooks() Hooks { return noopHooks{} }

type observabilityHooks struct {
	metrics *observability.Metrics
}

// NewObservabilityHooks forwards hook events to Prometheus. A nil metrics
// handle yields no-op hooks.
func NewObservabilityHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return NoopHooks()
	}
	return observabilityHooks{metrics: metrics}
}

func (h observabilityHooks) ObservePass(name, status string, dur time.Duration) {
	h.metrics.ObserveIngestPass(name, status, dur)
}

func (h observabilityHooks) AddCreated(kind string, n int) {
	h.metrics.AddIngestCreated(kind, n)
}

func (h observabilityHooks) AddIssue(stage, issue string, n int) {
	h.metrics.AddDataQuality(stage, issue, n)
}

func (h observabilityHooks) ObserveRun(status string) {
	h.metrics.IncIngestRun(status)
}
