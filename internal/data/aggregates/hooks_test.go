package aggregates

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yungbote/workload-backend/internal/observability"
)

func TestNewObservabilityHooks_NilMetricsIsNoop(t *testing.T) {
	h := NewObservabilityHooks(nil)
	if _, ok := h.(noopHooks); !ok {
		t.Fatalf("expected noop hooks, got %T", h)
	}
	h.ObservePass("normalize", "success", time.Millisecond)
	h.AddCreated("group", 1)
	h.AddIssue("normalize", "student_count_conflict", 1)
	h.ObserveRun("success")
}

func TestNewObservabilityHooks_Forwards(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := NewObservabilityHooks(observability.NewMetrics(reg))
	h.ObserveRun("success")
	h.AddCreated("lesson", 2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, name := range []string{"workload_ingest_runs_total", "workload_ingest_entities_created_total"} {
		if !found[name] {
			t.Fatalf("metric %s not exported", name)
		}
	}
}
