package testutil

import (
	"sync"
	"time"

	"github.com/yungbote/workload-backend/internal/data/aggregates"
)

// HooksRecorder captures ingestion hook signals in tests.
type HooksRecorder struct {
	mu sync.Mutex

	Passes  []PassEvent
	Created map[string]int
	Issues  map[string]int
	Runs    []string
}

type PassEvent struct {
	Name     string
	Status   string
	Duration time.Duration
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) ObservePass(name, status string, dur time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Passes = append(h.Passes, PassEvent{Name: name, Status: status, Duration: dur})
}

func (h *HooksRecorder) AddCreated(kind string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Created == nil {
		h.Created = map[string]int{}
	}
	h.Created[kind] += n
}

// AddIssue records under "stage/issue".
func (h *HooksRecorder) AddIssue(stage, issue string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Issues == nil {
		h.Issues = map[string]int{}
	}
	h.Issues[stage+"/"+issue] += n
}

func (h *HooksRecorder) ObserveRun(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Runs = append(h.Runs, status)
}

// PassStatus returns the status of the last observed pass with the given name.
func (h *HooksRecorder) PassStatus(name string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.Passes) - 1; i >= 0; i-- {
		if h.Passes[i].Name == name {
			return h.Passes[i].Status, true
		}
	}
	return "", false
}
