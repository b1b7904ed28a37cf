package workload

import (
	dataagg "github.com/yungbote/workload-backend/internal/data/aggregates"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type LinkStats struct {
	Linked int `json:"linked"`
}

// Linker attaches every persisted workload to the MegaWorkload of its type
// class. Already linked workloads are rewritten with the same value.
type Linker struct {
	repos repos.Set
	log   *logger.Logger
}

func NewLinker(set repos.Set, baseLog *logger.Logger) *Linker {
	return &Linker{repos: set, log: baseLog.With("pass", "link")}
}

func (l *Linker) Run(dbc dbctx.Context) (LinkStats, error) {
	var stats LinkStats
	all, err := l.repos.Workload.ListAll(dbc)
	if err != nil {
		return stats, dataagg.MapError("ingest.link", err)
	}
	l.log.Info("Linking workloads", "workloads", len(all))

	for _, w := range all {
		if w.Lesson == nil {
			return stats, aggregates.NotFound("ingest.link", "lesson %s of workload %s", w.LessonID, w.ID)
		}
		key := megaKeyOf(w.Lesson, types.ClassifyWorkloadType(w.Type))
		mega, err := l.repos.MegaWorkload.GetByKey(dbc, key)
		if err != nil {
			return stats, dataagg.MapError("ingest.link", err)
		}
		if mega == nil {
			return stats, aggregates.NotFound("ingest.link",
				"mega workload %q/%s semester %d faculty %q", key.LessonName, key.TypeClass, key.Semester, key.Faculty)
		}
		if err := l.repos.Workload.SetMegaWorkload(dbc, w.ID, mega.ID); err != nil {
			return stats, dataagg.MapError("ingest.link", err)
		}
		stats.Linked++
	}

	l.log.Info("Link done", "linked", stats.Linked)
	return stats, nil
}
