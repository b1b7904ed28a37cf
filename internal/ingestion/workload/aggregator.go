package workload

import (
	"github.com/google/uuid"

	dataagg "github.com/yungbote/workload-backend/internal/data/aggregates"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type AggregateStats struct {
	Runs             int `json:"runs"`
	LectureWorkloads int `json:"lecture_workloads"`
}

// Aggregator creates one shared Lecture workload per contiguous run of rows
// with the same (stream, discipline, semester).
type Aggregator struct {
	repos repos.Set
	log   *logger.Logger
}

func NewAggregator(set repos.Set, baseLog *logger.Logger) *Aggregator {
	return &Aggregator{repos: set, log: baseLog.With("pass", "aggregate")}
}

func (a *Aggregator) Run(dbc dbctx.Context, rows []sheet.Row) (AggregateStats, error) {
	var stats AggregateStats
	view := aggregatorView(rows)
	a.log.Info("Aggregating stream lectures", "rows", len(view))

	for start := 0; start < len(view); {
		first := view[start]
		key := runKeyOf(first)
		end := start
		for end+1 < len(view) && runKeyOf(view[end+1]) == key {
			end++
		}
		if _, err := a.createLecture(dbc, first, view[start:end+1]); err != nil {
			return stats, err
		}
		stats.Runs++
		stats.LectureWorkloads++
		start = end + 1
	}

	a.log.Info("Aggregate done", "runs", stats.Runs, "lecture_workloads", stats.LectureWorkloads)
	return stats, nil
}

// createLecture writes the Lecture workload of one run. Hours come from the
// run's first row, which carries the highest lecture value after sorting.
func (a *Aggregator) createLecture(dbc dbctx.Context, first sheet.Row, run []sheet.Row) (*types.Workload, error) {
	key := lessonKeyOf(first)
	lesson, err := a.repos.Lesson.GetByKey(dbc, key)
	if err != nil {
		return nil, dataagg.MapError("ingest.aggregate", err)
	}
	if lesson == nil {
		return nil, aggregates.NotFound("ingest.aggregate",
			"lesson %q semester %d faculty %q (stream %s, line %d)", key.Name, key.Semester, key.Faculty, first.Stream, first.Line)
	}

	groups := make([]*types.Group, 0, len(run))
	seen := make(map[uuid.UUID]struct{}, len(run))
	for _, row := range run {
		g, err := a.repos.Group.GetByName(dbc, row.Group)
		if err != nil {
			return nil, dataagg.MapError("ingest.aggregate", err)
		}
		if g == nil {
			return nil, aggregates.NotFound("ingest.aggregate", "group %q (line %d)", row.Group, row.Line)
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		groups = append(groups, g)
	}

	w := &types.Workload{
		Type:     types.TypeLecture,
		Hours:    first.LectureHours(),
		LessonID: lesson.ID,
		Groups:   groups,
	}
	if _, err := a.repos.Workload.Create(dbc, []*types.Workload{w}); err != nil {
		return nil, dataagg.MapError("ingest.aggregate", err)
	}
	a.log.Debug("Lecture created", "lesson", lesson.Name, "semester", lesson.Semester, "stream", first.Stream, "groups", len(groups), "hours", w.Hours)
	return w, nil
}
