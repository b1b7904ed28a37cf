package workload

import (
	"github.com/google/uuid"

	dataagg "github.com/yungbote/workload-backend/internal/data/aggregates"
	"github.com/yungbote/workload-backend/internal/data/repos"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/ingestion/sheet"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type NormalizeStats struct {
	Rows          int `json:"rows"`
	Groups        int `json:"groups"`
	Lessons       int `json:"lessons"`
	Workloads     int `json:"workloads"`
	MegaWorkloads int `json:"mega_workloads"`
	// StudentCountConflicts counts rows whose student count differs from the
	// one already stored for the group.
	StudentCountConflicts int `json:"student_count_conflicts"`
}

// Normalizer turns each sheet row into its Group, Lesson, per-type Workloads
// and the MegaWorkload buckets they belong to.
type Normalizer struct {
	repos repos.Set
	log   *logger.Logger
	year  string
}

func NewNormalizer(set repos.Set, baseLog *logger.Logger, academicYear string) *Normalizer {
	return &Normalizer{repos: set, log: baseLog.With("pass", "normalize"), year: academicYear}
}

func (n *Normalizer) Run(dbc dbctx.Context, rows []sheet.Row) (NormalizeStats, error) {
	var stats NormalizeStats
	view := normalizerView(rows)
	n.log.Info("Normalizing rows", "rows", len(view))
	for _, row := range view {
		if err := n.NormalizeRow(dbc, row, &stats); err != nil {
			return stats, err
		}
		stats.Rows++
	}
	n.log.Info("Normalize done",
		"groups", stats.Groups,
		"lessons", stats.Lessons,
		"workloads", stats.Workloads,
		"mega_workloads", stats.MegaWorkloads,
	)
	return stats, nil
}

// NormalizeRow handles a single row. Zero-hour columns produce nothing.
func (n *Normalizer) NormalizeRow(dbc dbctx.Context, row sheet.Row, stats *NormalizeStats) error {
	if stats == nil {
		stats = &NormalizeStats{}
	}
	group, created, err := n.ResolveGroup(dbc, row.Group, row.Students)
	if err != nil {
		return err
	}
	if created {
		stats.Groups++
	} else if group.StudentsCount != row.Students {
		stats.StudentCountConflicts++
	}

	lesson, created, err := n.ResolveLesson(dbc, row)
	if err != nil {
		return err
	}
	if created {
		stats.Lessons++
		// Lectures land in the Individual bucket; make sure it exists for
		// every lesson so the Linker always finds one.
		_, megaCreated, err := n.EnsureMegaWorkload(dbc, megaKeyOf(lesson, types.TypeClassIndividual))
		if err != nil {
			return err
		}
		if megaCreated {
			stats.MegaWorkloads++
		}
	}

	for _, col := range RowColumns() {
		hours := row.HoursFor(col.Field)
		if hours == 0 {
			continue
		}
		mega, megaCreated, err := n.EnsureMegaWorkload(dbc, megaKeyOf(lesson, types.ClassifyWorkloadType(col.Type)))
		if err != nil {
			return err
		}
		if megaCreated {
			stats.MegaWorkloads++
		}
		megaID := mega.ID
		w := &types.Workload{
			Type:           col.Type,
			Hours:          hours,
			LessonID:       lesson.ID,
			MegaWorkloadID: &megaID,
			Groups:         []*types.Group{group},
		}
		if _, err := n.repos.Workload.Create(dbc, []*types.Workload{w}); err != nil {
			return dataagg.MapError("ingest.normalize", err)
		}
		stats.Workloads++
	}
	return nil
}

// ResolveGroup finds the group by name or creates it. The first row seen for
// a name fixes the student count.
func (n *Normalizer) ResolveGroup(dbc dbctx.Context, name string, students int) (*types.Group, bool, error) {
	existing, err := n.repos.Group.GetByName(dbc, name)
	if err != nil {
		return nil, false, dataagg.MapError("ingest.normalize.group", err)
	}
	if existing != nil {
		if existing.StudentsCount != students {
			n.log.Debug("Ignoring student count of later row", "group", name, "kept", existing.StudentsCount, "ignored", students)
		}
		return existing, false, nil
	}
	g := &types.Group{ID: uuid.New(), Name: name, StudentsCount: students}
	if _, err := n.repos.Group.Create(dbc, []*types.Group{g}); err != nil {
		return nil, false, dataagg.MapError("ingest.normalize.group", err)
	}
	return g, true, nil
}

// ResolveLesson finds or creates the lesson keyed by (discipline, semester,
// faculty). The stream of the creating row is kept for reference only.
func (n *Normalizer) ResolveLesson(dbc dbctx.Context, row sheet.Row) (*types.Lesson, bool, error) {
	key := lessonKeyOf(row)
	existing, err := n.repos.Lesson.GetByKey(dbc, key)
	if err != nil {
		return nil, false, dataagg.MapError("ingest.normalize.lesson", err)
	}
	if existing != nil {
		return existing, false, nil
	}
	l := &types.Lesson{
		ID:       uuid.New(),
		Stream:   row.Stream,
		Name:     key.Name,
		Year:     n.year,
		Semester: key.Semester,
		Faculty:  key.Faculty,
	}
	if _, err := n.repos.Lesson.Create(dbc, []*types.Lesson{l}); err != nil {
		return nil, false, dataagg.MapError("ingest.normalize.lesson", err)
	}
	return l, true, nil
}

func (n *Normalizer) EnsureMegaWorkload(dbc dbctx.Context, key types.MegaWorkloadKey) (*types.MegaWorkload, bool, error) {
	existing, err := n.repos.MegaWorkload.GetByKey(dbc, key)
	if err != nil {
		return nil, false, dataagg.MapError("ingest.normalize.mega_workload", err)
	}
	if existing != nil {
		return existing, false, nil
	}
	m := &types.MegaWorkload{
		ID:         uuid.New(),
		LessonName: key.LessonName,
		TypeClass:  key.TypeClass,
		Semester:   key.Semester,
		Faculty:    key.Faculty,
	}
	if _, err := n.repos.MegaWorkload.Create(dbc, []*types.MegaWorkload{m}); err != nil {
		return nil, false, dataagg.MapError("ingest.normalize.mega_workload", err)
	}
	return m, true, nil
}
