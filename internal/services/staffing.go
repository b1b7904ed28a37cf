package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/workload-backend/internal/data/repos"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/apierr"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

// LessonWorkloads is a lesson together with every workload attached to it.
type LessonWorkloads struct {
	Lesson    *types.Lesson     `json:"lesson"`
	Workloads []*types.Workload `json:"workloads"`
}

// MegaWorkloadView adds the computed hour total to a bucket.
type MegaWorkloadView struct {
	*types.MegaWorkload
	TotalHours int `json:"total_hours"`
}

type StaffingService interface {
	ListLessons(ctx context.Context, filter repos.LessonFilter) ([]*types.Lesson, error)
	GetLessonWorkloads(ctx context.Context, lessonID uuid.UUID) (*LessonWorkloads, error)
	ListMegaWorkloads(ctx context.Context, filter repos.MegaWorkloadFilter) ([]MegaWorkloadView, error)
	ListGroups(ctx context.Context) ([]*types.Group, error)
	ListEmployees(ctx context.Context) ([]*types.Employee, error)
	LatestIngestRun(ctx context.Context) (*types.IngestRun, error)
}

type staffingService struct {
	repos repos.Set
	log   *logger.Logger
}

func NewStaffingService(set repos.Set, baseLog *logger.Logger) StaffingService {
	return &staffingService{repos: set, log: baseLog.With("service", "StaffingService")}
}

func (s *staffingService) ListLessons(ctx context.Context, filter repos.LessonFilter) ([]*types.Lesson, error) {
	filter.Faculty = strings.TrimSpace(filter.Faculty)
	lessons, err := s.repos.Lesson.List(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_lessons_failed", err)
	}
	return lessons, nil
}

func (s *staffingService) GetLessonWorkloads(ctx context.Context, lessonID uuid.UUID) (*LessonWorkloads, error) {
	if lessonID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_lesson_id", fmt.Errorf("missing lesson id"))
	}
	dbc := dbctx.Context{Ctx: ctx}
	lessons, err := s.repos.Lesson.GetByIDs(dbc, []uuid.UUID{lessonID})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_lesson_failed", err)
	}
	if len(lessons) == 0 {
		return nil, apierr.New(http.StatusNotFound, "lesson_not_found", nil)
	}
	workloads, err := s.repos.Workload.GetByLessonIDs(dbc, []uuid.UUID{lessonID})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_workloads_failed", err)
	}
	return &LessonWorkloads{Lesson: lessons[0], Workloads: workloads}, nil
}

func (s *staffingService) ListMegaWorkloads(ctx context.Context, filter repos.MegaWorkloadFilter) ([]MegaWorkloadView, error) {
	if filter.TypeClass != "" && !filter.TypeClass.Valid() {
		return nil, apierr.New(http.StatusBadRequest, "invalid_type_class", fmt.Errorf("unknown type class %q", filter.TypeClass))
	}
	filter.Faculty = strings.TrimSpace(filter.Faculty)
	megas, err := s.repos.MegaWorkload.List(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_mega_workloads_failed", err)
	}
	out := make([]MegaWorkloadView, 0, len(megas))
	for _, m := range megas {
		out = append(out, MegaWorkloadView{MegaWorkload: m, TotalHours: m.TotalHours()})
	}
	return out, nil
}

func (s *staffingService) ListGroups(ctx context.Context) ([]*types.Group, error) {
	groups, err := s.repos.Group.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_groups_failed", err)
	}
	return groups, nil
}

func (s *staffingService) ListEmployees(ctx context.Context) ([]*types.Employee, error) {
	employees, err := s.repos.Employee.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "list_employees_failed", err)
	}
	return employees, nil
}

// LatestIngestRun returns a 404 api error until the first run commits.
func (s *staffingService) LatestIngestRun(ctx context.Context) (*types.IngestRun, error) {
	run, err := s.repos.IngestRun.GetLatest(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_ingest_run_failed", err)
	}
	if run == nil {
		return nil, apierr.New(http.StatusNotFound, "no_ingest_runs", nil)
	}
	return run, nil
}
