package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/data/repos/testutil"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	httpH "github.com/yungbote/workload-backend/internal/http/handlers"
	"github.com/yungbote/workload-backend/internal/observability"
	"github.com/yungbote/workload-backend/internal/services"
)

type seeded struct {
	router *gin.Engine
	lesson *types.Lesson
}

func newTestRouter(t *testing.T) seeded {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)

	g1 := testutil.SeedGroup(t, ctx, db, "G1", 20)
	g2 := testutil.SeedGroup(t, ctx, db, "G2", 15)
	lesson := testutil.SeedLesson(t, ctx, db, "Algebra", 3, "CS")
	testutil.SeedLesson(t, ctx, db, "Physics", 4, "CS")
	individual := testutil.SeedMegaWorkload(t, ctx, db, lesson, types.TypeClassIndividual)
	lecture := testutil.SeedWorkload(t, ctx, db, lesson, types.TypeLecture, 36, g1, g2)
	require.NoError(t, db.Model(lecture).Update("mega_workload_id", individual.ID).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	svc := services.NewStaffingService(repos.NewSet(db, log), log)
	router := NewRouter(RouterConfig{
		Log:                 log,
		Metrics:             observability.NewMetrics(prometheus.NewRegistry()),
		HealthHandler:       httpH.NewHealthHandler(sqlDB),
		LessonHandler:       httpH.NewLessonHandler(svc),
		MegaWorkloadHandler: httpH.NewMegaWorkloadHandler(svc),
		DirectoryHandler:    httpH.NewDirectoryHandler(svc),
	})
	return seeded{router: router, lesson: lesson}
}

func get(t *testing.T, r stdhttp.Handler, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var body map[string]json.RawMessage
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouter_Healthcheck(t *testing.T) {
	s := newTestRouter(t)
	rec, _ := get(t, s.router, "/healthcheck")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_ListLessonsFiltersBySemester(t *testing.T) {
	s := newTestRouter(t)

	rec, body := get(t, s.router, "/api/lessons?semester=3&faculty=CS")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var lessons []types.Lesson
	require.NoError(t, json.Unmarshal(body["lessons"], &lessons))
	require.Len(t, lessons, 1)
	assert.Equal(t, "Algebra", lessons[0].Name)

	rec, body = get(t, s.router, "/api/lessons?semester=third")
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Contains(t, string(body["error"]), "invalid_semester")
}

func TestRouter_LessonWorkloads(t *testing.T) {
	s := newTestRouter(t)

	rec, body := get(t, s.router, "/api/lessons/"+s.lesson.ID.String()+"/workloads")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var workloads []types.Workload
	require.NoError(t, json.Unmarshal(body["workloads"], &workloads))
	require.Len(t, workloads, 1)
	assert.Equal(t, types.TypeLecture, workloads[0].Type)
	assert.Len(t, workloads[0].Groups, 2)

	rec, _ = get(t, s.router, "/api/lessons/not-a-uuid/workloads")
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec, body = get(t, s.router, "/api/lessons/00000000-0000-0000-0000-0000000000aa/workloads")
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Contains(t, string(body["error"]), "lesson_not_found")
}

func TestRouter_MegaWorkloads(t *testing.T) {
	s := newTestRouter(t)

	rec, body := get(t, s.router, "/api/mega-workloads?type_class=Individual")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var megas []struct {
		LessonName string `json:"lesson_name"`
		TypeClass  string `json:"type_class"`
		TotalHours int    `json:"total_hours"`
	}
	require.NoError(t, json.Unmarshal(body["mega_workloads"], &megas))
	require.Len(t, megas, 1)
	assert.Equal(t, "Algebra", megas[0].LessonName)
	assert.Equal(t, 36, megas[0].TotalHours)

	rec, _ = get(t, s.router, "/api/mega-workloads?type_class=Seminar")
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestRouter_Directory(t *testing.T) {
	s := newTestRouter(t)

	rec, body := get(t, s.router, "/api/groups")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var groups []types.Group
	require.NoError(t, json.Unmarshal(body["groups"], &groups))
	assert.Len(t, groups, 2)

	rec, _ = get(t, s.router, "/api/employees")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)

	rec, _ = get(t, s.router, "/api/ingest-runs/latest")
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	s := newTestRouter(t)
	get(t, s.router, "/api/groups")

	rec, _ := get(t, s.router, "/metrics")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `workload_api_requests_total{method="GET",route="/api/groups",status="200"} 1`)
}
