package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/http/response"
	"github.com/yungbote/workload-backend/internal/services"
)

type LessonHandler struct {
	svc services.StaffingService
}

func NewLessonHandler(svc services.StaffingService) *LessonHandler {
	return &LessonHandler{svc: svc}
}

// GET /api/lessons?semester=&faculty=
func (h *LessonHandler) ListLessons(c *gin.Context) {
	semester, err := optionalInt(c, "semester")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_semester", err)
		return
	}
	lessons, err := h.svc.ListLessons(c.Request.Context(), repos.LessonFilter{
		Semester: semester,
		Faculty:  strings.TrimSpace(c.Query("faculty")),
	})
	if err != nil {
		response.RespondServiceError(c, err, "list_lessons_failed")
		return
	}
	response.RespondOK(c, gin.H{"lessons": lessons})
}

// GET /api/lessons/:id/workloads
func (h *LessonHandler) ListLessonWorkloads(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil || lessonID == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_lesson_id", err)
		return
	}
	out, err := h.svc.GetLessonWorkloads(c.Request.Context(), lessonID)
	if err != nil {
		response.RespondServiceError(c, err, "load_workloads_failed")
		return
	}
	response.RespondOK(c, gin.H{
		"lesson":    out.Lesson,
		"workloads": out.Workloads,
	})
}
