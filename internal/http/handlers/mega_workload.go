package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/workload-backend/internal/data/repos"
	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/http/response"
	"github.com/yungbote/workload-backend/internal/services"
)

type MegaWorkloadHandler struct {
	svc services.StaffingService
}

func NewMegaWorkloadHandler(svc services.StaffingService) *MegaWorkloadHandler {
	return &MegaWorkloadHandler{svc: svc}
}

// GET /api/mega-workloads?semester=&faculty=&type_class=
func (h *MegaWorkloadHandler) ListMegaWorkloads(c *gin.Context) {
	semester, err := optionalInt(c, "semester")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_semester", err)
		return
	}
	megas, err := h.svc.ListMegaWorkloads(c.Request.Context(), repos.MegaWorkloadFilter{
		Semester:  semester,
		Faculty:   strings.TrimSpace(c.Query("faculty")),
		TypeClass: types.TypeClass(strings.TrimSpace(c.Query("type_class"))),
	})
	if err != nil {
		response.RespondServiceError(c, err, "list_mega_workloads_failed")
		return
	}
	response.RespondOK(c, gin.H{"mega_workloads": megas})
}
