package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/workload-backend/internal/http/response"
	"github.com/yungbote/workload-backend/internal/services"
)

// DirectoryHandler serves the flat reference lists: groups, employees and
// ingestion runs.
type DirectoryHandler struct {
	svc services.StaffingService
}

func NewDirectoryHandler(svc services.StaffingService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// GET /api/groups
func (h *DirectoryHandler) ListGroups(c *gin.Context) {
	groups, err := h.svc.ListGroups(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_groups_failed")
		return
	}
	response.RespondOK(c, gin.H{"groups": groups})
}

// GET /api/employees
func (h *DirectoryHandler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_employees_failed")
		return
	}
	response.RespondOK(c, gin.H{"employees": employees})
}

// GET /api/ingest-runs/latest
func (h *DirectoryHandler) LatestIngestRun(c *gin.Context) {
	run, err := h.svc.LatestIngestRun(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "load_ingest_run_failed")
		return
	}
	response.RespondOK(c, gin.H{"ingest_run": run})
}
