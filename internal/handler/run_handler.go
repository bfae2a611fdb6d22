package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velotrace/zoneval/internal/service"
	"github.com/velotrace/zoneval/pkg/response"
)

// RunHandler handles HTTP requests for analysis runs
type RunHandler struct {
	service *service.RunService
}

// NewRunHandler creates a new run handler
func NewRunHandler(service *service.RunService) *RunHandler {
	return &RunHandler{service: service}
}

// GetRuns handles GET /api/v1/runs
func (h *RunHandler) GetRuns(c *gin.Context) {
	runs, err := h.service.GetRuns()
	if err != nil {
		response.InternalError(c, "failed to get runs")
		return
	}
	response.Success(c, gin.H{
		"data":  runs,
		"count": len(runs),
	})
}

// GetRun handles GET /api/v1/runs/:id
func (h *RunHandler) GetRun(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid run id")
		return
	}

	run, err := h.service.GetRunByID(id)
	if err != nil {
		response.InternalError(c, "failed to get run")
		return
	}
	if run == nil {
		response.NotFound(c, "run not found")
		return
	}
	response.Success(c, run)
}
