package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/service"
	"github.com/velotrace/zoneval/pkg/response"
)

// GridHandler handles HTTP requests for grid cells
type GridHandler struct {
	service *service.GridService
}

// NewGridHandler creates a new grid handler
func NewGridHandler(service *service.GridService) *GridHandler {
	return &GridHandler{service: service}
}

// GetGridCells handles GET /api/v1/grid-cells
func (h *GridHandler) GetGridCells(c *gin.Context) {
	var filter models.GridFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	cells, err := h.service.GetGridCells(filter)
	if err != nil {
		response.InternalError(c, "failed to get grid cells")
		return
	}

	response.Success(c, gin.H{
		"data":  cells,
		"count": len(cells),
	})
}
