package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/velotrace/zoneval/internal/models"
	"github.com/velotrace/zoneval/internal/service"
	"github.com/velotrace/zoneval/pkg/response"
)

// InteractionHandler handles HTTP requests for interaction events
type InteractionHandler struct {
	service *service.InteractionService
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(service *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{service: service}
}

// GetInteractions handles GET /api/v1/interactions
func (h *InteractionHandler) GetInteractions(c *gin.Context) {
	var filter models.InteractionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	events, err := h.service.GetInteractions(filter)
	if err != nil {
		response.InternalError(c, "failed to get interaction events")
		return
	}

	response.Success(c, gin.H{
		"data":  events,
		"count": len(events),
	})
}

// GetSummary handles GET /api/v1/interactions/summary
func (h *InteractionHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary()
	if err != nil {
		response.InternalError(c, "failed to get interaction summary")
		return
	}
	response.Success(c, summary)
}
