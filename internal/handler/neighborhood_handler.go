package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Torido-Mir/CxC2026/internal/dataset"
	"github.com/Torido-Mir/CxC2026/pkg/response"
)

// NeighborhoodHandler handles HTTP requests for neighborhood statistics
type NeighborhoodHandler struct {
	store *dataset.Store
}

// NewNeighborhoodHandler creates a new neighborhood handler
func NewNeighborhoodHandler(store *dataset.Store) *NeighborhoodHandler {
	return &NeighborhoodHandler{store: store}
}

// List returns the per-settlement statistics
// GET /api/v1/neighborhoods
func (h *NeighborhoodHandler) List(c *gin.Context) {
	response.Success(c, h.store.Neighborhoods())
}

// Settlements returns the known settlement names for the filter dropdown
// GET /api/v1/settlements
func (h *NeighborhoodHandler) Settlements(c *gin.Context) {
	response.Success(c, h.store.Settlements())
}

// One returns the statistics for a single settlement
// GET /api/v1/neighborhoods/:name
func (h *NeighborhoodHandler) One(c *gin.Context) {
	stat := h.store.Neighborhood(c.Param("name"))
	if stat == nil {
		response.NotFound(c, "Unknown settlement")
		return
	}
	response.Success(c, stat)
}
