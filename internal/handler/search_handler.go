package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Torido-Mir/CxC2026/internal/geocode"
	"github.com/Torido-Mir/CxC2026/internal/session"
	"github.com/Torido-Mir/CxC2026/pkg/response"
)

// searchZoom is the camera zoom applied after a successful place lookup
const searchZoom = 14.0

// SearchHandler handles HTTP requests for place-name search
type SearchHandler struct {
	service *geocode.Service
	session *session.Session
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *geocode.Service, s *session.Session) *SearchHandler {
	return &SearchHandler{service: service, session: s}
}

// Search resolves a place name and moves the camera to it
// GET /api/v1/search?q=...
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	place, err := h.service.Resolve(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			response.NotFound(c, "Location not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "Geocoding service is unavailable")
		return
	}

	h.session.FlyTo(place.Lat, place.Lng, searchZoom)
	response.Success(c, gin.H{
		"lat":          place.Lat,
		"lng":          place.Lng,
		"display_name": place.DisplayName,
		"zoom":         searchZoom,
	})
}
