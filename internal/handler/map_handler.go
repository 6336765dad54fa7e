package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Torido-Mir/CxC2026/internal/drawtool"
	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/session"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
	"github.com/Torido-Mir/CxC2026/pkg/response"
)

// MapHandler handles HTTP requests for map state and interaction
type MapHandler struct {
	session *session.Session
}

// NewMapHandler creates a new map handler
func NewMapHandler(s *session.Session) *MapHandler {
	return &MapHandler{session: s}
}

// State returns the full session snapshot
// GET /api/v1/map/state
func (h *MapHandler) State(c *gin.Context) {
	response.Success(c, h.session.State())
}

// Layers returns the current layer set
// GET /api/v1/map/layers
func (h *MapHandler) Layers(c *gin.Context) {
	response.Success(c, h.session.Layers())
}

// ApplyFilters merges a filter patch and rerenders
// POST /api/v1/map/filters
func (h *MapHandler) ApplyFilters(c *gin.Context) {
	var patch models.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Invalid filter patch")
		return
	}

	h.session.ApplyFilters(patch)
	response.Success(c, h.session.State())
}

// SelectSettlement sets or clears the settlement filter
// POST /api/v1/map/settlement
func (h *MapHandler) SelectSettlement(c *gin.Context) {
	var req models.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid settlement request")
		return
	}

	if err := h.session.SelectSettlement(req.Settlement); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, h.session.State())
}

// SetView sets the visualization mode manually
// POST /api/v1/map/view
func (h *MapHandler) SetView(c *gin.Context) {
	var req models.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid view request")
		return
	}

	if err := h.session.SetMode(req.Mode); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.session.State())
}

// SetZoom reports a zoom change from the map client
// POST /api/v1/map/zoom
func (h *MapHandler) SetZoom(c *gin.Context) {
	var req models.ZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid zoom request")
		return
	}

	h.session.SetZoom(req.Zoom)
	response.Success(c, h.session.State())
}

// Reset restores defaults
// POST /api/v1/map/reset
func (h *MapHandler) Reset(c *gin.Context) {
	h.session.Reset()
	response.Success(c, h.session.State())
}

// ArmDraw toggles the rectangle draw tool
// POST /api/v1/map/draw/arm
func (h *MapHandler) ArmDraw(c *gin.Context) {
	var req models.ArmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid arm request")
		return
	}

	h.session.ArmDraw(req.Armed)
	response.Success(c, h.session.State())
}

// DrawBegin anchors a draw gesture
// POST /api/v1/map/draw/begin
func (h *MapHandler) DrawBegin(c *gin.Context) {
	point, ok := bindPoint(c)
	if !ok {
		return
	}

	if err := h.session.DrawBegin(point); err != nil {
		drawError(c, err)
		return
	}
	response.Success(c, h.session.State())
}

// DrawUpdate extends the rectangle to the current pointer position
// POST /api/v1/map/draw/update
func (h *MapHandler) DrawUpdate(c *gin.Context) {
	point, ok := bindPoint(c)
	if !ok {
		return
	}

	if err := h.session.DrawUpdate(point); err != nil {
		drawError(c, err)
		return
	}
	response.Success(c, h.session.State())
}

// DrawFinish settles the rectangle and returns the area aggregates
// POST /api/v1/map/draw/finish
func (h *MapHandler) DrawFinish(c *gin.Context) {
	point, ok := bindPoint(c)
	if !ok {
		return
	}

	stats, err := h.session.DrawFinish(point)
	if err != nil {
		drawError(c, err)
		return
	}
	response.Success(c, gin.H{"area": stats, "state": h.session.State()})
}

// CellDetail opens the detail panel for a grid cell
// GET /api/v1/map/cells/:index/detail
func (h *MapHandler) CellDetail(c *gin.Context) {
	var uri struct {
		Index int `uri:"index"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid cell index")
		return
	}

	panel, err := h.session.OpenCellDetail(uri.Index)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, panel)
}

// Detail returns the current detail panel
// GET /api/v1/detail
func (h *MapHandler) Detail(c *gin.Context) {
	response.Success(c, h.session.Detail())
}

// CloseDetail hides the detail panel
// DELETE /api/v1/detail
func (h *MapHandler) CloseDetail(c *gin.Context) {
	h.session.CloseDetail()
	response.Success(c, h.session.Detail())
}

func bindPoint(c *gin.Context) (spatial.Point, bool) {
	var req models.DrawPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid draw point")
		return spatial.Point{}, false
	}
	return spatial.Point{Lat: req.Lat, Lng: req.Lng}, true
}

func drawError(c *gin.Context, err error) {
	if errors.Is(err, drawtool.ErrNotArmed) || errors.Is(err, drawtool.ErrNotDragging) {
		response.Error(c, http.StatusConflict, err.Error())
		return
	}
	response.InternalError(c, err.Error())
}
