package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Torido-Mir/CxC2026/internal/export"
	"github.com/Torido-Mir/CxC2026/internal/session"
	"github.com/Torido-Mir/CxC2026/pkg/response"
)

// ExportHandler handles HTTP requests for dataset downloads
type ExportHandler struct {
	session *session.Session
}

// NewExportHandler creates a new export handler
func NewExportHandler(s *session.Session) *ExportHandler {
	return &ExportHandler{session: s}
}

// Buildings downloads the currently filtered buildings as CSV
// GET /api/v1/export/buildings.csv
func (h *ExportHandler) Buildings(c *gin.Context) {
	buildings := h.session.FilteredBuildings()

	var sb strings.Builder
	if err := export.WriteCSV(&sb, buildings); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(sb.String()))
}
