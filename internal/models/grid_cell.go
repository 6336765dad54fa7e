package models

import "github.com/Torido-Mir/CxC2026/internal/spatial"

// GridCell represents one cell of the urban heat island grid.
// Cells are immutable after load; identity is the slice index.
type GridCell struct {
	Ring          spatial.Ring `json:"ring"`
	CoveragePct   float64      `json:"coverage_pct"`   // Building footprint coverage, 0-100
	BuildingCount int          `json:"building_count"` // Buildings intersecting the cell
	Settlement    string       `json:"settlement,omitempty"`
}

// Centroid returns the centroid of the cell polygon
func (c *GridCell) Centroid() spatial.Point {
	return spatial.Centroid(c.Ring)
}
