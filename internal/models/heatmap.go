package models

import "github.com/Torido-Mir/CxC2026/internal/spatial"

// HeatPoint represents a single weighted point in the heat layer
type HeatPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"` // Normalized 0-1
}

// HeatLayer is the density-heat visualization payload
type HeatLayer struct {
	Points   []HeatPoint        `json:"points"`
	Radius   int                `json:"radius"`
	Blur     int                `json:"blur"`
	Gradient map[string]string  `json:"gradient"` // stop position (0-1) -> hex color
}

// GridFeature is one polygon of the discrete per-cell layer
type GridFeature struct {
	Index       int          `json:"index"` // Position in the source dataset
	Ring        spatial.Ring `json:"ring"`
	FillColor   string       `json:"fill_color"`
	FillOpacity float64      `json:"fill_opacity"`
	BorderColor string       `json:"border_color"`
	Tooltip     string       `json:"tooltip"`
}

// GridLayer is the discrete per-cell visualization payload
type GridLayer struct {
	Features []GridFeature `json:"features"`
}

// BuildingMarker is one circular marker of the buildings overlay
type BuildingMarker struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Color        string  `json:"color"`
	SizeEligible bool    `json:"size_eligible"`
	Tooltip      string  `json:"tooltip"`
}

// BuildingLayer is the buildings point overlay payload
type BuildingLayer struct {
	Markers []BuildingMarker `json:"markers"`
}

// LayerSet holds the layers currently attached to the map. At most one of
// Heat/Grid is non-nil; the buildings overlay is independent and may
// coexist with either.
type LayerSet struct {
	Mode       ViewMode       `json:"mode"`
	Heat       *HeatLayer     `json:"heat,omitempty"`
	Grid       *GridLayer     `json:"grid,omitempty"`
	Buildings  *BuildingLayer `json:"buildings,omitempty"`
	DrawRect   *spatial.Bounds `json:"draw_rect,omitempty"`
	Generation uint64         `json:"generation"` // Bumps on every re-render
}
