// Package render builds the map layer payloads for the active
// visualization mode and owns their lifecycle against the base map.
package render

import (
	"fmt"

	"github.com/Torido-Mir/CxC2026/internal/colorscale"
	"github.com/Torido-Mir/CxC2026/internal/dataset"
	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
)

// Heat layer tuning and fixed layer styling.
const (
	HeatRadius      = 22
	HeatBlur        = 18
	GridFillOpacity = 0.65
	GridBorderColor = "#ffffff"

	EligibleColor = "#2ecc71" // under the size cap
	OverCapColor  = "#e0641e"
)

// Engine renders the layer set for the current state. Every render
// replaces the previous set wholesale, so switching modes can never leave
// a stale layer attached and repeated renders never accumulate duplicates.
type Engine struct {
	store   *dataset.Store
	current models.LayerSet
}

// NewEngine creates a render engine over the loaded datasets
func NewEngine(store *dataset.Store) *Engine {
	return &Engine{store: store}
}

// Layers returns the layer set from the last render
func (e *Engine) Layers() models.LayerSet { return e.current }

// Render produces the layers for the given mode and selections. Exactly
// one of the heat/grid layers is attached, or neither when the mode is
// off; the buildings overlay is independent and drawn only when enabled
// and the building dataset is non-empty.
func (e *Engine) Render(mode models.ViewMode, fs models.FilterState, selectedCells, selectedBuildings []int, drawRect *spatial.Bounds) models.LayerSet {
	next := models.LayerSet{
		Mode:       mode,
		DrawRect:   drawRect,
		Generation: e.current.Generation + 1,
	}

	switch mode {
	case models.ModeHeat:
		next.Heat = BuildHeat(e.store.Cells(), selectedCells, e.store.MaxCoverage())
	case models.ModeGrid:
		next.Grid = BuildGrid(e.store.Cells(), selectedCells, e.store.MaxCoverage())
	}

	if fs.ShowBuildings && len(e.store.Buildings()) > 0 {
		next.Buildings = BuildBuildings(e.store.Buildings(), selectedBuildings)
	}

	e.current = next
	return next
}

// BuildHeat converts each selected cell into a weighted point at its
// centroid. Intensity saturates at the fixed coverage ceiling.
func BuildHeat(cells []models.GridCell, selected []int, maxCoverage float64) *models.HeatLayer {
	layer := &models.HeatLayer{
		Points:   make([]models.HeatPoint, 0, len(selected)),
		Radius:   HeatRadius,
		Blur:     HeatBlur,
		Gradient: colorscale.GradientStops(),
	}

	for _, idx := range selected {
		cell := &cells[idx]
		intensity := cell.CoveragePct / maxCoverage
		if intensity > 1 {
			intensity = 1
		}
		centroid := cell.Centroid()
		layer.Points = append(layer.Points, models.HeatPoint{
			Lat:       centroid.Lat,
			Lng:       centroid.Lng,
			Intensity: intensity,
		})
	}
	return layer
}

// BuildGrid draws each selected cell's polygon filled with its scale
// color, with a hover tooltip and the cell index for click dispatch
func BuildGrid(cells []models.GridCell, selected []int, maxCoverage float64) *models.GridLayer {
	layer := &models.GridLayer{Features: make([]models.GridFeature, 0, len(selected))}

	for _, idx := range selected {
		cell := &cells[idx]
		layer.Features = append(layer.Features, models.GridFeature{
			Index:       idx,
			Ring:        cell.Ring,
			FillColor:   colorscale.Scale(cell.CoveragePct, maxCoverage).Hex(),
			FillOpacity: GridFillOpacity,
			BorderColor: GridBorderColor,
			Tooltip:     fmt.Sprintf("Coverage %.1f%% · %d buildings", cell.CoveragePct, cell.BuildingCount),
		})
	}
	return layer
}

// BuildBuildings draws one marker per selected building, colored by size
// eligibility
func BuildBuildings(buildings []models.Building, selected []int) *models.BuildingLayer {
	layer := &models.BuildingLayer{Markers: make([]models.BuildingMarker, 0, len(selected))}

	for _, idx := range selected {
		b := &buildings[idx]

		color := OverCapColor
		eligibility := "over cap"
		if b.SizeEligible {
			color = EligibleColor
			eligibility = "eligible"
		}

		layer.Markers = append(layer.Markers, models.BuildingMarker{
			Lat:          b.Lat,
			Lng:          b.Lng,
			Color:        color,
			SizeEligible: b.SizeEligible,
			Tooltip: fmt.Sprintf("%.0f sqft · %.0f storeys · %s · SVR %.4f",
				b.TotalSqft, b.Storeys, eligibility, b.SVRProxy),
		})
	}
	return layer
}
