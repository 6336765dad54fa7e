// Package filter derives the visible subset of grid cells and buildings
// from the current filter state. Both selections are pure and re-evaluated
// from scratch on every state change; the dataset covers a single
// metropolitan region, so no incremental diffing is needed.
package filter

import "github.com/Torido-Mir/CxC2026/internal/models"

// SelectCells keeps cells meeting the coverage and building-count floors
// and, when set, matching the settlement filter. Source order is preserved.
func SelectCells(cells []models.GridCell, fs models.FilterState) []int {
	selected := make([]int, 0, len(cells))
	for i := range cells {
		c := &cells[i]
		if c.CoveragePct < fs.MinCoverage {
			continue
		}
		if c.BuildingCount < fs.MinBuildings {
			continue
		}
		if fs.Settlement != "" && c.Settlement != fs.Settlement {
			continue
		}
		selected = append(selected, i)
	}
	return selected
}

// SelectBuildings keeps buildings matching the settlement, eligibility,
// type and storey-tier filters. Source order is preserved.
func SelectBuildings(buildings []models.Building, fs models.FilterState) []int {
	selected := make([]int, 0, len(buildings))
	for i := range buildings {
		b := &buildings[i]
		if fs.Settlement != "" && b.Settlement != fs.Settlement {
			continue
		}
		if fs.SizeEligibleOnly && !b.SizeEligible {
			continue
		}
		if fs.BuildingType != "" && b.BuildingType != fs.BuildingType {
			continue
		}
		if fs.StoreyTier != "" && b.StoreyCat != fs.StoreyTier {
			continue
		}
		selected = append(selected, i)
	}
	return selected
}
