// Package detail builds the three content variants of the detail panel.
package detail

import (
	"fmt"

	"github.com/Torido-Mir/CxC2026/internal/models"
)

// CellPanel presents one grid cell's statistics
func CellPanel(cell *models.GridCell) models.DetailPanel {
	stats := []models.DetailStat{
		{Label: "Coverage", Value: fmt.Sprintf("%.1f%%", cell.CoveragePct)},
		{Label: "Buildings", Value: fmt.Sprintf("%d", cell.BuildingCount)},
	}
	if cell.Settlement != "" {
		stats = append(stats, models.DetailStat{Label: "Settlement", Value: cell.Settlement})
	}

	return models.DetailPanel{
		Visible: true,
		Kind:    models.DetailCell,
		Title:   "Grid Cell",
		Stats:   stats,
	}
}

// AreaPanel presents the aggregate of a drawn rectangle
func AreaPanel(agg models.AreaStats) models.DetailPanel {
	return models.DetailPanel{
		Visible: true,
		Kind:    models.DetailArea,
		Title:   "Selected Area",
		Stats: []models.DetailStat{
			{Label: "Cells", Value: fmt.Sprintf("%d", agg.CellCount)},
			{Label: "Avg coverage", Value: fmt.Sprintf("%.1f%%", agg.AvgCoverage)},
			{Label: "Total buildings", Value: fmt.Sprintf("%d", agg.TotalBuildings)},
		},
	}
}

// NeighborhoodPanel presents a settlement's pre-aggregated statistics
func NeighborhoodPanel(stat *models.NeighborhoodStat) models.DetailPanel {
	return models.DetailPanel{
		Visible: true,
		Kind:    models.DetailNeighborhood,
		Title:   stat.Settlement,
		Stats: []models.DetailStat{
			{Label: "Buildings", Value: fmt.Sprintf("%d", stat.BuildingCount)},
			{Label: "Size eligible", Value: fmt.Sprintf("%d", stat.SizeEligibleCnt)},
			{Label: "Avg coverage", Value: fmt.Sprintf("%.1f%%", stat.AvgCoverage)},
			{Label: "Residential", Value: fmt.Sprintf("%.0f%%", stat.ResidentialPct*100)},
			{Label: "Priority score", Value: fmt.Sprintf("%.2f", stat.PriorityScore)},
		},
	}
}

// Hidden is the closed panel state
func Hidden() models.DetailPanel {
	return models.DetailPanel{Visible: false}
}
