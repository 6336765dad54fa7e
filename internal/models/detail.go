package models

// DetailKind identifies which content variant the detail panel shows
type DetailKind string

const (
	DetailCell         DetailKind = "cell"
	DetailArea         DetailKind = "area"
	DetailNeighborhood DetailKind = "neighborhood"
)

// DetailStat is one labeled value in the detail panel
type DetailStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetailPanel is the single display region for cell, drawn-area or
// neighborhood statistics. Opening a variant replaces previous content.
type DetailPanel struct {
	Visible bool         `json:"visible"`
	Kind    DetailKind   `json:"kind,omitempty"`
	Title   string       `json:"title,omitempty"`
	Stats   []DetailStat `json:"stats,omitempty"`
}

// AreaStats is the aggregate over cells enclosed by a drawn rectangle
type AreaStats struct {
	CellCount      int     `json:"cell_count"`
	AvgCoverage    float64 `json:"avg_coverage"`
	TotalBuildings int     `json:"total_buildings"`
}
