package models

// NeighborhoodStat represents pre-aggregated statistics for one settlement.
// Immutable after load.
type NeighborhoodStat struct {
	Settlement       string  `json:"Settlement"`
	AvgCoverage      float64 `json:"avg_coverage"`
	MaxCoverage      float64 `json:"max_coverage"`
	BuildingCount    int     `json:"building_count"`
	TotalSqft        int64   `json:"total_sqft"`
	ResidentialCount int     `json:"residential_count"`
	ResidentialPct   float64 `json:"residential_pct"`
	SizeEligibleCnt  int     `json:"size_eligible_count"`
	BuildingDensity  float64 `json:"building_density"`
	PriorityScore    float64 `json:"priority_score"`
	CentroidLat      float64 `json:"centroid_lat"`
	CentroidLng      float64 `json:"centroid_lng"`
}
