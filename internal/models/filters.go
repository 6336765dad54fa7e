package models

// ViewRequest sets the visualization mode manually
type ViewRequest struct {
	Mode ViewMode `json:"mode" binding:"required"`
}

// ZoomRequest reports a zoom level change from the map
type ZoomRequest struct {
	Zoom float64 `json:"zoom"`
}

// SettlementRequest selects or clears the settlement filter
type SettlementRequest struct {
	Settlement string `json:"settlement"`
}

// ArmRequest toggles draw mode
type ArmRequest struct {
	Armed bool `json:"armed"`
}

// DrawPointRequest is a pointer position during a draw gesture
type DrawPointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchQuery is the place-name search input
type SearchQuery struct {
	Query string `form:"q" binding:"required"`
}
