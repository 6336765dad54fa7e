package models

// Building represents one enriched building footprint, reduced to its
// centroid point for the overlay layer. Immutable after load.
type Building struct {
	ObjectID      int64   `json:"OBJECTID"`
	Municipality  string  `json:"Municipality"`
	Settlement    string  `json:"Settlement"`
	FootprintSqft float64 `json:"FootprintSqft"`
	Storeys       float64 `json:"Storeys"`
	TotalSqft     float64 `json:"TotalSqft"`
	BuildingType  string  `json:"BuildingType"`
	SizeEligible  bool    `json:"size_eligible"`   // Under the program size cap
	StoreyCat     string  `json:"storey_category"` // low / mid / high
	SVRProxy      float64 `json:"svr_proxy"`       // Surface-to-volume proxy, 0 when absent
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}
