package models

// ViewMode identifies the active visualization mode
type ViewMode string

const (
	ModeHeat ViewMode = "heat"
	ModeGrid ViewMode = "grid"
	ModeOff  ViewMode = "off"
)

// Valid reports whether the mode is one of the three known modes
func (m ViewMode) Valid() bool {
	return m == ModeHeat || m == ModeGrid || m == ModeOff
}

// FilterState holds the current map filter settings.
// A single instance is owned by the session and mutated only through
// session operations (UI controls or assistant actions).
type FilterState struct {
	MinCoverage      float64 `json:"min_coverage"`
	MinBuildings     int     `json:"min_buildings"`
	Settlement       string  `json:"settlement"`
	SizeEligibleOnly bool    `json:"size_eligible_only"`
	BuildingType     string  `json:"building_type"`
	StoreyTier       string  `json:"storey_tier"`
	ShowBuildings    bool    `json:"show_buildings"`
}

// DefaultFilterState returns the filter settings the map opens with
func DefaultFilterState() FilterState {
	return FilterState{MinCoverage: 0.1}
}

// FilterPatch is a partial FilterState update; nil fields are left untouched
type FilterPatch struct {
	MinCoverage      *float64 `json:"min_coverage,omitempty"`
	MinBuildings     *int     `json:"min_buildings,omitempty"`
	Settlement       *string  `json:"settlement,omitempty"`
	SizeEligibleOnly *bool    `json:"size_eligible_only,omitempty"`
	BuildingType     *string  `json:"building_type,omitempty"`
	StoreyTier       *string  `json:"storey_tier,omitempty"`
	ShowBuildings    *bool    `json:"show_buildings,omitempty"`
}

// Apply overwrites only the provided fields
func (p FilterPatch) Apply(fs *FilterState) {
	if p.MinCoverage != nil {
		fs.MinCoverage = *p.MinCoverage
	}
	if p.MinBuildings != nil {
		fs.MinBuildings = *p.MinBuildings
	}
	if p.Settlement != nil {
		fs.Settlement = *p.Settlement
	}
	if p.SizeEligibleOnly != nil {
		fs.SizeEligibleOnly = *p.SizeEligibleOnly
	}
	if p.BuildingType != nil {
		fs.BuildingType = *p.BuildingType
	}
	if p.StoreyTier != nil {
		fs.StoreyTier = *p.StoreyTier
	}
	if p.ShowBuildings != nil {
		fs.ShowBuildings = *p.ShowBuildings
	}
}

// Empty reports whether the patch carries no fields
func (p FilterPatch) Empty() bool {
	return p.MinCoverage == nil && p.MinBuildings == nil && p.Settlement == nil &&
		p.SizeEligibleOnly == nil && p.BuildingType == nil && p.StoreyTier == nil &&
		p.ShowBuildings == nil
}

// ViewState holds the visualization mode, the manual-override lock and the
// last reported zoom level
type ViewState struct {
	Mode       ViewMode `json:"mode"`
	UserLocked bool     `json:"user_locked"`
	Zoom       float64  `json:"zoom"`
}

// Camera is the map viewport position requested by zoom-to actions
type Camera struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom float64 `json:"zoom"`
}

// Notice is a transient user-facing notification (toast equivalent)
type Notice struct {
	Level   string `json:"level"` // info, warning, error
	Message string `json:"message"`
}
