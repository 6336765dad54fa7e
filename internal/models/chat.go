package models

import "encoding/json"

// MapState is the filter snapshot sent with every chat request so the
// assistant sees what the user currently sees
type MapState struct {
	Settlement       string  `json:"settlement"`
	SizeEligibleOnly bool    `json:"size_eligible_only"`
	BuildingType     string  `json:"building_type"`
	StoreyTier       string  `json:"storey_tier"`
	MinCoverage      float64 `json:"min_coverage"`
	MinBuildings     int     `json:"min_buildings"`
	ShowBuildings    bool    `json:"show_buildings"`
}

// Snapshot captures the filter state in the chat wire format
func Snapshot(fs FilterState) MapState {
	return MapState{
		Settlement:       fs.Settlement,
		SizeEligibleOnly: fs.SizeEligibleOnly,
		BuildingType:     fs.BuildingType,
		StoreyTier:       fs.StoreyTier,
		MinCoverage:      fs.MinCoverage,
		MinBuildings:     fs.MinBuildings,
		ShowBuildings:    fs.ShowBuildings,
	}
}

// ChatRequest is the request body for the assistant backend
type ChatRequest struct {
	Message  string   `json:"message"`
	ThreadID string   `json:"thread_id,omitempty"`
	MapState MapState `json:"map_state"`
}

// ChatAction is a structured map instruction returned by the assistant.
// The set of variants is closed; unknown wire types decode to nil and are
// skipped, so new server-side action kinds fail safe.
type ChatAction interface {
	actionType() string
}

// HighlightSettlement selects the settlement in the filter, triggering the
// same cascade as a manual selection
type HighlightSettlement struct {
	Settlement string
}

// ZoomToSettlement pans and zooms the map to the settlement centroid,
// falling back to highlight behavior when no centroid is known
type ZoomToSettlement struct {
	Settlement string
}

// ApplyFilters overwrites only the provided filter fields
type ApplyFilters struct {
	SizeEligibleOnly *bool
	BuildingType     *string
	StoreyTier       *string
	MinCoverage      *float64
	MinBuildings     *int
}

// ShowBuildingPoints toggles the buildings overlay
type ShowBuildingPoints struct {
	Visible bool
}

func (HighlightSettlement) actionType() string { return "highlight_settlement" }
func (ZoomToSettlement) actionType() string    { return "zoom_to_settlement" }
func (ApplyFilters) actionType() string        { return "apply_filters" }
func (ShowBuildingPoints) actionType() string  { return "show_building_points" }

// wireAction is the open wire form the assistant backend emits
type wireAction struct {
	Type             string   `json:"type"`
	Settlement       string   `json:"settlement,omitempty"`
	Visible          *bool    `json:"visible,omitempty"`
	SizeEligibleOnly *bool    `json:"size_eligible_only,omitempty"`
	BuildingType     *string  `json:"building_type,omitempty"`
	StoreyTier       *string  `json:"storey_tier,omitempty"`
	MinCoverage      *float64 `json:"min_coverage,omitempty"`
	MinBuildings     *int     `json:"min_buildings,omitempty"`
}

// decode maps a wire action onto its variant, or nil for unknown types
func (w wireAction) decode() ChatAction {
	switch w.Type {
	case "highlight_settlement":
		return HighlightSettlement{Settlement: w.Settlement}
	case "zoom_to_settlement":
		return ZoomToSettlement{Settlement: w.Settlement}
	case "apply_filters":
		return ApplyFilters{
			SizeEligibleOnly: w.SizeEligibleOnly,
			BuildingType:     w.BuildingType,
			StoreyTier:       w.StoreyTier,
			MinCoverage:      w.MinCoverage,
			MinBuildings:     w.MinBuildings,
		}
	case "show_building_points":
		visible := false
		if w.Visible != nil {
			visible = *w.Visible
		}
		return ShowBuildingPoints{Visible: visible}
	default:
		return nil
	}
}

// ChatResponse is the assistant backend's success response
type ChatResponse struct {
	ThreadID string       `json:"thread_id"`
	Message  string       `json:"message"` // Markdown
	Actions  []ChatAction `json:"-"`
}

// UnmarshalJSON decodes the open actions array into the closed variant set,
// dropping unknown action types without error
func (r *ChatResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		ThreadID string       `json:"thread_id"`
		Message  string       `json:"message"`
		Actions  []wireAction `json:"actions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ThreadID = raw.ThreadID
	r.Message = raw.Message
	r.Actions = r.Actions[:0]
	for _, w := range raw.Actions {
		if action := w.decode(); action != nil {
			r.Actions = append(r.Actions, action)
		}
	}
	return nil
}
