// Package viewmode decides the active visualization mode from zoom level
// and manual overrides.
package viewmode

import "github.com/Torido-Mir/CxC2026/internal/models"

// DefaultAutoGridZoom is the zoom level at which the smoothed heat view
// hands over to discrete per-cell coloring.
const DefaultAutoGridZoom = 13.0

// Machine tracks the heat/grid/off mode and the user-override lock
type Machine struct {
	state        models.ViewState
	autoGridZoom float64
}

// New starts in heat mode, unlocked, below the auto-grid threshold
func New(autoGridZoom float64) *Machine {
	if autoGridZoom <= 0 {
		autoGridZoom = DefaultAutoGridZoom
	}
	return &Machine{
		state:        models.ViewState{Mode: models.ModeHeat, Zoom: autoGridZoom - 1},
		autoGridZoom: autoGridZoom,
	}
}

// State returns the current view state
func (m *Machine) State() models.ViewState { return m.state }

// Mode returns the active visualization mode
func (m *Machine) Mode() models.ViewMode { return m.state.Mode }

// SetMode applies a manual mode button press. Grid and off lock the
// machine against automatic zoom switching; an explicit return to heat
// clears the lock. Returns true when the mode changed.
func (m *Machine) SetMode(mode models.ViewMode) bool {
	m.state.UserLocked = mode != models.ModeHeat
	if m.state.Mode == mode {
		return false
	}
	m.state.Mode = mode
	return true
}

// SetZoom records a zoom change and fires the automatic heat<->grid
// transition when unlocked and the threshold is crossed. Automatic
// transitions never target off. Returns true when the mode changed.
func (m *Machine) SetZoom(zoom float64) bool {
	m.state.Zoom = zoom
	if m.state.UserLocked {
		return false
	}

	switch {
	case m.state.Mode == models.ModeHeat && zoom >= m.autoGridZoom:
		m.state.Mode = models.ModeGrid
		return true
	case m.state.Mode == models.ModeGrid && zoom < m.autoGridZoom:
		m.state.Mode = models.ModeHeat
		return true
	}
	return false
}

// Reset returns to heat mode and clears the lock
func (m *Machine) Reset() {
	m.state.Mode = models.ModeHeat
	m.state.UserLocked = false
}
