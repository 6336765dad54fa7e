// Package session owns the single map session: filter and view state, the
// draw gesture, the detail panel and the rendered layer set. Every
// mutation funnels through one re-render path, so manual controls and
// assistant actions produce identical cascades.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Torido-Mir/CxC2026/internal/dataset"
	"github.com/Torido-Mir/CxC2026/internal/detail"
	"github.com/Torido-Mir/CxC2026/internal/drawtool"
	"github.com/Torido-Mir/CxC2026/internal/filter"
	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/render"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
	"github.com/Torido-Mir/CxC2026/internal/viewmode"
)

var (
	ErrChatBusy       = errors.New("a chat request is already in flight")
	ErrUnknownMode    = errors.New("unknown view mode")
	ErrCellOutOfRange = errors.New("cell index out of range")
)

// Session is the single mutable map session. All methods serialize on an
// internal mutex; state is ephemeral and resets with the process.
type Session struct {
	mu sync.Mutex

	store  *dataset.Store
	view   *viewmode.Machine
	draw   *drawtool.Tool
	engine *render.Engine

	filters models.FilterState
	panel   models.DetailPanel
	camera  *models.Camera

	selectedCells     []int
	selectedBuildings []int

	threadID   string
	chatBusy   bool
	clearDelay time.Duration
	clearTimer *time.Timer
}

// Snapshot is the read view of the session state
type Snapshot struct {
	Filters        models.FilterState `json:"filters"`
	View           models.ViewState   `json:"view"`
	MaxCoverage    float64            `json:"max_coverage"`
	DrawArmed      bool               `json:"draw_armed"`
	PanningEnabled bool               `json:"panning_enabled"`
	ChatBusy       bool               `json:"chat_busy"`
	Camera         *models.Camera     `json:"camera,omitempty"`
	Detail         models.DetailPanel `json:"detail"`
	Settlements    []string           `json:"settlements"`
}

// New creates the session over the loaded datasets and renders the
// initial heat view
func New(store *dataset.Store, autoGridZoom float64) *Session {
	s := &Session{
		store:      store,
		view:       viewmode.New(autoGridZoom),
		draw:       drawtool.New(),
		engine:     render.NewEngine(store),
		filters:    models.DefaultFilterState(),
		panel:      detail.Hidden(),
		clearDelay: drawtool.ClearDelay,
	}
	s.rerender()
	return s
}

// rerender recomputes both selections and rebuilds the active layers.
// Callers hold the mutex.
func (s *Session) rerender() {
	s.selectedCells = filter.SelectCells(s.store.Cells(), s.filters)
	s.selectedBuildings = filter.SelectBuildings(s.store.Buildings(), s.filters)
	s.engine.Render(s.view.Mode(), s.filters, s.selectedCells, s.selectedBuildings, s.draw.Rect())
}

// State returns a snapshot of the session
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Filters:        s.filters,
		View:           s.view.State(),
		MaxCoverage:    s.store.MaxCoverage(),
		DrawArmed:      s.draw.Armed(),
		PanningEnabled: s.draw.PanningEnabled(),
		ChatBusy:       s.chatBusy,
		Camera:         s.camera,
		Detail:         s.panel,
		Settlements:    s.store.Settlements(),
	}
}

// Layers returns the layer set from the last render
func (s *Session) Layers() models.LayerSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Layers()
}

// ApplyFilters overwrites only the provided filter fields and re-renders
func (s *Session) ApplyFilters(patch models.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.filters)
	s.rerender()
}

// SelectSettlement applies the settlement filter with the full manual
// cascade: re-render, neighborhood detail when stats are known, and panel
// hide when clearing a neighborhood view. Unknown settlements are
// rejected.
func (s *Session) SelectSettlement(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != "" && !s.store.KnownSettlement(name) {
		return fmt.Errorf("unknown settlement %q", name)
	}

	s.filters.Settlement = name
	s.rerender()

	if name == "" {
		if s.panel.Kind == models.DetailNeighborhood {
			s.panel = detail.Hidden()
		}
		return nil
	}

	if stat := s.store.Neighborhood(name); stat != nil {
		s.panel = detail.NeighborhoodPanel(stat)
	}
	return nil
}

// SetMode applies a manual mode button press and re-renders
func (s *Session) SetMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SetMode(mode)
	s.rerender()
	return nil
}

// SetZoom records a zoom change; an automatic mode transition re-renders
func (s *Session) SetZoom(zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.SetZoom(zoom) {
		s.rerender()
	}
}

// Reset restores default filters, returns to unlocked heat mode, closes
// the detail panel and drops any drawn rectangle
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = models.DefaultFilterState()
	s.view.Reset()
	s.draw.Arm(false)
	s.panel = detail.Hidden()
	s.camera = nil
	s.rerender()
}

// ArmDraw toggles draw mode; while armed the base map must not pan
func (s *Session) ArmDraw(armed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draw.Arm(armed)
	s.rerender()
}

// DrawBegin anchors the selection rectangle
func (s *Session) DrawBegin(p spatial.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.draw.Begin(p); err != nil {
		return err
	}
	s.rerender()
	return nil
}

// DrawUpdate resizes the selection rectangle to the pointer position
func (s *Session) DrawUpdate(p spatial.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.draw.Update(p); err != nil {
		return err
	}
	s.rerender()
	return nil
}

// DrawFinish finalizes the rectangle, opens the area detail panel and
// schedules the rectangle's removal after the fixed delay
func (s *Session) DrawFinish(p spatial.Point) (models.AreaStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg, err := s.draw.Finish(p, s.store.Cells(), s.selectedCells)
	if err != nil {
		return models.AreaStats{}, err
	}

	s.panel = detail.AreaPanel(agg)
	s.rerender()

	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}
	s.clearTimer = time.AfterFunc(s.clearDelay, s.ClearDrawRect)

	return agg, nil
}

// ClearDrawRect removes the settled rectangle from the map
func (s *Session) ClearDrawRect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draw.Clear()
	s.rerender()
}

// OpenCellDetail shows the detail panel for one grid cell (map click)
func (s *Session) OpenCellDetail(index int) (models.DetailPanel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cells := s.store.Cells()
	if index < 0 || index >= len(cells) {
		return models.DetailPanel{}, fmt.Errorf("%w: %d", ErrCellOutOfRange, index)
	}

	s.panel = detail.CellPanel(&cells[index])
	return s.panel, nil
}

// Detail returns the current detail panel content
func (s *Session) Detail() models.DetailPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

// CloseDetail hides the detail panel
func (s *Session) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panel = detail.Hidden()
}

// ZoomToSettlement pans and zooms to a settlement. When no centroid is
// known it reports false so the caller can fall back to highlighting.
func (s *Session) ZoomToSettlement(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stat := s.store.Neighborhood(name)
	if stat == nil || (stat.CentroidLat == 0 && stat.CentroidLng == 0) {
		return false
	}

	zoom := 14.0
	if bounds, ok := s.store.SettlementBounds(name); ok {
		zoom = spatial.ZoomForSpan(bounds.Diagonal())
	}
	s.camera = &models.Camera{Lat: stat.CentroidLat, Lng: stat.CentroidLng, Zoom: zoom}
	return true
}

// FlyTo moves the camera to an arbitrary location, used by place search
func (s *Session) FlyTo(lat, lng, zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = &models.Camera{Lat: lat, Lng: lng, Zoom: zoom}
}

// FilteredBuildings resolves the current building selection for export
func (s *Session) FilteredBuildings() []models.Building {
	s.mu.Lock()
	defer s.mu.Unlock()

	buildings := s.store.Buildings()
	out := make([]models.Building, 0, len(s.selectedBuildings))
	for _, idx := range s.selectedBuildings {
		out = append(out, buildings[idx])
	}
	return out
}

// MapState captures the filter snapshot sent with chat requests
func (s *Session) MapState() models.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Snapshot(s.filters)
}

// BeginChat marks a chat request in flight. A second send while one is
// outstanding is rejected, matching the disabled send control.
func (s *Session) BeginChat() (threadID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chatBusy {
		return "", ErrChatBusy
	}
	s.chatBusy = true
	return s.threadID, nil
}

// EndChat clears the in-flight flag
func (s *Session) EndChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatBusy = false
}

// SetThreadID stores the server-side conversation id
func (s *Session) SetThreadID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threadID = id
}

// ResetThread drops the server-side conversation context
func (s *Session) ResetThread() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threadID = ""
}

// ThreadID returns the current conversation id, empty when none
func (s *Session) ThreadID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threadID
}
