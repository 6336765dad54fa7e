// Package drawtool implements the rectangle selection gesture and its
// aggregate statistics.
package drawtool

import (
	"errors"
	"time"

	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
	"github.com/Torido-Mir/CxC2026/internal/stats"
)

// ClearDelay is how long the finished rectangle stays on the map so the
// user can see what was selected.
const ClearDelay = 3 * time.Second

// Phase is the gesture state. The tool is an explicit machine rather than
// transient handler registration so partial gestures are testable.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseDragging Phase = "dragging"
	PhaseSettled  Phase = "settled"
)

var (
	ErrNotArmed    = errors.New("draw mode is not armed")
	ErrNotDragging = errors.New("no drag in progress")
)

// Tool tracks one rectangle gesture. While armed, the base map must not
// pan; PanningEnabled reflects that.
type Tool struct {
	phase  Phase
	armed  bool
	anchor spatial.Point
	rect   spatial.Bounds
}

// New returns an idle, disarmed tool
func New() *Tool {
	return &Tool{phase: PhaseIdle}
}

// Phase returns the current gesture phase
func (t *Tool) Phase() Phase { return t.phase }

// Armed reports whether draw mode is on
func (t *Tool) Armed() bool { return t.armed }

// PanningEnabled reports whether the base map may pan
func (t *Tool) PanningEnabled() bool { return !t.armed }

// Rect returns the rectangle being dragged or the settled rectangle, nil otherwise
func (t *Tool) Rect() *spatial.Bounds {
	if t.phase == PhaseIdle {
		return nil
	}
	r := t.rect
	return &r
}

// Arm toggles draw mode. Disarming cancels any gesture in progress and
// drops a settled rectangle.
func (t *Tool) Arm(armed bool) {
	t.armed = armed
	if !armed {
		t.phase = PhaseIdle
	}
}

// Begin anchors the rectangle at the pointer-down position
func (t *Tool) Begin(p spatial.Point) error {
	if !t.armed {
		return ErrNotArmed
	}
	t.anchor = p
	t.rect = spatial.NewBounds(p, p)
	t.phase = PhaseDragging
	return nil
}

// Update resizes the rectangle to the current pointer position
func (t *Tool) Update(p spatial.Point) error {
	if t.phase != PhaseDragging {
		return ErrNotDragging
	}
	t.rect = spatial.NewBounds(t.anchor, p)
	return nil
}

// Finish finalizes the rectangle at the pointer-up position and computes
// the aggregate over the given cells. The tool disarms (re-enabling map
// panning) and settles; the caller clears the settled rectangle after
// ClearDelay.
func (t *Tool) Finish(p spatial.Point, cells []models.GridCell, selected []int) (models.AreaStats, error) {
	if t.phase != PhaseDragging {
		return models.AreaStats{}, ErrNotDragging
	}

	t.rect = spatial.NewBounds(t.anchor, p)
	t.phase = PhaseSettled
	t.armed = false

	return Aggregate(cells, selected, t.rect), nil
}

// Clear removes the settled rectangle
func (t *Tool) Clear() {
	if t.phase == PhaseSettled {
		t.phase = PhaseIdle
	}
}

// Aggregate computes the drawn-area statistics: the number of selected
// cells whose centroid falls inside the rectangle, their mean coverage and
// their total building count. An empty subset yields zeros.
func Aggregate(cells []models.GridCell, selected []int, rect spatial.Bounds) models.AreaStats {
	var coverages []float64
	var counts []int

	for _, idx := range selected {
		if idx < 0 || idx >= len(cells) {
			continue
		}
		cell := &cells[idx]
		if !rect.Contains(cell.Centroid()) {
			continue
		}
		coverages = append(coverages, cell.CoveragePct)
		counts = append(counts, cell.BuildingCount)
	}

	return models.AreaStats{
		CellCount:      len(coverages),
		AvgCoverage:    stats.Mean(coverages),
		TotalBuildings: stats.SumInts(counts),
	}
}
