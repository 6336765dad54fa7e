package drawtool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
)

func cellAt(lat, lng, coverage float64, buildings int) models.GridCell {
	const d = 0.003
	return models.GridCell{
		CoveragePct:   coverage,
		BuildingCount: buildings,
		Ring: spatial.Ring{
			{Lat: lat - d, Lng: lng - d},
			{Lat: lat - d, Lng: lng + d},
			{Lat: lat + d, Lng: lng + d},
			{Lat: lat + d, Lng: lng - d},
			{Lat: lat - d, Lng: lng - d},
		},
	}
}

func TestGestureLifecycle(t *testing.T) {
	tool := New()

	assert.Equal(t, PhaseIdle, tool.Phase())
	assert.True(t, tool.PanningEnabled())
	assert.Nil(t, tool.Rect())

	assert.ErrorIs(t, tool.Begin(spatial.Point{}), ErrNotArmed)

	tool.Arm(true)
	assert.False(t, tool.PanningEnabled(), "panning disabled while armed")

	require.NoError(t, tool.Begin(spatial.Point{Lat: 47.60, Lng: -52.80}))
	assert.Equal(t, PhaseDragging, tool.Phase())

	require.NoError(t, tool.Update(spatial.Point{Lat: 47.62, Lng: -52.78}))
	rect := tool.Rect()
	require.NotNil(t, rect)
	assert.InDelta(t, 47.60, rect.MinLat, 1e-9)
	assert.InDelta(t, 47.62, rect.MaxLat, 1e-9)

	_, err := tool.Finish(spatial.Point{Lat: 47.61, Lng: -52.79}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, PhaseSettled, tool.Phase())
	assert.False(t, tool.Armed(), "finishing disarms")
	assert.True(t, tool.PanningEnabled(), "panning re-enabled on completion")
	assert.NotNil(t, tool.Rect(), "settled rectangle still visible")

	tool.Clear()
	assert.Equal(t, PhaseIdle, tool.Phase())
	assert.Nil(t, tool.Rect())
}

func TestDisarmCancelsGesture(t *testing.T) {
	tool := New()
	tool.Arm(true)
	require.NoError(t, tool.Begin(spatial.Point{Lat: 1, Lng: 1}))

	tool.Arm(false)
	assert.Equal(t, PhaseIdle, tool.Phase())
	assert.ErrorIs(t, tool.Update(spatial.Point{Lat: 2, Lng: 2}), ErrNotDragging)
}

func TestAggregateKnownSubset(t *testing.T) {
	cells := []models.GridCell{
		cellAt(47.60, -52.80, 10, 5),
		cellAt(47.61, -52.80, 20, 7),
		cellAt(47.70, -52.80, 50, 100), // outside the rectangle
	}
	selected := []int{0, 1, 2}
	rect := spatial.Bounds{MinLat: 47.595, MinLng: -52.81, MaxLat: 47.615, MaxLng: -52.79}

	agg := Aggregate(cells, selected, rect)
	assert.Equal(t, 2, agg.CellCount)
	assert.InDelta(t, 15.0, agg.AvgCoverage, 1e-9)
	assert.Equal(t, 12, agg.TotalBuildings)
}

func TestAggregateRespectsSelection(t *testing.T) {
	cells := []models.GridCell{
		cellAt(47.60, -52.80, 10, 5),
		cellAt(47.61, -52.80, 20, 7),
	}
	rect := spatial.Bounds{MinLat: 47.59, MinLng: -52.81, MaxLat: 47.62, MaxLng: -52.79}

	agg := Aggregate(cells, []int{1}, rect)
	assert.Equal(t, 1, agg.CellCount, "filtered-out cells do not count")
	assert.InDelta(t, 20.0, agg.AvgCoverage, 1e-9)
}

func TestAggregateEmptySubset(t *testing.T) {
	agg := Aggregate(nil, nil, spatial.Bounds{})
	assert.Equal(t, models.AreaStats{CellCount: 0, AvgCoverage: 0, TotalBuildings: 0}, agg)
}
