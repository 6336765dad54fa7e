package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Torido-Mir/CxC2026/internal/colorscale"
	"github.com/Torido-Mir/CxC2026/internal/dataset"
	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
)

func ring(lat, lng float64) spatial.Ring {
	const d = 0.003
	return spatial.Ring{
		{Lat: lat - d, Lng: lng - d},
		{Lat: lat - d, Lng: lng + d},
		{Lat: lat + d, Lng: lng + d},
		{Lat: lat + d, Lng: lng - d},
		{Lat: lat - d, Lng: lng - d},
	}
}

func testStore() *dataset.Store {
	cells := []models.GridCell{
		{Ring: ring(47.60, -52.80), CoveragePct: 12, BuildingCount: 30, Settlement: "Torbay"},
		{Ring: ring(47.61, -52.80), CoveragePct: 48, BuildingCount: 90, Settlement: "Torbay"},
	}
	buildings := []models.Building{
		{ObjectID: 1, Lat: 47.60, Lng: -52.80, TotalSqft: 2800, Storeys: 2, SizeEligible: true},
		{ObjectID: 2, Lat: 47.61, Lng: -52.80, TotalSqft: 9000, Storeys: 8, SizeEligible: false},
	}
	return dataset.New(cells, buildings, nil)
}

func TestRenderHeat(t *testing.T) {
	store := testStore()
	engine := NewEngine(store)

	set := engine.Render(models.ModeHeat, models.DefaultFilterState(), []int{0, 1}, nil, nil)

	require.NotNil(t, set.Heat)
	assert.Nil(t, set.Grid)
	require.Len(t, set.Heat.Points, 2)
	assert.InDelta(t, 12.0/store.MaxCoverage(), set.Heat.Points[0].Intensity, 1e-9)
	assert.InDelta(t, 1.0, set.Heat.Points[1].Intensity, 1e-9, "48 of ceiling 48 saturates")
	assert.Len(t, set.Heat.Gradient, 9)
}

func TestRenderGrid(t *testing.T) {
	store := testStore()
	engine := NewEngine(store)

	set := engine.Render(models.ModeGrid, models.DefaultFilterState(), []int{1}, nil, nil)

	require.NotNil(t, set.Grid)
	assert.Nil(t, set.Heat)
	require.Len(t, set.Grid.Features, 1)

	f := set.Grid.Features[0]
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, colorscale.Scale(48, store.MaxCoverage()).Hex(), f.FillColor)
	assert.Equal(t, GridFillOpacity, f.FillOpacity)
	assert.Contains(t, f.Tooltip, "48.0%")
	assert.Contains(t, f.Tooltip, "90 buildings")
}

func TestRenderModeSwitchReplacesLayers(t *testing.T) {
	engine := NewEngine(testStore())

	engine.Render(models.ModeHeat, models.DefaultFilterState(), []int{0}, nil, nil)
	set := engine.Render(models.ModeGrid, models.DefaultFilterState(), []int{0}, nil, nil)

	assert.Nil(t, set.Heat, "previous mode layer removed")
	assert.NotNil(t, set.Grid)

	set = engine.Render(models.ModeOff, models.DefaultFilterState(), []int{0}, nil, nil)
	assert.Nil(t, set.Heat)
	assert.Nil(t, set.Grid)
}

func TestRenderIdempotent(t *testing.T) {
	engine := NewEngine(testStore())
	fs := models.DefaultFilterState()
	fs.ShowBuildings = true

	first := engine.Render(models.ModeHeat, fs, []int{0, 1}, []int{0, 1}, nil)
	second := engine.Render(models.ModeHeat, fs, []int{0, 1}, []int{0, 1}, nil)

	assert.Equal(t, first.Heat, second.Heat)
	assert.Equal(t, first.Buildings, second.Buildings)
	assert.Equal(t, first.Generation+1, second.Generation)
	require.Len(t, second.Buildings.Markers, 2, "no marker accumulation across renders")
}

func TestBuildingsOverlayRules(t *testing.T) {
	engine := NewEngine(testStore())

	fs := models.DefaultFilterState()
	set := engine.Render(models.ModeHeat, fs, nil, []int{0}, nil)
	assert.Nil(t, set.Buildings, "hidden unless showBuildings")

	fs.ShowBuildings = true
	set = engine.Render(models.ModeHeat, fs, nil, []int{0, 1}, nil)
	require.NotNil(t, set.Buildings)
	assert.Equal(t, EligibleColor, set.Buildings.Markers[0].Color)
	assert.Equal(t, OverCapColor, set.Buildings.Markers[1].Color)
	assert.Contains(t, set.Buildings.Markers[1].Tooltip, "over cap")

	// Empty dataset never draws the overlay, even when enabled
	empty := NewEngine(dataset.New(nil, nil, nil))
	set = empty.Render(models.ModeHeat, fs, nil, nil, nil)
	assert.Nil(t, set.Buildings)
}
