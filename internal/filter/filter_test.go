package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Torido-Mir/CxC2026/internal/models"
)

func testCells() []models.GridCell {
	return []models.GridCell{
		{CoveragePct: 0.05, BuildingCount: 1, Settlement: "Brackley"},
		{CoveragePct: 5, BuildingCount: 10, Settlement: "Brackley"},
		{CoveragePct: 22, BuildingCount: 40, Settlement: "Torbay"},
		{CoveragePct: 48, BuildingCount: 120, Settlement: "Torbay"},
	}
}

func testBuildings() []models.Building {
	return []models.Building{
		{ObjectID: 1, Settlement: "Brackley", SizeEligible: true, BuildingType: "Residential", StoreyCat: "low"},
		{ObjectID: 2, Settlement: "Brackley", SizeEligible: false, BuildingType: "Commercial", StoreyCat: "mid"},
		{ObjectID: 3, Settlement: "Torbay", SizeEligible: true, BuildingType: "Residential", StoreyCat: "high"},
	}
}

func TestSelectCellsDefaults(t *testing.T) {
	got := SelectCells(testCells(), models.DefaultFilterState())
	assert.Equal(t, []int{1, 2, 3}, got, "default 0.1 floor drops near-empty cells")
}

func TestSelectCellsSettlement(t *testing.T) {
	fs := models.DefaultFilterState()
	fs.Settlement = "Torbay"
	assert.Equal(t, []int{2, 3}, SelectCells(testCells(), fs))
}

func TestSelectCellsMonotonic(t *testing.T) {
	cells := testCells()
	fs := models.DefaultFilterState()
	prev := len(SelectCells(cells, fs))

	for _, min := range []float64{1, 10, 30, 50, 100} {
		fs.MinCoverage = min
		n := len(SelectCells(cells, fs))
		assert.LessOrEqual(t, n, prev, "raising minCoverage must not grow the selection")
		prev = n
	}

	fs = models.DefaultFilterState()
	prev = len(SelectCells(cells, fs))
	for _, min := range []int{5, 20, 50, 500} {
		fs.MinBuildings = min
		n := len(SelectCells(cells, fs))
		assert.LessOrEqual(t, n, prev, "raising minBuildings must not grow the selection")
		prev = n
	}

	unfiltered := len(SelectCells(cells, models.DefaultFilterState()))
	fs = models.DefaultFilterState()
	fs.Settlement = "Brackley"
	assert.LessOrEqual(t, len(SelectCells(cells, fs)), unfiltered)
}

func TestSelectBuildings(t *testing.T) {
	bldgs := testBuildings()

	fs := models.DefaultFilterState()
	assert.Equal(t, []int{0, 1, 2}, SelectBuildings(bldgs, fs))

	fs.SizeEligibleOnly = true
	assert.Equal(t, []int{0, 2}, SelectBuildings(bldgs, fs))

	fs.BuildingType = "Residential"
	fs.StoreyTier = "high"
	assert.Equal(t, []int{2}, SelectBuildings(bldgs, fs))

	fs.Settlement = "Brackley"
	assert.Empty(t, SelectBuildings(bldgs, fs))
}
