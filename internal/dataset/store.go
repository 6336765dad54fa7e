// Package dataset loads the three map inputs and holds them immutably for
// the lifetime of the process.
package dataset

import (
	"math"
	"sort"

	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
)

// DefaultMaxCoverage is the normalization ceiling used when the grid
// carries no positive coverage values.
const DefaultMaxCoverage = 60.0

// Store holds the loaded datasets. All fields are fixed after New returns.
type Store struct {
	cells         []models.GridCell
	buildings     []models.Building
	neighborhoods []models.NeighborhoodStat

	maxCoverage    float64
	settlements    []string
	statBySettle   map[string]*models.NeighborhoodStat
	boundsBySettle map[string]spatial.Bounds
}

// New derives the load-time indexes: the coverage ceiling, the known
// settlement options and per-settlement cell bounds.
func New(cells []models.GridCell, buildings []models.Building, neighborhoods []models.NeighborhoodStat) *Store {
	s := &Store{
		cells:          cells,
		buildings:      buildings,
		neighborhoods:  neighborhoods,
		statBySettle:   make(map[string]*models.NeighborhoodStat, len(neighborhoods)),
		boundsBySettle: make(map[string]spatial.Bounds),
	}

	maxCov := 0.0
	for i := range cells {
		if cells[i].CoveragePct > maxCov {
			maxCov = cells[i].CoveragePct
		}
	}
	if maxCov <= 0 {
		s.maxCoverage = DefaultMaxCoverage
	} else {
		s.maxCoverage = math.Ceil(maxCov)
	}

	for i := range neighborhoods {
		s.statBySettle[neighborhoods[i].Settlement] = &neighborhoods[i]
	}

	seen := make(map[string]bool)
	for i := range cells {
		name := cells[i].Settlement
		if name == "" {
			continue
		}
		if !seen[name] {
			seen[name] = true
			s.settlements = append(s.settlements, name)
		}
		centroid := cells[i].Centroid()
		if b, ok := s.boundsBySettle[name]; ok {
			s.boundsBySettle[name] = b.Extend(centroid)
		} else {
			s.boundsBySettle[name] = spatial.BoundingBox([]spatial.Point{centroid})
		}
	}
	sort.Strings(s.settlements)

	return s
}

// Cells returns the immutable grid dataset
func (s *Store) Cells() []models.GridCell { return s.cells }

// Buildings returns the immutable building dataset
func (s *Store) Buildings() []models.Building { return s.buildings }

// Neighborhoods returns the immutable neighborhood stats, load order preserved
func (s *Store) Neighborhoods() []models.NeighborhoodStat { return s.neighborhoods }

// MaxCoverage is the fixed color/heat normalization ceiling
func (s *Store) MaxCoverage() float64 { return s.maxCoverage }

// Settlements lists the known settlement filter options, sorted
func (s *Store) Settlements() []string { return s.settlements }

// KnownSettlement reports whether the name appears in the grid dataset or
// the neighborhood stats
func (s *Store) KnownSettlement(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := s.statBySettle[name]; ok {
		return true
	}
	_, ok := s.boundsBySettle[name]
	return ok
}

// Neighborhood returns the stats record for a settlement, or nil
func (s *Store) Neighborhood(name string) *models.NeighborhoodStat {
	return s.statBySettle[name]
}

// SettlementBounds returns the bounding box of a settlement's cell
// centroids, when the grid holds any cell for it
func (s *Store) SettlementBounds(name string) (spatial.Bounds, bool) {
	b, ok := s.boundsBySettle[name]
	return b, ok
}
