package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
)

// Input file names inside the data directory, as produced by the
// preparation pipeline.
const (
	GridFile          = "uhi_grid.geojson"
	NeighborhoodsFile = "neighborhood_stats.json"
	BuildingsFile     = "buildings_enriched.json"
)

// Load reads the three datasets in parallel. A missing or unreadable grid
// is fatal; the neighborhood stats and buildings degrade to empty
// collections so the map still opens.
func Load(dataDir string) (*Store, error) {
	var (
		wg sync.WaitGroup

		cells   []models.GridCell
		gridErr error

		neighborhoods []models.NeighborhoodStat
		buildings     []models.Building
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		cells, gridErr = loadGrid(filepath.Join(dataDir, GridFile))
	}()

	go func() {
		defer wg.Done()
		var err error
		neighborhoods, err = loadNeighborhoods(filepath.Join(dataDir, NeighborhoodsFile))
		if err != nil {
			log.Printf("[Dataset] neighborhood stats unavailable, continuing without: %v", err)
			neighborhoods = nil
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		buildings, err = loadBuildings(filepath.Join(dataDir, BuildingsFile))
		if err != nil {
			log.Printf("[Dataset] buildings dataset unavailable, continuing without: %v", err)
			buildings = nil
		}
	}()

	wg.Wait()

	if gridErr != nil {
		return nil, fmt.Errorf(
			"failed to load grid dataset %s (run the data preparation pipeline: compute the coverage grid, then enrich it with settlements): %w",
			GridFile, gridErr)
	}

	store := New(cells, buildings, neighborhoods)
	log.Printf("[Dataset] loaded %d cells, %d buildings, %d neighborhoods (max coverage %.0f%%)",
		len(cells), len(buildings), len(neighborhoods), store.MaxCoverage())
	return store, nil
}

func loadGrid(path string) ([]models.GridCell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid geojson: %w", err)
	}

	cells := make([]models.GridCell, 0, len(fc.Features))
	for _, f := range fc.Features {
		ring := firstRing(f.Geometry)
		if len(ring) == 0 {
			continue
		}

		cell := models.GridCell{
			Ring:          ring,
			CoveragePct:   f.Properties.MustFloat64("coverage_pct", 0),
			BuildingCount: int(f.Properties.MustFloat64("building_count", 0)),
		}
		// The pipeline writes the settlement under either key depending on
		// which enrichment step ran last.
		cell.Settlement = f.Properties.MustString("settlement", "")
		if cell.Settlement == "" {
			cell.Settlement = f.Properties.MustString("Settlement", "")
		}

		cells = append(cells, cell)
	}
	return cells, nil
}

func loadBuildings(path string) ([]models.Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buildings file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse buildings geojson: %w", err)
	}

	buildings := make([]models.Building, 0, len(fc.Features))
	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		buildings = append(buildings, models.Building{
			ObjectID:      int64(f.Properties.MustFloat64("OBJECTID", 0)),
			Municipality:  f.Properties.MustString("Municipality", ""),
			Settlement:    f.Properties.MustString("Settlement", ""),
			FootprintSqft: f.Properties.MustFloat64("FootprintSqft", 0),
			Storeys:       f.Properties.MustFloat64("Storeys", 0),
			TotalSqft:     f.Properties.MustFloat64("TotalSqft", 0),
			BuildingType:  f.Properties.MustString("BuildingType", ""),
			SizeEligible:  f.Properties.MustBool("size_eligible", false),
			StoreyCat:     f.Properties.MustString("storey_category", ""),
			SVRProxy:      f.Properties.MustFloat64("svr_proxy", 0),
			Lat:           point.Lat(),
			Lng:           point.Lon(),
		})
	}
	return buildings, nil
}

func loadNeighborhoods(path string) ([]models.NeighborhoodStat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read neighborhood stats: %w", err)
	}

	var stats []models.NeighborhoodStat
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse neighborhood stats: %w", err)
	}
	return stats, nil
}

// firstRing extracts the exterior ring of the first polygon as lat/lng
// points. Holes and further polygons are ignored.
func firstRing(g orb.Geometry) spatial.Ring {
	var exterior orb.Ring
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) > 0 {
			exterior = geom[0]
		}
	case orb.MultiPolygon:
		if len(geom) > 0 && len(geom[0]) > 0 {
			exterior = geom[0][0]
		}
	default:
		return nil
	}

	ring := make(spatial.Ring, len(exterior))
	for i, p := range exterior {
		ring[i] = spatial.Point{Lat: p.Lat(), Lng: p.Lon()}
	}
	return ring
}
