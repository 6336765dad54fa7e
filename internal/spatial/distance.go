package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points
// in meters
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Diagonal returns the great-circle length of the rectangle's diagonal in meters
func (b Bounds) Diagonal() float64 {
	return HaversineDistance(b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
}

// ZoomForSpan picks a web-mercator zoom level that frames an area of the
// given diagonal span (meters). Clamped to [10, 16] so a single-building
// settlement does not zoom to rooftop level.
func ZoomForSpan(spanMeters float64) float64 {
	if spanMeters <= 0 {
		return 14
	}

	// ~40000 km circumference at zoom 0; each zoom level halves the span.
	zoom := math.Log2(40075016.0 / spanMeters)
	if zoom < 10 {
		zoom = 10
	}
	if zoom > 16 {
		zoom = 16
	}
	return zoom
}
