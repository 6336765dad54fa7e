package spatial

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Ring is an ordered sequence of vertices forming a closed polygon ring.
// The dataset guarantees the last vertex duplicates the first.
type Ring []Point

// Centroid calculates the centroid of a polygon ring as the average of its
// vertices, excluding the closing duplicate vertex
func Centroid(ring Ring) Point {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	if n == 0 {
		return Point{}
	}

	var sumLat, sumLng float64
	for _, p := range ring[:n] {
		sumLat += p.Lat
		sumLng += p.Lng
	}

	return Point{
		Lat: sumLat / float64(n),
		Lng: sumLng / float64(n),
	}
}

// PointInPolygon checks if a point is inside a polygon ring using the
// even-odd ray casting test. Only the first ring is examined; holes are
// not supported.
func PointInPolygon(lat, lng float64, ring Ring) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1

	for i := 0; i < len(ring); i++ {
		if ((ring[i].Lat > lat) != (ring[j].Lat > lat)) &&
			(lng < (ring[j].Lng-ring[i].Lng)*(lat-ring[i].Lat)/(ring[j].Lat-ring[i].Lat)+ring[i].Lng) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// Bounds represents a latitude/longitude aligned rectangle
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// NewBounds builds a normalized rectangle from two corner points
func NewBounds(a, b Point) Bounds {
	bounds := Bounds{
		MinLat: a.Lat, MaxLat: b.Lat,
		MinLng: a.Lng, MaxLng: b.Lng,
	}
	if bounds.MinLat > bounds.MaxLat {
		bounds.MinLat, bounds.MaxLat = bounds.MaxLat, bounds.MinLat
	}
	if bounds.MinLng > bounds.MaxLng {
		bounds.MinLng, bounds.MaxLng = bounds.MaxLng, bounds.MinLng
	}
	return bounds
}

// Contains reports whether the point lies within the rectangle (inclusive)
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Extend grows the rectangle to include the given point
func (b Bounds) Extend(p Point) Bounds {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lng < b.MinLng {
		b.MinLng = p.Lng
	}
	if p.Lng > b.MaxLng {
		b.MaxLng = p.Lng
	}
	return b
}

// Center returns the midpoint of the rectangle
func (b Bounds) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// BoundingBox calculates the bounding box of a set of points
func BoundingBox(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLng: points[0].Lng, MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b
}
