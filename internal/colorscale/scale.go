// Package colorscale maps building-coverage percentages onto a fixed
// thermal gradient for the discrete grid layer.
package colorscale

import (
	"fmt"
	"math"
)

// Gamma biases mid-range coverage values toward the hot end of the
// gradient so sparse suburban cells stay readable.
const Gamma = 0.30

// RGB is a packed 8-bit color triple
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the color as a #rrggbb string
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ControlPoints are the 9 fixed gradient stops, evenly spaced at
// positions 0, 12.5, ..., 100. Cold deep blue through cyan, green and
// yellow to hot dark red.
var ControlPoints = [9]RGB{
	{10, 26, 79},    // deep blue
	{26, 80, 160},   // blue
	{34, 150, 190},  // cyan
	{60, 190, 130},  // teal green
	{150, 210, 70},  // green yellow
	{245, 215, 60},  // yellow
	{250, 150, 40},  // orange
	{235, 75, 35},   // red
	{150, 15, 20},   // dark red
}

// stopSpacing is the distance between adjacent control points on the
// 0-100 position axis.
const stopSpacing = 100.0 / float64(len(ControlPoints)-1)

// Scale maps a coverage percentage to its gradient color. Pure: identical
// inputs always produce identical output. maxCoverage is the load-time
// normalization ceiling; values at or above it saturate at the hottest stop.
func Scale(coverage, maxCoverage float64) RGB {
	if maxCoverage <= 0 {
		return ControlPoints[0]
	}

	ratio := coverage / maxCoverage
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	pos := math.Pow(ratio, Gamma) * 100

	idx := int(pos / stopSpacing)
	if idx >= len(ControlPoints)-1 {
		return ControlPoints[len(ControlPoints)-1]
	}

	t := (pos - float64(idx)*stopSpacing) / stopSpacing
	lo, hi := ControlPoints[idx], ControlPoints[idx+1]

	return RGB{
		R: lerp(lo.R, hi.R, t),
		G: lerp(lo.G, hi.G, t),
		B: lerp(lo.B, hi.B, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// GradientStops returns the control points keyed by their normalized 0-1
// position, the form the density-heat layer consumes. The heat layer
// interpolates these internally, so its shading intentionally differs from
// the gamma-corrected grid fill.
func GradientStops() map[string]string {
	stops := make(map[string]string, len(ControlPoints))
	for i, c := range ControlPoints {
		pos := float64(i) / float64(len(ControlPoints)-1)
		stops[fmt.Sprintf("%g", pos)] = c.Hex()
	}
	return stops
}
