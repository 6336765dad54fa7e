package colorscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleEndpoints(t *testing.T) {
	assert.Equal(t, ControlPoints[0], Scale(0, 60))
	assert.Equal(t, ControlPoints[8], Scale(60, 60))
}

func TestScaleClamps(t *testing.T) {
	assert.Equal(t, ControlPoints[8], Scale(500, 60), "above ceiling saturates hot")
	assert.Equal(t, ControlPoints[0], Scale(-3, 60), "negative clamps cold")
	assert.Equal(t, ControlPoints[0], Scale(10, 0), "zero ceiling stays cold")
}

func TestScaleIsPure(t *testing.T) {
	for _, cov := range []float64{0, 0.1, 5, 17.3, 42, 60} {
		first := Scale(cov, 60)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Scale(cov, 60))
		}
	}
}

func TestScaleGammaBiasesHot(t *testing.T) {
	// gamma 0.30 pushes the midpoint well past the linear midpoint color
	mid := Scale(30, 60)
	linearMidIdx := len(ControlPoints) / 2
	hotter := float64(mid.R) >= float64(ControlPoints[linearMidIdx].R)
	assert.True(t, hotter, "gamma correction should shift mid coverage toward warm stops")
}

func TestGradientStops(t *testing.T) {
	stops := GradientStops()
	assert.Len(t, stops, 9)
	assert.Equal(t, ControlPoints[0].Hex(), stops["0"])
	assert.Equal(t, ControlPoints[8].Hex(), stops["1"])
	assert.Equal(t, ControlPoints[4].Hex(), stops["0.5"])
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0a1a4f", RGB{10, 26, 79}.Hex())
}
