package foc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapped angular distance, so +pi and -pi compare as equal
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return math.Abs(d)
}

func TestFastAtan2UnitCircle(t *testing.T) {
	const maxErr = 0.005
	for i := -3141; i <= 3141; i++ {
		theta := float64(i) / 1000
		y := float32(math.Sin(theta))
		x := float32(math.Cos(theta))
		got := FastAtan2(y, x)
		want := math.Atan2(float64(y), float64(x))
		require.LessOrEqual(t, angleDiff(float64(got), want), maxErr,
			"theta=%v got=%v want=%v", theta, got, want)
	}
}

func TestFastAtan2Axes(t *testing.T) {
	testCases := []struct {
		name string
		y, x float32
		want float64
	}{
		{"east", 0, 1, 0},
		{"north", 1, 0, math.Pi / 2},
		{"west", 0, -1, math.Pi},
		{"south", -1, 0, -math.Pi / 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FastAtan2(tc.y, tc.x)
			assert.LessOrEqual(t, angleDiff(float64(got), tc.want), 0.005)
		})
	}
}

func TestFastAtan2DegenerateOrigin(t *testing.T) {
	// both zero must not divide by zero; the answer is pinned to 0
	got := FastAtan2(0, 0)
	require.False(t, math.IsNaN(float64(got)))
	assert.Zero(t, got)
}

func TestFastAtan2Quadrants(t *testing.T) {
	// sign conventions match the two-argument arctangent
	assert.Positive(t, FastAtan2(1, 1))
	assert.Positive(t, FastAtan2(1, -1))
	assert.Negative(t, FastAtan2(-1, -1))
	assert.Negative(t, FastAtan2(-1, 1))
	assert.InDelta(t, math.Pi/4, float64(FastAtan2(1, 1)), 0.005)
	assert.InDelta(t, 3*math.Pi/4, float64(FastAtan2(1, -1)), 0.005)
}
