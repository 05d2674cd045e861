package foc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVMWorkedExample(t *testing.T) {
	// sextant 1: beta >= 0, alpha >= 0, (1/sqrt3)*0.2 < 0.3
	tA, tB, tC, valid := SVM(0.3, 0.2)
	require.True(t, valid)
	assert.InDelta(t, 0.2923, tA, 1e-3)
	assert.InDelta(t, 0.4768, tB, 1e-3)
	assert.InDelta(t, 0.7077, tC, 1e-3)
}

func TestSVMValidInsideDisc(t *testing.T) {
	// every vector with |v| <= sqrt(3)/2 is realizable
	for deg := 0; deg < 360; deg++ {
		theta := float64(deg) * math.Pi / 180
		for _, radius := range []float64{0, 0.1, 0.4, 0.6, 0.8660} {
			alpha := float32(radius * math.Cos(theta))
			beta := float32(radius * math.Sin(theta))
			tA, tB, tC, valid := SVM(alpha, beta)
			require.True(t, valid, "deg=%d r=%v", deg, radius)
			for _, d := range []float32{tA, tB, tC} {
				require.GreaterOrEqual(t, d, float32(0.0), "deg=%d r=%v", deg, radius)
				require.LessOrEqual(t, d, float32(1.0), "deg=%d r=%v", deg, radius)
			}
		}
	}
}

func TestSVMOvermodulation(t *testing.T) {
	testCases := []struct {
		name        string
		alpha, beta float32
	}{
		{"alpha axis", 1.05, 0.0},
		{"neg alpha axis", -1.05, 0.0},
		{"beta axis", 0.0, 1.0},
		{"neg beta axis", 0.0, -1.0},
		{"diagonal", 0.7, 0.7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, valid := SVM(tc.alpha, tc.beta)
			assert.False(t, valid)
		})
	}
}

func TestSVMHexagonVertexIsBoundaryValid(t *testing.T) {
	// alpha = 1 sits exactly on a hexagon vertex: the timings {0, 1, 1}
	// are on the inclusive range bounds, so the result is still valid
	tA, tB, tC, valid := SVM(1.0, 0.0)
	require.True(t, valid)
	assert.InDelta(t, 0.0, tA, 1e-6)
	assert.InDelta(t, 1.0, tB, 1e-6)
	assert.InDelta(t, 1.0, tC, 1e-6)
}

func TestSVMNoClamping(t *testing.T) {
	// out-of-range results are reported, not corrected: along the alpha
	// axis in sextant 1, tA = (1-alpha)/2 goes negative past alpha = 1
	tA, _, _, valid := SVM(1.2, 0.0)
	require.False(t, valid)
	assert.Negative(t, tA)
}

func TestSVMSextantSeams(t *testing.T) {
	// the per-sextant formulas must agree where the wedges meet
	const delta = 1e-4
	const radius = 0.5
	for k := 0; k < 6; k++ {
		boundary := math.Pi/6 + float64(k)*math.Pi/3 // 30, 90, ... 330 deg
		aLo := float32(radius * math.Cos(boundary-delta))
		bLo := float32(radius * math.Sin(boundary-delta))
		aHi := float32(radius * math.Cos(boundary+delta))
		bHi := float32(radius * math.Sin(boundary+delta))
		tA0, tB0, tC0, valid0 := SVM(aLo, bLo)
		tA1, tB1, tC1, valid1 := SVM(aHi, bHi)
		require.True(t, valid0)
		require.True(t, valid1)
		assert.InDelta(t, tA0, tA1, 1e-3, "boundary %d tA", k)
		assert.InDelta(t, tB0, tB1, 1e-3, "boundary %d tB", k)
		assert.InDelta(t, tC0, tC1, 1e-3, "boundary %d tC", k)
	}
}

func TestSVMAlphaAxisSymmetry(t *testing.T) {
	// with beta = 0 the bridge is symmetric: the two active-edge phases
	// sit equally far from the half-period midpoint
	for _, alpha := range []float32{0.1, 0.3, 0.5, 0.8} {
		tA, tB, tC, valid := SVM(alpha, 0)
		require.True(t, valid)
		assert.InDelta(t, 1.0, tA+tB, 1e-6)
		assert.InDelta(t, tB, tC, 1e-6)
	}
}

func TestSVMZeroVector(t *testing.T) {
	tA, tB, tC, valid := SVM(0, 0)
	require.True(t, valid)
	assert.InDelta(t, 0.5, tA, 1e-6)
	assert.InDelta(t, 0.5, tB, 1e-6)
	assert.InDelta(t, 0.5, tC, 1e-6)
}
