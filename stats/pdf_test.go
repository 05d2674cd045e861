package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

func TestPDFEndpoints(t *testing.T) {
	require.InDelta(t, normPDF(0), float64(PDF.Values[0]), 1e-7)
	require.InDelta(t, normPDF(4), float64(PDF.Values[len(PDF.Values)-1]), 1e-7)
}

func TestPDFSamplesMatchDensity(t *testing.T) {
	step := float64(PDF.Span) / float64(len(PDF.Values)-1)
	for i, v := range PDF.Values {
		x := float64(PDF.Start) + float64(i)*step
		require.InDelta(t, normPDF(x), float64(v), 1e-7, "sample %d", i)
	}
}

func TestLookupInterpolation(t *testing.T) {
	// between two samples the lerp stays close to the true density
	for _, x := range []float32{0.005, 0.7321, 1.5, 2.25, 3.9999} {
		got := PDF.At(x)
		assert.InDelta(t, normPDF(float64(x)), float64(got), 1e-4, "x=%v", x)
	}
	// sample points reproduce the table entry up to index rounding
	step := PDF.Span / float32(len(PDF.Values)-1)
	assert.InDelta(t, PDF.Values[100], PDF.At(PDF.Start+100*step), 1e-6)
}

func TestLookupClampsOutsideDomain(t *testing.T) {
	assert.Equal(t, PDF.Values[0], PDF.At(-1))
	assert.Equal(t, PDF.Values[len(PDF.Values)-1], PDF.At(5))
}
