package foc

import "math"

// float32 representations of pi/2 and pi, matching the polynomial fit.
const (
	halfPi32 = 1.57079637
	pi32     = 3.14159274
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// FastAtan2 approximates atan2(y, x) with a cubic minimax polynomial in
// a*a, folded into the first octant and unfolded by quadrant. Worst-case
// error is about 0.005 rad, traded for never calling the transcendental.
// Based on https://math.stackexchange.com/a/1105038/81278
func FastAtan2(y, x float32) float32 {
	absY := absf(y)
	absX := absf(x)
	// inject the smallest positive float in the denominator to avoid
	// division by zero; FastAtan2(0, 0) is 0, not NaN
	a := min(absX, absY) / (max(absX, absY) + math.SmallestNonzeroFloat32)
	s := a * a
	r := ((-0.0464964749*s+0.15931422)*s-0.327622764)*s*a + a
	if absY > absX {
		r = halfPi32 - r
	}
	if x < 0.0 {
		r = pi32 - r
	}
	if y < 0.0 {
		r = -r
	}
	return r
}
