package utils

// Fit returns a function scaling a 0.0 - 1.0 fraction onto timer compare
// counts, rounding to nearest.
func Fit(scale int32) func(x float32) uint16 {
	return func(x float32) uint16 {
		return uint16(x*float32(scale) + 0.5)
	}
}

func Limit(min, max float32) func(x float32) float32 {
	return func(x float32) float32 {
		switch {
		case x > max:
			return max
		case x < min:
			return min
		}
		return x
	}
}
