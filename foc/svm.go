package foc

const (
	oneBySqrt3 = 0.57735026919
	twoBySqrt3 = 1.15470053838
)

type sextant uint8

// Sextants are numbered counter-clockwise from the positive alpha axis,
// each spanning the 60 deg wedge between two adjacent active vectors.
const (
	sextantV1V2 sextant = iota + 1
	sextantV2V3
	sextantV3V4
	sextantV4V5
	sextantV5V6
	sextantV6V1
)

// classify picks the sextant from sign and linear-boundary tests only, so
// no angle is ever computed. The boundary rays at +-30/+-90 deg reduce to
// comparing (1/sqrt3)*beta against alpha; a vector exactly on a ray takes
// the else branch.
func classify(alpha, beta float32) sextant {
	if beta >= 0.0 {
		if alpha >= 0.0 {
			// quadrant I
			if oneBySqrt3*beta > alpha {
				return sextantV2V3
			}
			return sextantV1V2
		}
		// quadrant II
		if -oneBySqrt3*beta > alpha {
			return sextantV3V4
		}
		return sextantV2V3
	}
	if alpha >= 0.0 {
		// quadrant IV
		if -oneBySqrt3*beta > alpha {
			return sextantV5V6
		}
		return sextantV6V1
	}
	// quadrant III
	if oneBySqrt3*beta > alpha {
		return sextantV4V5
	}
	return sextantV5V6
}

// SVM computes center-aligned PWM rising-edge timings (0.0 - 1.0) for the
// alpha-beta voltage vector, as per the magnitude invariant Clarke transform.
// The magnitude of the alpha-beta vector may not be larger than sqrt(3)/2;
// valid is false if the input was out of range. Out-of-range timings are
// returned as computed, never clamped: the caller decides what a fault means.
func SVM(alpha, beta float32) (tA, tB, tC float32, valid bool) {
	switch classify(alpha, beta) {
	case sextantV1V2:
		t1 := alpha - oneBySqrt3*beta
		t2 := twoBySqrt3 * beta

		tA = (1.0 - t1 - t2) * 0.5
		tB = tA + t1
		tC = tB + t2

	case sextantV2V3:
		t2 := alpha + oneBySqrt3*beta
		t3 := -alpha + oneBySqrt3*beta

		tB = (1.0 - t2 - t3) * 0.5
		tA = tB + t3
		tC = tA + t2

	case sextantV3V4:
		t3 := twoBySqrt3 * beta
		t4 := -alpha - oneBySqrt3*beta

		tB = (1.0 - t3 - t4) * 0.5
		tC = tB + t3
		tA = tC + t4

	case sextantV4V5:
		t4 := -alpha + oneBySqrt3*beta
		t5 := -twoBySqrt3 * beta

		tC = (1.0 - t4 - t5) * 0.5
		tB = tC + t5
		tA = tB + t4

	case sextantV5V6:
		t5 := -alpha - oneBySqrt3*beta
		t6 := alpha - oneBySqrt3*beta

		tC = (1.0 - t5 - t6) * 0.5
		tA = tC + t5
		tB = tA + t6

	case sextantV6V1:
		t6 := -twoBySqrt3 * beta
		t1 := alpha + oneBySqrt3*beta

		tA = (1.0 - t6 - t1) * 0.5
		tC = tA + t1
		tB = tC + t6
	}

	valid = tA >= 0.0 && tA <= 1.0 &&
		tB >= 0.0 && tB <= 1.0 &&
		tC >= 0.0 && tC <= 1.0
	return tA, tB, tC, valid
}
