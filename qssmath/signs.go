package qssmath

import "math"

// Sign returns -1 if x's sign bit is set, otherwise +1 (never 0).
// Grounded on original_source/src/QSS/math.hh sign().
func Sign(x float64) float64 {
	if math.Signbit(x) {
		return -1.0
	}
	return 1.0
}

// Signum returns -1, 0, or +1 according to the strict sign of x.
// Grounded on original_source/src/QSS/math.hh sgn()/signum().
func Signum(x float64) float64 {
	switch {
	case x < 0:
		return -1.0
	case x > 0:
		return 1.0
	default:
		return 0.0
	}
}

// SignumInt is Signum returning an int, matching the original's signum<T>.
func SignumInt(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Clip clamps x into [lo, hi]. Used by LIQSS's flat-trajectory branch to
// guard against round-off pushing the zero-slope witness outside the band.
func Clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// MinPositive returns the smaller of two nonnegative values, treating 0 as
// "not yet set": a 0 value only wins if the other operand is also 0.
// Grounded on math.hh min_positive().
func MinPositive(x, y float64) float64 {
	if x > 0.0 {
		if y > 0.0 {
			return math.Min(x, y)
		}
		return x
	}
	return y
}

// PositiveOrInfinity returns r if r > 0, else Infinity.
func PositiveOrInfinity(r float64) float64 {
	if r > 0.0 {
		return r
	}
	return Infinity
}
