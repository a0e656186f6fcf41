package qssmath

import "math"

// MinRootQuadratic returns the smallest nonnegative root of a*x^2+b*x+c=0,
// or Infinity if no such root exists. The unaligned QSS2 step-size equation
// uses MinRootQuadraticBoth, not this function. Grounded on math.hh
// min_root_quadratic().
func MinRootQuadratic(a, b, c float64) float64 {
	if a == 0.0 { // Linear
		if b == 0.0 { // Constant
			if c == 0.0 {
				return 0.0
			}
			return Infinity
		}
		if c == 0.0 {
			return 0.0
		}
		if Sign(b) != Sign(c) {
			return -(c / b)
		}
		return Infinity
	}
	if c == 0.0 {
		return 0.0
	}
	if b == 0.0 {
		if Sign(a) != Sign(c) {
			return math.Sqrt(-(c / a))
		}
		return Infinity
	}
	disc := (b * b) - (4.0 * a * c)
	if disc <= 0.0 {
		if disc == 0.0 && Sign(a) != Sign(b) {
			return -(b / (2.0 * a))
		}
		return Infinity
	}
	q := -0.5 * (b + Sign(b)*math.Sqrt(disc))
	if c > 0.0 {
		if b+(2.0*q) <= 0.0 {
			return math.Max(q/a, 0.0)
		}
		return math.Max(c/q, 0.0)
	}
	if b+(2.0*q) >= 0.0 {
		return math.Max(q/a, 0.0)
	}
	return math.Max(c/q, 0.0)
}

// MinPositiveRootQuadratic is MinRootQuadratic restricted to strictly
// positive roots (0 itself is not an admissible distinct root). Grounded on
// math.hh min_positive_root_quadratic().
func MinPositiveRootQuadratic(a, b, c float64) float64 {
	if a == 0.0 {
		if b == 0.0 {
			return Infinity
		}
		if c == 0.0 {
			return Infinity
		}
		if Sign(b) != Sign(c) {
			return -(c / b)
		}
		return Infinity
	}
	if c == 0.0 {
		if b == 0.0 {
			return Infinity
		}
		if Sign(a) != Sign(b) {
			return -(b / a)
		}
		return Infinity
	}
	if b == 0.0 {
		if Sign(a) != Sign(c) {
			return math.Sqrt(-(c / a))
		}
		return Infinity
	}
	disc := (b * b) - (4.0 * a * c)
	if disc <= 0.0 {
		if disc == 0.0 && Sign(a) != Sign(b) {
			return -(b / (2.0 * a))
		}
		return Infinity
	}
	q := -0.5 * (b + Sign(b)*math.Sqrt(disc))
	var r float64
	if c > 0.0 {
		if b+(2.0*q) <= 0.0 {
			r = q / a
		} else {
			r = c / q
		}
	} else {
		if b+(2.0*q) >= 0.0 {
			r = q / a
		} else {
			r = c / q
		}
	}
	return PositiveOrInfinity(r)
}

// MinRootQuadraticLower is the lower-boundary quadratic root solver used
// when the continuous trajectory is probed against q0-qTol. Requires a<=0,
// b<=0, and returns 0 on precision loss (c<=0). Grounded on math.hh
// min_root_quadratic_lower().
func MinRootQuadraticLower(a, b, c float64) float64 {
	if c <= 0.0 {
		return 0.0
	}
	if a == 0.0 {
		if b == 0.0 {
			return Infinity
		}
		return -(c / b)
	}
	disc := (b * b) - (4.0 * a * c)
	if disc <= 0.0 {
		return 0.0
	}
	q := -0.5 * (b + Sign(b)*math.Sqrt(disc))
	if b+(2.0*q) <= 0.0 {
		return math.Max(q/a, 0.0)
	}
	return math.Max(c/q, 0.0)
}

// MinRootQuadraticUpper is the upper-boundary counterpart of
// MinRootQuadraticLower (a>=0, b>=0, precision loss when c>=0). Grounded on
// math.hh min_root_quadratic_upper().
func MinRootQuadraticUpper(a, b, c float64) float64 {
	if c >= 0.0 {
		return 0.0
	}
	if a == 0.0 {
		if b == 0.0 {
			return Infinity
		}
		return -(c / b)
	}
	disc := (b * b) - (4.0 * a * c)
	if disc <= 0.0 {
		return 0.0
	}
	q := -0.5 * (b + Sign(b)*math.Sqrt(disc))
	if b+(2.0*q) >= 0.0 {
		return math.Max(q/a, 0.0)
	}
	return math.Max(c/q, 0.0)
}

// MinRootQuadraticBoth solves both the lower (cl>0) and upper (cu<0)
// boundary quadratics and returns the smaller nonnegative root, used by the
// unaligned QSS2 step-size equation (spec §4.2.4). Grounded on math.hh
// min_root_quadratic_both().
func MinRootQuadraticBoth(a, b, cl, cu float64) float64 {
	if cl <= 0.0 || cu >= 0.0 {
		return 0.0
	}
	if a == 0.0 {
		if b == 0.0 {
			return Infinity
		}
		if b <= 0.0 {
			return -(cl / b)
		}
		return -(cu / b)
	}
	bb := b * b
	a4 := 4.0 * a

	rootl := Infinity
	if discl := bb - (a4 * cl); discl == 0.0 {
		rootl = -b / (2.0 * a)
		if rootl < 0.0 {
			rootl = Infinity
		}
	} else if discl > 0.0 {
		q := -0.5 * (b + Sign(b)*math.Sqrt(discl))
		if b+(2.0*q) <= 0.0 {
			rootl = q / a
		} else {
			rootl = cl / q
		}
	}

	rootu := Infinity
	if discu := bb - (a4 * cu); discu == 0.0 {
		rootu = -b / (2.0 * a)
		if rootu < 0.0 {
			rootu = Infinity
		}
	} else if discu > 0.0 {
		q := -0.5 * (b + Sign(b)*math.Sqrt(discu))
		if b+(2.0*q) >= 0.0 {
			rootu = q / a
		} else {
			rootu = cu / q
		}
	}

	if rootl == Infinity && rootu == Infinity {
		return 0.0
	}
	return math.Max(math.Min(rootl, rootu), 0.0)
}

// PeakMagQuadratic returns the magnitude of the quadratic a*x^2+b*x+c at its
// vertex (used for inflection-adjacent diagnostics). Grounded on math.hh
// peak_mag_quadratic().
func PeakMagQuadratic(a, b, c float64) float64 {
	if a == 0.0 {
		if b == 0.0 {
			return c
		}
		return Infinity
	}
	return math.Abs(c - (b*b)/(4.0*a))
}
