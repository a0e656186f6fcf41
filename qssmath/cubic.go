package qssmath

import "math"

const (
	one54        = 1.0 / 54.0
	one1458      = 1.0 / 1458.0
	oneThird     = 1.0 / 3.0
	oneNinth     = 1.0 / 9.0
	twoThirds    = 2.0 / 3.0
	twoThirdsPi  = twoThirds * math.Pi
)

// cubicCull zeroes out a candidate cubic root r unless its derivative
// 3r^2+2ar+b is nonnegative there (i.e. the cubic crosses outward or is
// flat, never crossing back down through the admissible root). Grounded on
// math.hh cubic_cull().
func cubicCull(a, b, r float64) float64 {
	if r <= 0.0 {
		return 0.0
	}
	if (3.0*r*r)+(2.0*a*r)+b >= 0.0 {
		return r
	}
	return 0.0
}

// cubicCullUpper is cubicCull with a signed crossing-direction test,
// grounded on math.hh cubic_cull_upper().
func cubicCullUpper(a, b, r, s float64) float64 {
	if r <= 0.0 {
		return 0.0
	}
	if (((3.0*r*r)+(2.0*a*r)+b)*s) >= 0.0 {
		return r
	}
	return 0.0
}

// cubicCullLower is cubicCull with the opposite signed test, grounded on
// math.hh cubic_cull_lower().
func cubicCullLower(a, b, r, s float64) float64 {
	if r <= 0.0 {
		return 0.0
	}
	if (((3.0*r*r)+(2.0*a*r)+b)*s) <= 0.0 {
		return r
	}
	return 0.0
}

// threeRealRoots solves the depressed cubic t^3+q... via the trigonometric
// method shared by every cubic solver below, returning the three real roots
// of x^3+a*x^2+b*x+c=0 (already normalized, a the quadratic coefficient).
func threeRealRoots(a, q, r float64) (root1, root2, root3 float64) {
	a3 := oneThird * a
	sqrtQ := math.Sqrt(q)
	scl := -twoThirds * sqrtQ
	theta3 := oneThird * math.Acos(0.5*r/(sqrtQ*sqrtQ*sqrtQ))
	root1 = (scl * math.Cos(theta3)) - a3
	root2 = (scl * math.Cos(theta3+twoThirdsPi)) - a3
	root3 = (scl * math.Cos(theta3-twoThirdsPi)) - a3
	return
}

// MinPositiveRootCubic returns the smallest strictly positive root of
// a*x^3+b*x^2+c*x+d=0, or Infinity. Grounded on math.hh
// min_positive_root_cubic().
func MinPositiveRootCubic(a, b, c, d float64) float64 {
	if a == 0.0 {
		return MinPositiveRootQuadratic(b, c, d)
	}
	invA := 1.0 / a
	a, b, c = b*invA, c*invA, d*invA
	a3 := oneThird * a
	a2 := a * a
	q := a2 - (3.0 * b)
	r := (((2.0*a2)-(9.0*b))*a + (27.0 * c))
	if q == 0.0 && r == 0.0 {
		if a3 < 0.0 {
			return -a3
		}
		return Infinity
	}
	q3 := q * q * q
	cr2 := 729.0 * r * r
	cq3 := 2916.0 * q3
	Q := oneNinth * q
	switch {
	case cr2 > cq3: // One real root
		A := -Sign(r) * math.Cbrt((one54*math.Abs(r))+(one1458*math.Sqrt(cr2-cq3)))
		B := Q / A
		return PositiveOrInfinity(A + B - a3)
	case cr2 < cq3: // Three real roots
		root1, root2, root3 := threeRealRoots(a, q, r)
		return PositiveOrInfinity(minPositive3(root1, root2, root3))
	default: // Two real roots
		sqrtQ := math.Sqrt(Q)
		if r > 0.0 {
			root1 := -(2.0 * sqrtQ) - a3
			if root1 > 0.0 {
				return root1
			}
			return PositiveOrInfinity(sqrtQ - a3)
		}
		root1 := PositiveOrInfinity(-sqrtQ - a3)
		if root1 > 0.0 {
			return root1
		}
		return PositiveOrInfinity((2.0 * sqrtQ) - a3)
	}
}

// MinRootCubicUpper is the upper-boundary cubic root solver (a,b,c>=0, d<0
// at exact precision). The unaligned QSS3 step-size equation uses
// MinRootCubicBoth, not this function. Grounded on math.hh
// min_root_cubic_upper().
func MinRootCubicUpper(a, b, c, d float64) float64 {
	if a == 0.0 {
		return MinRootQuadraticUpper(b, c, d)
	}
	invA := 1.0 / a
	a, b, c = b*invA, c*invA, d*invA
	a3 := oneThird * a
	a2 := a * a
	q := a2 - (3.0 * b)
	r := (((2.0*a2)-(9.0*b))*a + (27.0 * c))
	if q == 0.0 && r == 0.0 {
		return math.Max(-a3, 0.0)
	}
	q3 := q * q * q
	cr2 := 729.0 * r * r
	cq3 := 2916.0 * q3
	Q := oneNinth * q
	switch {
	case cr2 > cq3:
		A := -Sign(r) * math.Cbrt((one54*math.Abs(r))+(one1458*math.Sqrt(cr2-cq3)))
		B := Q / A
		return cubicCull(a, b, A+B-a3)
	case cr2 < cq3:
		root1, root2, root3 := threeRealRoots(a, q, r)
		return minPositive3(cubicCull(a, b, root1), cubicCull(a, b, root2), cubicCull(a, b, root3))
	default:
		sqrtQ := math.Sqrt(Q)
		if r > 0.0 {
			root1 := cubicCull(a, b, -(2.0*sqrtQ)-a3)
			if root1 > 0.0 {
				return root1
			}
			return cubicCull(a, b, sqrtQ-a3)
		}
		root1 := cubicCull(a, b, -sqrtQ-a3)
		if root1 > 0.0 {
			return root1
		}
		return cubicCull(a, b, (2.0*sqrtQ)-a3)
	}
}

// MinRootCubicLower is the lower-boundary counterpart (a,b,c<=0, d>0 at
// exact precision). Grounded on math.hh min_root_cubic_lower().
func MinRootCubicLower(a, b, c, d float64) float64 {
	if a == 0.0 {
		return MinRootQuadraticLower(b, c, d)
	}
	invA := 1.0 / a
	a, b, c = b*invA, c*invA, d*invA
	a3 := oneThird * a
	a2 := a * a
	q := a2 - (3.0 * b)
	r := (((2.0*a2)-(9.0*b))*a + (27.0 * c))
	if q == 0.0 && r == 0.0 {
		return math.Max(-a3, 0.0)
	}
	q3 := q * q * q
	cr2 := 729.0 * r * r
	cq3 := 2916.0 * q3
	Q := oneNinth * q
	switch {
	case cr2 > cq3:
		A := -Sign(r) * math.Cbrt((one54*math.Abs(r))+(one1458*math.Sqrt(cr2-cq3)))
		B := Q / A
		return cubicCull(a, b, A+B-a3)
	case cr2 < cq3:
		root1, root2, root3 := threeRealRoots(a, q, r)
		return minPositive3(cubicCull(a, b, root1), cubicCull(a, b, root2), cubicCull(a, b, root3))
	default:
		sqrtQ := math.Sqrt(Q)
		if r > 0.0 {
			root1 := cubicCull(a, b, -(2.0*sqrtQ)-a3)
			if root1 > 0.0 {
				return root1
			}
			return cubicCull(a, b, sqrtQ-a3)
		}
		root1 := cubicCull(a, b, -sqrtQ-a3)
		if root1 > 0.0 {
			return root1
		}
		return cubicCull(a, b, (2.0*sqrtQ)-a3)
	}
}

// MinRootCubicBoth solves the lower (dl>0) and upper (du<0) boundary cubics
// and returns the smaller nonnegative root, used by the unaligned QSS3
// step-size equation (spec §4.2.4). Grounded on math.hh
// min_root_cubic_both().
func MinRootCubicBoth(a, b, c, dl, du float64) float64 {
	if a == 0.0 {
		return MinRootQuadraticBoth(b, c, dl, du)
	}
	s := Sign(a)
	invA := 1.0 / a
	a, b = b*invA, c*invA
	cl := dl * invA
	cu := du * invA
	a3 := oneThird * a
	a2 := a * a
	q := a2 - (3.0 * b)
	Q := oneNinth * q
	q3 := q * q * q

	rootFor := func(c float64) float64 {
		r := (((2.0*a2)-(9.0*b))*a + (27.0 * c))
		cr2 := 729.0 * r * r
		cq3 := 2916.0 * q3
		switch {
		case q == 0.0 && r == 0.0:
			return math.Max(-a3, 0.0)
		case cr2 > cq3:
			A := -Sign(r) * math.Cbrt((one54*math.Abs(r))+(one1458*math.Sqrt(cr2-cq3)))
			B := Q / A
			return cubicCullUpper(a, b, A+B-a3, s)
		case cr2 < cq3:
			root1, root2, root3 := threeRealRoots(a, q, r)
			return minPositive3(
				cubicCullUpper(a, b, root1, s),
				cubicCullUpper(a, b, root2, s),
				cubicCullUpper(a, b, root3, s),
			)
		default:
			sqrtQ := math.Sqrt(Q)
			if r > 0.0 {
				root1 := cubicCullUpper(a, b, -(2.0*sqrtQ)-a3, s)
				if root1 > 0.0 {
					return root1
				}
				return cubicCullUpper(a, b, sqrtQ-a3, s)
			}
			root1 := cubicCullUpper(a, b, -sqrtQ-a3, s)
			if root1 > 0.0 {
				return root1
			}
			return cubicCullUpper(a, b, (2.0*sqrtQ)-a3, s)
		}
	}

	rootl := PositiveOrInfinity(rootFor(cl))
	rootu := PositiveOrInfinity(rootFor(cu))
	if rootl == Infinity && rootu == Infinity {
		return 0.0
	}
	return math.Max(math.Min(rootl, rootu), 0.0)
}

// minPositive3 returns the smallest strictly-positive value among three
// nonnegative candidates, or 0 if none is positive. Grounded on math.hh's
// three-argument min_positive().
func minPositive3(x, y, z float64) float64 {
	switch {
	case x > 0.0 && y > 0.0 && z > 0.0:
		return math.Min(x, math.Min(y, z))
	case x > 0.0 && y > 0.0:
		return math.Min(x, y)
	case x > 0.0 && z > 0.0:
		return math.Min(x, z)
	case x > 0.0:
		return x
	case y > 0.0 && z > 0.0:
		return math.Min(y, z)
	case y > 0.0:
		return y
	default:
		return z
	}
}
