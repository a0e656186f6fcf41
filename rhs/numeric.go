package rhs

import "github.com/quantizedstate/qss/squeue"

// DefaultDtNum is the default numeric-differentiation probe offset used by
// Numeric when none is supplied.
const DefaultDtNum = 1.0e-6

// Numeric wraps a Function whose owner has no analytic second/third
// derivative, finite-differencing Q (and S) across the probe interval to
// synthesize QF1/QC1 (spec §4.2.1 step 4; grounded on
// original_source/src/QSS/dfn/mdl/achilles_ND.cc and
// exponential_decay_sine_ND.cc, both of which drive an otherwise-analytic
// LTI/sinusoidal RHS through a numeric-differentiation probe rather than a
// hand-derived second derivative).
//
// The wrapped Function's own QF1/QC1/SF1/SC1 are never called. Its Q, S,
// X, X1, X2 and Finalize are used as they are (X1/X2 are not
// finite-differenced).
type Numeric struct {
	Function
	DtNum squeue.Time // probe offset; DefaultDtNum if zero
}

func (n Numeric) dtNum() squeue.Time {
	if n.DtNum == 0 {
		return DefaultDtNum
	}
	return n.DtNum
}

// QF1 approximates the x2 Taylor coefficient (half the second derivative)
// as the forward difference of Q across the probe interval.
func (n Numeric) QF1(t squeue.Time) float64 {
	h := n.dtNum()
	return (n.Function.Q(t+h) - n.Function.Q(t)) / h * 0.5
}

// QC1 approximates the x3 Taylor coefficient (a sixth of the third
// derivative) from a second forward difference of Q over two probe steps.
func (n Numeric) QC1(t squeue.Time) float64 {
	h := n.dtNum()
	d0 := n.Function.Q(t)
	d1 := n.Function.Q(t + h)
	d2 := n.Function.Q(t + 2*h)
	return (d2 - 2*d1 + d0) / (h * h) / 6.0
}

func (n Numeric) SF1(t squeue.Time) float64 {
	h := n.dtNum()
	return (n.Function.S(t+h) - n.Function.S(t)) / h * 0.5
}

func (n Numeric) SC1(t squeue.Time) float64 {
	h := n.dtNum()
	d0 := n.Function.S(t)
	d1 := n.Function.S(t + h)
	d2 := n.Function.S(t + 2*h)
	return (d2 - 2*d1 + d0) / (h * h) / 6.0
}
