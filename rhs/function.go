package rhs

import "github.com/quantizedstate/qss/squeue"

// Function is the derivative contract a continuous or zero-crossing
// variable's owner supplies. Q/S and their derivatives read the
// quantized/simultaneous view of observees; X and its derivatives read the
// continuous view. Q/QF1/QC1 yield the owner's x1/x2/x3 Taylor
// coefficients from the quantized view, S/SF1/SC1 the same from the
// simultaneous view, and X/X1/X2 the same from the continuous view. There
// are no QS, QC2, SS or SC2 evaluators.
type Function interface {
	// Q evaluates the derivative function using observees' q(t) views;
	// its result becomes the owner's x1 Taylor coefficient.
	Q(t squeue.Time) float64
	// QF1 yields the owner's x2 coefficient (half the second derivative),
	// sampled via finite differencing when the owner has no analytic
	// second derivative (see Numeric).
	QF1(t squeue.Time) float64
	// QC1 yields the owner's x3 coefficient (a sixth of the third
	// derivative), same numeric-vs-analytic split.
	QC1(t squeue.Time) float64

	// S is the Q-family counterpart evaluated against observees' s(t)
	// simultaneous view, used while staging a simultaneous advance so a
	// same-instant trigger never reads another trigger's half-updated
	// value (spec §4.2.2).
	S(t squeue.Time) float64
	SF1(t squeue.Time) float64
	SC1(t squeue.Time) float64

	// X evaluates the derivative function using observees' continuous
	// x(t) view (used for observer advance, §4.2.5); X1/X2 are its x2/x3
	// coefficient counterparts.
	X(t squeue.Time) float64
	X1(t squeue.Time) float64
	X2(t squeue.Time) float64

	// Finalize is called once, after the owning variable and all the
	// variables this function reads have been registered with the
	// dependency graph. It reports whether the function reads its own
	// owner's value (self-observer, spec §3 invariant 2).
	Finalize(owner int) (selfObserver bool)
}

// Branches holds the three candidate derivative probes LIQSS hysteresis
// needs at a requantization: lower (q_c - qTol), upper (q_c + qTol), and
// the zero-slope witness z (spec §4.2.3).
type Branches struct {
	L float64
	U float64
	Z float64
}

// LIQSSProbe is implemented by a Function whose owner uses LIQSS
// quantization. XLU1/QLU1/SLU1 probe the first derivative under the three
// candidate quantized values described in spec §4.2.3; LIQSS2 additionally
// needs a second-derivative probe (QLU2).
type LIQSSProbe interface {
	XLU1(t squeue.Time, qC, qTol float64) Branches
	QLU1(t squeue.Time, qC, qTol float64) Branches
	SLU1(t squeue.Time, qC, qTol float64) Branches
	QLU2(t squeue.Time, qC, qTol float64) Branches
}
