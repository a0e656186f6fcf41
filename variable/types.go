package variable

import "github.com/quantizedstate/qss/squeue"

// ID addresses a Variable inside an Arena. Kept a plain int so other
// low-level packages (squeue, depgraph) never need to import variable —
// the arena-of-indices translation of the spec's cyclic-reference design
// note (spec §9).
type ID = int

// Poly is a Taylor-coefficient polynomial anchored at time T: evaluating
// at t yields C[0] + C[1]*dt + C[2]*dt^2 + C[3]*dt^3 where dt = t - T.
// C[1] is the first derivative, C[2] half the second, C[3] a sixth of the
// third — the same convention original_source's Variable classes use for
// x1/x2/x3 and q1/q2/q3.
type Poly struct {
	T squeue.Time
	C [4]float64
}

// Eval returns the polynomial's value at t.
func (p Poly) Eval(t squeue.Time) float64 {
	dt := t - p.T
	return p.C[0] + dt*(p.C[1]+dt*(p.C[2]+dt*p.C[3]))
}

// Eval1 returns the first derivative at t.
func (p Poly) Eval1(t squeue.Time) float64 {
	dt := t - p.T
	return p.C[1] + dt*(2*p.C[2]+dt*3*p.C[3])
}

// Eval2 returns the second derivative at t.
func (p Poly) Eval2(t squeue.Time) float64 {
	dt := t - p.T
	return 2*p.C[2] + dt*6*p.C[3]
}

// Eval3 returns the third derivative (constant for a cubic).
func (p Poly) Eval3(squeue.Time) float64 { return 6 * p.C[3] }

// Variable is the central entity of the solver: identity, tolerances,
// time anchors, step-size clamps, continuous and quantized polynomial
// segments, dependency bookkeeping, and an event handle (spec §3).
type Variable struct {
	ID   ID
	Name string
	Kind Kind

	RTol, ATol, QTol float64

	TQ, TX, TE, TN, TD squeue.Time
	TZ, TZPrev         squeue.Time // zero-crossing variables only

	DtMin, DtMax, DtInf, DtInfRlx squeue.Time

	// Inflection enables the inflection-point tE clamp for order>=2 kinds
	// (spec §6 "inflection" run option). Defaults true; a driver that
	// disables it writes false here before Init.
	Inflection bool

	X Poly // continuous segment, anchored at TX
	Q Poly // quantized segment, anchored at TQ
	QC float64 // LIQSS pre-hysteresis center coefficient

	SelfObserver bool
	Handle       squeue.Handle
	TriggerST    squeue.SuperdenseTime

	Fn    Function
	Probe LIQSSProbe // non-nil only for LIQSS kinds

	Crossings       []CrossingType // subscribed crossing types, ZC variables only
	Handler         Handler        // ZC variables only
	PendingCrossing CrossingType   // crossing type tZ was scheduled for

	impl Impl
}

// Order returns the polynomial order of this variable's representation.
func (v *Variable) Order() int {
	if v.impl != nil {
		return v.impl.Order()
	}
	return v.Kind.Order()
}

// RecomputeQTol recomputes qTol = max(rTol*|q0|, aTol) from the current
// quantized value (spec §3, recomputed "whenever the quantized value
// changes").
func (v *Variable) RecomputeQTol() {
	v.QTol = v.RTol * absF(v.Q.C[0])
	if v.ATol > v.QTol {
		v.QTol = v.ATol
	}
	if v.QTol <= 0 {
		v.QTol = v.ATol
		if v.QTol <= 0 {
			v.QTol = 1.0e-300 // invariant 5 floor; ATol of 0 is a model bug
		}
	}
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// x evaluates the continuous representation at t (spec §4.2 x(t)).
func (v *Variable) x(t squeue.Time) float64 { return v.X.Eval(t) }

// q evaluates the quantized representation at t (spec §4.2 q(t)).
func (v *Variable) q(t squeue.Time) float64 { return v.Q.Eval(t) }

// s evaluates the simultaneous view (spec §4.2 s(t)/sn(t)): q(t) for
// non-LIQSS kinds; for LIQSS kinds, qC while mid-trigger (TriggerST equals
// the queue's active superdense time) and q0 otherwise, so a same-instant
// trigger never observes its own half-updated value.
func (v *Variable) s(t squeue.Time, active squeue.SuperdenseTime) float64 {
	if !v.Kind.IsLIQSS() {
		return v.q(t)
	}
	if v.TriggerST.Equal(active) {
		return v.QC
	}
	return v.Q.C[0]
}
