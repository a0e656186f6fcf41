package variable

import (
	"math"

	"github.com/quantizedstate/qss/qssmath"
	"github.com/quantizedstate/qss/squeue"
)

// qssImpl is the explicit-QSS Impl shared by KindQSS1/2/3, grounded on
// original_source/src/QSS/VariableQSS1.hh (advance/advance0/advance1/
// set_tE_aligned/set_tE_unaligned), generalized to order 1-3 using the
// quadratic/cubic root helpers in qssmath for the higher-order unaligned
// cases the spec's step-size equations name (§4.2.4).
type qssImpl struct{ order int }

func (q qssImpl) Order() int { return q.order }

func (q qssImpl) InitStage(v *Variable, a *Arena, stage int) {
	switch stage {
	case 0:
		v.TQ = v.TX
		v.Q.T, v.X.T = v.TX, v.TX
		v.Q.C[0] = v.X.C[0]
		v.RecomputeQTol()
	case 1:
		v.X.C[1] = v.Fn.Q(v.TX)
		v.Q.C[1] = v.X.C[1]
	case 2:
		v.X.C[2] = v.Fn.QF1(v.TX)
		v.Q.C[2] = v.X.C[2]
	case 3:
		v.X.C[3] = v.Fn.QC1(v.TX)
		v.Q.C[3] = v.X.C[3]
	}
	if stage == q.order {
		q.scheduleAligned(v, a)
	}
}

// scheduleAligned computes tE via the aligned step-size formula and
// inserts (or reschedules) v's QSS event.
func (q qssImpl) scheduleAligned(v *Variable, a *Arena) {
	dt := q.alignedDt(v)
	if q.order >= 2 && v.Inflection {
		dt = inflectionClamp(v.TQ+dt, v.TQ, v.X.C[1], v.X.C[2]) - v.TQ
		if dt < 0 {
			dt = 0
		}
	}
	dt = v.clampStep(dt)
	v.TE = v.TQ + dt
	if !v.Handle.Valid() {
		v.Handle = a.Queue.AddQSS(v.TE, v.ID)
	} else {
		a.Queue.ShiftQSS(v.TE, v.Handle)
	}
}

func (q qssImpl) alignedDt(v *Variable) squeue.Time {
	switch q.order {
	case 1:
		if v.X.C[1] != 0 {
			return v.QTol / math.Abs(v.X.C[1])
		}
	case 2:
		if v.X.C[2] != 0 {
			return math.Sqrt(v.QTol / math.Abs(v.X.C[2]))
		}
	case 3:
		if v.X.C[3] != 0 {
			return math.Cbrt(v.QTol / math.Abs(v.X.C[3]))
		}
	}
	return squeue.Infinity
}

func (q qssImpl) unalignedDt(v *Variable) squeue.Time {
	switch q.order {
	case 1:
		x1 := v.X.C[1]
		switch {
		case x1 > 0:
			return ((v.Q.C[0] - v.X.C[0]) + v.QTol) / x1
		case x1 < 0:
			return ((v.Q.C[0] - v.X.C[0]) - v.QTol) / x1
		default:
			return squeue.Infinity
		}
	case 2:
		a := v.X.C[2]
		b := v.X.C[1] - v.Q.C[1]
		cl := (v.X.C[0] - v.Q.C[0]) + v.QTol
		cu := (v.X.C[0] - v.Q.C[0]) - v.QTol
		return qssmath.MinRootQuadraticBoth(a, b, cl, cu)
	case 3:
		a := v.X.C[3]
		b := v.X.C[2] - v.Q.C[2]
		c := v.X.C[1] - v.Q.C[1]
		dl := (v.X.C[0] - v.Q.C[0]) + v.QTol
		du := (v.X.C[0] - v.Q.C[0]) - v.QTol
		return qssmath.MinRootCubicBoth(a, b, c, dl, du)
	default:
		return squeue.Infinity
	}
}

// AdvanceQSS implements the non-simultaneous requantization protocol
// (spec §4.2.1).
func (q qssImpl) AdvanceQSS(v *Variable, a *Arena, t squeue.Time) {
	x0 := v.X.Eval(t)
	v.X.C[0] = x0
	v.TQ, v.TX = t, t
	v.X.T, v.Q.T = t, t
	v.Q.C[0] = x0
	v.RecomputeQTol()

	v.X.C[1] = v.Fn.Q(t)
	v.Q.C[1] = v.X.C[1]
	if q.order >= 2 {
		v.X.C[2] = v.Fn.QF1(t)
		v.Q.C[2] = v.X.C[2]
	}
	if q.order >= 3 {
		v.X.C[3] = v.Fn.QC1(t)
		v.Q.C[3] = v.X.C[3]
	}

	q.scheduleAligned(v, a)
	propagateObservers(v, a, t)
}

func (q qssImpl) AdvanceObserver(v *Variable, a *Arena, t squeue.Time) {
	advanceObserverContinuous(v, a, t, q.order)
	dt := q.unalignedDt(v)
	if q.order >= 2 && v.Inflection {
		dt = inflectionClamp(t+dt, t, v.X.C[1], v.X.C[2]) - t
		if dt < 0 {
			dt = 0
		}
	}
	dt = v.clampStep(dt)
	v.TE = t + dt
	if !v.Handle.Valid() {
		v.Handle = a.Queue.AddQSS(v.TE, v.ID)
	} else {
		a.Queue.ShiftQSS(v.TE, v.Handle)
	}
}

func (q qssImpl) AdvanceHandler(v *Variable, a *Arena, t squeue.Time, value float64) {
	// Plain continuous QSS variables have no handler protocol of their
	// own; a handler targeting one restages it like a fresh requantization
	// seeded with the handler's value.
	v.X.C[0] = value
	v.X.T = t
	v.TX = t
	q.AdvanceQSS(v, a, t)
}

func (q qssImpl) Stage0(v *Variable, a *Arena, t squeue.Time) {
	v.X.C[0] = v.X.Eval(t)
	v.TQ, v.TX = t, t
	v.X.T, v.Q.T = t, t
	v.Q.C[0] = v.X.C[0]
	v.RecomputeQTol()
	v.TriggerST = a.Queue.ActiveSuperdenseTime()
}

func (q qssImpl) Stage1(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	v.X.C[1] = v.Fn.S(t)
	v.Q.C[1] = v.X.C[1]
}

func (q qssImpl) Stage2(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	if q.order < 2 {
		return
	}
	v.X.C[2] = v.Fn.SF1(t)
	v.Q.C[2] = v.X.C[2]
}

func (q qssImpl) Stage3(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	if q.order < 3 {
		return
	}
	v.X.C[3] = v.Fn.SC1(t)
	v.Q.C[3] = v.X.C[3]
}

func (q qssImpl) FinishSimultaneous(v *Variable, a *Arena, t squeue.Time) {
	q.scheduleAligned(v, a)
}

// propagateObservers invokes AdvanceObserver on every direct observer of v,
// implementing spec §4.2.1 step 6 / §4.2.5. It is not recursive: an
// observer's own observers are not advanced.
func propagateObservers(v *Variable, a *Arena, t squeue.Time) {
	for _, id := range a.Graph.ObserversSorted(v.ID) {
		w := a.Get(id)
		if w == nil || w.ID == v.ID {
			continue
		}
		w.impl.AdvanceObserver(w, a, t)
	}
}

// advanceObserverContinuous rolls w's continuous segment forward to t
// (spec §4.2.5 step 1): x0 <- x(t), then re-derive coefficients up to
// order from the Function's continuous (X-family) evaluators; tQ is left
// untouched.
func advanceObserverContinuous(w *Variable, a *Arena, t squeue.Time, order int) {
	w.X.C[0] = w.X.Eval(t)
	w.X.T = t
	w.TX = t
	w.X.C[1] = w.Fn.X(t)
	if order >= 2 {
		w.X.C[2] = w.Fn.X1(t)
	}
	if order >= 3 {
		w.X.C[3] = w.Fn.X2(t)
	}
}
