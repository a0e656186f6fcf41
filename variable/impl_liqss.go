package variable

import (
	"math"

	"github.com/quantizedstate/qss/qssmath"
	"github.com/quantizedstate/qss/squeue"
)

// liqssImpl is the hysteretic self-observer Impl shared by KindLIQSS1/2,
// grounded on original_source/src/QSS/dfn/Variable_LIQSS1.hh
// (advance_LIQSS/advance_q/advance_s three-branch hysteresis).
type liqssImpl struct{ order int }

func (l liqssImpl) Order() int { return l.order }

func (l liqssImpl) InitStage(v *Variable, a *Arena, stage int) {
	switch stage {
	case 0:
		v.TQ = v.TX
		v.Q.T, v.X.T = v.TX, v.TX
		v.QC = v.X.C[0]
		v.Q.C[0] = v.X.C[0]
		v.RecomputeQTol()
	case 1:
		l.hysteresisStage(v, v.TX)
	case 2:
		if l.order >= 2 {
			l.hysteresisStage2(v, v.TX)
		}
	}
	if stage == l.order {
		l.scheduleAligned(v, a)
	}
}

// hysteresisStage applies the three-branch derivative-sign hysteresis of
// spec §4.2.3, writing q0 and x1 from the probe's lower/upper/zero-slope
// branches.
func (l liqssImpl) hysteresisStage(v *Variable, t squeue.Time) {
	if !v.SelfObserver || v.Probe == nil {
		v.X.C[1] = v.Fn.Q(t)
		v.Q.C[0] = v.X.C[0]
		v.QC = v.X.C[0]
		return
	}
	v.QC = v.X.C[0]
	b := v.Probe.QLU1(t, v.QC, v.QTol)
	switch {
	case b.L < 0 && b.U < 0:
		v.Q.C[0] = v.QC - v.QTol
		v.X.C[1] = b.L
	case b.L > 0 && b.U > 0:
		v.Q.C[0] = v.QC + v.QTol
		v.X.C[1] = b.U
	default:
		v.Q.C[0] = qssmath.Clip(b.Z, v.QC-v.QTol, v.QC+v.QTol)
		v.X.C[1] = 0
	}
}

// hysteresisStage2 extends the branching to the x2 coefficient for
// LIQSS2, probing QLU2 with the same three candidates.
func (l liqssImpl) hysteresisStage2(v *Variable, t squeue.Time) {
	if !v.SelfObserver || v.Probe == nil {
		v.X.C[2] = v.Fn.QF1(t)
		return
	}
	b := v.Probe.QLU2(t, v.QC, v.QTol)
	switch {
	case b.L < 0 && b.U < 0:
		v.X.C[2] = b.L
	case b.L > 0 && b.U > 0:
		v.X.C[2] = b.U
	default:
		v.X.C[2] = 0
	}
}

func (l liqssImpl) scheduleAligned(v *Variable, a *Arena) {
	dt := squeue.Infinity
	switch l.order {
	case 1:
		if v.X.C[1] != 0 {
			dt = v.QTol / absF(v.X.C[1])
		}
	case 2:
		if v.X.C[2] != 0 {
			dt = math.Sqrt(v.QTol / absF(v.X.C[2]))
		}
	}
	if l.order >= 2 && v.Inflection {
		clamped := inflectionClamp(v.TQ+dt, v.TQ, v.X.C[1], v.X.C[2])
		dt = clamped - v.TQ
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

func (l liqssImpl) AdvanceQSS(v *Variable, a *Arena, t squeue.Time) {
	v.X.C[0] = v.X.Eval(t)
	v.TQ, v.TX = t, t
	v.X.T, v.Q.T = t, t
	v.RecomputeQTol()

	l.hysteresisStage(v, t)
	if l.order >= 2 {
		l.hysteresisStage2(v, t)
	}

	l.scheduleAligned(v, a)
	propagateObservers(v, a, t)
}

func (l liqssImpl) AdvanceObserver(v *Variable, a *Arena, t squeue.Time) {
	advanceObserverContinuous(v, a, t, l.order)
	dt := unalignedDtFor(l.order, v)
	if l.order >= 2 && v.Inflection {
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

func unalignedDtFor(order int, v *Variable) squeue.Time {
	switch order {
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
	default:
		return squeue.Infinity
	}
}

func (l liqssImpl) AdvanceHandler(v *Variable, a *Arena, t squeue.Time, value float64) {
	v.X.C[0] = value
	v.X.T = t
	v.TX = t
	l.AdvanceQSS(v, a, t)
}

func (l liqssImpl) Stage0(v *Variable, a *Arena, t squeue.Time) {
	v.X.C[0] = v.X.Eval(t)
	v.TQ, v.TX = t, t
	v.X.T, v.Q.T = t, t
	v.RecomputeQTol()
	v.TriggerST = a.Queue.ActiveSuperdenseTime()
}

func (l liqssImpl) Stage1(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	l.hysteresisStage(v, t)
}

func (l liqssImpl) Stage2(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	if l.order < 2 {
		return
	}
	l.hysteresisStage2(v, t)
}

func (l liqssImpl) Stage3(*Variable, *Arena, squeue.Time, squeue.SuperdenseTime) {}

func (l liqssImpl) FinishSimultaneous(v *Variable, a *Arena, t squeue.Time) {
	l.scheduleAligned(v, a)
}
