package variable

import "github.com/quantizedstate/qss/squeue"

// discreteImpl backs KindDiscreteReal/Integer/Boolean: piecewise-constant
// variables updated only by handler events (spec §3 "Discrete").
type discreteImpl struct{ kind Kind }

func (d discreteImpl) Order() int { return 0 }

func (d discreteImpl) InitStage(v *Variable, a *Arena, stage int) {
	if stage != 0 {
		return
	}
	v.TQ, v.TX = v.TX, v.TX
	v.Q.T, v.X.T = v.TX, v.TX
	v.Q.C[0] = v.X.C[0]
	v.QTol = 1 // discrete variables carry no tolerance band; kept nonzero
	// per invariant 5 for callers that assume it is always positive.
	v.TE = squeue.Infinity
}

func (d discreteImpl) AdvanceQSS(v *Variable, a *Arena, t squeue.Time) {}

func (d discreteImpl) AdvanceObserver(v *Variable, a *Arena, t squeue.Time) {}

// AdvanceHandler sets the discrete value, normalizing it for
// integer/boolean kinds, and propagates to observers.
func (d discreteImpl) AdvanceHandler(v *Variable, a *Arena, t squeue.Time, value float64) {
	switch d.kind {
	case KindDiscreteInteger:
		value = float64(int64(value + 0.5*sign(value)))
	case KindDiscreteBoolean:
		if value != 0 {
			value = 1
		} else {
			value = 0
		}
	}
	v.X.C[0] = value
	v.Q.C[0] = value
	v.X.T, v.Q.T = t, t
	v.TQ, v.TX = t, t
	propagateObservers(v, a, t)
}

func (d discreteImpl) Stage0(v *Variable, a *Arena, t squeue.Time) { d.AdvanceHandler(v, a, t, v.X.C[0]) }
func (d discreteImpl) Stage1(*Variable, *Arena, squeue.Time, squeue.SuperdenseTime) {}
func (d discreteImpl) Stage2(*Variable, *Arena, squeue.Time, squeue.SuperdenseTime) {}
func (d discreteImpl) Stage3(*Variable, *Arena, squeue.Time, squeue.SuperdenseTime) {}
func (d discreteImpl) FinishSimultaneous(*Variable, *Arena, squeue.Time) {}

// inputImpl backs KindInput: the value is a prescribed function of time,
// exposed through the same Function contract as a continuous variable but
// never requantized from an internally-computed derivative — Q/QF1/QC1 on
// an input's Function directly evaluate the prescribed signal and its
// derivatives (spec §3 "Input variable").
type inputImpl struct{}

func (i inputImpl) Order() int { return 3 }

func (i inputImpl) InitStage(v *Variable, a *Arena, stage int) {
	switch stage {
	case 0:
		v.TQ, v.TX = v.TX, v.TX
		v.Q.T, v.X.T = v.TX, v.TX
		v.X.C[0] = v.Fn.Q(v.TX)
		v.Q.C[0] = v.X.C[0]
		v.RecomputeQTol()
	case 1:
		v.X.C[1] = v.Fn.QF1(v.TX)
		v.Q.C[1] = v.X.C[1]
	case 2:
		v.X.C[2] = v.Fn.QC1(v.TX)
		v.Q.C[2] = v.X.C[2]
	case 3:
		i.scheduleAligned(v, a)
	}
}

func (i inputImpl) scheduleAligned(v *Variable, a *Arena) {
	dt := v.clampStep(squeue.Infinity)
	v.TE = v.TQ + dt
	if v.DtMax < squeue.Infinity {
		v.TE = v.TQ + v.DtMax
	}
	if !v.Handle.Valid() {
		v.Handle = a.Queue.AddQSS(v.TE, v.ID)
	} else {
		a.Queue.ShiftQSS(v.TE, v.Handle)
	}
}

// AdvanceQSS resamples the prescribed signal at its own cadence (bounded
// by DtMax, since an input has no self-derived error estimate to clamp
// against) and propagates to observers.
func (i inputImpl) AdvanceQSS(v *Variable, a *Arena, t squeue.Time) {
	v.TQ, v.TX = t, t
	v.X.T, v.Q.T = t, t
	v.X.C[0] = v.Fn.Q(t)
	v.Q.C[0] = v.X.C[0]
	v.RecomputeQTol()
	v.X.C[1] = v.Fn.QF1(t)
	v.Q.C[1] = v.X.C[1]
	v.X.C[2] = v.Fn.QC1(t)
	v.Q.C[2] = v.X.C[2]
	i.scheduleAligned(v, a)
	propagateObservers(v, a, t)
}

func (i inputImpl) AdvanceObserver(v *Variable, a *Arena, t squeue.Time) {
	v.X.C[0] = v.Fn.X(t)
	v.X.T = t
	v.TX = t
}

func (i inputImpl) AdvanceHandler(v *Variable, a *Arena, t squeue.Time, value float64) {}

func (i inputImpl) Stage0(v *Variable, a *Arena, t squeue.Time) {
	v.TQ, v.TX = t, t
	v.X.T, v.Q.T = t, t
	v.X.C[0] = v.Fn.S(t)
	v.Q.C[0] = v.X.C[0]
	v.RecomputeQTol()
	v.TriggerST = a.Queue.ActiveSuperdenseTime()
}

func (i inputImpl) Stage1(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	v.X.C[1] = v.Fn.SF1(t)
	v.Q.C[1] = v.X.C[1]
}

func (i inputImpl) Stage2(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	v.X.C[2] = v.Fn.SC1(t)
	v.Q.C[2] = v.X.C[2]
}

func (i inputImpl) Stage3(*Variable, *Arena, squeue.Time, squeue.SuperdenseTime) {}

func (i inputImpl) FinishSimultaneous(v *Variable, a *Arena, t squeue.Time) {
	i.scheduleAligned(v, a)
}
