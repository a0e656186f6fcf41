package variable

import (
	"math"

	"github.com/quantizedstate/qss/qssmath"
	"github.com/quantizedstate/qss/squeue"
)

// CrossingType classifies a zero-crossing variable's sign transition,
// spanning every (old-sign, new-slope-sign) pair the spec's closed set
// names (spec §4.3): downward family DnPN/DnZN/DnPZ, the negative-holding
// bucket Dn, the degenerate Flat case, the positive-holding bucket Up, and
// the upward family UpNZ/UpZP/UpNP.
type CrossingType int

const (
	DnPN CrossingType = iota // positive -> negative
	DnZN                     // zero -> negative
	DnPZ                     // positive -> zero
	Dn                       // holding negative, not a fresh crossing
	Flat                     // zero, zero slope
	Up                       // holding positive, not a fresh crossing
	UpNZ                     // negative -> zero
	UpZP                     // zero -> positive
	UpNP                     // negative -> positive
)

func (c CrossingType) String() string {
	switch c {
	case DnPN:
		return "DnPN"
	case DnZN:
		return "DnZN"
	case DnPZ:
		return "DnPZ"
	case Dn:
		return "Dn"
	case Flat:
		return "Flat"
	case Up:
		return "Up"
	case UpNZ:
		return "UpNZ"
	case UpZP:
		return "UpZP"
	case UpNP:
		return "UpNP"
	default:
		return "Unknown"
	}
}

// Steady reports whether c is one of the two "holding same sign, no fresh
// crossing" buckets (Dn/Up).
func (c CrossingType) Steady() bool { return c == Dn || c == Up }

// classifyCrossing maps a (value sign, slope sign) pair to its crossing
// type, the 3x3 closed mapping the spec's nine-member crossing-type set
// corresponds to exactly.
func classifyCrossing(oldSign, newSign int) CrossingType {
	switch {
	case oldSign > 0 && newSign < 0:
		return DnPN
	case oldSign == 0 && newSign < 0:
		return DnZN
	case oldSign > 0 && newSign == 0:
		return DnPZ
	case oldSign < 0 && newSign < 0:
		return Dn
	case oldSign == 0 && newSign == 0:
		return Flat
	case oldSign > 0 && newSign > 0:
		return Up
	case oldSign < 0 && newSign == 0:
		return UpNZ
	case oldSign == 0 && newSign > 0:
		return UpZP
	case oldSign < 0 && newSign > 0:
		return UpNP
	default:
		return Flat
	}
}

func signInt(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Handler is invoked when a zero-crossing variable's event fires; it reads
// whatever state it needs from a at the pre-crossing instant and enqueues
// the resulting update via a.Queue.AddHandler rather than mutating a
// target variable directly, so the update is staged and propagated
// alongside every other handler effect discovered in the same wave (spec
// §4.3.3).
type Handler func(a *Arena, t squeue.Time, ct CrossingType)

// subscribed reports whether ct is one the variable's Crossings list
// names.
func subscribed(v *Variable, ct CrossingType) bool {
	for _, c := range v.Crossings {
		if c == ct {
			return true
		}
	}
	return false
}

// zcImpl backs KindZeroCrossing, grounded on
// original_source/src/QSS/dfn/Variable_ZC.hh (crossing types, add_crossing
// wiring) and Variable_ZC1.hh (self-observer/has-observers fatal checks,
// root search and refinement).
type zcImpl struct{}

func (z zcImpl) Order() int { return 1 }

func (z zcImpl) InitStage(v *Variable, a *Arena, stage int) {
	if stage != 0 {
		return
	}
	v.TQ, v.TX = v.TX, v.TX
	v.Q.T, v.X.T = v.TX, v.TX
	v.X.C[0] = v.Fn.Q(v.TX)
	v.Q.C[0] = v.X.C[0]
	v.X.C[1] = v.Fn.QF1(v.TX)
	v.TZPrev = -squeue.Infinity
	v.TE = squeue.Infinity
	z.rootSearch(v, a, v.TX)
}

// rootSearch computes tZ per spec §4.3.1: classify the candidate crossing
// from (sign(x0), sign(x1)); if unsubscribed or the segment already starts
// at zero, tZ is infinite. Otherwise seed from the analytic cubic root of
// the continuous polynomial and refine with damped Newton iteration.
func (z zcImpl) rootSearch(v *Variable, a *Arena, t squeue.Time) {
	if v.X.C[0] == 0 {
		v.TZ = squeue.Infinity
		z.reschedule(v, a)
		return
	}
	ct := classifyCrossing(signInt(v.X.C[0]), signInt(v.X.C[1]))
	if ct.Steady() || !subscribed(v, ct) {
		v.TZ = squeue.Infinity
		z.reschedule(v, a)
		return
	}

	root := qssmath.MinPositiveRootCubic(v.X.C[3], v.X.C[2], v.X.C[1], v.X.C[0])
	if root == squeue.Infinity {
		v.TZ = squeue.Infinity
		z.reschedule(v, a)
		return
	}
	tCandidate := v.X.T + root
	tCandidate = z.refine(v, tCandidate)
	if tCandidate >= v.TX && tCandidate > v.TZPrev {
		v.TZ = tCandidate
		v.PendingCrossing = ct
	} else {
		v.TZ = squeue.Infinity
	}
	z.reschedule(v, a)
}

// refine applies up to 10 damped Newton iterations to tighten the
// analytic root seed, halving the step whenever |f| fails to decrease and
// aborting on a vanishing derivative or a root that drifts past tE (spec
// §4.3.1).
func (z zcImpl) refine(v *Variable, seed squeue.Time) squeue.Time {
	t := seed
	f := v.X.Eval(t)
	absF := math.Abs(f)
	step := squeue.Time(0)
	for i := 0; i < 10; i++ {
		df := v.X.Eval1(t)
		if df == 0 {
			break
		}
		step = f / df
		tNext := t - step
		if v.TE < squeue.Infinity && tNext > v.TE {
			break
		}
		fNext := v.X.Eval(tNext)
		if math.Abs(fNext) >= absF {
			step *= 0.5
			tNext = t - step
			fNext = v.X.Eval(tNext)
			if math.Abs(fNext) >= absF {
				break
			}
		}
		t = tNext
		f = fNext
		absF = math.Abs(f)
	}
	return t
}

func (z zcImpl) reschedule(v *Variable, a *Arena) {
	target := v.TE
	kind := squeue.QSS
	if v.TZ < target {
		target = v.TZ
		kind = squeue.ZC
	}
	if !v.Handle.Valid() {
		if kind == squeue.ZC {
			v.Handle = a.Queue.AddZC(target, v.ID)
		} else {
			v.Handle = a.Queue.AddQSS(target, v.ID)
		}
		return
	}
	if kind == squeue.ZC {
		a.Queue.ShiftZC(target, v.Handle)
	} else {
		a.Queue.ShiftQSS(target, v.Handle)
	}
}

// AdvanceQSS is invoked when this variable's own scheduled event fires
// (spec §4.3.3): it runs the handler, marks tZPrev, and recomputes the
// next candidate crossing on the remaining segment.
func (z zcImpl) AdvanceQSS(v *Variable, a *Arena, t squeue.Time) {
	if v.Handler != nil {
		v.Handler(a, t, v.PendingCrossing)
	}
	v.TZPrev = t
	z.rootSearch(v, a, t)
}

// AdvanceObserver implements crossing detection (spec §4.3.2): resample
// the observee-driven segment, compare signs before/after, and either
// schedule an immediate crossing or fall back to a fresh root search.
func (z zcImpl) AdvanceObserver(v *Variable, a *Arena, t squeue.Time) {
	var signOld int
	if t == v.TZPrev {
		signOld = 0
	} else {
		signOld = signInt(v.X.Eval(t))
	}

	v.X.C[0] = v.Fn.X(t)
	v.X.T = t
	v.TX = t
	v.X.C[1] = v.Fn.X1(t)
	if v.Order() >= 2 {
		v.X.C[2] = v.Fn.X2(t)
	}

	signNew := signInt(v.X.C[0])
	ct := classifyCrossing(signOld, signNew)
	if signOld != signNew && !ct.Steady() && subscribed(v, ct) {
		v.TZ = t
		v.PendingCrossing = ct
		z.reschedule(v, a)
		return
	}
	z.rootSearch(v, a, t)
}

func (z zcImpl) AdvanceHandler(v *Variable, a *Arena, t squeue.Time, value float64) {}

func (z zcImpl) Stage0(v *Variable, a *Arena, t squeue.Time)                               {}
func (z zcImpl) Stage1(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {}
func (z zcImpl) Stage2(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {}
func (z zcImpl) Stage3(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime) {}
func (z zcImpl) FinishSimultaneous(v *Variable, a *Arena, t squeue.Time)                   {}
