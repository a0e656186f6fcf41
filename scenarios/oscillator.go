package scenarios

import (
	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
)

// Oscillator builds a harmonic oscillator p'=w, w'=-p as a mutually
// observing pair (the spring/mass system original_source's
// Variable_ZC1.hh-based examples drive their zero-crossing tests with),
// plus a zero-crossing variable on p subscribed to both crossing
// directions (UpZP/UpNP/DnPZ/DnPN; DnZN and UpNZ are not subscribed). Each crossing increments a discrete
// integer counter via its handler, exercising the ZC -> discrete-handler
// wiring path distinct from BouncingBall's ZC -> continuous-handler path
// (spec §8 seed scenario; SPEC_FULL.md EXPANSION state-event handling).
func Oscillator(order variable.Kind, p0, w0, qTol float64) (*Arena, variable.ID, variable.ID, variable.ID, variable.ID) {
	a := variable.NewArena()

	p := a.New(order, "p")
	w := a.New(order, "w")
	zc := a.New(variable.KindZeroCrossing, "p_zc")
	count := a.New(variable.KindDiscreteInteger, "crossings")

	p.RTol, p.ATol = 0, qTol
	p.DtMax = squeue.Infinity
	p.TX = 0
	p.X.C[0] = p0

	w.RTol, w.ATol = 0, qTol
	w.DtMax = squeue.Infinity
	w.TX = 0
	w.X.C[0] = w0

	p.Fn = &linearFn{a: a, self: p.ID, obs1: w.ID, obs2: w.ID, c1: 1, c2: 0}
	w.Fn = &linearFn{a: a, self: w.ID, obs1: p.ID, obs2: p.ID, c1: -1, c2: 0}

	zc.Fn = &passthroughFn{a: a, self: zc.ID, obs: p.ID}
	zc.TX = 0
	zc.Crossings = []variable.CrossingType{
		variable.UpZP, variable.UpNP, variable.DnPZ, variable.DnPN,
	}
	zc.Handler = func(ar *Arena, t squeue.Time, ct variable.CrossingType) {
		c := ar.Get(count.ID)
		ar.Queue.AddHandler(count.ID, c.X.C[0]+1)
	}

	count.X.C[0] = 0
	count.TX = 0

	a.Finalize(p.ID)
	a.Finalize(w.ID)
	a.Finalize(zc.ID)
	a.Finalize(count.ID)

	return a, p.ID, w.ID, zc.ID, count.ID
}
