package scenarios

import (
	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
)

// Arena re-exports variable.Arena so scenario signatures read naturally.
type Arena = variable.Arena

// linearFn implements a first-order linear combination of two observee
// quantized values, dx/dt = c1*obs1 + c2*obs2, mirroring
// original_source/src/QSS/dfn/mdl/Function_achilles1.hh's operator()/x/q
// family, each computed as c1_*x1_->method(t) + c2_*x2_->method(t). Either
// observee may equal self, in which case the term reads self's own value
// (the self-observer case Function.Finalize must report).
type linearFn struct {
	a          *Arena
	self       variable.ID
	obs1, obs2 variable.ID
	c1, c2     float64
}

func (f *linearFn) Q(t squeue.Time) float64 {
	return f.c1*f.a.Q(f.obs1, t) + f.c2*f.a.Q(f.obs2, t)
}

// QF1 is the coefficient feeding X.C[2] (half the self variable's second
// derivative): half the linear combination of the observees' raw first
// derivatives, since self' = c1*obs1+c2*obs2 makes self'' = c1*obs1'+c2*obs2'.
func (f *linearFn) QF1(t squeue.Time) float64 {
	return 0.5 * (f.c1*f.a.X1(f.obs1, t) + f.c2*f.a.X1(f.obs2, t))
}

// QC1 is the coefficient feeding X.C[3] (a sixth of the third derivative).
func (f *linearFn) QC1(t squeue.Time) float64 {
	return (f.c1*f.a.X2(f.obs1, t) + f.c2*f.a.X2(f.obs2, t)) / 6.0
}
func (f *linearFn) S(t squeue.Time) float64 {
	return f.c1*f.a.S(f.obs1, t) + f.c2*f.a.S(f.obs2, t)
}
func (f *linearFn) SF1(t squeue.Time) float64 { return f.QF1(t) }
func (f *linearFn) SC1(t squeue.Time) float64 { return f.QC1(t) }
func (f *linearFn) X(t squeue.Time) float64 {
	return f.c1*f.a.X(f.obs1, t) + f.c2*f.a.X(f.obs2, t)
}
func (f *linearFn) X1(t squeue.Time) float64 { return f.QF1(t) }
func (f *linearFn) X2(t squeue.Time) float64 { return f.QC1(t) }

func (f *linearFn) Finalize(owner variable.ID) bool {
	self := false
	if f.obs1 == owner {
		self = true
	} else {
		f.a.Graph.RegisterRead(owner, f.obs1)
	}
	if f.obs2 == owner {
		self = true
	} else {
		f.a.Graph.RegisterRead(owner, f.obs2)
	}
	return self
}

// constantRateFn implements dx/dt = rate, a self-contained constant
// derivative with no observees.
type constantRateFn struct{ rate float64 }

func (f *constantRateFn) Q(squeue.Time) float64     { return f.rate }
func (f *constantRateFn) QF1(squeue.Time) float64   { return 0 }
func (f *constantRateFn) QC1(squeue.Time) float64   { return 0 }
func (f *constantRateFn) S(squeue.Time) float64     { return f.rate }
func (f *constantRateFn) SF1(squeue.Time) float64   { return 0 }
func (f *constantRateFn) SC1(squeue.Time) float64   { return 0 }
func (f *constantRateFn) X(squeue.Time) float64     { return f.rate }
func (f *constantRateFn) X1(squeue.Time) float64    { return 0 }
func (f *constantRateFn) X2(squeue.Time) float64    { return 0 }
func (f *constantRateFn) Finalize(variable.ID) bool { return false }

// Achilles builds a two-runner pursuit system grounded on
// Function_achilles1.hh's linear-combination Function template: Achilles
// closes the gap to the tortoise at rate k*(tortoise-achilles), a
// self-observing and tortoise-observing linear Function; the tortoise runs
// at its own constant speed with no observees. Exercises depgraph's
// observer/observee registration end-to-end (spec §8, SPEC_FULL.md
// EXPANSION scenarios).
func Achilles(order variable.Kind, x0Achilles, x0Tortoise, pursuitRate, tortoiseSpeed, qTol float64) (*Arena, variable.ID, variable.ID) {
	a := variable.NewArena()

	achilles := a.New(order, "achilles")
	tortoise := a.New(order, "tortoise")

	achilles.RTol, achilles.ATol = 0, qTol
	achilles.DtMax = squeue.Infinity
	achilles.TX = 0
	achilles.X.C[0] = x0Achilles

	tortoise.RTol, tortoise.ATol = 0, qTol
	tortoise.DtMax = squeue.Infinity
	tortoise.TX = 0
	tortoise.X.C[0] = x0Tortoise

	achilles.Fn = &linearFn{a: a, self: achilles.ID, obs1: achilles.ID, obs2: tortoise.ID, c1: -pursuitRate, c2: pursuitRate}
	tortoise.Fn = &constantRateFn{rate: tortoiseSpeed}

	a.Finalize(achilles.ID)
	a.Finalize(tortoise.ID)

	return a, achilles.ID, tortoise.ID
}
