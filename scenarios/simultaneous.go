package scenarios

import (
	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
)

// SimultaneousPair builds two uncoupled but identically-parameterized decay
// variables of the same order. Starting from the same initial condition
// with the same rate and tolerance, both run the same step-size formula
// over the same trajectory, so their requantization times coincide at
// every step by construction, deterministically driving the simulation
// driver's staged simultaneous-advance path (spec §4.2.2) on every run
// rather than relying on incidental floating-point coincidence.
func SimultaneousPair(order variable.Kind, x0, rate, qTol float64) (*Arena, variable.ID, variable.ID) {
	a := variable.NewArena()

	v1 := a.New(order, "v1")
	v2 := a.New(order, "v2")

	for _, v := range []*variable.Variable{v1, v2} {
		v.RTol, v.ATol = 0, qTol
		v.DtMax = squeue.Infinity
		v.TX = 0
		v.X.C[0] = x0
	}

	v1.Fn = &linearFn{a: a, self: v1.ID, obs1: v1.ID, obs2: v1.ID, c1: -rate, c2: 0}
	v2.Fn = &linearFn{a: a, self: v2.ID, obs1: v2.ID, obs2: v2.ID, c1: -rate, c2: 0}

	a.Finalize(v1.ID)
	a.Finalize(v2.ID)

	return a, v1.ID, v2.ID
}
