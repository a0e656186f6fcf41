package variable

import (
	"github.com/quantizedstate/qss/depgraph"
	"github.com/quantizedstate/qss/squeue"
)

// Arena owns every Variable in one simulation run, addressed by ID, plus
// the shared event queue and dependency graph they all register against.
// This is the single non-cyclic home for what would otherwise be a web of
// variable<->RHS<->observee pointers (spec §9).
type Arena struct {
	vars  []*Variable
	Queue *squeue.Queue
	Graph *depgraph.Graph
}

// NewArena returns an empty arena wired to a fresh queue and graph.
func NewArena() *Arena {
	return &Arena{Queue: squeue.NewQueue(), Graph: depgraph.NewGraph()}
}

// New allocates a Variable of the given kind and name, assigns it the next
// arena ID, and returns it. Tolerances are left at zero; DtMin is 0,
// DtMax, DtInf and DtInfRlx are Infinity, and Inflection is true. Callers
// set tolerances and any per-variable clamps before Finalize.
func (a *Arena) New(kind Kind, name string) *Variable {
	id := len(a.vars)
	v := &Variable{ID: id, Name: name, Kind: kind, impl: implFor(kind)}
	v.DtMin = 0
	v.DtMax = squeue.Infinity
	v.DtInf = squeue.Infinity
	v.DtInfRlx = squeue.Infinity
	v.Inflection = true
	a.vars = append(a.vars, v)
	return v
}

// Get returns the variable for id, or nil if id is out of range.
func (a *Arena) Get(id ID) *Variable {
	if id < 0 || id >= len(a.vars) {
		return nil
	}
	return a.vars[id]
}

// Len returns the number of variables allocated in the arena.
func (a *Arena) Len() int { return len(a.vars) }

// All returns every variable in ID order. The returned slice is owned by
// the arena; callers must not mutate it.
func (a *Arena) All() []*Variable { return a.vars }

// Q evaluates variable id's quantized representation at t. Model Function
// closures call this to read an observee's value.
func (a *Arena) Q(id ID, t squeue.Time) float64 { return a.vars[id].q(t) }

// X evaluates variable id's continuous representation at t.
func (a *Arena) X(id ID, t squeue.Time) float64 { return a.vars[id].x(t) }

// X1 evaluates variable id's continuous first derivative at t.
func (a *Arena) X1(id ID, t squeue.Time) float64 { return a.vars[id].X.Eval1(t) }

// X2 evaluates variable id's continuous second derivative at t.
func (a *Arena) X2(id ID, t squeue.Time) float64 { return a.vars[id].X.Eval2(t) }

// S evaluates variable id's simultaneous view at t, given the queue's
// current active superdense time.
func (a *Arena) S(id ID, t squeue.Time) float64 {
	return a.vars[id].s(t, a.Queue.ActiveSuperdenseTime())
}

// Finalize registers owner's Function against the dependency graph via
// Function.Finalize, and records the resulting self-observer flag on both
// the Variable and the graph.
func (a *Arena) Finalize(owner ID) {
	v := a.vars[owner]
	if v.Fn == nil {
		return
	}
	v.SelfObserver = v.Fn.Finalize(owner)
	if v.SelfObserver {
		a.Graph.RegisterRead(owner, owner)
	}
}

// ValidateZeroCrossings checks the model contract of spec §4.3 for every
// zero-crossing variable: no self-observer, no observers of its own. It is
// the caller's responsibility to invoke this before Init (simulation.Init
// does so), since Impl methods never panic on a model-authoring mistake
// (SPEC_FULL.md §3 EXPANSION debug-assertion policy).
func (a *Arena) ValidateZeroCrossings() error {
	for _, v := range a.vars {
		if v.Kind != KindZeroCrossing {
			continue
		}
		if err := a.Graph.ValidateZeroCrossing(v.ID); err != nil {
			return err
		}
	}
	return nil
}

func implFor(k Kind) Impl {
	switch k {
	case KindQSS1, KindQSS2, KindQSS3:
		return qssImpl{order: k.Order()}
	case KindLIQSS1, KindLIQSS2:
		return liqssImpl{order: k.Order()}
	case KindInput:
		return inputImpl{}
	case KindDiscreteReal, KindDiscreteInteger, KindDiscreteBoolean:
		return discreteImpl{kind: k}
	case KindZeroCrossing:
		return zcImpl{}
	default:
		return qssImpl{order: 1}
	}
}
