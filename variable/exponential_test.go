package variable

import (
	"math"
	"testing"

	"github.com/quantizedstate/qss/squeue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decayFn implements dx/dt = -k*x, reading its own owner's quantized value
// through the arena (self-observer), mirroring
// original_source/src/QSS/dfn/mdl/exponential_decay.hh's Function_LTI.
type decayFn struct {
	a    *Arena
	self ID
	k    float64
}

func (f *decayFn) Q(t squeue.Time) float64   { return -f.k * f.a.Q(f.self, t) }
func (f *decayFn) QF1(t squeue.Time) float64 { return 0.5 * f.k * f.k * f.a.Q(f.self, t) }
func (f *decayFn) QC1(squeue.Time) float64   { return 0 }
func (f *decayFn) S(t squeue.Time) float64   { return -f.k * f.a.S(f.self, t) }
func (f *decayFn) SF1(t squeue.Time) float64 { return 0.5 * f.k * f.k * f.a.S(f.self, t) }
func (f *decayFn) SC1(squeue.Time) float64   { return 0 }
func (f *decayFn) X(t squeue.Time) float64   { return -f.k * f.a.X(f.self, t) }
func (f *decayFn) X1(t squeue.Time) float64  { return 0.5 * f.k * f.k * f.a.X(f.self, t) }
func (f *decayFn) X2(squeue.Time) float64    { return 0 }
func (f *decayFn) Finalize(owner ID) bool {
	f.a.Graph.RegisterRead(owner, f.self)
	return owner == f.self
}

func TestQSS1ExponentialDecayRequantizes(t *testing.T) {
	a := NewArena()
	v := a.New(KindQSS1, "x")
	v.RTol, v.ATol = 1e-3, 1e-6
	v.DtMax = 1000
	v.TX = 0
	v.X.C[0] = 1.0
	v.Fn = &decayFn{a: a, self: v.ID, k: 1.0}

	a.Finalize(v.ID)
	require.True(t, v.SelfObserver)

	for stage := 0; stage <= v.Order(); stage++ {
		v.impl.InitStage(v, a, stage)
	}

	require.True(t, v.Handle.Valid())
	assert.Less(t, v.TE, squeue.Infinity)
	assert.InDelta(t, -1.0, v.X.C[1], 1e-9)

	firstTE := v.TE
	v.impl.AdvanceQSS(v, a, firstTE)
	assert.Greater(t, v.TE, firstTE)
	assert.Less(t, math.Abs(v.X.C[0]), 1.0) // decayed from 1.0
}
