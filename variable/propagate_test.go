package variable

import (
	"testing"

	"github.com/quantizedstate/qss/squeue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoFn implements dx/dt = obs's own quantized value, used only to wire a
// v2-observes-v1 edge into the dependency graph; the derivative's actual
// value doesn't matter for this test, only that Finalize registers the
// read.
type echoFn struct {
	a   *Arena
	obs ID
}

func (f *echoFn) Q(t squeue.Time) float64   { return f.a.Q(f.obs, t) }
func (f *echoFn) QF1(squeue.Time) float64   { return 0 }
func (f *echoFn) QC1(squeue.Time) float64   { return 0 }
func (f *echoFn) S(t squeue.Time) float64   { return f.a.S(f.obs, t) }
func (f *echoFn) SF1(squeue.Time) float64   { return 0 }
func (f *echoFn) SC1(squeue.Time) float64   { return 0 }
func (f *echoFn) X(t squeue.Time) float64   { return f.a.X(f.obs, t) }
func (f *echoFn) X1(squeue.Time) float64    { return 0 }
func (f *echoFn) X2(squeue.Time) float64    { return 0 }
func (f *echoFn) Finalize(owner ID) bool {
	f.a.Graph.RegisterRead(owner, f.obs)
	return f.obs == owner
}

// TestPropagateObserversRequiresBuildCaches pins down the dependency this
// package has on the driver calling Graph.BuildCaches before any event
// fires: ObserversSorted returns nothing until the caches are built, so
// propagateObservers is a no-op without it, and an observer variable never
// hears about its observee's requantizations.
func TestPropagateObserversRequiresBuildCaches(t *testing.T) {
	a := NewArena()
	v1 := a.New(KindQSS1, "v1")
	v2 := a.New(KindQSS1, "v2")

	v1.RTol, v1.ATol = 0, 1e-6
	v1.DtMax = squeue.Infinity
	v1.TX = 0
	v1.X.C[0] = 1.0
	v1.Fn = &echoFn{a: a, obs: v1.ID}

	v2.RTol, v2.ATol = 0, 1e-6
	v2.DtMax = squeue.Infinity
	v2.TX = 0
	v2.X.C[0] = 0
	v2.Fn = &echoFn{a: a, obs: v1.ID}

	a.Finalize(v1.ID)
	a.Finalize(v2.ID)

	for stage := 0; stage <= 1; stage++ {
		v1.impl.InitStage(v1, a, stage)
		v2.impl.InitStage(v2, a, stage)
	}

	// Without BuildCaches, ObserversSorted(v1) is nil, so advancing v1
	// never reaches v2.
	v1.impl.AdvanceQSS(v1, a, v1.TE)
	assert.Equal(t, squeue.Time(0), v2.TX)

	// Once the caches are built, the same advance reaches v2.
	a.Graph.BuildCaches(func(id ID) int { return a.Get(id).Order() })
	require.ElementsMatch(t, []ID{v2.ID}, a.Graph.ObserversSorted(v1.ID))

	tNext := v1.TE
	v1.impl.AdvanceQSS(v1, a, tNext)
	assert.Equal(t, tNext, v2.TX)
}
