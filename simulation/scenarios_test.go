package simulation_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/quantizedstate/qss/output"
	"github.com/quantizedstate/qss/scenarios"
	"github.com/quantizedstate/qss/simulation"
	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decayFn implements dx/dt = -k*x as a self-observer, reading its own
// quantized value through the arena (original_source's Function_LTI
// pattern, mirrored from variable's own exponential-decay test).
type decayFn struct {
	a    *variable.Arena
	self variable.ID
	k    float64
}

func decayFunction(a *variable.Arena, self variable.ID, k float64) variable.Function {
	return &decayFn{a: a, self: self, k: k}
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
func (f *decayFn) Finalize(owner variable.ID) bool {
	f.a.Graph.RegisterRead(owner, f.self)
	return owner == f.self
}

// decayProbe supplies the LIQSS hysteresis branches for decayFn: the
// lower/upper candidate slopes bracket qC by qTol, and the zero-slope
// witness is the decay's only equilibrium, x=0.
type decayProbe struct {
	a    *variable.Arena
	self variable.ID
	k    float64
}

func (p decayProbe) XLU1(t squeue.Time, qC, qTol float64) variable.Branches { return p.QLU1(t, qC, qTol) }
func (p decayProbe) SLU1(t squeue.Time, qC, qTol float64) variable.Branches { return p.QLU1(t, qC, qTol) }
func (p decayProbe) QLU1(t squeue.Time, qC, qTol float64) variable.Branches {
	return variable.Branches{L: -p.k * (qC - qTol), U: -p.k * (qC + qTol), Z: 0}
}
func (p decayProbe) QLU2(t squeue.Time, qC, qTol float64) variable.Branches {
	return variable.Branches{L: 0.5 * p.k * p.k * (qC - qTol), U: 0.5 * p.k * p.k * (qC + qTol), Z: 0}
}

// runToEnd builds the given arena, wires a sampled-output writer on each of
// the named ids, and runs to tEnd. It returns the Simulation so callers can
// inspect its Stats.
func runToEnd(t *testing.T, a *variable.Arena, tEnd float64, ids ...variable.ID) *simulation.Simulation {
	t.Helper()
	sim := simulation.New(a, simulation.WithTEnd(tEnd), simulation.WithDtOut(tEnd/20))
	for _, id := range ids {
		buf := &bytes.Buffer{}
		sim.AddWriter(id, output.NewWriter(buf, a.Get(id).Name, output.SelectSampled))
	}
	require.NoError(t, sim.Init())
	sim.Run()
	return sim
}

func TestExponentialDecayScenario(t *testing.T) {
	for _, kind := range []variable.Kind{variable.KindQSS1, variable.KindQSS2, variable.KindQSS3, variable.KindLIQSS1, variable.KindLIQSS2} {
		a := variable.NewArena()
		v := a.New(kind, "x")
		v.RTol, v.ATol = 1e-4, 1e-6
		v.DtMax = 1000
		v.TX = 0
		v.X.C[0] = 1.0
		v.Fn = decayFunction(a, v.ID, 1.0)
		if kind.IsLIQSS() {
			v.Probe = decayProbe{a: a, self: v.ID, k: 1.0}
		}
		a.Finalize(v.ID)

		sim := runToEnd(t, a, 5.0, v.ID)
		_ = sim
		assert.Less(t, v.X.Eval(5.0), 1.0)
		assert.Greater(t, v.X.Eval(5.0), 0.0)
	}
}

func TestAchillesScenario(t *testing.T) {
	a, achillesID, tortoiseID := scenarios.Achilles(variable.KindQSS2, 0, 10, 2.0, 1.0, 1e-6)
	sim := runToEnd(t, a, 20.0, achillesID, tortoiseID)
	_ = sim
	gap := a.X(tortoiseID, 20.0) - a.X(achillesID, 20.0)
	assert.Less(t, math.Abs(gap), 1.0)
}

func TestExponentialDecaySineScenario(t *testing.T) {
	a, xID, uID := scenarios.ExponentialDecaySine(variable.KindQSS2, 1.0, 1.0, 0.5, 2.0, 1e-6)
	sim := runToEnd(t, a, 10.0, xID, uID)
	_ = sim
	assert.False(t, math.IsNaN(a.X(xID, 10.0)))
}

func TestBouncingBallScenario(t *testing.T) {
	a, hID, vID, _ := scenarios.BouncingBall(variable.KindQSS2, 10.0, 9.81, 0.8, 1e-6)
	sim := runToEnd(t, a, 5.0, hID, vID)
	require.Equal(t, int64(0), sim.Stats.Discrete)
	assert.GreaterOrEqual(t, sim.Stats.ZeroCrossing, int64(1))
	assert.GreaterOrEqual(t, a.X(hID, 5.0), 0.0)
}

func TestOscillatorScenario(t *testing.T) {
	a, pID, wID, _, countID := scenarios.Oscillator(variable.KindQSS2, 1.0, 0.0, 1e-6)
	sim := runToEnd(t, a, 10.0, pID, wID)
	require.Greater(t, sim.Stats.ZeroCrossing, int64(0))
	assert.Greater(t, a.X(countID, 10.0), 0.0)
}

func TestSimultaneousPairScenario(t *testing.T) {
	a, v1ID, v2ID := scenarios.SimultaneousPair(variable.KindQSS1, 1.0, 1.0, 1e-6)
	sim := runToEnd(t, a, 3.0, v1ID, v2ID)
	assert.Greater(t, sim.Stats.QSSSimultaneous, int64(0))
	assert.InDelta(t, a.X(v1ID, 3.0), a.X(v2ID, 3.0), 1e-9)
}
