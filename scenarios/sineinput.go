package scenarios

import (
	"math"

	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
)

// sinInputFn prescribes u(t) = amplitude*sin(frequency*t), grounded on
// original_source/src/QSS/dfn/mdl/exponential_decay_sine_ND.cc's
// Function_Inp_sin_ND usage (u->f().c(freq).s(amplitude)). An input
// variable's Q/QF1/QC1 evaluate the signal and its Taylor coefficients
// directly rather than deriving them from any observee.
type sinInputFn struct {
	amplitude, frequency float64
}

func (f *sinInputFn) Q(t squeue.Time) float64 {
	return f.amplitude * math.Sin(f.frequency*float64(t))
}
func (f *sinInputFn) QF1(t squeue.Time) float64 {
	return f.amplitude * f.frequency * math.Cos(f.frequency*float64(t))
}
func (f *sinInputFn) QC1(t squeue.Time) float64 {
	return -0.5 * f.amplitude * f.frequency * f.frequency * math.Sin(f.frequency*float64(t))
}
func (f *sinInputFn) S(t squeue.Time) float64   { return f.Q(t) }
func (f *sinInputFn) SF1(t squeue.Time) float64 { return f.QF1(t) }
func (f *sinInputFn) SC1(t squeue.Time) float64 { return f.QC1(t) }
func (f *sinInputFn) X(t squeue.Time) float64   { return f.Q(t) }
func (f *sinInputFn) X1(t squeue.Time) float64  { return f.QF1(t) }
func (f *sinInputFn) X2(t squeue.Time) float64  { return f.QC1(t) }
func (f *sinInputFn) Finalize(variable.ID) bool { return false }

// ExponentialDecaySine builds the decay-driven-by-sinusoidal-input system
// of exponential_decay_sine_ND.cc: x' = -x + u, with u an Input variable
// prescribing amplitude*sin(frequency*t) and x a QSS/LIQSS variable
// observing u (spec §8 seed scenario: Input variable kind).
func ExponentialDecaySine(order variable.Kind, x0, decayRate, amplitude, frequency, qTol float64) (*Arena, variable.ID, variable.ID) {
	a := variable.NewArena()

	x := a.New(order, "x")
	u := a.New(variable.KindInput, "u")

	x.RTol, x.ATol = 0, qTol
	x.DtMax = squeue.Infinity
	x.TX = 0
	x.X.C[0] = x0

	u.RTol, u.ATol = 0, qTol
	u.DtMax = 0.1
	u.TX = 0

	x.Fn = &linearFn{a: a, self: x.ID, obs1: x.ID, obs2: u.ID, c1: -decayRate, c2: 1}
	u.Fn = &sinInputFn{amplitude: amplitude, frequency: frequency}

	a.Finalize(x.ID)
	a.Finalize(u.ID)

	return a, x.ID, u.ID
}
