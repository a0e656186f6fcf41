package scenarios

import (
	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
)

// passthroughFn reads a single observee's representations unchanged; used
// to drive a zero-crossing variable's segment from another variable's
// value, since a ZC variable's Function is otherwise just a copy (spec
// §4.3, original_source/src/QSS/dfn/Variable_ZC1.hh's observee wiring).
type passthroughFn struct {
	a    *Arena
	self variable.ID
	obs  variable.ID
}

func (f *passthroughFn) Q(t squeue.Time) float64     { return f.a.Q(f.obs, t) }
func (f *passthroughFn) QF1(t squeue.Time) float64   { return f.a.X1(f.obs, t) }
func (f *passthroughFn) QC1(t squeue.Time) float64   { return f.a.X2(f.obs, t) }
func (f *passthroughFn) S(t squeue.Time) float64     { return f.a.S(f.obs, t) }
func (f *passthroughFn) SF1(t squeue.Time) float64   { return f.QF1(t) }
func (f *passthroughFn) SC1(t squeue.Time) float64   { return f.QC1(t) }
func (f *passthroughFn) X(t squeue.Time) float64     { return f.a.X(f.obs, t) }
func (f *passthroughFn) X1(t squeue.Time) float64    { return f.QF1(t) }
func (f *passthroughFn) X2(t squeue.Time) float64    { return f.QC1(t) }
func (f *passthroughFn) Finalize(owner variable.ID) bool {
	f.a.Graph.RegisterRead(owner, f.obs)
	return f.obs == owner
}

// BouncingBall builds the standard QSS bouncing-ball system grounded on
// bball.hh: height h and velocity v as a mutually-derived pair (h'=v,
// v'=-g), plus a zero-crossing variable watching h that subscribes to the
// downward crossings DnPN and DnPZ and, on firing, reverses and damps v by
// the restitution coefficient e (spec §8 seed scenario; SPEC_FULL.md
// EXPANSION state-event handling).
func BouncingBall(order variable.Kind, h0, gravity, restitution, qTol float64) (*Arena, variable.ID, variable.ID, variable.ID) {
	a := variable.NewArena()

	h := a.New(order, "h")
	v := a.New(order, "v")
	zc := a.New(variable.KindZeroCrossing, "h_zc")

	h.RTol, h.ATol = 0, qTol
	h.DtMax = squeue.Infinity
	h.TX = 0
	h.X.C[0] = h0

	v.RTol, v.ATol = 0, qTol
	v.DtMax = squeue.Infinity
	v.TX = 0
	v.X.C[0] = 0

	h.Fn = &linearFn{a: a, self: h.ID, obs1: v.ID, obs2: v.ID, c1: 1, c2: 0}
	v.Fn = &constantRateFn{rate: -gravity}

	zc.Fn = &passthroughFn{a: a, self: zc.ID, obs: h.ID}
	zc.TX = 0
	zc.Crossings = []variable.CrossingType{variable.DnPN, variable.DnPZ}
	zc.Handler = func(ar *Arena, t squeue.Time, ct variable.CrossingType) {
		vNow := ar.X(v.ID, t)
		ar.Queue.AddHandler(v.ID, -restitution*vNow)
	}

	a.Finalize(h.ID)
	a.Finalize(v.ID)
	a.Finalize(zc.ID)

	return a, h.ID, v.ID, zc.ID
}
