package simulation

import "github.com/quantizedstate/qss/squeue"

// Options configures a Simulation run. Populate exclusively via the With*
// functional options below (teacher's dijkstra.Option pattern), never by
// constructing the struct directly from outside the package.
type Options struct {
	TBeg  squeue.Time
	TEnd  squeue.Time
	DtOut squeue.Time // sampled-output cadence; 0 disables sampling
	DtMin squeue.Time
	DtMax squeue.Time
	DtNum squeue.Time // numeric-differentiation probe offset

	Inflection bool // enable inflection-point tE clamping for order>=2 kinds
}

// Option is a functional option for configuring a Simulation.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		TBeg:       0,
		TEnd:       1,
		DtOut:      0,
		DtMin:      0,
		DtMax:      squeue.Infinity,
		DtNum:      1.0e-6,
		Inflection: true,
	}
}

// WithTEnd sets the simulation's terminal time.
func WithTEnd(t squeue.Time) Option { return func(o *Options) { o.TEnd = t } }

// WithTBeg sets the time the dtOut sampling grid starts from (default 0).
// Variables start from their own TX; Init does not move them to TBeg.
func WithTBeg(t squeue.Time) Option { return func(o *Options) { o.TBeg = t } }

// WithDtOut sets the sampled-output cadence; 0 (the default) disables
// sampled output entirely.
func WithDtOut(dt squeue.Time) Option { return func(o *Options) { o.DtOut = dt } }

// WithDtMin sets the floor every variable's step size is clamped to. Init
// raises each variable's DtMin to it; a larger per-variable DtMin is kept.
func WithDtMin(dt squeue.Time) Option { return func(o *Options) { o.DtMin = dt } }

// WithDtMax sets the ceiling every variable's step size is clamped to. Init
// lowers each variable's DtMax to it; a smaller per-variable DtMax is kept.
func WithDtMax(dt squeue.Time) Option { return func(o *Options) { o.DtMax = dt } }

// WithDtNum records a numeric-differentiation probe offset in Options.DtNum.
// Init does not pass it on: an rhs.Numeric takes its offset from its own
// DtNum field.
func WithDtNum(dt squeue.Time) Option { return func(o *Options) { o.DtNum = dt } }

// WithInflection toggles the inflection-point tE clamp order>=2 kinds
// apply by default (spec §6 "inflection" run option).
func WithInflection(enabled bool) Option { return func(o *Options) { o.Inflection = enabled } }
