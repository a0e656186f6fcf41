package variable

import "github.com/quantizedstate/qss/squeue"

// The methods below delegate to v's Impl vtable, giving external packages
// (simulation, scenarios) a stable exported surface without reaching into
// the unexported impl field.

// InitStage runs the stage-th init pass for v (spec §4.5).
func (v *Variable) InitStage(a *Arena, stage int) { v.impl.InitStage(v, a, stage) }

// AdvanceQSS runs v's non-simultaneous requantization protocol at t=v.TE,
// or (for a zero-crossing variable) fires its handler at t=v.TZ.
func (v *Variable) AdvanceQSS(a *Arena, t squeue.Time) { v.impl.AdvanceQSS(v, a, t) }

// AdvanceObserver rolls v's continuous segment forward to t because an
// observee requantized.
func (v *Variable) AdvanceObserver(a *Arena, t squeue.Time) { v.impl.AdvanceObserver(v, a, t) }

// AdvanceHandler applies a discontinuous handler-driven update to v.
func (v *Variable) AdvanceHandler(a *Arena, t squeue.Time, value float64) {
	v.impl.AdvanceHandler(v, a, t, value)
}

// Stage0 through Stage3 and FinishSimultaneous implement the staged
// simultaneous advance protocol of spec §4.2.2.
func (v *Variable) Stage0(a *Arena, t squeue.Time) { v.impl.Stage0(v, a, t) }

func (v *Variable) Stage1(a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	v.impl.Stage1(v, a, t, active)
}

func (v *Variable) Stage2(a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	v.impl.Stage2(v, a, t, active)
}

func (v *Variable) Stage3(a *Arena, t squeue.Time, active squeue.SuperdenseTime) {
	v.impl.Stage3(v, a, t, active)
}

func (v *Variable) FinishSimultaneous(a *Arena, t squeue.Time) {
	v.impl.FinishSimultaneous(v, a, t)
}
