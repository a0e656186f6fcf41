package variable

import "github.com/quantizedstate/qss/squeue"

// Impl is the vtable a Kind dispatches through (spec §9 "tagged variant"
// translation). Each concrete kind (qssImpl, liqssImpl, discreteImpl,
// zcImpl) implements Impl once; Variable.impl holds the instance selected
// at construction time by Kind.
type Impl interface {
	// Order is the polynomial order of this kind's representation.
	Order() int

	// InitStage runs the stage-th init pass (0..Order()) for v (spec §4.5
	// init_0 ... init_k).
	InitStage(v *Variable, a *Arena, stage int)

	// AdvanceQSS runs the full non-simultaneous requantization protocol
	// for v at t = v.TE (spec §4.2.1).
	AdvanceQSS(v *Variable, a *Arena, t squeue.Time)

	// AdvanceObserver rolls v's continuous segment forward to t because an
	// observee requantized, and reschedules v's next event (spec §4.2.5).
	AdvanceObserver(v *Variable, a *Arena, t squeue.Time)

	// AdvanceHandler applies a discontinuous handler-driven update to v at
	// time t (spec §4.3.3); value is the handler payload.
	AdvanceHandler(v *Variable, a *Arena, t squeue.Time, value float64)

	// Simultaneous staging (spec §4.2.2): Stage0 rolls tX=tQ=tE and copies
	// x0 into q0. Stage1..Stage3 evaluate successive derivatives using
	// v.s(t) views of observees, only for variables whose Order() covers
	// that stage.
	Stage0(v *Variable, a *Arena, t squeue.Time)
	Stage1(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime)
	Stage2(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime)
	Stage3(v *Variable, a *Arena, t squeue.Time, active squeue.SuperdenseTime)

	// FinishSimultaneous computes tE from the staged coefficients and
	// reschedules v (last step of spec §4.2.2 per trigger, before
	// observer propagation).
	FinishSimultaneous(v *Variable, a *Arena, t squeue.Time)
}
