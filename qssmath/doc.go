// Package qssmath provides the scalar building blocks shared by every
// Quantized State System variable: sign helpers, polynomial evaluation,
// and the smallest-nonnegative-root solvers for the quadratic and cubic
// equations that arise when solving for the next requantization time.
//
// All solvers return Infinity rather than an error when no admissible root
// exists (derivative vanished, discriminant negative, etc.) — callers treat
// Infinity as "deactivate until reactivated", per the solver's deactivation
// policy. Precision loss at a boundary (expected sign violated by round-off)
// degrades to returning 0, which callers read as "the event is happening
// now" — a conservative choice that never misses a crossing.
//
// Every function here is a pure scalar function: no allocation, no state,
// safe for concurrent use.
package qssmath

// Infinity represents an unbounded/deactivated time horizon.
const Infinity = float64(1.0e300)

// HalfInfinity is the relaxed-deactivation ceiling (dt_inf_rlx doubles up to
// this before it is reset), per spec §3 step-size clamps.
const HalfInfinity = Infinity / 2.0
