// Package scenarios builds seed end-to-end systems: Achilles and tortoise,
// decay driven by a sinusoidal input, bouncing ball, a harmonic oscillator
// with a crossing counter, and a simultaneous-trigger pair. It has no
// builder for plain exponential decay or for a Variable_ZC1Test-style
// state event. Each returns a ready-to-run *variable.Arena wired with
// rhs.Function closures over the arena, grounded on
// original_source/src/QSS/dfn/mdl/{exponential_decay,Function_achilles1,
// bball}.hh.
package scenarios
