// Package rhs is the derivative/function abstraction a variable's owner
// wires to the QSS solver: given the current quantized state of whatever
// variables it reads, produce the value and successive derivatives of a
// scalar function of time.
//
// Function plays the role the teacher's dijkstra.WeightFunc / builder
// callback types play for their own algorithms: a small interface the
// caller implements once per model and the solver calls many times per
// run, never the reverse.
package rhs
