package variable

import "errors"

var (
	// ErrUnknownID indicates an Arena operation referenced an ID it never
	// allocated.
	ErrUnknownID = errors.New("variable: unknown ID")

	// ErrScheduleBeforeTQ mirrors squeue.ErrScheduleBeforeTQ at the
	// variable level: a caller tried to advance a variable to a time
	// strictly before its tQ (spec §3 invariant 1).
	ErrScheduleBeforeTQ = errors.New("variable: advance time precedes tQ")

	// ErrZeroTolerance indicates qTol was computed as zero or negative,
	// violating spec §3 invariant 5.
	ErrZeroTolerance = errors.New("variable: qTol must be positive")

	// ErrMissingProbe indicates a LIQSS-kind variable's Function does not
	// implement rhs.LIQSSProbe.
	ErrMissingProbe = errors.New("variable: LIQSS variable requires an rhs.LIQSSProbe function")
)
