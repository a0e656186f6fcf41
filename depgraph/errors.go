package depgraph

import "errors"

// Sentinel errors for depgraph operations. Per lvlath's error-policy
// convention: callers branch with errors.Is, never string comparison.
var (
	// ErrUnknownVariable indicates an operation referenced a variable ID
	// that was never registered with the graph.
	ErrUnknownVariable = errors.New("depgraph: unknown variable")

	// ErrZeroCrossingContract indicates a zero-crossing variable was found
	// to be a self-observer or to have observers of its own — fatal per
	// spec §4.3 ("ZC variable must not be self-observer and must have no
	// observers; violation is fatal").
	ErrZeroCrossingContract = errors.New("depgraph: zero-crossing variable violates observer contract")
)
