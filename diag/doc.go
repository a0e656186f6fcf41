// Package diag is the structured logging and fatal-diagnostic surface for
// the solver: event trace lines (output.SelectDiagnostic) and
// model-contract-violation reports, both backed by
// github.com/rs/zerolog rather than fmt.Println/log.Fatal, matching the
// structured-logging dependency present across the retrieval corpus.
//
// diag never calls os.Exit; Fatal logs at zerolog.FatalLevel and returns a
// wrapped error for the caller to act on, consistent with this module
// staying out of process-lifecycle decisions (SPEC_FULL.md §1 EXPANSION).
package diag
