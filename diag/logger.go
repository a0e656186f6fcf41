package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/quantizedstate/qss/squeue"
)

// ErrFatal is wrapped by Fatal's return value so callers can branch with
// errors.Is regardless of the component/detail text.
var ErrFatal = fmt.Errorf("diag: fatal condition")

// Logger wraps a zerolog.Logger with the two diagnostic shapes the solver
// needs: a per-event trace line and a fatal contract-violation report.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger writing to w (os.Stderr if w is nil), at debug
// level so Trace lines are visible when the caller wants them and
// silenced via zerolog's level filter otherwise.
func New(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return Logger{z: zerolog.New(w).With().Timestamp().Logger()}
}

// Trace emits one diagnostic trace line in the "marker name(time) = ..."
// family the spec's error-handling design names (spec §7), carrying both
// the quantized and continuous polynomial representations and the
// variable's pending event times.
func (l Logger) Trace(marker, name string, t squeue.Time, qPoly, xPoly string, tE, tZ squeue.Time) {
	l.z.Debug().
		Str("marker", marker).
		Str("var", name).
		Float64("t", t).
		Str("q", qPoly).
		Str("x", xPoly).
		Float64("tE", tE).
		Float64("tZ", tZ).
		Msg("trace")
}

// Fatal logs a model-contract violation at FatalLevel (without exiting the
// process) and returns an error wrapping ErrFatal, identifying the
// offending component and a human-readable detail.
func (l Logger) Fatal(component, detail string) error {
	l.z.WithLevel(zerolog.FatalLevel).
		Str("component", component).
		Str("detail", detail).
		Msg("fatal")
	return fmt.Errorf("%w: %s: %s", ErrFatal, component, detail)
}
