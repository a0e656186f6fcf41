package output

import (
	"bufio"
	"fmt"
	"io"
)

// Writer is a single tab-separated output stream for one variable: each
// Sample call appends one "time\tvalue\n" line, %.16g formatted, buffered
// and flushed by Flush or Close (spec §6 "output streams").
type Writer struct {
	name string
	sel  Select
	w    *bufio.Writer
	raw  io.Writer
}

// NewWriter wraps w (typically an *os.File opened as "<var>.<stream>.out")
// for variable name, restricted to the streams named in sel.
func NewWriter(w io.Writer, name string, sel Select) *Writer {
	return &Writer{name: name, sel: sel, w: bufio.NewWriter(w), raw: w}
}

// Sample appends one (time, value) pair if stream is enabled in this
// writer's Select mask; it is a no-op otherwise, so callers can call every
// Writer unconditionally from the driver's sampling loop.
func (wr *Writer) Sample(stream Select, t, value float64) error {
	if !wr.sel.Has(stream) {
		return nil
	}
	_, err := fmt.Fprintf(wr.w, "%.16g\t%.16g\n", t, value)
	return err
}

// Flush flushes buffered output without closing the underlying writer.
func (wr *Writer) Flush() error { return wr.w.Flush() }

// Close flushes buffered output and, if the underlying writer is an
// io.Closer, closes it.
func (wr *Writer) Close() error {
	if err := wr.w.Flush(); err != nil {
		return err
	}
	if c, ok := wr.raw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Name returns the variable name this writer was constructed for.
func (wr *Writer) Name() string { return wr.name }
