// Package output is the tab-separated sample-stream writer family named
// in spec §6: one Writer per variable per stream kind (.x.out continuous,
// .q.out quantized, and so on), selected by the Select bitmask, buffered
// with bufio.Writer and flushed once at tEnd.
package output
