// Package squeue implements superdense time and the global event queue
// that drives a Quantized State System simulation.
//
// Superdense time is a (T, I) pair: a real simulation time T plus an
// integer index I that strictly orders events sharing the same T. The
// queue is a binary min-heap over container/heap keyed by superdense time,
// but unlike a textbook Dijkstra-style "lazy decrease-key" heap (push a
// duplicate, ignore the stale entry on pop — see github.com/katalvlaran/
// lvlath's dijkstra package for that idiom) every variable that has ever
// been scheduled keeps exactly one live slot, addressed by a stable Handle
// that survives heap.Fix rebalancing. QSS variables reschedule thousands
// of times over a run; lazy duplicates would leak O(events) dead heap
// entries instead of O(variables) live ones.
package squeue
