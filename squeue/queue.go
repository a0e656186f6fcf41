package squeue

import (
	"container/heap"
	"errors"
)

// ErrScheduleBeforeTQ indicates an attempt to schedule an event strictly
// before the owning variable's current quantized-segment start — a caller
// contract violation (spec §4.1 Failure mode), never a runtime occurrence
// for correctly-implemented variables.
var ErrScheduleBeforeTQ = errors.New("squeue: scheduled time precedes variable's tQ")

// Target identifies the variable a queued event belongs to. The queue is
// agnostic to what a Target actually is; the simulation driver uses
// variable.ID (an arena index), keeping the cyclic variable<->event
// reference as a plain integer rather than a pointer cycle (spec §9).
type Target = int

// Event is one pending entry in the queue.
type Event struct {
	Kind  Kind
	Var   Target
	Value float64 // handler payload carried from the zero-crossing site
}

// Handle is a stable reference to a variable's single live queue slot. It
// remains valid across heap rebalancing triggered by Shift/Reschedule
// calls for any variable, not just the one underlying this handle.
type Handle struct {
	item *item
}

// Valid reports whether the handle still refers to a live queue slot.
func (h Handle) Valid() bool { return h.item != nil }

type item struct {
	st    SuperdenseTime
	event Event
	index int // position in the heap slice; maintained by heap.Fix
}

// Queue is the global event queue: a binary min-heap over container/heap
// keyed by superdense time, with exactly one live slot per ever-scheduled
// variable (spec §4.1, design note in doc.go).
type Queue struct {
	h          innerHeap
	activeTime SuperdenseTime
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	return &Queue{h: make(innerHeap, 0, 64)}
}

// indexFor returns the superdense index a newly (re)scheduled event at
// time t should carry. If some live slot already sits at t, the new event
// ties with it — same I, so two variables that genuinely requantize at
// the same real time compare Equal and group together as a simultaneous
// trigger set (spec §4.1/§4.2.2/§4.3.3). Otherwise it gets a fresh index
// past every index currently in use, which only matters for ordering
// among entries that already share a T (I is never compared across
// different T, per SuperdenseTime.Before).
func (q *Queue) indexFor(t Time) int64 {
	var maxIndex int64 = -1
	for _, it := range q.h {
		if it.st.T == t {
			return it.st.I
		}
		if it.st.I > maxIndex {
			maxIndex = it.st.I
		}
	}
	return maxIndex + 1
}

// schedule pushes a new live slot for an event and returns its handle.
func (q *Queue) schedule(t Time, kind Kind, v Target) Handle {
	it := &item{
		st:    SuperdenseTime{T: t, I: q.indexFor(t)},
		event: Event{Kind: kind, Var: v},
	}
	heap.Push(&q.h, it)
	return Handle{item: it}
}

// AddQSS schedules a requantization event for variable v at time t.
func (q *Queue) AddQSS(t Time, v Target) Handle { return q.schedule(t, QSS, v) }

// AddZC schedules a zero-crossing event for variable v at time t.
func (q *Queue) AddZC(t Time, v Target) Handle { return q.schedule(t, ZC, v) }

// AddDiscrete schedules a discrete-update event for variable v at time t.
func (q *Queue) AddDiscrete(t Time, v Target) Handle { return q.schedule(t, Discrete, v) }

// AddHandler schedules a handler event for variable v at the currently
// active superdense time (handlers fire within the wave that discovered
// the crossing, never independently rescheduled to a future time).
func (q *Queue) AddHandler(v Target, value float64) Handle {
	it := &item{
		st:    q.activeTime,
		event: Event{Kind: Handler, Var: v, Value: value},
	}
	heap.Push(&q.h, it)
	return Handle{item: it}
}

// shift reschedules an existing handle in place, preserving its kind and
// target but assigning the superdense index its new time calls for.
func (q *Queue) shift(t Time, h Handle, kind Kind) {
	h.item.st = SuperdenseTime{T: t, I: q.indexFor(t)}
	h.item.event.Kind = kind
	heap.Fix(&q.h, h.item.index)
}

// ShiftQSS reschedules h as a QSS event at time t.
func (q *Queue) ShiftQSS(t Time, h Handle) { q.shift(t, h, QSS) }

// ShiftZC reschedules h as a ZC event at time t.
func (q *Queue) ShiftZC(t Time, h Handle) { q.shift(t, h, ZC) }

// ShiftDiscrete reschedules h as a discrete event at time t.
func (q *Queue) ShiftDiscrete(t Time, h Handle) { q.shift(t, h, Discrete) }

// ShiftToInfinity deactivates h without removing its slot (spec §3
// dt_inf/dt_inf_rlx deactivation); the kind is preserved.
func (q *Queue) ShiftToInfinity(h Handle) {
	h.item.st = SuperdenseTime{T: Infinity, I: q.indexFor(Infinity)}
	heap.Fix(&q.h, h.item.index)
}

// Len returns the number of live slots in the queue.
func (q *Queue) Len() int { return q.h.Len() }

// TopTime returns the minimum pending real time, or Infinity if empty.
func (q *Queue) TopTime() Time {
	if q.h.Len() == 0 {
		return Infinity
	}
	return q.h[0].st.T
}

// TopSuperdenseTime returns the minimum pending superdense time.
func (q *Queue) TopSuperdenseTime() SuperdenseTime {
	if q.h.Len() == 0 {
		return SuperdenseTime{T: Infinity}
	}
	return q.h[0].st
}

// Top returns the event at the minimum superdense time without removing
// it.
func (q *Queue) Top() (Event, bool) {
	if q.h.Len() == 0 {
		return Event{}, false
	}
	return q.h[0].event, true
}

// TopVar returns the variable owning the minimum-superdense-time event.
func (q *Queue) TopVar() (Target, bool) {
	ev, ok := q.Top()
	return ev.Var, ok
}

// TopVars collects all live entries that share the minimum superdense
// time — the simultaneous-trigger set used for staged multi-variable
// advance (spec §4.2.2, §4.3.3).
func (q *Queue) TopVars() []Target {
	return mapEvents(q.topEntriesAtMin(), func(ev Event) Target { return ev.Var })
}

// TopTriggers collects every pending entry (of any kind) at the minimum
// superdense time, the full simultaneous-trigger set a driver dispatches
// by kind (spec §4.5 step 2).
func (q *Queue) TopTriggers() []Event {
	return q.topEntriesAtMin()
}

// TopEvents collects all pending handler events at the minimum superdense
// time (spec §4.1 top_events()).
func (q *Queue) TopEvents() []Event {
	out := make([]Event, 0, 4)
	for _, ev := range q.topEntriesAtMin() {
		if ev.Kind == Handler {
			out = append(out, ev)
		}
	}
	return out
}

// PopActiveHandlers removes and returns every pending handler event whose
// superdense time equals the queue's current active time (set via
// SetActiveTime). A driver calls this after dispatching the zero-crossing
// events of a wave, so handler side effects that crossing detection just
// enqueued via AddHandler run within that same wave rather than leaking
// into a later one (spec §4.3.3).
func (q *Queue) PopActiveHandlers() []Event {
	var matches []*item
	for _, it := range q.h {
		if it.event.Kind == Handler && it.st.Equal(q.activeTime) {
			matches = append(matches, it)
		}
	}
	out := make([]Event, 0, len(matches))
	for _, it := range matches {
		heap.Remove(&q.h, it.index)
		out = append(out, it.event)
	}
	return out
}

func (q *Queue) topEntriesAtMin() []Event {
	if q.h.Len() == 0 {
		return nil
	}
	minST := q.h[0].st
	out := make([]Event, 0, 4)
	for _, it := range q.h {
		if it.st.Equal(minST) {
			out = append(out, it.event)
		}
	}
	return out
}

func mapEvents[T any](evs []Event, f func(Event) T) []T {
	out := make([]T, len(evs))
	for i, ev := range evs {
		out[i] = f(ev)
	}
	return out
}

// SetActiveTime snapshots the superdense time currently being serviced, so
// LIQSS's s(t)-style simultaneous view can detect "I am mid-update" (spec
// §4.1 set_active_time(), §9).
func (q *Queue) SetActiveTime(st SuperdenseTime) { q.activeTime = st }

// ActiveSuperdenseTime returns the last snapshot taken by SetActiveTime.
func (q *Queue) ActiveSuperdenseTime() SuperdenseTime { return q.activeTime }

// innerHeap implements container/heap.Interface over *item, ordered by
// superdense time ascending, tracking each item's live index for Fix.
type innerHeap []*item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].st.Before(h[j].st) }
func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}
