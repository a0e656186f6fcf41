package squeue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrdersByTime(t *testing.T) {
	q := NewQueue()
	q.AddQSS(5.0, 2)
	q.AddQSS(5.0, 1) // same time -> ties with var 2, not ordered after it
	q.AddQSS(10.0, 3)

	require.Equal(t, 5.0, q.TopTime())
	assert.ElementsMatch(t, []int{1, 2}, q.TopVars())
}

func TestShiftReschedulesInPlace(t *testing.T) {
	q := NewQueue()
	h := q.AddQSS(1.0, 1)
	q.AddQSS(2.0, 2)

	q.ShiftQSS(5.0, h)
	assert.Equal(t, 2.0, q.TopTime())

	v, ok := q.TopVar()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTopVarsSimultaneous(t *testing.T) {
	q := NewQueue()
	q.AddQSS(3.0, 1)
	q.AddQSS(3.0, 2)
	q.AddQSS(4.0, 3)

	q.SetActiveTime(q.TopSuperdenseTime())
	vars := q.TopVars()
	assert.ElementsMatch(t, []int{1, 2}, vars)
}

func TestShiftToInfinityDeactivates(t *testing.T) {
	q := NewQueue()
	h := q.AddQSS(1.0, 1)
	q.AddQSS(2.0, 2)

	q.ShiftToInfinity(h)
	assert.Equal(t, 2.0, q.TopTime())
}

func TestHandlerEventsAtActiveTime(t *testing.T) {
	q := NewQueue()
	q.AddQSS(1.0, 1)
	q.SetActiveTime(q.TopSuperdenseTime())
	q.AddHandler(42, 9.5)

	events := q.TopEvents()
	require.Len(t, events, 1)
	assert.Equal(t, 42, events[0].Var)
	assert.Equal(t, 9.5, events[0].Value)
}

func TestLenAndLifecycle(t *testing.T) {
	q := NewQueue()
	assert.Equal(t, 0, q.Len())
	q.AddQSS(1.0, 1)
	assert.Equal(t, 1, q.Len())
}

// TestSimultaneousTieSurvivesInterleavedScheduling verifies indexFor scans
// live heap entries rather than a bare "reset on time change" counter:
// var 1 and var 3 both land on t=3.0 even though a schedule at a different
// time (var 2) happens in between.
func TestSimultaneousTieSurvivesInterleavedScheduling(t *testing.T) {
	q := NewQueue()
	q.AddQSS(3.0, 1)
	q.AddQSS(7.0, 2)
	q.AddQSS(3.0, 3)

	require.Equal(t, 3.0, q.TopTime())
	assert.ElementsMatch(t, []int{1, 3}, q.TopVars())
}

func TestPopActiveHandlersDrainsOnlyActiveWave(t *testing.T) {
	q := NewQueue()
	q.AddQSS(1.0, 1)
	q.SetActiveTime(q.TopSuperdenseTime())
	q.AddHandler(10, 1.0)
	q.AddHandler(20, 2.0)

	events := q.PopActiveHandlers()
	assert.ElementsMatch(t, []Event{
		{Kind: Handler, Var: 10, Value: 1.0},
		{Kind: Handler, Var: 20, Value: 2.0},
	}, events)

	// Draining removes the slots; a second call finds nothing left.
	assert.Empty(t, q.PopActiveHandlers())
	assert.Equal(t, 1, q.Len())
}
