package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReadBuildsObserversAndObservees(t *testing.T) {
	g := NewGraph()
	g.RegisterRead(1, 2) // var 1 reads var 2
	g.RegisterRead(1, 3)
	g.RegisterRead(4, 2)

	assert.ElementsMatch(t, []int{2, 3}, g.Observees(1))
	assert.ElementsMatch(t, []int{1, 4}, g.Observers(2))
	assert.ElementsMatch(t, []int{1}, g.Observers(3))
}

func TestRegisterReadSelfMarksSelfObserver(t *testing.T) {
	g := NewGraph()
	g.RegisterRead(1, 1)

	assert.True(t, g.IsSelfObserver(1))
	assert.Empty(t, g.Observers(1))
	assert.Empty(t, g.Observees(1))
}

func TestValidateZeroCrossingRejectsSelfObserver(t *testing.T) {
	g := NewGraph()
	g.RegisterRead(1, 1)
	assert.ErrorIs(t, g.ValidateZeroCrossing(1), ErrZeroCrossingContract)
}

func TestValidateZeroCrossingRejectsObservers(t *testing.T) {
	g := NewGraph()
	g.RegisterRead(1, 2) // 1 observes 2, so 2 has an observer
	assert.ErrorIs(t, g.ValidateZeroCrossing(2), ErrZeroCrossingContract)
}

func TestValidateZeroCrossingAcceptsPlainObserver(t *testing.T) {
	g := NewGraph()
	g.RegisterRead(1, 2)
	assert.NoError(t, g.ValidateZeroCrossing(1))
}

func TestBuildCachesSortsByOrderAndSplitsPartition(t *testing.T) {
	g := NewGraph()
	// variable 10 is observed by 1 (order 1), 2 (order 3), 3 (order 1).
	g.RegisterRead(1, 10)
	g.RegisterRead(2, 10)
	g.RegisterRead(3, 10)
	g.RegisterRead(1, 100) // order-1 observer's observee
	g.RegisterRead(2, 200) // order-3 observer's observee

	order := map[int]int{1: 1, 2: 3, 3: 1}
	g.BuildCaches(func(v int) int { return order[v] })

	obs := g.ObserversSorted(10)
	require.Len(t, obs, 3)
	for i, v := range obs {
		if i < g.IBegObservers2(10) {
			assert.LessOrEqual(t, order[v], 1)
		} else {
			assert.GreaterOrEqual(t, order[v], 2)
		}
	}

	oo := g.ObserversObservees(10)
	assert.ElementsMatch(t, []int{10, 100, 200}, oo)
}

func TestSnapshotExportsAdjacency(t *testing.T) {
	g := NewGraph()
	g.RegisterRead(1, 2)
	g.RegisterRead(2, 2) // self-observer

	snap := g.Snapshot()
	require.Equal(t, []int{1, 2}, snap.IDs)

	iOf := func(id int) int {
		for i, v := range snap.IDs {
			if v == id {
				return i
			}
		}
		return -1
	}
	assert.Equal(t, 1.0, snap.Adjacency[iOf(1)][iOf(2)])
	assert.Equal(t, 0.0, snap.Adjacency[iOf(2)][iOf(1)])
	assert.Equal(t, 1.0, snap.Adjacency[iOf(2)][iOf(2)])
}
