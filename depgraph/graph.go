package depgraph

import (
	"sort"
	"sync"
)

// VarID addresses a variable in the arena (variable.ID, kept untyped here
// to avoid an import cycle between depgraph and variable).
type VarID = int

// Graph is the observer/observee dependency graph for one simulation.
// Thread-safe in the same style as lvlath's core.Graph, even though the
// driver only ever touches it from a single goroutine (spec §5;
// SPEC_FULL.md §5 EXPANSION).
type Graph struct {
	mu sync.RWMutex

	observees    map[VarID]map[VarID]struct{} // owner -> set of variables it reads
	observers    map[VarID]map[VarID]struct{} // target -> set of variables that read it
	selfObserver map[VarID]bool

	// Derived caches, built once by BuildCaches.
	observersSorted map[VarID][]VarID // observers(v), order ascending
	iBegObservers2  map[VarID]int     // index of first order>=2 observer
	observersObservees map[VarID][]VarID // union of observers' observees, order-1-first partition
}

// NewGraph returns an empty dependency graph.
func NewGraph() *Graph {
	return &Graph{
		observees:    make(map[VarID]map[VarID]struct{}),
		observers:    make(map[VarID]map[VarID]struct{}),
		selfObserver: make(map[VarID]bool),
	}
}

// ensure registers v as a known vertex with no edges yet, if absent.
func (g *Graph) ensure(v VarID) {
	if _, ok := g.observees[v]; !ok {
		g.observees[v] = make(map[VarID]struct{})
	}
	if _, ok := g.observers[v]; !ok {
		g.observers[v] = make(map[VarID]struct{})
	}
}

// RegisterRead records that owner's derivative reads target's value. If
// owner == target, the owner is marked self-observer instead of gaining a
// self-edge (spec §3 invariant 2; §4.4 wiring).
func (g *Graph) RegisterRead(owner, target VarID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(owner)
	g.ensure(target)

	if owner == target {
		g.selfObserver[owner] = true
		return
	}
	g.observees[owner][target] = struct{}{}
	g.observers[target][owner] = struct{}{}
}

// IsSelfObserver reports whether v's derivative reads v's own value.
func (g *Graph) IsSelfObserver(v VarID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.selfObserver[v]
}

// Observees returns the (unordered) set of variables v's derivative reads.
func (g *Graph) Observees(v VarID) []VarID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return keys(g.observees[v])
}

// Observers returns the (unordered) set of variables that read v.
func (g *Graph) Observers(v VarID) []VarID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return keys(g.observers[v])
}

// ShrinkObservers is a no-op placeholder mirroring the original's optional
// shrink_observers() capacity-reclaim call after wiring finishes; Go maps
// need no manual shrink, kept only as the call site the spec names (init_1
// / init_2 "shrink_observers(); // Optional").
func (g *Graph) ShrinkObservers(VarID) {}

func keys(m map[VarID]struct{}) []VarID {
	out := make([]VarID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// ValidateZeroCrossing enforces the zero-crossing contract (spec §4.3): a
// ZC variable must not be a self-observer and must have no observers.
func (g *Graph) ValidateZeroCrossing(v VarID) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.selfObserver[v] {
		return ErrZeroCrossingContract
	}
	if len(g.observers[v]) > 0 {
		return ErrZeroCrossingContract
	}
	return nil
}

// BuildCaches computes the derived caches described in spec §4.4:
// observers(v) sorted by ascending order with iBeg_observers_2 marking the
// first order>=2 entry, and observers_observees(v), the union of the
// observees of v's observers, partitioned so observees needed only by
// order>=2 observers come after those needed by order<=1 observers (cheap
// batched RHS input-setting during staged observer passes).
//
// orderOf must return the QSS method order (1..3) of any variable ID it is
// asked about.
func (g *Graph) BuildCaches(orderOf func(VarID) int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.observersSorted = make(map[VarID][]VarID, len(g.observers))
	g.iBegObservers2 = make(map[VarID]int, len(g.observers))
	g.observersObservees = make(map[VarID][]VarID, len(g.observers))

	for v, set := range g.observers {
		obs := keys(set)
		sort.SliceStable(obs, func(i, j int) bool { return orderOf(obs[i]) < orderOf(obs[j]) })
		g.observersSorted[v] = obs

		ibeg := len(obs)
		for i, o := range obs {
			if orderOf(o) >= 2 {
				ibeg = i
				break
			}
		}
		g.iBegObservers2[v] = ibeg

		low := make(map[VarID]struct{})
		high := make(map[VarID]struct{})
		for i, o := range obs {
			dst := low
			if i >= ibeg {
				dst = high
			}
			for _, observee := range keys(g.observees[o]) {
				dst[observee] = struct{}{}
			}
		}
		merged := keys(low)
		for _, o := range keys(high) {
			if _, already := low[o]; !already {
				merged = append(merged, o)
			}
		}
		g.observersObservees[v] = merged
	}
}

// ObserversSorted returns the order-ascending observer list built by
// BuildCaches.
func (g *Graph) ObserversSorted(v VarID) []VarID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.observersSorted[v]
}

// IBegObservers2 returns the index of the first order>=2 observer in
// ObserversSorted(v), or len(ObserversSorted(v)) if none.
func (g *Graph) IBegObservers2(v VarID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.iBegObservers2[v]
}

// ObserversObservees returns the cached union of v's observers' observees.
func (g *Graph) ObserversObservees(v VarID) []VarID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.observersObservees[v]
}

// Snapshot is a dense adjacency-matrix export of the dependency graph for
// diagnostics: IDs lists the row/column order, and Adjacency[i][j] is 1 if
// IDs[j] is an observee of IDs[i] (IDs[i]'s derivative reads IDs[j]), 0
// otherwise. Self-observers set their own diagonal entry.
type Snapshot struct {
	IDs       []VarID
	Adjacency [][]float64
}

// Snapshot builds a Snapshot over every vertex currently registered in the
// graph, in ascending ID order (spec §9 EXPANSION "Graph export": a
// diagnostic view of the observer/observee wiring, independent of the
// ObserversSorted/ObserversObservees caches the solver itself consumes).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VarID, 0, len(g.observees))
	for v := range g.observees {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	index := make(map[VarID]int, len(ids))
	for i, v := range ids {
		index[v] = i
	}

	adjacency := make([][]float64, len(ids))
	for i, v := range ids {
		row := make([]float64, len(ids))
		for target := range g.observees[v] {
			row[index[target]] = 1
		}
		if g.selfObserver[v] {
			row[i] = 1
		}
		adjacency[i] = row
	}
	return Snapshot{IDs: ids, Adjacency: adjacency}
}
