// Package depgraph is the observer/observee dependency graph that wires a
// QSS variable's derivative to the variables it reads, and propagates a
// requantization to everything that reads it.
//
// The graph is addressed by variable.ID (a plain int arena index, per
// spec §9's "arena of variables identified by stable indices" design
// note), never by pointer, so the natural owner<->RHS<->observee cycle
// becomes an ordinary directed graph. Adjacency bookkeeping is adapted
// from github.com/katalvlaran/lvlath's core.Graph adjacency-list
// primitives (separate RWMutex-guarded maps, auto-vertex-on-edge), scaled
// down to the QSS contract: registration is owner-reads-target, never
// weighted, never undirected, never parallel (a variable either reads
// another or does not).
package depgraph
