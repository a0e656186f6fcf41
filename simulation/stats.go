package simulation

// Stats accumulates run counters across a Simulation's event loop (spec
// §4.5 EXPANSION, grounded on original_source/src/QSS/dfn/simulate_dfn.cc's
// n_discrete_events/n_QSS_events/n_QSS_simultaneous_events/n_ZC_events
// family).
type Stats struct {
	Discrete        int64
	QSS             int64
	QSSSimultaneous int64
	ZeroCrossing    int64
	Handler         int64
}
