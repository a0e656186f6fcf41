package simulation

import (
	"math"
	"sort"

	"github.com/quantizedstate/qss/diag"
	"github.com/quantizedstate/qss/output"
	"github.com/quantizedstate/qss/squeue"
	"github.com/quantizedstate/qss/variable"
)

// Simulation drives one run: it owns an Arena (queue + dependency graph +
// variables), the run Options, accumulated Stats, and the output writers
// registered against it. No package-level state is shared across runs
// (spec §9).
type Simulation struct {
	Arena   *variable.Arena
	Opts    Options
	Stats   Stats
	Writers      []*output.Writer
	writerOwners []variable.ID
	Log          diag.Logger

	tLastSample squeue.Time
}

// New returns a Simulation over arena, configured by opts.
func New(arena *variable.Arena, opts ...Option) *Simulation {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Simulation{Arena: arena, Opts: o, Log: diag.New(nil), tLastSample: o.TBeg}
}

// AddWriter registers an output.Writer the driver samples every dtOut
// tick, writing id's continuous value to the SelectSampled stream.
// Requantization, observer and time events are not written.
func (s *Simulation) AddWriter(id variable.ID, w *output.Writer) {
	s.Writers = append(s.Writers, w)
	s.writerOwners = append(s.writerOwners, id)
}

// Init runs the staged initialization pass of spec §4.5: all non-ZC
// variables run init_0, then init_1, then order-gated init_2/init_3; ZC
// variables initialize last since their root search needs the final
// post-init representations of their observees.
func (s *Simulation) Init() error {
	if err := s.Arena.ValidateZeroCrossings(); err != nil {
		return s.Log.Fatal("depgraph", err.Error())
	}
	s.Arena.Graph.BuildCaches(func(id variable.ID) int { return s.Arena.Get(id).Order() })
	vars := s.Arena.All()
	maxOrder := 0
	for _, v := range vars {
		v.Inflection = s.Opts.Inflection
		if s.Opts.DtMin > v.DtMin {
			v.DtMin = s.Opts.DtMin
		}
		if s.Opts.DtMax < v.DtMax {
			v.DtMax = s.Opts.DtMax
		}
		if v.Order() > maxOrder {
			maxOrder = v.Order()
		}
	}
	for stage := 0; stage <= maxOrder; stage++ {
		for _, v := range vars {
			if v.Kind == variable.KindZeroCrossing {
				continue
			}
			v.InitStage(s.Arena, stage)
		}
	}
	for _, v := range vars {
		if v.Kind == variable.KindZeroCrossing {
			v.InitStage(s.Arena, 0)
		}
	}
	s.emitSamples(s.Opts.TBeg)
	return nil
}

// Run executes the main event loop until the queue's top time exceeds
// TEnd, dispatching each superdense-time wave by kind, then emits terminal
// samples (spec §4.5).
func (s *Simulation) Run() {
	for {
		t := s.Arena.Queue.TopTime()
		if t > s.Opts.TEnd {
			break
		}
		s.emitSamples(math.Min(t, s.Opts.TEnd))

		active := s.Arena.Queue.TopSuperdenseTime()
		s.Arena.Queue.SetActiveTime(active)
		triggers := s.Arena.Queue.TopTriggers()
		s.dispatch(t, triggers)
	}
	s.emitSamples(s.Opts.TEnd)
	for _, w := range s.Writers {
		w.Flush()
	}
}

func (s *Simulation) dispatch(t squeue.Time, triggers []squeue.Event) {
	var discrete, zc, qss []squeue.Event
	for _, ev := range triggers {
		switch ev.Kind {
		case squeue.Discrete:
			discrete = append(discrete, ev)
		case squeue.ZC:
			zc = append(zc, ev)
		case squeue.QSS:
			qss = append(qss, ev)
		}
	}

	sort.Slice(discrete, func(i, j int) bool { return discrete[i].Var < discrete[j].Var })
	for _, ev := range discrete {
		v := s.Arena.Get(ev.Var)
		v.AdvanceHandler(s.Arena, t, ev.Value)
		s.Stats.Discrete++
	}

	for _, ev := range zc {
		v := s.Arena.Get(ev.Var)
		v.AdvanceQSS(s.Arena, t)
		s.Stats.ZeroCrossing++
	}
	s.runHandlers(t)

	switch len(qss) {
	case 0:
		// nothing to do
	case 1:
		v := s.Arena.Get(qss[0].Var)
		v.AdvanceQSS(s.Arena, t)
		s.Stats.QSS++
	default:
		s.advanceSimultaneous(t, qss)
		s.Stats.QSSSimultaneous += int64(len(qss))
	}
}

// runHandlers drains every handler event a zero-crossing's Handler closure
// enqueued via Queue.AddHandler while the zc pass above ran, applies them
// in variable-ID order, then propagates to each affected variable's
// observers once, after every handler has run — the same staged shape
// advanceSimultaneous uses for QSS triggers (spec §4.3.3: handler effects
// discovered in one wave are applied and propagated as a batch, not
// interleaved one at a time).
func (s *Simulation) runHandlers(t squeue.Time) {
	events := s.Arena.Queue.PopActiveHandlers()
	if len(events) == 0 {
		return
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Var < events[j].Var })

	affected := make(map[variable.ID]bool, len(events))
	order := make([]variable.ID, 0, len(events))
	for _, ev := range events {
		v := s.Arena.Get(ev.Var)
		v.AdvanceHandler(s.Arena, t, ev.Value)
		if !affected[ev.Var] {
			affected[ev.Var] = true
			order = append(order, ev.Var)
		}
		s.Stats.Handler++
	}

	seen := make(map[variable.ID]bool)
	for _, id := range order {
		for _, obsID := range s.Arena.Graph.ObserversSorted(id) {
			if affected[obsID] || seen[obsID] {
				continue
			}
			seen[obsID] = true
			s.Arena.Get(obsID).AdvanceObserver(s.Arena, t)
		}
	}
}

// advanceSimultaneous implements the staged simultaneous advance of spec
// §4.2.2: triggers sorted by order ascending, staged 0..3, then observers
// of the trigger set (excluding the triggers themselves) run once.
func (s *Simulation) advanceSimultaneous(t squeue.Time, qss []squeue.Event) {
	vars := make([]*variable.Variable, len(qss))
	trigSet := make(map[variable.ID]bool, len(qss))
	for i, ev := range qss {
		vars[i] = s.Arena.Get(ev.Var)
		trigSet[ev.Var] = true
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Order() < vars[j].Order() })

	active := s.Arena.Queue.ActiveSuperdenseTime()
	for _, v := range vars {
		v.Stage0(s.Arena, t)
	}
	for _, v := range vars {
		v.Stage1(s.Arena, t, active)
	}
	for _, v := range vars {
		if v.Order() >= 2 {
			v.Stage2(s.Arena, t, active)
		}
	}
	for _, v := range vars {
		if v.Order() >= 3 {
			v.Stage3(s.Arena, t, active)
		}
	}
	for _, v := range vars {
		v.FinishSimultaneous(s.Arena, t)
	}

	seen := make(map[variable.ID]bool)
	for _, v := range vars {
		for _, id := range s.Arena.Graph.ObserversSorted(v.ID) {
			if trigSet[id] || seen[id] {
				continue
			}
			seen[id] = true
			w := s.Arena.Get(id)
			w.AdvanceObserver(s.Arena, t)
		}
	}
}

// emitSamples writes every dtOut-cadence sample time in
// (tLastSample, tCap] across every registered writer (spec §4.5 step 1;
// EXPANSION "emit all sampling times <= min(t, tEnd) in one pass").
func (s *Simulation) emitSamples(tCap squeue.Time) {
	if s.Opts.DtOut <= 0 {
		return
	}
	for t := s.tLastSample + s.Opts.DtOut; t <= tCap+1e-12; t += s.Opts.DtOut {
		for i, w := range s.Writers {
			id := s.writerOwners[i]
			v := s.Arena.Get(id)
			w.Sample(output.SelectSampled, t, v.X.Eval(t))
		}
		s.tLastSample = t
	}
}
