// File: planet.go
// Role: The map aggregate: one Path Table, one Frontier Tracker and a spatial
//       index behind a single guard, exposing the control-loop operations.
// Concurrency:
//   - Mutators take mu for writing; queries take it for reading. A query never
//     observes a corridor without its reciprocal, or an edge whose dead-end
//     headings are not yet marked reached.
//   - No operation blocks on I/O or time.

package planet

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/dijkstra"
	"github.com/katalvlaran/robolab/frontier"
	"github.com/katalvlaran/robolab/spatial"
)

// Planet is everything the robot knows about one maze.
type Planet struct {
	mu      sync.RWMutex
	table   *core.PathTable
	tracker *frontier.Tracker
	index   *spatial.Index
	router  *frontier.Router
	opts    Options
	log     *slog.Logger
}

// Stats summarises a Planet.
type Stats struct {
	Nodes   int // coordinates with at least one recorded heading
	Edges   int // directed entries, blocked self-loops included
	Visited int // coordinates the robot stood on
	Pending int // coordinates that still hold an unreached pending heading
}

// New returns an empty Planet.
func New(opts ...Option) *Planet {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planet{
		table:   core.NewPathTable(),
		tracker: frontier.NewTracker(),
		index:   spatial.NewIndex(),
		router: frontier.NewRouter(
			frontier.WithPrecedence(cfg.Precedence),
			frontier.WithUnvisitedTargets(cfg.UnvisitedTargets),
		),
		opts: cfg,
		log:  cfg.Logger.With(slog.String("component", "planet"), slog.String("planet", cfg.Name)),
	}
}

// Name returns the planet name.
func (p *Planet) Name() string { return p.opts.Name }

// AddPath records the corridor between a and b.
//
// Besides the table write, a dead end is consumed in the same step:
//   - weight == core.BlockedWeight: a's heading is marked reached.
//   - a and b on the same coordinate: both headings are marked reached.
func (p *Planet) AddPath(a, b core.Port, weight int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.table.AddPath(a, b, weight); err != nil {
		return err
	}
	p.index.Insert(a.Coord)

	switch {
	case weight == core.BlockedWeight:
		_ = p.tracker.AddReached(a.Coord, a.Heading)
		p.log.Debug("blocked heading", slog.String("port", a.String()))
	case a.Coord == b.Coord:
		_ = p.tracker.AddReached(a.Coord, a.Heading)
		_ = p.tracker.AddReached(b.Coord, b.Heading)
		p.log.Debug("dead-end loop", slog.String("from", a.String()), slog.String("to", b.String()),
			slog.Int64("weight", weight))
	default:
		p.index.Insert(b.Coord)
		p.log.Debug("path", slog.String("from", a.String()), slog.String("to", b.String()),
			slog.Int64("weight", weight))
	}

	return nil
}

// Paths returns a detached snapshot of every recorded edge.
func (p *Planet) Paths() core.Paths {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.table.Paths()
}

// ShortestPath returns the cheapest route from start to target. Failure wraps
// dijkstra.ErrUnreachable.
func (p *Planet) ShortestPath(start, target core.Coordinate) (core.Route, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return dijkstra.ShortestPath(p.table, start, target, dijkstra.WithPrecedence(p.opts.Precedence))
}

// AddStack registers h as a pending heading at c.
func (p *Planet) AddStack(c core.Coordinate, h core.Heading) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.tracker.AddStack(c, h)
}

// AddReached marks h at c explored.
func (p *Planet) AddReached(c core.Coordinate, h core.Heading) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.tracker.AddReached(c, h)
}

// MarkVisited records a visit to c and reports whether it was the first.
func (p *Planet) MarkVisited(c core.Coordinate) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.index.Insert(c)
	first := p.tracker.MarkVisited(c)
	if first {
		p.log.Debug("visited", slog.String("at", c.String()))
	}

	return first
}

// DepthFirstSearch returns the next exploration move from c. An empty route
// means nothing reachable is left to explore.
func (p *Planet) DepthFirstSearch(c core.Coordinate) (core.Route, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.router.Route(p.table, p.tracker, c)
}

// State reports the exploration state of c.
func (p *Planet) State(c core.Coordinate) frontier.NodeState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.tracker.State(c)
}

// Pending returns the unreached pending headings at c, next choice first.
func (p *Planet) Pending(c core.Coordinate) []core.Heading {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.tracker.Pending(c)
}

// History returns visited coordinates in first-visit order.
func (p *Planet) History() []core.Coordinate {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.tracker.History()
}

// NearestKnown returns the known coordinate closest to c. ok is false on an
// empty planet.
func (p *Planet) NearestKnown(c core.Coordinate) (core.Coordinate, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.index.Nearest(c)
}

// Stats returns the current counters.
func (p *Planet) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Stats{
		Nodes:   p.table.NodeCount(),
		Edges:   p.table.EdgeCount(),
		Visited: len(p.tracker.History()),
		Pending: len(p.tracker.Frontier()),
	}
}
