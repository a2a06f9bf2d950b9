// File: router.go
// Role: Decide the next exploration move: a local pending heading, or a route
//       over known corridors to the nearest node that still has one.
// Determinism:
//   - Candidates are ranked by (distance, kind, route order, coordinate).
// Termination:
//   - No recursion over history: one bounded Dijkstra over the known table per
//     call, so any finite table yields an answer, cycles and loops included.

package frontier

import (
	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/dijkstra"
)

// Router locates, and routes to, the nearest unexplored heading.
type Router struct {
	opts Options
}

// NewRouter creates a Router with the given options applied over DefaultOptions.
func NewRouter(opts ...Option) *Router {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Router{opts: cfg}
}

// candidate kinds, in preference order at equal distance.
const (
	kindPending   = iota // holds a pending, unreached heading
	kindUnvisited        // mapped but never stood on
)

type candidate struct {
	at    core.Coordinate
	dist  int64
	kind  int
	route core.Route
}

// Route returns the next move from the robot's position.
//
// Steps:
//  1. from still has an open heading → the single step (from, heading),
//     choosing the most recently pushed one.
//  2. Otherwise rank every node reachable over traversable corridors that holds
//     an open heading (or, with UnvisitedTargets, was never visited) and return
//     the shortest route to the best one, followed by its open heading.
//  3. Nothing left anywhere in the known graph → empty route: mapping complete.
//
// An open heading is pending, not reached, and not already recorded as blocked
// or as a loop back to the same node.
func (r *Router) Route(g core.Reader, t *Tracker, from core.Coordinate) (core.Route, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	if t == nil {
		return nil, ErrNilTracker
	}
	if s, ok := g.(interface{ Paths() core.Paths }); ok {
		g = s.Paths()
	}

	// 1) Local pending heading.
	if h, ok := open(g, t, from); ok {
		return core.Route{{Coord: from, Heading: h}}, nil
	}

	// 2) Nearest frontier elsewhere.
	if !g.HasNode(from) {
		return core.Route{}, nil
	}
	dist, err := dijkstra.Distances(g, from)
	if err != nil {
		return nil, err
	}

	var best []candidate
	for at, d := range dist {
		if at == from {
			continue
		}
		kind := -1
		if _, ok := open(g, t, at); ok {
			kind = kindPending
		} else if r.opts.UnvisitedTargets && !t.Visited(at) {
			kind = kindUnvisited
		}
		if kind < 0 {
			continue
		}
		c := candidate{at: at, dist: d, kind: kind}
		switch {
		case len(best) == 0 || c.dist < best[0].dist || (c.dist == best[0].dist && c.kind < best[0].kind):
			best = append(best[:0], c)
		case c.dist == best[0].dist && c.kind == best[0].kind:
			best = append(best, c)
		}
	}

	// 3) Nothing left.
	if len(best) == 0 {
		return core.Route{}, nil
	}

	winner, err := r.pick(g, from, best)
	if err != nil {
		return nil, err
	}
	if winner.kind == kindPending {
		h, _ := open(g, t, winner.at)
		winner.route = append(winner.route, core.Port{Coord: winner.at, Heading: h})
	}

	return winner.route, nil
}

// pick resolves equally near candidates by route order, then coordinate order.
func (r *Router) pick(g core.Reader, from core.Coordinate, tied []candidate) (candidate, error) {
	var err error
	for i := range tied {
		tied[i].route, err = dijkstra.ShortestPath(g, from, tied[i].at, dijkstra.WithPrecedence(r.opts.Precedence))
		if err != nil {
			return candidate{}, err
		}
	}
	winner := tied[0]
	for _, c := range tied[1:] {
		if dijkstra.RouteLess(c.route, winner.route, r.opts.Precedence) ||
			(!dijkstra.RouteLess(winner.route, c.route, r.opts.Precedence) && c.at.Less(winner.at)) {
			winner = c
		}
	}

	return winner, nil
}

// open returns the most recently pushed heading at c that is neither reached
// nor already known to be a dead end (blocked, or a loop back to c).
func open(g core.Reader, t *Tracker, c core.Coordinate) (core.Heading, bool) {
	for _, h := range t.Pending(c) {
		if e, ok := g.Edge(core.Port{Coord: c, Heading: h}); ok && (e.Blocked() || e.To.Coord == c) {
			continue
		}

		return h, true
	}

	return 0, false
}
