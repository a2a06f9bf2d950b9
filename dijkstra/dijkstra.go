// Package dijkstra implements the shortest-route engine over a core.Reader.
//
// Every Coordinate is a vertex and every traversable Edge a weighted arc.
// Blocked headings (weight −1) and dead-end loops (edges that return to the
// same coordinate) are never traversed.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per query.
//   - Space: O(V + E) for distance maps, reversed arcs and the heap.
//
// Notes on implementation choices:
//
//   - ShortestPath runs Dijkstra from the target over reversed arcs, so it knows
//     the remaining distance of every node, then walks forward from the start,
//     taking at each node the first heading (in Precedence order) that stays on
//     a shortest route. The walk is the tie-break: the returned route is the
//     lexicographically smallest heading sequence among all shortest routes.
//   - Remaining distance strictly decreases along the walk (weights ≥ 1), so the
//     walk terminates on any finite table, cycles included.
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped on pop.
//   - Relaxation never exceeds MaxDistance (default math.MaxInt64), so sums of
//     large weights cannot wrap; a route heavier than int64 is unreachable.
//   - A live *core.PathTable is snapshotted once per query, so a concurrent
//     writer can never make the two phases disagree.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/robolab/core"
)

// snapshotter is implemented by live tables that can hand out a consistent copy.
type snapshotter interface {
	Paths() core.Paths
}

// Distances computes the shortest distance from source to every reachable coordinate.
// Unreachable coordinates are absent from the result; dist[source] == 0.
//
// Errors: ErrNilGraph, ErrUnknownCoordinate.
func Distances(g core.Reader, source core.Coordinate, opts ...Option) (map[core.Coordinate]int64, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	g = stable(g)
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCoordinate, source)
	}

	// 2) Forward search
	cfg := resolve(opts)

	return search(source, forwardArcs(g), cfg.MaxDistance), nil
}

// ShortestPath returns the route from start to target: at each node, the Port
// (node, heading) to leave by.
//
// Contract:
//   - start == target → empty route, nil error (no movement needed).
//   - start or target unmapped → error wrapping ErrUnreachable and ErrUnknownCoordinate.
//   - no traversable route (or longer than MaxDistance) → error wrapping ErrUnreachable.
//   - equal-weight alternatives → the lexicographically smallest heading sequence
//     under Options.Precedence; identical inputs always yield the identical route.
func ShortestPath(g core.Reader, start, target core.Coordinate, opts ...Option) (core.Route, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == target {
		return core.Route{}, nil
	}
	g = stable(g)
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %w: start %v", ErrUnreachable, ErrUnknownCoordinate, start)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %w: target %v", ErrUnreachable, ErrUnknownCoordinate, target)
	}
	cfg := resolve(opts)

	// 2) Remaining distance to target for every node that can reach it.
	remaining := search(target, reverseArcs(g), cfg.MaxDistance)
	if _, ok := remaining[start]; !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnreachable, start, target)
	}

	// 3) Greedy walk along the shortest-route DAG.
	route := make(core.Route, 0, len(remaining))
	u := start
	for u != target {
		p, next, ok := descend(g, u, remaining, cfg.Precedence)
		if !ok {
			// Only possible if the reader changed under us.
			return nil, fmt.Errorf("%w: %v -> %v", ErrUnreachable, start, target)
		}
		route = append(route, p)
		u = next
	}

	return route, nil
}

// RouteLess reports whether route a sorts before route b: compare headings step
// by step under precedence; a strict prefix sorts first.
func RouteLess(a, b core.Route, precedence [4]core.Heading) bool {
	rank := rankOf(precedence)
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if ra, rb := rank[a[i].Heading], rank[b[i].Heading]; ra != rb {
			return ra < rb
		}
	}

	return len(a) < len(b)
}

// descend picks, at u, the first heading in precedence order whose edge keeps the
// walk on a shortest route: w + remaining[v] == remaining[u].
func descend(g core.Reader, u core.Coordinate, remaining map[core.Coordinate]int64, precedence [4]core.Heading) (core.Port, core.Coordinate, bool) {
	du := remaining[u]
	var h core.Heading
	for _, h = range precedence {
		p := core.Port{Coord: u, Heading: h}
		e, ok := g.Edge(p)
		if !ok || !Traversable(u, e) {
			continue
		}
		dv, ok := remaining[e.To.Coord]
		if ok && dv <= du && e.Weight == du-dv {
			return p, e.To.Coord, true
		}
	}

	return core.Port{}, core.Coordinate{}, false
}

// Traversable reports whether e, stored at coordinate from, can carry the robot
// to another node: not blocked, positive weight, not a loop back to from.
func Traversable(from core.Coordinate, e core.Edge) bool {
	return !e.Blocked() && e.Weight >= 1 && e.To.Coord != from
}

// arc is one weighted step between coordinates.
type arc struct {
	to core.Coordinate
	w  int64
}

// arcFunc lists the arcs leaving a coordinate.
type arcFunc func(core.Coordinate) []arc

// forwardArcs reads outgoing arcs directly from g.
func forwardArcs(g core.Reader) arcFunc {
	return func(u core.Coordinate) []arc {
		hs := g.Headings(u)
		out := make([]arc, 0, len(hs))
		for _, h := range hs {
			e, _ := g.Edge(core.Port{Coord: u, Heading: h})
			if Traversable(u, e) {
				out = append(out, arc{to: e.To.Coord, w: e.Weight})
			}
		}

		return out
	}
}

// reverseArcs inverts every traversable edge of g. Reciprocal edges make the
// table symmetric in practice, but a contradictory re-registration can leave a
// stale one-way entry, so the reverse graph is derived rather than assumed.
func reverseArcs(g core.Reader) arcFunc {
	rev := make(map[core.Coordinate][]arc)
	for _, u := range g.Nodes() {
		for _, h := range g.Headings(u) {
			e, _ := g.Edge(core.Port{Coord: u, Heading: h})
			if Traversable(u, e) {
				rev[e.To.Coord] = append(rev[e.To.Coord], arc{to: u, w: e.Weight})
			}
		}
	}

	return func(u core.Coordinate) []arc { return rev[u] }
}

// search is the Dijkstra core: single source, lazy decrease-key, distance cap.
func search(source core.Coordinate, arcs arcFunc, maxDistance int64) map[core.Coordinate]int64 {
	dist := map[core.Coordinate]int64{source: 0}
	settled := make(map[core.Coordinate]bool)

	pq := nodePQ{{id: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		// 1) Pop the closest unsettled node.
		item := heap.Pop(&pq).(*nodeItem)
		if settled[item.id] {
			continue
		}
		if item.dist > maxDistance {
			break
		}
		settled[item.id] = true

		// 2) Relax its arcs.
		for _, a := range arcs(item.id) {
			// item.dist ≤ maxDistance here, so the subtraction cannot overflow.
			if a.w > maxDistance-item.dist {
				continue
			}
			nd := item.dist + a.w
			if cur, ok := dist[a.to]; ok && nd >= cur {
				continue
			}
			dist[a.to] = nd
			heap.Push(&pq, &nodeItem{id: a.to, dist: nd})
		}
	}

	return dist
}

func stable(g core.Reader) core.Reader {
	if s, ok := g.(snapshotter); ok {
		return s.Paths()
	}

	return g
}

func rankOf(precedence [4]core.Heading) [4]int {
	var rank [4]int
	for i, h := range precedence {
		rank[h] = i
	}

	return rank
}

// nodeItem is a coordinate and its tentative distance.
type nodeItem struct {
	id   core.Coordinate
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then coordinate.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
