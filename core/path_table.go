// File: path_table.go
// Role: The discovered corridor graph: node → heading → Edge.
// Determinism:
//   - Nodes() returns coordinates in canonical order; Headings() in N, E, S, W order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
//   - AddPath writes an edge and its reciprocal under one lock acquisition,
//     so no reader ever observes half of a corridor.

package core

import (
	"fmt"
	"sort"
	"sync"
)

// PathTable records every corridor confirmed by the robot.
//
// Invariant: every traversable edge (A,dA)→(B,dB,w) is accompanied by its
// reciprocal (B,dB)→(A,dA,w). Blocked headings are stored as (A,dA)→(A,dA,−1).
// Entries are append-only for the life of a mission; a contradictory
// registration overwrites silently, since physical sensing is ground truth.
type PathTable struct {
	mu    sync.RWMutex
	paths map[Coordinate]map[Heading]Edge
	edges int // number of directed entries
}

// NewPathTable returns an empty table.
// Complexity: O(1).
func NewPathTable() *PathTable {
	return &PathTable{paths: make(map[Coordinate]map[Heading]Edge)}
}

// AddPath records the corridor between a and b.
//
// Steps:
//  1. Validate both headings (ErrBadHeading) and the weight (ErrBadWeight).
//  2. weight == BlockedWeight: store the self-loop a→a only; b is ignored.
//  3. weight ≥ 1: store a→b and the reciprocal b→a under the same lock.
//
// Identical repeated calls leave the table unchanged.
// Complexity: O(1) amortized.
func (t *PathTable) AddPath(a, b Port, weight int64) error {
	// 1) Input validation
	if !a.Valid() {
		return fmt.Errorf("%w: port %v", ErrBadHeading, a)
	}
	if weight != BlockedWeight {
		if weight < 1 {
			return fmt.Errorf("%w: got %d", ErrBadWeight, weight)
		}
		if !b.Valid() {
			return fmt.Errorf("%w: port %v", ErrBadHeading, b)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// 2) Blocked heading: self-loop at a.
	if weight == BlockedWeight {
		t.put(a, Edge{To: a, Weight: BlockedWeight})

		return nil
	}

	// 3) Traversable corridor and its mirror.
	t.put(a, Edge{To: b, Weight: weight})
	t.put(b, Edge{To: a, Weight: weight})

	return nil
}

// put stores e under p. Caller holds mu.
func (t *PathTable) put(p Port, e Edge) {
	inner, ok := t.paths[p.Coord]
	if !ok {
		inner = make(map[Heading]Edge, headingCount)
		t.paths[p.Coord] = inner
	}
	if _, exists := inner[p.Heading]; !exists {
		t.edges++
	}
	inner[p.Heading] = e
}

// Paths returns a deep-copied, read-only snapshot of the table.
// A fresh table yields an empty, non-nil mapping.
// Complexity: O(V + E).
func (t *PathTable) Paths() Paths {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(Paths, len(t.paths))
	for c, inner := range t.paths {
		cp := make(map[Heading]Edge, len(inner))
		for h, e := range inner {
			cp[h] = e
		}
		out[c] = cp
	}

	return out
}

// Edge returns the edge stored under p.
func (t *PathTable) Edge(p Port) (Edge, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.paths[p.Coord][p.Heading]

	return e, ok
}

// HasNode reports whether c has at least one recorded edge.
func (t *PathTable) HasNode(c Coordinate) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.paths[c]

	return ok
}

// Nodes returns all recorded coordinates in canonical order.
// Complexity: O(V log V).
func (t *PathTable) Nodes() []Coordinate {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return sortedNodes(t.paths)
}

// Headings returns the headings recorded at c in N, E, S, W order.
func (t *PathTable) Headings(c Coordinate) []Heading {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return sortedHeadings(t.paths[c])
}

// NodeCount returns the number of recorded coordinates.
func (t *PathTable) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.paths)
}

// EdgeCount returns the number of directed entries (a corridor counts twice,
// a blocked heading once).
func (t *PathTable) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.edges
}

func sortedNodes(m map[Coordinate]map[Heading]Edge) []Coordinate {
	out := make([]Coordinate, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

func sortedHeadings(inner map[Heading]Edge) []Heading {
	out := make([]Heading, 0, len(inner))
	for _, h := range Headings() {
		if _, ok := inner[h]; ok {
			out = append(out, h)
		}
	}

	return out
}
