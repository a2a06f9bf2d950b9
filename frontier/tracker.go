// File: tracker.go
// Role: Pending/reached heading bookkeeping per node and the visited history.
// Determinism:
//   - Pending(c) lists headings last-pushed first.
//   - History() is in first-visit order.
// Concurrency:
//   - Not synchronised. The owning aggregate (planet.Planet) serialises access.

package frontier

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/robolab/core"
)

// record is the frontier state of one coordinate.
type record struct {
	stack   []core.Heading // push order; the last element is tried first
	reached [4]bool        // monotonic: never unmarked
}

// Tracker holds the exploration frontier of one mission.
type Tracker struct {
	records map[core.Coordinate]*record
	visited map[core.Coordinate]struct{}
	history []core.Coordinate
}

// NewTracker returns an empty tracker. Records are created lazily on first use.
func NewTracker() *Tracker {
	return &Tracker{
		records: make(map[core.Coordinate]*record),
		visited: make(map[core.Coordinate]struct{}),
	}
}

func (t *Tracker) get(c core.Coordinate) *record {
	r, ok := t.records[c]
	if !ok {
		r = &record{}
		t.records[c] = r
	}

	return r
}

// AddStack registers h as a pending candidate at c. Pushing a heading that is
// already on the stack keeps its original position.
func (t *Tracker) AddStack(c core.Coordinate, h core.Heading) error {
	if !h.Valid() {
		return fmt.Errorf("%w: AddStack %v", core.ErrBadHeading, c)
	}
	r := t.get(c)
	for _, have := range r.stack {
		if have == h {
			return nil
		}
	}
	r.stack = append(r.stack, h)

	return nil
}

// AddReached marks h explored at c. Once reached, h never surfaces as pending again.
func (t *Tracker) AddReached(c core.Coordinate, h core.Heading) error {
	if !h.Valid() {
		return fmt.Errorf("%w: AddReached %v", core.ErrBadHeading, c)
	}
	t.get(c).reached[h] = true

	return nil
}

// MarkVisited appends c to the history on its first visit and reports whether
// this was the first visit.
func (t *Tracker) MarkVisited(c core.Coordinate) bool {
	if _, ok := t.visited[c]; ok {
		return false
	}
	t.visited[c] = struct{}{}
	t.history = append(t.history, c)

	return true
}

// Visited reports whether c was ever marked visited.
func (t *Tracker) Visited(c core.Coordinate) bool {
	_, ok := t.visited[c]

	return ok
}

// Reached reports whether h is marked explored at c.
func (t *Tracker) Reached(c core.Coordinate, h core.Heading) bool {
	r, ok := t.records[c]

	return ok && h.Valid() && r.reached[h]
}

// Pending returns the pushed-but-unreached headings at c, last pushed first.
func (t *Tracker) Pending(c core.Coordinate) []core.Heading {
	r, ok := t.records[c]
	if !ok {
		return nil
	}
	var out []core.Heading
	for i := len(r.stack) - 1; i >= 0; i-- {
		if h := r.stack[i]; !r.reached[h] {
			out = append(out, h)
		}
	}

	return out
}

// Next returns the heading to try next at c: the most recently pushed one that
// is not reached yet.
func (t *Tracker) Next(c core.Coordinate) (core.Heading, bool) {
	r, ok := t.records[c]
	if !ok {
		return 0, false
	}
	for i := len(r.stack) - 1; i >= 0; i-- {
		if h := r.stack[i]; !r.reached[h] {
			return h, true
		}
	}

	return 0, false
}

// State returns the exploration state of c.
func (t *Tracker) State(c core.Coordinate) NodeState {
	if !t.Visited(c) {
		return Unvisited
	}
	if _, ok := t.Next(c); ok {
		return Pending
	}

	return Explored
}

// History returns a copy of the visited coordinates in first-visit order.
func (t *Tracker) History() []core.Coordinate {
	out := make([]core.Coordinate, len(t.history))
	copy(out, t.history)

	return out
}

// Frontier returns every coordinate that still holds a pending heading, in
// canonical order.
func (t *Tracker) Frontier() []core.Coordinate {
	var out []core.Coordinate
	for c := range t.records {
		if _, ok := t.Next(c); ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
