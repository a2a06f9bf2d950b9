// File: view.go
// Role: Non-mutating snapshot of a PathTable.
// Concurrency:
//   - A Paths value is a private copy; reading it needs no lock.

package core

// Paths is a read-only snapshot of a PathTable: Coordinate → (Heading → Edge).
// Mutating it has no effect on the table it was taken from.
type Paths map[Coordinate]map[Heading]Edge

// HasNode reports whether c has at least one recorded edge.
func (p Paths) HasNode(c Coordinate) bool {
	_, ok := p[c]

	return ok
}

// Nodes returns all coordinates in canonical order.
func (p Paths) Nodes() []Coordinate { return sortedNodes(p) }

// Edge returns the edge stored under port.
func (p Paths) Edge(port Port) (Edge, bool) {
	e, ok := p[port.Coord][port.Heading]

	return e, ok
}

// Headings returns the headings recorded at c in N, E, S, W order.
func (p Paths) Headings(c Coordinate) []Heading { return sortedHeadings(p[c]) }

// Compile-time checks that both implementations satisfy Reader.
var (
	_ Reader = (*PathTable)(nil)
	_ Reader = Paths(nil)
)
