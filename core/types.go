// Package core defines the primitive model of a maze planet: Coordinate,
// Heading, Port, Route and Edge, together with the PathTable that records
// every corridor the robot has confirmed.
//
// This file declares the value types, their algebra, and the sentinel errors
// shared by the rest of the module.
//
// Errors:
//
//	ErrBadHeading    - heading outside NORTH/EAST/SOUTH/WEST.
//	ErrBadWeight     - weight is neither ≥ 1 nor the blocked sentinel −1.
//	ErrBadCoordinate - textual coordinate could not be parsed.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for core operations.
var (
	// ErrBadHeading indicates a Heading outside the four canonical values.
	ErrBadHeading = errors.New("core: heading must be NORTH, EAST, SOUTH or WEST")

	// ErrBadWeight indicates a corridor weight that is neither traversable (≥ 1)
	// nor the blocked sentinel (−1).
	ErrBadWeight = errors.New("core: weight must be >= 1 or -1 (blocked)")

	// ErrBadCoordinate indicates a textual coordinate that is not of the form "x,y".
	ErrBadCoordinate = errors.New("core: coordinate must be of the form x,y")
)

// BlockedWeight is the sentinel weight of a confirmed-impassable heading.
// A blocked heading is stored as a self-loop Port→Port edge.
const BlockedWeight int64 = -1

// Coordinate addresses one intersection of the unbounded integer grid.
type Coordinate struct {
	X int
	Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Less reports whether c sorts before o in canonical order (X asc, then Y asc).
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}

	return c.Y < o.Y
}

// ParseCoordinate parses "x,y" (surrounding parentheses and spaces allowed).
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	return Coordinate{X: x, Y: y}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseCoordinate.
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler as "x,y".
func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)), nil
}

// Heading is one of the four cardinal exits of an intersection.
type Heading uint8

const (
	// North points towards increasing Y.
	North Heading = iota
	// East points towards increasing X.
	East
	// South points towards decreasing Y.
	South
	// West points towards decreasing X.
	West

	headingCount = 4
)

// Lookup tables indexed by Heading. They are the whole of the heading algebra.
var (
	headingNames    = [headingCount]string{"NORTH", "EAST", "SOUTH", "WEST"}
	headingOpposite = [headingCount]Heading{South, West, North, East}
	headingDegrees  = [headingCount]int{0, 90, 180, 270}
	headingDelta    = [headingCount][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// Headings returns the four headings in declaration order (N, E, S, W).
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// Valid reports whether h is one of the four canonical headings.
func (h Heading) Valid() bool { return h < headingCount }

// Opposite maps NORTH↔SOUTH and EAST↔WEST.
// It panics on an invalid heading: that is a programming error.
func (h Heading) Opposite() Heading {
	mustValid(h)

	return headingOpposite[h]
}

// Degrees returns the robot's native angle for h: 0, 90, 180 or 270.
func (h Heading) Degrees() int {
	mustValid(h)

	return headingDegrees[h]
}

// Step returns the grid neighbour one unit away from c in direction h.
// Corridors may bend, so this is only the straight-line neighbour.
func (h Heading) Step(c Coordinate) Coordinate {
	mustValid(h)
	d := headingDelta[h]

	return Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
}

// String returns "NORTH", "EAST", "SOUTH" or "WEST" (or "Heading(n)" if invalid).
func (h Heading) String() string {
	if !h.Valid() {
		return "Heading(" + strconv.Itoa(int(h)) + ")"
	}

	return headingNames[h]
}

// MarshalText implements encoding.TextMarshaler.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadHeading, h)
	}

	return []byte(headingNames[h]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseHeading.
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed

	return nil
}

// ParseHeading accepts a heading name (any case, full or single letter) or
// its angle in degrees.
func ParseHeading(s string) (Heading, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range headingNames {
		if s == name || s == name[:1] {
			return Heading(i), nil
		}
	}
	if deg, err := strconv.Atoi(s); err == nil {
		return HeadingFromDegrees(deg)
	}

	return 0, fmt.Errorf("%w: %q", ErrBadHeading, s)
}

// HeadingFromDegrees converts 0/90/180/270 into a Heading.
func HeadingFromDegrees(deg int) (Heading, error) {
	for i, d := range headingDegrees {
		if d == deg {
			return Heading(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %d degrees", ErrBadHeading, deg)
}

func mustValid(h Heading) {
	if !h.Valid() {
		panic(fmt.Sprintf("%v: %d", ErrBadHeading, h))
	}
}

// Port is a (Coordinate, Heading) pair: the key of an edge and one step of a Route.
type Port struct {
	Coord   Coordinate
	Heading Heading
}

// String renders the port as "(x,y)/HEADING".
func (p Port) String() string {
	return p.Coord.String() + "/" + p.Heading.String()
}

// Valid reports whether the port's heading is canonical.
func (p Port) Valid() bool { return p.Heading.Valid() }

// Route is an ordered sequence of Ports: at each node, the heading to take.
// An empty Route means "nothing to do" and is distinct from an unreachable result.
type Route []Port

// Empty reports whether the route has no steps.
func (r Route) Empty() bool { return len(r) == 0 }

// Weight sums the recorded corridor weights along r.
// Steps without a traversable edge in g contribute nothing and make ok false.
func (r Route) Weight(g Reader) (total int64, ok bool) {
	ok = true
	for _, p := range r {
		e, found := g.Edge(p)
		if !found || e.Blocked() {
			ok = false
			continue
		}
		total += e.Weight
	}

	return total, ok
}

// String renders the route as "[(0,0)/NORTH (0,1)/EAST]".
func (r Route) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Edge is the directed record stored under a source Port.
type Edge struct {
	// To is the port the corridor arrives at.
	To Port

	// Weight is the corridor cost (≥ 1), or BlockedWeight for an impassable heading.
	Weight int64
}

// Blocked reports whether the edge is the impassable sentinel.
func (e Edge) Blocked() bool { return e.Weight == BlockedWeight }

// Reader is the read-only view shared by PathTable and Paths snapshots.
// Algorithms accept a Reader so they run on live tables and snapshots alike.
type Reader interface {
	// HasNode reports whether c has at least one recorded edge.
	HasNode(c Coordinate) bool

	// Nodes returns every recorded coordinate in canonical order.
	Nodes() []Coordinate

	// Edge returns the edge stored under p, if any.
	Edge(p Port) (Edge, bool)

	// Headings returns the headings with a recorded edge at c, in N, E, S, W order.
	Headings(c Coordinate) []Heading
}
