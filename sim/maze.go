// File: maze.go
// Role: Ground-truth maze: a complete PathTable plus start and optional target,
//       loadable from and dumpable to YAML.
// Determinism:
//   - Encode emits corridors in canonical port order, each corridor once.

package sim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/robolab/core"
)

// Sentinel errors for maze construction.
var (
	// ErrNilTruth is returned when a maze is built without a path table.
	ErrNilTruth = errors.New("sim: truth table is nil")

	// ErrStartNotMapped is returned when the start has no corridor in the truth table.
	ErrStartNotMapped = errors.New("sim: start coordinate has no recorded heading")

	// ErrMissingTo is returned by LoadMaze for a traversable path without a "to" port.
	ErrMissingTo = errors.New("sim: traversable path needs a to port")
)

// Maze is the full map the simulated robot drives on.
type Maze struct {
	Name      string
	Start     core.Coordinate
	Target    core.Coordinate
	HasTarget bool

	truth *core.PathTable
}

// NewMaze wraps a complete truth table.
func NewMaze(name string, start core.Coordinate, truth *core.PathTable) (*Maze, error) {
	if truth == nil {
		return nil, ErrNilTruth
	}
	if !truth.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotMapped, start)
	}

	return &Maze{Name: name, Start: start, truth: truth}, nil
}

// SetTarget sets the mission target.
func (m *Maze) SetTarget(c core.Coordinate) {
	m.Target, m.HasTarget = c, true
}

// Truth returns the ground-truth table.
func (m *Maze) Truth() *core.PathTable { return m.truth }

// Exits returns every heading of c that has a truth edge, blocked ones included,
// in N, E, S, W order.
func (m *Maze) Exits(c core.Coordinate) []core.Heading { return m.truth.Headings(c) }

// YAML document shape.
type (
	coordDoc struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	}
	portDoc struct {
		X       int          `yaml:"x"`
		Y       int          `yaml:"y"`
		Heading core.Heading `yaml:"heading"`
	}
	pathDoc struct {
		From   portDoc  `yaml:"from"`
		To     *portDoc `yaml:"to,omitempty"`
		Weight int64    `yaml:"weight"`
	}
	mazeDoc struct {
		Name   string    `yaml:"name"`
		Start  coordDoc  `yaml:"start"`
		Target *coordDoc `yaml:"target,omitempty"`
		Paths  []pathDoc `yaml:"paths"`
	}
)

func (p portDoc) port() core.Port {
	return core.Port{Coord: core.Coordinate{X: p.X, Y: p.Y}, Heading: p.Heading}
}

func toPortDoc(p core.Port) portDoc {
	return portDoc{X: p.Coord.X, Y: p.Coord.Y, Heading: p.Heading}
}

// LoadMaze decodes a YAML maze. Unknown fields are rejected.
//
//	name: Hasselhoff
//	start: {x: 0, y: 0}
//	target: {x: 2, y: 2}        # optional
//	paths:
//	  - {from: {x: 0, y: 0, heading: N}, to: {x: 0, y: 1, heading: S}, weight: 4}
//	  - {from: {x: 0, y: 1, heading: EAST}, weight: -1}   # blocked
func LoadMaze(r io.Reader) (*Maze, error) {
	var doc mazeDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("sim: decode maze: %w", err)
	}

	truth := core.NewPathTable()
	for i, pd := range doc.Paths {
		from := pd.From.port()
		to := from
		switch {
		case pd.To != nil:
			to = pd.To.port()
		case pd.Weight != core.BlockedWeight:
			return nil, fmt.Errorf("%w: paths[%d] from %v", ErrMissingTo, i, from)
		}
		if err := truth.AddPath(from, to, pd.Weight); err != nil {
			return nil, fmt.Errorf("sim: paths[%d]: %w", i, err)
		}
	}

	m, err := NewMaze(doc.Name, core.Coordinate{X: doc.Start.X, Y: doc.Start.Y}, truth)
	if err != nil {
		return nil, err
	}
	if doc.Target != nil {
		m.SetTarget(core.Coordinate{X: doc.Target.X, Y: doc.Target.Y})
	}

	return m, nil
}

// LoadMazeFile opens path and decodes it with LoadMaze.
func LoadMazeFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sim: open maze: %w", err)
	}
	defer f.Close()

	return LoadMaze(f)
}

// Encode writes m as YAML that LoadMaze accepts.
func (m *Maze) Encode(w io.Writer) error {
	doc := mazeDoc{
		Name:  m.Name,
		Start: coordDoc{X: m.Start.X, Y: m.Start.Y},
		Paths: []pathDoc{},
	}
	if m.HasTarget {
		doc.Target = &coordDoc{X: m.Target.X, Y: m.Target.Y}
	}

	for _, c := range m.truth.Nodes() {
		for _, h := range m.truth.Headings(c) {
			from := core.Port{Coord: c, Heading: h}
			e, _ := m.truth.Edge(from)
			if e.Blocked() {
				doc.Paths = append(doc.Paths, pathDoc{From: toPortDoc(from), Weight: e.Weight})
				continue
			}
			if portLess(e.To, from) {
				continue // emitted from the other end
			}
			to := toPortDoc(e.To)
			doc.Paths = append(doc.Paths, pathDoc{From: toPortDoc(from), To: &to, Weight: e.Weight})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("sim: encode maze: %w", err)
	}

	return enc.Close()
}

func portLess(a, b core.Port) bool {
	if a.Coord != b.Coord {
		return a.Coord.Less(b.Coord)
	}

	return a.Heading < b.Heading
}
