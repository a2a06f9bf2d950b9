package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/explorer"
)

// Robot is a simulated explorer.Driver moving over a Maze.
//
// A heading without a truth edge, or with a blocked one, is impassable and
// leaves the robot in place. Every visible heading is reported as an exit,
// blocked ones included: the robot only learns they are blocked by trying.
type Robot struct {
	mu     sync.Mutex
	maze   *Maze
	pos    core.Coordinate
	drives int
	delay  time.Duration
}

// RobotOption configures a Robot.
type RobotOption func(*Robot)

// WithDelay makes every Drive take d, honouring context cancellation.
func WithDelay(d time.Duration) RobotOption {
	return func(r *Robot) {
		if d < 0 {
			panic("sim: WithDelay must be non-negative")
		}
		r.delay = d
	}
}

// NewRobot places a robot on the maze start.
func NewRobot(m *Maze, opts ...RobotOption) *Robot {
	r := &Robot{maze: m, pos: m.Start}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Position returns the robot's current intersection.
func (r *Robot) Position() core.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pos
}

// Exits returns the headings visible at the current intersection.
func (r *Robot) Exits() []core.Heading {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.maze.Exits(r.pos)
}

// Drives returns how many Drive calls were made.
func (r *Robot) Drives() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.drives
}

// Drive implements explorer.Driver.
func (r *Robot) Drive(ctx context.Context, h core.Heading) (explorer.Arrival, error) {
	if !h.Valid() {
		return explorer.Arrival{}, fmt.Errorf("sim: drive: %w", core.ErrBadHeading)
	}
	if r.delay > 0 {
		select {
		case <-ctx.Done():
			return explorer.Arrival{}, ctx.Err()
		case <-time.After(r.delay):
		}
	} else if err := ctx.Err(); err != nil {
		return explorer.Arrival{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.drives++
	e, ok := r.maze.truth.Edge(core.Port{Coord: r.pos, Heading: h})
	if !ok || e.Blocked() {
		return explorer.Arrival{Passable: false}, nil
	}
	r.pos = e.To.Coord

	return explorer.Arrival{
		Passable: true,
		Position: e.To.Coord,
		Heading:  e.To.Heading,
		Weight:   e.Weight,
		Exits:    r.maze.Exits(e.To.Coord),
	}, nil
}

var _ explorer.Driver = (*Robot)(nil)
