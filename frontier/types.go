// Package frontier defines the per-node exploration state and the options of
// the frontier router.
package frontier

import (
	"errors"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/dijkstra"
)

// ErrNilTracker is returned by Router.Route when no tracker is supplied.
var ErrNilTracker = errors.New("frontier: tracker is nil")

// NodeState is the exploration state of a single coordinate.
//
//	Unvisited → Pending → Explored
//
// A node is Explored once every heading ever pushed for it is reached. Pushing a
// new heading onto an explored node moves it back to Pending.
type NodeState int

const (
	// Unvisited: the robot has never stood on this node.
	Unvisited NodeState = iota
	// Pending: visited, with at least one pushed heading not yet reached.
	Pending
	// Explored: visited, every pushed heading reached.
	Explored
)

// String returns the state name.
func (s NodeState) String() string {
	switch s {
	case Unvisited:
		return "UNVISITED"
	case Pending:
		return "PENDING"
	case Explored:
		return "EXPLORED"
	default:
		return "NodeState(?)"
	}
}

// Options configures the Router.
type Options struct {
	// Precedence breaks ties between equally near candidates (shared with dijkstra).
	Precedence [4]core.Heading

	// UnvisitedTargets makes mapped-but-never-visited nodes routing candidates:
	// their exits are unknown, so standing on them is itself exploration.
	UnvisitedTargets bool
}

// Option represents a functional option for configuring the Router.
type Option func(*Options)

// WithPrecedence overrides the tie-break order. Panics like dijkstra.WithPrecedence.
func WithPrecedence(order [4]core.Heading) Option {
	return func(o *Options) {
		if !dijkstra.ValidPrecedence(order) {
			panic(dijkstra.ErrBadPrecedence.Error())
		}
		o.Precedence = order
	}
}

// WithUnvisitedTargets toggles routing towards mapped but unvisited nodes.
func WithUnvisitedTargets(enabled bool) Option {
	return func(o *Options) {
		o.UnvisitedTargets = enabled
	}
}

// DefaultOptions returns dijkstra.DefaultPrecedence with unvisited targets enabled.
func DefaultOptions() Options {
	return Options{
		Precedence:       dijkstra.DefaultPrecedence,
		UnvisitedTargets: true,
	}
}
