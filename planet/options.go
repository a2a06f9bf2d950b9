package planet

import (
	"log/slog"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/dijkstra"
)

// Options configures a Planet.
type Options struct {
	// Name labels the planet in logs.
	Name string

	// Logger receives debug records for every mutation. Defaults to slog.Default().
	Logger *slog.Logger

	// Precedence orders headings for every tie-break (routes and frontier choice).
	Precedence [4]core.Heading

	// UnvisitedTargets lets DepthFirstSearch route to mapped but never visited nodes.
	UnvisitedTargets bool
}

// Option represents a functional option for configuring a Planet.
type Option func(*Options)

// WithName sets the planet name.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic("planet: WithLogger(nil)")
		}
		o.Logger = l
	}
}

// WithPrecedence sets the heading tie-break order. Panics unless order is a
// permutation of the four headings.
func WithPrecedence(order [4]core.Heading) Option {
	return func(o *Options) {
		if !dijkstra.ValidPrecedence(order) {
			panic(dijkstra.ErrBadPrecedence.Error())
		}
		o.Precedence = order
	}
}

// WithUnvisitedTargets toggles routing to mapped but unvisited nodes.
func WithUnvisitedTargets(enabled bool) Option {
	return func(o *Options) {
		o.UnvisitedTargets = enabled
	}
}

// DefaultOptions returns the zero-config planet settings.
func DefaultOptions() Options {
	return Options{
		Name:             "unnamed",
		Logger:           slog.Default(),
		Precedence:       dijkstra.DefaultPrecedence,
		UnvisitedTargets: true,
	}
}
