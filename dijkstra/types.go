// Package dijkstra defines sentinel errors and configuration options for the
// shortest-route engine over a core.Reader.
//
// Options:
//
//	– MaxDistance: optional cap; routes longer than this are reported unreachable.
//	– Precedence:  heading order used to break ties between equal-weight routes.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the reader is nil.
//	– ErrUnknownCoordinate if a coordinate has no recorded edge.
//	– ErrUnreachable       if no traversable route exists.
//	– ErrBadMaxDistance    if MaxDistance < 0 (option panics).
//	– ErrBadPrecedence     if Precedence is not a permutation of the four headings (option panics).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/robolab/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil core.Reader was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownCoordinate indicates that a coordinate is not in the table.
	ErrUnknownCoordinate = errors.New("dijkstra: coordinate not mapped")

	// ErrUnreachable indicates that no route exists between two coordinates.
	// It is a normal outcome: callers branch on it with errors.Is and keep exploring.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadPrecedence indicates a tie-break order that is not a permutation of N, E, S, W.
	ErrBadPrecedence = errors.New("dijkstra: precedence must list each heading exactly once")
)

// DefaultPrecedence is the tie-break order between equal-weight routes:
// clockwise starting from East. Among all shortest routes the engine returns the
// one whose heading sequence is lexicographically smallest under this order.
var DefaultPrecedence = [4]core.Heading{core.East, core.South, core.West, core.North}

// Options configures the engine.
//
// MaxDistance – routes with total weight > MaxDistance are treated as unreachable.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Precedence  – heading order for deterministic tie-breaking.
type Options struct {
	MaxDistance int64
	Precedence  [4]core.Heading
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxDistance caps the explored distance. Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithPrecedence overrides the tie-break order. The order must be a permutation
// of the four headings; anything else panics with ErrBadPrecedence.
func WithPrecedence(order [4]core.Heading) Option {
	return func(o *Options) {
		if !ValidPrecedence(order) {
			panic(ErrBadPrecedence.Error())
		}
		o.Precedence = order
	}
}

// ValidPrecedence reports whether order lists each heading exactly once.
func ValidPrecedence(order [4]core.Heading) bool {
	var seen [4]bool
	for _, h := range order {
		if !h.Valid() || seen[h] {
			return false
		}
		seen[h] = true
	}

	return true
}

// DefaultOptions returns Options with no distance cap and DefaultPrecedence.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Precedence:  DefaultPrecedence,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
