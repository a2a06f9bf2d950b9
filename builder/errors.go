// SPDX-License-Identifier: MIT
// Package: robolab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors never panic at runtime; option constructors do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that rows, cols or the ring length is below the minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a ratio outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic option (blocked ratio, weight
// range) was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrWeightCount indicates that Ring got a different number of weights than coordinates.
var ErrWeightCount = errors.New("builder: one weight per ring hop required")

// ErrDuplicateCoordinate indicates a coordinate listed twice in a Ring.
var ErrDuplicateCoordinate = errors.New("builder: duplicate coordinate")

// ErrPortConflict indicates that two Ring hops would leave one node through the
// same heading.
var ErrPortConflict = errors.New("builder: heading already used at node")

// builderErrorf prefixes a wrapped error with the constructor name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
