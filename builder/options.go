// SPDX-License-Identifier: MIT
// Package: robolab/builder
//
// options.go - functional options and deterministic defaults.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return sentinel errors.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/robolab/core"
)

// Deterministic defaults.
const (
	defaultConstWeight = int64(1) // corridor weight without WithWeightRange/WithWeightFn
	minGridDim         = 1
	minRingNodes       = 3
)

// builderConfig aggregates all knobs used by constructors. Passed by value.
type builderConfig struct {
	rng          *rand.Rand
	weightFn     func(*rand.Rand) int64
	needsRand    bool // weightFn draws from rng
	blockedRatio float64
	origin       core.Coordinate
}

// BuilderOption customizes a constructor.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a private RNG; equal seeds give equal mazes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-corridor weight generator. The generator must
// return values ≥ 1. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.needsRand = false
	}
}

// WithWeightRange draws corridor weights uniformly from [min, max].
// Panics unless 1 ≤ min ≤ max. Requires an RNG when min < max.
func WithWeightRange(min, max int64) BuilderOption {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: WithWeightRange: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(c *builderConfig) {
		c.needsRand = min < max
		c.weightFn = func(rng *rand.Rand) int64 {
			if min == max {
				return min
			}

			return min + rng.Int63n(max-min+1)
		}
	}
}

// WithBlockedRatio turns roughly p of the corridors that are not needed for
// connectivity into blocked headings on both ends. Requires an RNG when p > 0.
// The ratio is validated by the constructor (ErrInvalidProbability).
func WithBlockedRatio(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.blockedRatio = p
	}
}

// WithOrigin shifts the generated maze so its lower-left node is at o.
func WithOrigin(o core.Coordinate) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// validate checks cross-option constraints.
func (c builderConfig) validate(method string) error {
	if c.blockedRatio < 0 || c.blockedRatio > 1 {
		return builderErrorf(method, "blocked ratio %g: %w", c.blockedRatio, ErrInvalidProbability)
	}
	if (c.blockedRatio > 0 || c.needsRand) && c.rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}

	return nil
}
