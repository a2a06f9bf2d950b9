// SPDX-License-Identifier: MIT
// Package: robolab/builder
//
// ring.go - Ring(coords, weights): a closed loop through arbitrary coordinates.
//
// Contract:
//   • len(coords) ≥ 3 (ErrTooFewNodes); len(weights) == len(coords) (ErrWeightCount).
//   • Hop i joins coords[i] and coords[(i+1) % n] with weights[i].
//   • Each end leaves toward the other along the dominant axis (ties: horizontal).
//   • A node may not use one heading twice (ErrPortConflict); coordinates are
//     distinct (ErrDuplicateCoordinate); weights follow core.AddPath rules.

package builder

import (
	"github.com/katalvlaran/robolab/core"
)

const methodRing = "Ring"

// Ring returns the truth table of a single cycle through coords.
func Ring(coords []core.Coordinate, weights []int64) (*core.PathTable, error) {
	n := len(coords)

	// 1) Validate.
	if n < minRingNodes {
		return nil, builderErrorf(methodRing, "n=%d (need ≥ %d): %w", n, minRingNodes, ErrTooFewNodes)
	}
	if len(weights) != n {
		return nil, builderErrorf(methodRing, "%d coordinates, %d weights: %w", n, len(weights), ErrWeightCount)
	}
	seen := make(map[core.Coordinate]struct{}, n)
	for _, c := range coords {
		if _, dup := seen[c]; dup {
			return nil, builderErrorf(methodRing, "%v: %w", c, ErrDuplicateCoordinate)
		}
		seen[c] = struct{}{}
	}

	// 2) Assign ports, rejecting reuse.
	used := make(map[core.Port]struct{}, 2*n)
	claim := func(p core.Port) error {
		if _, taken := used[p]; taken {
			return builderErrorf(methodRing, "%v: %w", p, ErrPortConflict)
		}
		used[p] = struct{}{}

		return nil
	}

	tbl := core.NewPathTable()
	for i := 0; i < n; i++ {
		from, to := coords[i], coords[(i+1)%n]
		a := core.Port{Coord: from, Heading: toward(from, to)}
		b := core.Port{Coord: to, Heading: toward(to, from)}
		if err := claim(a); err != nil {
			return nil, err
		}
		if err := claim(b); err != nil {
			return nil, err
		}
		if err := tbl.AddPath(a, b, weights[i]); err != nil {
			return nil, builderErrorf(methodRing, "hop %d: %w", i, err)
		}
	}

	return tbl, nil
}

// toward picks the heading from a that points at b along the dominant axis.
func toward(a, b core.Coordinate) core.Heading {
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return core.East
		}

		return core.West
	}
	if dy > 0 {
		return core.North
	}

	return core.South
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
