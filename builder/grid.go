// SPDX-License-Identifier: MIT
// Package: robolab/builder
//
// grid.go - Grid(rows, cols): a rectangular maze of unit-spaced intersections.
//
// Canonical model:
//   • Nodes (x, y) for x ∈ [0, cols), y ∈ [0, rows), shifted by WithOrigin.
//   • Corridors join axis neighbours: (x,y)/EAST ↔ (x+1,y)/WEST and
//     (x,y)/NORTH ↔ (x,y+1)/SOUTH.
//   • WithBlockedRatio(p): a random spanning tree is kept open; each other
//     corridor is, with probability p, replaced by a blocked heading on both ends.
//     The maze therefore always stays connected.
//
// Determinism:
//   • Corridors are enumerated row by row, EAST before NORTH.
//   • Weights are drawn in that order, then the tree is drawn; same seed, same maze.
//
// Complexity:
//   • Time: O(rows*cols * α(rows*cols)); Space: O(rows*cols).

package builder

import (
	"github.com/katalvlaran/robolab/core"
)

const methodGrid = "Grid"

// corridor is one undirected connection between two ports.
type corridor struct {
	a, b   core.Port
	weight int64
}

// Grid returns the truth table of a rows×cols maze.
func Grid(rows, cols int, opts ...BuilderOption) (*core.PathTable, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early.
	if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
		return nil, builderErrorf(methodGrid, "rows=%d, cols=%d (need at least two nodes): %w",
			rows, cols, ErrTooFewNodes)
	}
	if err := cfg.validate(methodGrid); err != nil {
		return nil, err
	}

	// 2) Enumerate corridors with their weights.
	id := func(x, y int) int { return y*cols + x }
	at := func(x, y int) core.Coordinate {
		return core.Coordinate{X: cfg.origin.X + x, Y: cfg.origin.Y + y}
	}
	var all []corridor
	var ends [][2]int
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x+1 < cols {
				all = append(all, corridor{
					a:      core.Port{Coord: at(x, y), Heading: core.East},
					b:      core.Port{Coord: at(x+1, y), Heading: core.West},
					weight: cfg.weightFn(cfg.rng),
				})
				ends = append(ends, [2]int{id(x, y), id(x+1, y)})
			}
			if y+1 < rows {
				all = append(all, corridor{
					a:      core.Port{Coord: at(x, y), Heading: core.North},
					b:      core.Port{Coord: at(x, y+1), Heading: core.South},
					weight: cfg.weightFn(cfg.rng),
				})
				ends = append(ends, [2]int{id(x, y), id(x, y+1)})
			}
		}
	}

	// 3) Choose which corridors may be blocked.
	blocked := make([]bool, len(all))
	if cfg.blockedRatio > 0 {
		inTree := spanningTree(rows*cols, ends, cfg.rng.Perm(len(all)))
		for i := range all {
			if !inTree[i] && cfg.rng.Float64() < cfg.blockedRatio {
				blocked[i] = true
			}
		}
	}

	// 4) Emit.
	tbl := core.NewPathTable()
	for i, c := range all {
		if blocked[i] {
			if err := tbl.AddPath(c.a, c.a, core.BlockedWeight); err != nil {
				return nil, builderErrorf(methodGrid, "AddPath(%v): %w", c.a, err)
			}
			if err := tbl.AddPath(c.b, c.b, core.BlockedWeight); err != nil {
				return nil, builderErrorf(methodGrid, "AddPath(%v): %w", c.b, err)
			}
			continue
		}
		if err := tbl.AddPath(c.a, c.b, c.weight); err != nil {
			return nil, builderErrorf(methodGrid, "AddPath(%v→%v, w=%d): %w", c.a, c.b, c.weight, err)
		}
	}

	return tbl, nil
}

// spanningTree runs Kruskal over the corridors in the given order and reports
// which ones joined two components.
func spanningTree(n int, ends [][2]int, order []int) []bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}

		return v
	}

	in := make([]bool, len(ends))
	for _, i := range order {
		ru, rv := find(ends[i][0]), find(ends[i][1])
		if ru == rv {
			continue
		}
		parent[ru] = rv
		in[i] = true
	}

	return in
}
