package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robolab/builder"
	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/dijkstra"
)

func c(x, y int) core.Coordinate { return core.Coordinate{X: x, Y: y} }

func p(x, y int, h core.Heading) core.Port { return core.Port{Coord: c(x, y), Heading: h} }

func TestGrid_Shape(t *testing.T) {
	tbl, err := builder.Grid(3, 4)
	require.NoError(t, err)

	require.Equal(t, 12, tbl.NodeCount())
	require.Equal(t, 2*17, tbl.EdgeCount())

	e, ok := tbl.Edge(p(1, 1, core.East))
	require.True(t, ok)
	require.Equal(t, core.Edge{To: p(2, 1, core.West), Weight: 1}, e)

	e, ok = tbl.Edge(p(3, 1, core.North))
	require.True(t, ok)
	require.Equal(t, p(3, 2, core.South), e.To)

	require.Equal(t, []core.Heading{core.North, core.East}, tbl.Headings(c(0, 0)))
	require.Equal(t, []core.Heading{core.South, core.West}, tbl.Headings(c(3, 2)))
}

func TestGrid_Origin(t *testing.T) {
	tbl, err := builder.Grid(2, 2, builder.WithOrigin(c(-5, 10)))
	require.NoError(t, err)
	require.Equal(t, []core.Coordinate{c(-5, 10), c(-5, 11), c(-4, 10), c(-4, 11)}, tbl.Nodes())
}

func TestGrid_WeightRange(t *testing.T) {
	tbl, err := builder.Grid(5, 5, builder.WithSeed(7), builder.WithWeightRange(2, 5))
	require.NoError(t, err)
	for c, hs := range tbl.Paths() {
		for h, e := range hs {
			require.GreaterOrEqual(t, e.Weight, int64(2), "%v/%v", c, h)
			require.LessOrEqual(t, e.Weight, int64(5), "%v/%v", c, h)
		}
	}
}

func TestGrid_BlockedStaysConnected(t *testing.T) {
	tbl, err := builder.Grid(6, 6, builder.WithSeed(3), builder.WithBlockedRatio(1))
	require.NoError(t, err)

	dist, err := dijkstra.Distances(tbl, c(0, 0))
	require.NoError(t, err)
	require.Len(t, dist, 36)

	blocked := 0
	for _, hs := range tbl.Paths() {
		for _, e := range hs {
			if e.Blocked() {
				blocked++
			}
		}
	}
	// 60 corridors, 35 in the spanning tree, every other one blocked at both ends.
	require.Equal(t, 2*(60-35), blocked)
}

func TestGrid_Deterministic(t *testing.T) {
	a, err := builder.Grid(8, 5, builder.WithSeed(11), builder.WithWeightRange(1, 9), builder.WithBlockedRatio(0.4))
	require.NoError(t, err)
	b, err := builder.Grid(8, 5, builder.WithRand(rand.New(rand.NewSource(11))),
		builder.WithWeightRange(1, 9), builder.WithBlockedRatio(0.4))
	require.NoError(t, err)
	require.Equal(t, a.Paths(), b.Paths())
}

func TestGrid_Errors(t *testing.T) {
	_, err := builder.Grid(1, 1)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.Grid(0, 5)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.Grid(2, 2, builder.WithBlockedRatio(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Grid(2, 2, builder.WithWeightRange(1, 3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Grid(2, 2, builder.WithSeed(1), builder.WithBlockedRatio(1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Grid(2, 2, builder.WithWeightRange(4, 4))
	require.NoError(t, err, "a constant range needs no RNG")
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithWeightRange(0, 3) })
	require.Panics(t, func() { builder.WithWeightRange(5, 3) })
}

func TestRing_OppositePaths(t *testing.T) {
	coords := []core.Coordinate{c(1, 6), c(3, 5), c(3, 4), c(3, 2), c(2, 1), c(1, 1)}
	tbl, err := builder.Ring(coords, []int64{3, 1, 2, 2, 1, 20})
	require.NoError(t, err)
	require.Equal(t, 6, tbl.NodeCount())
	require.Equal(t, 12, tbl.EdgeCount())

	for _, pair := range [][2]core.Coordinate{{c(1, 6), c(1, 1)}, {c(1, 1), c(1, 6)}} {
		route, err := dijkstra.ShortestPath(tbl, pair[0], pair[1])
		require.NoError(t, err)
		require.Len(t, route, 5)
		w, ok := route.Weight(tbl)
		require.True(t, ok)
		require.Equal(t, int64(9), w)
	}

	e, ok := tbl.Edge(p(3, 2, core.West))
	require.True(t, ok, "diagonal hop leaves horizontally")
	require.Equal(t, p(2, 1, core.East), e.To)
}

func TestRing_Errors(t *testing.T) {
	_, err := builder.Ring([]core.Coordinate{c(0, 0), c(1, 0)}, []int64{1, 1})
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.Ring([]core.Coordinate{c(0, 0), c(1, 0), c(1, 1)}, []int64{1, 1})
	require.ErrorIs(t, err, builder.ErrWeightCount)

	_, err = builder.Ring([]core.Coordinate{c(0, 0), c(1, 0), c(0, 0)}, []int64{1, 1, 1})
	require.ErrorIs(t, err, builder.ErrDuplicateCoordinate)

	_, err = builder.Ring([]core.Coordinate{c(0, 0), c(2, 0), c(1, 0)}, []int64{1, 1, 1})
	require.ErrorIs(t, err, builder.ErrPortConflict)

	_, err = builder.Ring([]core.Coordinate{c(0, 0), c(1, 0), c(1, 1)}, []int64{1, 0, 1})
	require.ErrorIs(t, err, core.ErrBadWeight)
}
