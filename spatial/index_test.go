package spatial_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/spatial"
)

func c(x, y int) core.Coordinate { return core.Coordinate{X: x, Y: y} }

func TestIndex_EmptyHasNoNearest(t *testing.T) {
	ix := spatial.NewIndex()
	_, ok := ix.Nearest(c(0, 0))
	require.False(t, ok)
	require.Zero(t, ix.Len())
}

func TestIndex_InsertIdempotent(t *testing.T) {
	ix := spatial.NewIndex()
	ix.Insert(c(1, 1))
	ix.Insert(c(1, 1))
	ix.Insert(c(2, 1))
	require.Equal(t, 2, ix.Len())
}

func TestIndex_Nearest(t *testing.T) {
	ix := spatial.NewIndex()
	for _, at := range []core.Coordinate{c(0, 0), c(5, 5), c(10, 0), c(-3, 4)} {
		ix.Insert(at)
	}

	got, ok := ix.Nearest(c(5, 5))
	require.True(t, ok)
	require.Equal(t, c(5, 5), got, "exact hit")

	got, _ = ix.Nearest(c(9, 1))
	require.Equal(t, c(10, 0), got)

	got, _ = ix.Nearest(c(-4, 6))
	require.Equal(t, c(-3, 4), got)
}

func TestIndex_NearestManyPoints(t *testing.T) {
	ix := spatial.NewIndex()
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y += 3 {
			ix.Insert(c(x, y))
		}
	}

	got, ok := ix.Nearest(c(17, 100))
	require.True(t, ok)
	require.Equal(t, c(17, 39), got)
}

func TestIndex_Within(t *testing.T) {
	ix := spatial.NewIndex()
	for _, at := range []core.Coordinate{c(0, 0), c(1, 2), c(2, 2), c(3, 3), c(0, 3)} {
		ix.Insert(at)
	}

	require.Equal(t, []core.Coordinate{c(0, 0), c(1, 2), c(2, 2)}, ix.Within(c(0, 0), c(2, 2)))
	require.Empty(t, ix.Within(c(5, 5), c(6, 6)))
}

func TestIndex_WithinIsOrdered(t *testing.T) {
	ix := spatial.NewIndex()
	for x := 9; x >= 0; x-- {
		for y := 9; y >= 0; y-- {
			ix.Insert(c(x, y))
		}
	}

	got := ix.Within(c(0, 0), c(9, 9))
	require.Len(t, got, 100)
	require.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Less(got[j]) }))
}
