// Package core_test verifies the Coordinate/Heading/Port algebra.
package core_test

import (
	"testing"

	"github.com/katalvlaran/robolab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading_Opposite(t *testing.T) {
	cases := map[core.Heading]core.Heading{
		core.North: core.South,
		core.East:  core.West,
		core.South: core.North,
		core.West:  core.East,
	}
	for h, want := range cases {
		assert.Equal(t, want, h.Opposite(), "opposite of %v", h)
		assert.Equal(t, h, h.Opposite().Opposite(), "double opposite of %v", h)
	}
}

func TestHeading_InvalidPanics(t *testing.T) {
	bad := core.Heading(7)
	require.False(t, bad.Valid())
	require.Panics(t, func() { _ = bad.Opposite() })
	require.Panics(t, func() { _ = bad.Degrees() })
	require.Equal(t, "Heading(7)", bad.String())
}

func TestParseHeading(t *testing.T) {
	for in, want := range map[string]core.Heading{
		"NORTH": core.North,
		"east":  core.East,
		" S ":   core.South,
		"w":     core.West,
		"90":    core.East,
		"270":   core.West,
	} {
		got, err := core.ParseHeading(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := core.ParseHeading("UP")
	require.ErrorIs(t, err, core.ErrBadHeading)
	_, err = core.HeadingFromDegrees(45)
	require.ErrorIs(t, err, core.ErrBadHeading)
}

func TestHeading_TextRoundTrip(t *testing.T) {
	for _, h := range core.Headings() {
		text, err := h.MarshalText()
		require.NoError(t, err)
		var back core.Heading
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, h, back)
	}
	_, err := core.Heading(9).MarshalText()
	require.ErrorIs(t, err, core.ErrBadHeading)
}

func TestHeading_Step(t *testing.T) {
	origin := core.Coordinate{X: 2, Y: 2}
	assert.Equal(t, core.Coordinate{X: 2, Y: 3}, core.North.Step(origin))
	assert.Equal(t, core.Coordinate{X: 3, Y: 2}, core.East.Step(origin))
	assert.Equal(t, core.Coordinate{X: 2, Y: 1}, core.South.Step(origin))
	assert.Equal(t, core.Coordinate{X: 1, Y: 2}, core.West.Step(origin))
}

func TestParseCoordinate(t *testing.T) {
	c, err := core.ParseCoordinate("(-3, 14)")
	require.NoError(t, err)
	require.Equal(t, core.Coordinate{X: -3, Y: 14}, c)
	require.Equal(t, "(-3,14)", c.String())

	for _, bad := range []string{"", "3", "a,b", "1,"} {
		_, err = core.ParseCoordinate(bad)
		require.ErrorIs(t, err, core.ErrBadCoordinate, bad)
	}
}

func TestCoordinate_Less(t *testing.T) {
	a := core.Coordinate{X: 0, Y: 5}
	b := core.Coordinate{X: 1, Y: -5}
	c := core.Coordinate{X: 1, Y: 0}
	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(c))
}

func TestRoute_StringAndWeight(t *testing.T) {
	tbl := core.NewPathTable()
	a := core.Port{Coord: core.Coordinate{X: 0, Y: 0}, Heading: core.North}
	b := core.Port{Coord: core.Coordinate{X: 0, Y: 1}, Heading: core.South}
	require.NoError(t, tbl.AddPath(a, b, 4))

	r := core.Route{a}
	require.Equal(t, "[(0,0)/NORTH]", r.String())
	w, ok := r.Weight(tbl)
	require.True(t, ok)
	require.Equal(t, int64(4), w)

	require.True(t, core.Route{}.Empty())
	_, ok = core.Route{{Coord: core.Coordinate{X: 9, Y: 9}, Heading: core.East}}.Weight(tbl)
	require.False(t, ok)
}
