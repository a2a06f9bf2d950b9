package sim_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/sim"
)

func c(x, y int) core.Coordinate { return core.Coordinate{X: x, Y: y} }

func p(x, y int, h core.Heading) core.Port { return core.Port{Coord: c(x, y), Heading: h} }

func loadRobolab(t *testing.T) *sim.Maze {
	t.Helper()
	m, err := sim.LoadMazeFile("testdata/robolab.yaml")
	require.NoError(t, err)

	return m
}

func TestLoadMaze_File(t *testing.T) {
	m := loadRobolab(t)

	assert.Equal(t, "Robolab", m.Name)
	assert.Equal(t, c(1, 1), m.Start)
	assert.True(t, m.HasTarget)
	assert.Equal(t, c(1, 6), m.Target)
	assert.Equal(t, 10, m.Truth().NodeCount())

	e, ok := m.Truth().Edge(p(3, 5, core.South))
	require.True(t, ok)
	assert.Equal(t, core.Edge{To: p(3, 4, core.North), Weight: 1}, e)

	e, ok = m.Truth().Edge(p(3, 2, core.East))
	require.True(t, ok)
	assert.True(t, e.Blocked())

	assert.Equal(t, []core.Heading{core.North, core.East, core.South}, m.Exits(c(3, 2)))
}

func TestLoadMaze_ShortHeadingsAndDegrees(t *testing.T) {
	doc := `
name: tiny
start: {x: 0, y: 0}
paths:
  - {from: {x: 0, y: 0, heading: n}, to: {x: 0, y: 1, heading: 180}, weight: 3}
`
	m, err := sim.LoadMaze(strings.NewReader(doc))
	require.NoError(t, err)
	assert.False(t, m.HasTarget)

	e, ok := m.Truth().Edge(p(0, 1, core.South))
	require.True(t, ok)
	assert.Equal(t, p(0, 0, core.North), e.To)
}

func TestLoadMaze_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"missing to": {
			doc:  "name: x\nstart: {x: 0, y: 0}\npaths:\n  - {from: {x: 0, y: 0, heading: N}, weight: 2}\n",
			want: sim.ErrMissingTo,
		},
		"bad weight": {
			doc:  "name: x\nstart: {x: 0, y: 0}\npaths:\n  - {from: {x: 0, y: 0, heading: N}, to: {x: 0, y: 1, heading: S}, weight: 0}\n",
			want: core.ErrBadWeight,
		},
		"start not mapped": {
			doc:  "name: x\nstart: {x: 5, y: 5}\npaths:\n  - {from: {x: 0, y: 0, heading: N}, weight: -1}\n",
			want: sim.ErrStartNotMapped,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sim.LoadMaze(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := sim.LoadMaze(strings.NewReader("name: x\nstart: {x: 0, y: 0}\ncolour: red\n"))
	require.Error(t, err, "unknown fields are rejected")

	_, err = sim.LoadMaze(strings.NewReader("name: x\nstart: {x: 0, y: 0}\npaths:\n  - {from: {x: 0, y: 0, heading: UP}, weight: -1}\n"))
	require.Error(t, err, "unknown heading")

	_, err = sim.LoadMazeFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestMaze_EncodeRoundTrip(t *testing.T) {
	m := loadRobolab(t)

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Contains(t, buf.String(), "heading: EAST")

	back, err := sim.LoadMaze(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Truth().Paths(), back.Truth().Paths())
	assert.Equal(t, m.Start, back.Start)
	assert.Equal(t, m.Target, back.Target)
}

func TestNewMaze_Validation(t *testing.T) {
	_, err := sim.NewMaze("x", c(0, 0), nil)
	require.ErrorIs(t, err, sim.ErrNilTruth)

	_, err = sim.NewMaze("x", c(0, 0), core.NewPathTable())
	require.ErrorIs(t, err, sim.ErrStartNotMapped)
}

func TestRobot_Drive(t *testing.T) {
	m := loadRobolab(t)
	r := sim.NewRobot(m)
	ctx := context.Background()

	require.Equal(t, []core.Heading{core.North, core.East}, r.Exits())

	arr, err := r.Drive(ctx, core.East)
	require.NoError(t, err)
	require.True(t, arr.Passable)
	assert.Equal(t, c(2, 1), arr.Position)
	assert.Equal(t, core.West, arr.Heading)
	assert.Equal(t, int64(1), arr.Weight)
	assert.Equal(t, []core.Heading{core.East, core.West}, arr.Exits)

	arr, err = r.Drive(ctx, core.North)
	require.NoError(t, err)
	assert.False(t, arr.Passable, "no corridor")
	assert.Equal(t, c(2, 1), r.Position())

	_, _ = r.Drive(ctx, core.East)
	arr, err = r.Drive(ctx, core.East)
	require.NoError(t, err)
	assert.False(t, arr.Passable, "blocked corridor")
	assert.Equal(t, c(3, 2), r.Position())
	assert.Equal(t, 4, r.Drives())

	_, err = r.Drive(ctx, core.Heading(7))
	require.ErrorIs(t, err, core.ErrBadHeading)
}

func TestRobot_DriveLoop(t *testing.T) {
	m := loadRobolab(t)
	r := sim.NewRobot(m)
	ctx := context.Background()

	for _, h := range []core.Heading{core.North, core.East, core.West} {
		_, err := r.Drive(ctx, h)
		require.NoError(t, err)
	}
	require.Equal(t, c(1, 3), r.Position())

	arr, err := r.Drive(ctx, core.West)
	require.NoError(t, err)
	assert.Equal(t, c(1, 3), arr.Position)
	assert.Equal(t, core.South, arr.Heading)
}

func TestRobot_Cancellation(t *testing.T) {
	m := loadRobolab(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.NewRobot(m).Drive(ctx, core.East)
	require.ErrorIs(t, err, context.Canceled)

	_, err = sim.NewRobot(m, sim.WithDelay(time.Hour)).Drive(ctx, core.East)
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() { sim.WithDelay(-time.Second)(&sim.Robot{}) })
}
