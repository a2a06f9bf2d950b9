package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robolab/sim"
)

func TestParseGrid(t *testing.T) {
	rows, cols, err := parseGrid("4x7")
	require.NoError(t, err)
	require.Equal(t, 4, rows)
	require.Equal(t, 7, cols)

	_, _, err = parseGrid("4by7")
	require.Error(t, err)
	_, _, err = parseGrid("ax7")
	require.Error(t, err)
}

func TestParseArgs_NeedsOneSource(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseArgs(nil, &stderr)
	require.Error(t, err)
	_, err = parseArgs([]string{"-maze", "a.yaml", "-grid", "2x2"}, &stderr)
	require.Error(t, err)
}

func TestRun_MazeFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-maze", "../../sim/testdata/robolab.yaml"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "planet Robolab: target reached at (1,6)")
	require.Contains(t, stderr.String(), "mission finished")
}

func TestRun_GridMappingComplete(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-grid", "3x3", "-seed", "5"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "mapping complete")
	require.Contains(t, stdout.String(), "nodes 9")
}

func TestRun_DumpRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "maze.yaml")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-grid", "2x3", "-seed", "9", "-target", "2,1", "-dump", out},
		&stdout, &stderr)
	require.NoError(t, err)
	require.Empty(t, stdout.String())

	m, err := sim.LoadMazeFile(out)
	require.NoError(t, err)
	require.Equal(t, 6, m.Truth().NodeCount())
	require.True(t, m.HasTarget)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestRun_StepLimit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-grid", "4x4", "-max-steps", "2"}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, stdout.String(), "after 2 drives")
}
