// Command robolab explores a simulated maze planet and prints the map it built.
//
//	robolab -maze planet.yaml [-target 3,5]
//	robolab -grid 6x8 -seed 42 -blocked 0.3 [-dump maze.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/robolab/builder"
	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/explorer"
	"github.com/katalvlaran/robolab/planet"
	"github.com/katalvlaran/robolab/render"
	"github.com/katalvlaran/robolab/sim"
)

type cliArgs struct {
	mazeFile string
	grid     string
	seed     int64
	blocked  float64
	maxW     int64
	target   string
	maxSteps int
	dump     string
	verbose  bool
}

func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("robolab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&a.mazeFile, "maze", "", "YAML maze file to explore")
	fs.StringVar(&a.grid, "grid", "", "generate a ROWSxCOLS grid maze instead of -maze")
	fs.Int64Var(&a.seed, "seed", 1, "seed for -grid")
	fs.Float64Var(&a.blocked, "blocked", 0.25, "share of optional corridors blocked in -grid")
	fs.Int64Var(&a.maxW, "max-weight", 9, "largest corridor weight in -grid")
	fs.StringVar(&a.target, "target", "", "target coordinate x,y (overrides the maze file)")
	fs.IntVar(&a.maxSteps, "max-steps", 100_000, "abort after this many drives")
	fs.StringVar(&a.dump, "dump", "", "write the maze as YAML to this file, then exit")
	fs.BoolVar(&a.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return a, err
	}
	if (a.mazeFile == "") == (a.grid == "") {
		return a, errors.New("exactly one of -maze or -grid is required")
	}

	return a, nil
}

// parseGrid reads "ROWSxCOLS".
func parseGrid(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("grid %q: want ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("grid %q: %w", s, err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("grid %q: %w", s, err)
	}

	return rows, cols, nil
}

func loadMaze(a cliArgs) (*sim.Maze, error) {
	var m *sim.Maze
	if a.mazeFile != "" {
		var err error
		if m, err = sim.LoadMazeFile(a.mazeFile); err != nil {
			return nil, err
		}
	} else {
		rows, cols, err := parseGrid(a.grid)
		if err != nil {
			return nil, err
		}
		truth, err := builder.Grid(rows, cols,
			builder.WithSeed(a.seed),
			builder.WithWeightRange(1, a.maxW),
			builder.WithBlockedRatio(a.blocked),
		)
		if err != nil {
			return nil, err
		}
		if m, err = sim.NewMaze(fmt.Sprintf("grid-%dx%d-%d", rows, cols, a.seed), core.Coordinate{}, truth); err != nil {
			return nil, err
		}
	}

	if a.target != "" {
		t, err := core.ParseCoordinate(a.target)
		if err != nil {
			return nil, err
		}
		m.SetTarget(t)
	}

	return m, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m, err := loadMaze(a)
	if err != nil {
		return err
	}
	if a.dump != "" {
		f, err := os.Create(a.dump)
		if err != nil {
			return err
		}
		if err = m.Encode(f); err != nil {
			_ = f.Close()
			return err
		}

		return f.Close()
	}

	pl := planet.New(planet.WithName(m.Name), planet.WithLogger(logger))
	robot := sim.NewRobot(m)
	opts := []explorer.Option{
		explorer.WithLogger(logger),
		explorer.WithMaxSteps(a.maxSteps),
		explorer.WithRegisterer(prometheus.NewRegistry()),
	}
	marks := map[core.Coordinate]rune{m.Start: 'S'}
	if m.HasTarget {
		opts = append(opts, explorer.WithTargets(explorer.StaticTarget(m.Target)))
		marks[m.Target] = 'T'
	}
	ex, err := explorer.New(pl, robot, opts...)
	if err != nil {
		return err
	}

	res, runErr := ex.Run(ctx, m.Start, robot.Exits())
	marks[res.Position] = 'R'

	st := pl.Stats()
	fmt.Fprintf(stdout, "planet %s: %s at %v after %d drives (%d blocked)\n",
		m.Name, res.Outcome, res.Position, res.Steps, res.Blocked)
	fmt.Fprintf(stdout, "nodes %d, edges %d, visited %d, pending %d\n", st.Nodes, st.Edges, st.Visited, st.Pending)
	fmt.Fprintln(stdout, render.ASCII(pl.Paths(), marks))

	return runErr
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "robolab:", err)
		os.Exit(1)
	}
}
