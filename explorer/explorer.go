// File: explorer.go
// Role: The robot control loop: feed what the robot senses into the planet,
//       ask it where to go, drive there, repeat until the mission ends.
// Concurrency:
//   - Run is sequential and is the planet's single writer. Other goroutines
//     may read the planet (Paths, ShortestPath) while Run is in progress.
// Cancellation:
//   - ctx is checked before every Drive and passed to the driver. The planet
//     stays inspectable after an aborted Run.

package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/dijkstra"
	"github.com/katalvlaran/robolab/planet"
)

// planner labels, also used as metric label values.
const (
	plannerShortest = "shortest"
	plannerFrontier = "frontier"
)

// Explorer drives a robot over an unknown maze, mapping it into a Planet.
type Explorer struct {
	planet *planet.Planet
	driver Driver
	opts   Options
	log    *slog.Logger
	m      *metrics
}

// decision is the outcome of one planning round.
type decision struct {
	route     core.Route
	planner   string
	hasTarget bool
	onTarget  bool
}

// New wires an Explorer to a planet and a driver.
func New(p *planet.Planet, d Driver, opts ...Option) (*Explorer, error) {
	if p == nil {
		return nil, ErrNilPlanet
	}
	if d == nil {
		return nil, ErrNilDriver
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Explorer{
		planet: p,
		driver: d,
		opts:   cfg,
		log:    cfg.Logger.With(slog.String("component", "explorer"), slog.String("planet", p.Name())),
		m:      newMetrics(cfg.Registerer),
	}, nil
}

// Run explores from start, where the robot currently sees exits.
//
// Steps:
//  1. Mark start visited and push its exits.
//  2. Plan: with a target, the known shortest route to it; otherwise, or when
//     the target is not reachable over known corridors, the next frontier route.
//  3. Stop on target, or when the frontier route is empty.
//  4. Drive the route step by step, recording each corridor or blocked heading,
//     and replan after anything new is learned.
//
// The returned Result is meaningful even alongside an error.
func (e *Explorer) Run(ctx context.Context, start core.Coordinate, exits []core.Heading) (Result, error) {
	res := Result{Position: start}

	// 1) Starting intersection has no arrival heading.
	if _, err := e.arrive(start, nil, exits); err != nil {
		return res, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// 2) Plan.
		d, err := e.plan(ctx, res.Position)
		if err != nil {
			return res, err
		}

		// 3) Mission end.
		switch {
		case d.onTarget:
			res.Outcome = TargetReached
			e.finish(res)

			return res, nil
		case d.route.Empty() && d.hasTarget:
			res.Outcome = TargetUnreachable
			e.finish(res)

			return res, nil
		case d.route.Empty():
			res.Outcome = MappingComplete
			e.finish(res)

			return res, nil
		}

		// 4) Follow.
		if err = e.follow(ctx, d.route, &res); err != nil {
			return res, err
		}
	}
}

// plan picks the next route from pos, inside one trace span.
func (e *Explorer) plan(ctx context.Context, pos core.Coordinate) (decision, error) {
	_, span := e.opts.Tracer.Start(ctx, "explorer.Explorer.plan",
		trace.WithAttributes(attribute.String("position", pos.String())),
	)
	defer span.End()

	var d decision
	target, ok := e.opts.Targets.Target()
	if ok {
		d.hasTarget = true
		span.SetAttributes(attribute.String("target", target.String()))
		if target == pos {
			d.onTarget = true
			span.SetStatus(codes.Ok, "on target")

			return d, nil
		}

		route, err := e.planet.ShortestPath(pos, target)
		switch {
		case err == nil:
			d.route, d.planner = route, plannerShortest
		case errors.Is(err, dijkstra.ErrUnreachable):
			span.AddEvent("target_not_mapped")
		default:
			span.RecordError(err)
			span.SetStatus(codes.Error, "shortest path failed")

			return d, err
		}
	}

	if d.planner == "" {
		route, err := e.planet.DepthFirstSearch(pos)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "frontier search failed")

			return d, err
		}
		d.route, d.planner = route, plannerFrontier
	}

	e.m.routes.WithLabelValues(d.planner).Inc()
	span.SetAttributes(
		attribute.String("planner", d.planner),
		attribute.Int("route_len", len(d.route)),
	)
	span.SetStatus(codes.Ok, d.planner)
	e.log.Debug("plan", slog.String("at", pos.String()), slog.String("planner", d.planner),
		slog.String("route", d.route.String()))

	return d, nil
}

// follow drives route until it ends, a heading turns out blocked, the robot
// lands somewhere new, or it lands somewhere the route did not expect.
func (e *Explorer) follow(ctx context.Context, route core.Route, res *Result) error {
	for i, step := range route {
		if res.Steps >= e.opts.MaxSteps {
			return fmt.Errorf("%w: %d drives, at %v", ErrStepLimit, res.Steps, res.Position)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		arr, err := e.driver.Drive(ctx, step.Heading)
		res.Steps++
		e.m.steps.Inc()
		if err != nil {
			return fmt.Errorf("explorer: drive %v: %w", step, err)
		}

		// Impassable: record the dead end and replan from here.
		if !arr.Passable {
			res.Blocked++
			e.m.blocked.Inc()
			if err = e.planet.AddPath(step, step, core.BlockedWeight); err != nil {
				return err
			}
			e.log.Debug("blocked", slog.String("port", step.String()))

			return nil
		}

		// Corridor: both ends are now explored.
		end := core.Port{Coord: arr.Position, Heading: arr.Heading}
		if err = e.planet.AddPath(step, end, arr.Weight); err != nil {
			return fmt.Errorf("explorer: record %v→%v: %w", step, end, err)
		}
		if err = e.planet.AddReached(step.Coord, step.Heading); err != nil {
			return err
		}
		if err = e.planet.AddReached(end.Coord, end.Heading); err != nil {
			return err
		}
		res.Position = arr.Position

		first, err := e.arrive(arr.Position, &arr.Heading, arr.Exits)
		if err != nil {
			return err
		}
		e.m.nodes.Set(float64(e.planet.Stats().Nodes))

		if first || e.onTarget(res.Position) {
			return nil
		}
		if i+1 < len(route) && route[i+1].Coord != arr.Position {
			e.log.Warn("unexpected arrival", slog.String("want", route[i+1].Coord.String()),
				slog.String("got", arr.Position.String()))

			return nil
		}
	}

	return nil
}

// arrive marks c visited and, on the first visit, pushes every exit except
// the one the robot came in through.
func (e *Explorer) arrive(c core.Coordinate, arrival *core.Heading, exits []core.Heading) (bool, error) {
	first := e.planet.MarkVisited(c)
	if !first {
		return false, nil
	}
	for _, h := range exits {
		if arrival != nil && h == *arrival {
			continue
		}
		if err := e.planet.AddStack(c, h); err != nil {
			return true, fmt.Errorf("explorer: exit at %v: %w", c, err)
		}
	}
	e.log.Debug("new intersection", slog.String("at", c.String()), slog.Int("exits", len(exits)))

	return true, nil
}

func (e *Explorer) onTarget(c core.Coordinate) bool {
	t, ok := e.opts.Targets.Target()

	return ok && t == c
}

func (e *Explorer) finish(res Result) {
	e.log.Info("mission finished",
		slog.String("outcome", res.Outcome.String()),
		slog.String("at", res.Position.String()),
		slog.Int("drives", res.Steps),
		slog.Int("blocked", res.Blocked),
	)
}
