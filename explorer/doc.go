// Package explorer implements the robot control loop on top of a planet.Planet.
//
// The loop owns nothing physical: a Driver moves the robot and reports what it
// saw, a TargetProvider may name a destination, and the Planet remembers.
//
//	pl := planet.New(planet.WithName("Hasselhoff"))
//	ex, _ := explorer.New(pl, robot,
//	    explorer.WithTargets(explorer.StaticTarget{X: 3, Y: 5}),
//	    explorer.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//	res, err := ex.Run(ctx, start, exits)
//
// At every intersection Run marks the node visited, pushes the exits it has not
// come through, asks for a route (ShortestPath to the target when the known map
// already connects them, DepthFirstSearch otherwise) and drives it. A driven
// corridor is recorded with its weight and both ends marked reached; an
// impassable heading is recorded as blocked.
//
// Observability:
//   - slog records with component=explorer.
//   - Prometheus: robolab_explorer_{drives_total,blocked_total,routes_total,known_nodes}.
//   - One OpenTelemetry span per planning decision.
package explorer
