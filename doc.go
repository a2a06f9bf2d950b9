// Package robolab maps and navigates maze planets: grids of intersections
// joined by weighted corridors that a line-following robot discovers one
// drive at a time.
//
// Packages:
//
//   - core      Coordinate, Heading, Port, Route and the thread-safe PathTable.
//   - dijkstra  deterministic shortest routes over a recorded table.
//   - frontier  unexplored headings and the next-move router.
//   - planet    the single map aggregate the control loop talks to.
//   - spatial   R-tree index of known intersections.
//   - explorer  the robot control loop (Driver, TargetProvider, metrics, tracing).
//   - sim       YAML ground-truth mazes and a simulated robot.
//   - builder   seeded maze generators.
//   - render    ASCII maps.
//
// Quick start:
//
//	m, _ := sim.LoadMazeFile("planet.yaml")
//	pl := planet.New(planet.WithName(m.Name))
//	robot := sim.NewRobot(m)
//	ex, _ := explorer.New(pl, robot)
//	res, _ := ex.Run(ctx, m.Start, robot.Exits())
//	fmt.Println(res.Outcome)
//	fmt.Println(render.ASCII(pl.Paths(), nil))
//
// The algorithm packages (core, dijkstra, frontier) never block, never log and
// never read the clock; all waiting happens in explorer, behind a context.
package robolab
