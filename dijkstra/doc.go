// Package dijkstra answers "which headings take the robot from start to target
// at minimum total corridor weight" over the discovered maze.
//
// Overview:
//
//   - ShortestPath(g, start, target) returns a core.Route: the Port to leave by at
//     each node from start up to (not including) target.
//   - Distances(g, source) returns the weight of the shortest route from source to
//     every reachable coordinate.
//   - Blocked headings and dead-end loops are excluded from traversal.
//
// Outcomes:
//
//   - start == target         → empty route, nil error.
//   - unknown coordinate      → errors.Is(err, ErrUnreachable) && errors.Is(err, ErrUnknownCoordinate).
//   - disconnected / too far  → errors.Is(err, ErrUnreachable).
//
// Unreachability is a normal outcome, not a failure: the explorer branches on it
// and keeps mapping.
//
// Tie-break:
//
//	When several routes share the minimum weight, exactly one is returned: the one
//	whose heading sequence is lexicographically smallest under Precedence
//	(default EAST < SOUTH < WEST < NORTH). The rule depends only on the table
//	contents, never on insertion or map iteration order.
//
// Example:
//
//	route, err := dijkstra.ShortestPath(table, core.Coordinate{1, 1}, core.Coordinate{3, 5})
//	switch {
//	case errors.Is(err, dijkstra.ErrUnreachable):
//	    // keep exploring
//	case err != nil:
//	    return err
//	default:
//	    for _, step := range route { drive(step.Heading) }
//	}
//
// Thread safety:
//
//   - Queries never mutate the reader. A live *core.PathTable is snapshotted once
//     per query; other readers are used as given.
package dijkstra
