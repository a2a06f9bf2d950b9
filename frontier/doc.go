// Package frontier tracks which headings of which intersections are still
// unexplored, and decides where the robot should go next.
//
// Tracker:
//
//   - AddStack(c, h)    push h as a pending candidate at c (idempotent).
//   - AddReached(c, h)  mark h explored at c; never unmarked.
//   - MarkVisited(c)    append c to the visited history on first visit only.
//   - Pending/Next      unreached headings, last pushed first.
//   - State(c)          Unvisited → Pending → Explored.
//
// Router:
//
//	route, err := frontier.NewRouter().Route(table, tracker, here)
//
//   - here has an open heading       → [(here, heading)]
//   - some other node has one        → known route to it + [(node, heading)]
//   - nothing open in the known graph → empty route (mapping complete)
//
// "Nearest" is by corridor weight. Equally near candidates are ordered: nodes with
// a pending heading before never-visited nodes, then by the heading order of the
// route (dijkstra precedence), then by coordinate.
//
// Neither type locks. planet.Planet owns one of each and serialises access.
package frontier
