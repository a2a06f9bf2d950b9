// Package planet is the single map aggregate the robot control loop talks to.
//
// A Planet owns a core.PathTable, a frontier.Tracker and a spatial.Index and
// serialises every mutation through one RWMutex, so a query never sees half
// of an AddPath:
//
//	p := planet.New(planet.WithName("Hasselhoff"))
//	_ = p.AddPath(a, b, 4)               // corridor + reciprocal
//	route, err := p.ShortestPath(s, t)   // errors.Is(err, dijkstra.ErrUnreachable)
//	next, _ := p.DepthFirstSearch(here)  // empty route: mapping complete
//
// AddPath also consumes dead ends: a blocked heading, or a corridor that comes
// back to the node it left, is marked reached immediately, so DepthFirstSearch
// never offers it again.
package planet
