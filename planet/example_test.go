package planet_test

import (
	"fmt"

	"github.com/katalvlaran/robolab/core"
	"github.com/katalvlaran/robolab/planet"
)

// ExamplePlanet_DepthFirstSearch walks the decision sequence at one junction.
func ExamplePlanet_DepthFirstSearch() {
	pl := planet.New(planet.WithName("Example"))
	home := core.Coordinate{X: 0, Y: 0}

	// 1) Arrive at (0,0), see exits NORTH and EAST.
	pl.MarkVisited(home)
	_ = pl.AddStack(home, core.North)
	_ = pl.AddStack(home, core.East)

	next, _ := pl.DepthFirstSearch(home)
	fmt.Println("first:", next)

	// 2) EAST is blocked.
	_ = pl.AddPath(core.Port{Coord: home, Heading: core.East}, core.Port{Coord: home, Heading: core.East}, core.BlockedWeight)
	next, _ = pl.DepthFirstSearch(home)
	fmt.Println("then:", next)

	// 3) NORTH leads back around to (0,0) WEST: a dead-end loop.
	_ = pl.AddPath(core.Port{Coord: home, Heading: core.North}, core.Port{Coord: home, Heading: core.West}, 5)
	next, _ = pl.DepthFirstSearch(home)
	fmt.Println("done:", next.Empty(), pl.State(home))
	// Output:
	// first: [(0,0)/EAST]
	// then: [(0,0)/NORTH]
	// done: true EXPLORED
}
