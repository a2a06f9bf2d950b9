// Package core_test provides runnable examples for the core model.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/robolab/core"
)

// ExamplePathTable_AddPath records one corridor and one blocked heading.
func ExamplePathTable_AddPath() {
	t := core.NewPathTable()

	// 1) Corridor (0,0) NORTH ⇄ (0,1) SOUTH with weight 4; the mirror is automatic.
	_ = t.AddPath(port(0, 0, core.North), port(0, 1, core.South), 4)

	// 2) (0,1) WEST turned out to be impassable.
	_ = t.AddPath(port(0, 1, core.West), port(0, 1, core.West), core.BlockedWeight)

	for _, c := range t.Nodes() {
		for _, h := range t.Headings(c) {
			e, _ := t.Edge(core.Port{Coord: c, Heading: h})
			fmt.Printf("%v/%v -> %v w=%d\n", c, h, e.To, e.Weight)
		}
	}
	// Output:
	// (0,0)/NORTH -> (0,1)/SOUTH w=4
	// (0,1)/SOUTH -> (0,0)/NORTH w=4
	// (0,1)/WEST -> (0,1)/WEST w=-1
}

// ExampleHeading_Opposite shows the heading algebra.
func ExampleHeading_Opposite() {
	for _, h := range core.Headings() {
		fmt.Println(h, "<->", h.Opposite())
	}
	// Output:
	// NORTH <-> SOUTH
	// EAST <-> WEST
	// SOUTH <-> NORTH
	// WEST <-> EAST
}
