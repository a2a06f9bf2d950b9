// Package core provides the primitive model of a maze planet and the
// thread-safe PathTable that stores every corridor the robot confirms.
//
// Model:
//
//   - Coordinate{X, Y} addresses an intersection of an unbounded integer grid.
//   - Heading is a closed set {North, East, South, West} with lookup tables for
//     Opposite, Degrees and String. An invalid Heading is a programming error:
//     Opposite/Degrees/Step panic, parsers and AddPath return ErrBadHeading.
//   - Port{Coord, Heading} is both the key of an edge and one step of a Route.
//   - Edge{To, Weight} is stored under its source Port. Weight ≥ 1 is a
//     traversable corridor; BlockedWeight (−1) marks an impassable heading and
//     is stored as a self-loop Port→Port.
//
// PathTable invariants:
//
//   - Every traversable edge (A,dA)→(B,dB,w) has its reciprocal (B,dB)→(A,dA,w).
//     Both are written inside one AddPath call under one write lock.
//   - Entries are never removed during a mission. Repeating a registration is a
//     no-op; a contradictory one overwrites without validation.
//
// Snapshots:
//
//	paths := table.Paths() // deep copy, safe to read without locks
//
// Both *PathTable and Paths implement Reader, the read-only interface consumed
// by the dijkstra and frontier packages.
//
// Quick ASCII example:
//
//	(0,1)───(1,1)
//	  │
//	(0,0)
//
//	t := core.NewPathTable()
//	_ = t.AddPath(core.Port{Coord: core.Coordinate{0, 0}, Heading: core.North},
//	              core.Port{Coord: core.Coordinate{0, 1}, Heading: core.South}, 1)
//	_ = t.AddPath(core.Port{Coord: core.Coordinate{0, 1}, Heading: core.East},
//	              core.Port{Coord: core.Coordinate{1, 1}, Heading: core.West}, 2)
package core
