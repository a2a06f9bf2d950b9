// Package builder generates deterministic ground-truth mazes as core.PathTable
// values, for simulations, benchmarks and tests.
//
// Constructors:
//
//   - Grid(rows, cols, opts...)  rectangular maze; optional weight range and
//     blocked corridors, always connected.
//   - Ring(coords, weights)      one closed loop through the given coordinates.
//
// Options (functional, validated at construction; invalid values panic):
//
//   - WithSeed / WithRand        RNG for every random draw.
//   - WithWeightRange(min, max)  uniform corridor weights in [min, max].
//   - WithWeightFn(fn)           custom weight generator.
//   - WithBlockedRatio(p)        share of non-tree corridors turned into blocked headings.
//   - WithOrigin(c)              lower-left node.
//
// Errors are sentinels (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
// ErrWeightCount, ErrDuplicateCoordinate, ErrPortConflict) wrapped with the
// constructor name; branch with errors.Is.
package builder
