// Package render draws a recorded map as text.
//
// Layout: one character cell per node and one between axis neighbours, north
// at the top, with a one-cell margin so blocked headings on the border show.
//
//	+   node
//	-|  unit corridor to the east / north neighbour
//	x   blocked heading
//	*   node with a loop or a corridor to a non-adjacent node
//
// Marks (start, target, robot...) replace the node glyph.
//
// Maps spanning more than maxSpan units on an axis are compressed on that axis
// to the coordinates actually in use, so the canvas grows with the node count.
package render

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/robolab/core"
)

// Glyphs.
const (
	glyphNode     = '+'
	glyphOdd      = '*'
	glyphEastWest = '-'
	glyphNorthSth = '|'
	glyphBlocked  = 'x'
	glyphEmpty    = ' '
)

// maxSpan is the widest axis drawn to scale.
const maxSpan = 256

// ASCII renders paths. Nodes that appear only in marks are drawn too.
// An empty input renders as "".
func ASCII(paths core.Reader, marks map[core.Coordinate]rune) string {
	var mp orb.MultiPoint
	for _, c := range paths.Nodes() {
		mp = append(mp, orb.Point{float64(c.X), float64(c.Y)})
	}
	for c := range marks {
		mp = append(mp, orb.Point{float64(c.X), float64(c.Y)})
	}
	if len(mp) == 0 {
		return ""
	}

	bound := mp.Bound()
	xs := axis(mp, bound.Min.X(), bound.Max.X(), orb.Point.X)
	ys := axis(mp, bound.Min.Y(), bound.Max.Y(), orb.Point.Y)
	width, height := len(xs)*2+1, len(ys)*2+1

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(string(glyphEmpty), width))
	}
	cell := func(c core.Coordinate) (row, col int) {
		return (len(ys)-1-ys[c.Y])*2 + 1, xs[c.X]*2 + 1
	}

	for _, c := range paths.Nodes() {
		row, col := cell(c)
		glyph := glyphNode
		for _, h := range paths.Headings(c) {
			e, _ := paths.Edge(core.Port{Coord: c, Heading: h})
			dr, dc := offset(h)
			switch {
			case e.Blocked():
				canvas[row+dr][col+dc] = glyphBlocked
			case e.To.Coord == h.Step(c) && e.To.Heading == h.Opposite():
				if h == core.East || h == core.West {
					canvas[row+dr][col+dc] = glyphEastWest
				} else {
					canvas[row+dr][col+dc] = glyphNorthSth
				}
			default:
				glyph = glyphOdd
			}
		}
		canvas[row][col] = glyph
	}
	for c, r := range marks {
		row, col := cell(c)
		canvas[row][col] = r
	}

	lines := make([]string, height)
	for i, line := range canvas {
		lines[i] = strings.TrimRight(string(line), string(glyphEmpty))
	}

	return strings.Join(lines, "\n")
}

// axis maps each coordinate value drawn on one axis to its column (or row)
// index: every value in [lo, hi] when the span fits maxSpan, else only the
// values of mp.
func axis(mp orb.MultiPoint, lo, hi float64, get func(orb.Point) float64) map[int]int {
	var vals []int
	if hi-lo <= maxSpan {
		for v := int(lo); v <= int(hi); v++ {
			vals = append(vals, v)
		}
	} else {
		seen := make(map[int]bool, len(mp))
		for _, pt := range mp {
			if v := int(get(pt)); !seen[v] {
				seen[v] = true
				vals = append(vals, v)
			}
		}
		sort.Ints(vals)
	}

	index := make(map[int]int, len(vals))
	for i, v := range vals {
		index[v] = i
	}

	return index
}

// offset is the canvas step for h; rows grow southwards.
func offset(h core.Heading) (dr, dc int) {
	switch h {
	case core.North:
		return -1, 0
	case core.South:
		return 1, 0
	case core.East:
		return 0, 1
	default:
		return 0, -1
	}
}
