// Package spatial indexes mapped coordinates in an R-tree so the nearest known
// intersection to an arbitrary grid point can be found without a full scan.
package spatial

import (
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/robolab/core"
)

// pointTolerance is the half-size of the box each coordinate occupies in the tree.
const pointTolerance = 0.01

// nodeEntry wraps a coordinate for R-tree storage.
type nodeEntry struct {
	coord core.Coordinate
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (n *nodeEntry) Bounds() rtreego.Rect {
	return n.bbox
}

// Index is a set of coordinates supporting nearest-neighbour queries.
// It is safe for concurrent use.
type Index struct {
	mu    sync.RWMutex
	tree  *rtreego.Rtree
	known map[core.Coordinate]struct{}
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		tree:  rtreego.NewTree(2, 25, 50), // 2D, min 25, max 50 entries per node
		known: make(map[core.Coordinate]struct{}),
	}
}

// Insert adds c; inserting a known coordinate is a no-op.
func (ix *Index) Insert(c core.Coordinate) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if _, ok := ix.known[c]; ok {
		return
	}
	ix.known[c] = struct{}{}
	ix.tree.Insert(&nodeEntry{coord: c, bbox: toPoint(c).ToRect(pointTolerance)})
}

// Len returns the number of indexed coordinates.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.known)
}

// Nearest returns the indexed coordinate closest (Euclidean) to c.
// ok is false when the index is empty.
func (ix *Index) Nearest(c core.Coordinate) (core.Coordinate, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if _, ok := ix.known[c]; ok {
		return c, true
	}
	if len(ix.known) == 0 {
		return core.Coordinate{}, false
	}
	hit := ix.tree.NearestNeighbor(toPoint(c))
	if hit == nil {
		return core.Coordinate{}, false
	}

	return hit.(*nodeEntry).coord, true
}

// Within returns the indexed coordinates inside the axis-aligned box spanned by
// min and max (inclusive), in canonical order.
func (ix *Index) Within(min, max core.Coordinate) []core.Coordinate {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	lo := rtreego.Point{float64(min.X) - pointTolerance, float64(min.Y) - pointTolerance}
	bbox, err := rtreego.NewRect(lo, []float64{
		float64(max.X-min.X) + 2*pointTolerance,
		float64(max.Y-min.Y) + 2*pointTolerance,
	})
	if err != nil {
		return nil
	}

	hits := ix.tree.SearchIntersect(bbox)
	out := make([]core.Coordinate, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*nodeEntry).coord)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

func toPoint(c core.Coordinate) rtreego.Point {
	return rtreego.Point{float64(c.X), float64(c.Y)}
}

