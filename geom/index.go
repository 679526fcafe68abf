// SPDX-License-Identifier: MIT

package geom

import "github.com/dhconnelly/rtreego"

// R-tree node fan-out. Point sets here are tiny (≤16), so a narrow tree
// keeps every query to one or two levels.
const (
	indexMinChildren = 2
	indexMaxChildren = 4
)

// indexEntry stores one point of the set together with its input index.
type indexEntry struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect { return e.rect }

// Index is a 2D R-tree over a point set that supports removing points as
// they get matched. It is not safe for concurrent use.
type Index struct {
	pts     []Point
	tree    *rtreego.Rtree
	entries []*indexEntry
}

// NewIndex builds an index over pts. Every point is present initially.
//
// Complexity: O(n log n).
func NewIndex(pts []Point) *Index {
	ix := &Index{
		pts:     pts,
		tree:    rtreego.NewTree(2, indexMinChildren, indexMaxChildren),
		entries: make([]*indexEntry, len(pts)),
	}
	for i, p := range pts {
		// zero tolerance: a degenerate rectangle keeps rect distance equal to point distance
		e := &indexEntry{idx: i, rect: rtreego.Point{float64(p.X), float64(p.Y)}.ToRect(0)}
		ix.entries[i] = e
		ix.tree.Insert(e)
	}

	return ix
}

// Len reports how many points are still present.
func (ix *Index) Len() int { return ix.tree.Size() }

// Remove deletes point i from the index. It reports false if i is out of
// range or was already removed.
func (ix *Index) Remove(i int) bool {
	if i < 0 || i >= len(ix.entries) || ix.entries[i] == nil {
		return false
	}
	ok := ix.tree.Delete(ix.entries[i])
	ix.entries[i] = nil

	return ok
}

// Nearest returns the index of the present point closest to point i,
// excluding i itself, or -1 when no other point is present.
// Among equidistant candidates the lowest index wins.
func (ix *Index) Nearest(i int) int {
	if i < 0 || i >= len(ix.pts) || ix.tree.Size() == 0 {
		return -1
	}
	q := rtreego.Point{float64(ix.pts[i].X), float64(ix.pts[i].Y)}
	skipSelf := func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
		return obj.(*indexEntry).idx == i, false
	}

	// All points at the minimal distance are fetched so the tie-break does
	// not depend on tree layout.
	cands := ix.tree.NearestNeighbors(ix.tree.Size(), q, skipSelf)
	best, bestD := -1, 0.0
	for _, c := range cands {
		if c == nil {
			continue
		}
		j := c.(*indexEntry).idx
		d := Distance(ix.pts[i], ix.pts[j])
		if best < 0 || d < bestD || (d == bestD && j < best) {
			best, bestD = j, d
		}
	}

	return best
}
