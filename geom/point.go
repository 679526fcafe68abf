// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/samber/lo"
)

// Point is an immutable pair of integer coordinates.
type Point struct {
	X int
	Y int
}

// Pt is a shorthand constructor.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point{float64(p.X), float64(p.Y)} }

// Scale multiplies both coordinates by k.
func (p Point) Scale(k int) Point { return Point{X: p.X * k, Y: p.Y * k} }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Distance returns the Euclidean distance between a and b.
// Identical points are at distance exactly 0.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	if a == b {
		return 0
	}

	return planar.Distance(a.Orb(), b.Orb())
}

// MultiPoint converts pts to an orb.MultiPoint, preserving order.
func MultiPoint(pts []Point) orb.MultiPoint {
	return lo.Map(pts, func(p Point, _ int) orb.Point { return p.Orb() })
}

// Bound returns the axis-aligned bounding box of pts.
// An empty input yields the zero orb.Bound.
//
// Complexity: O(n).
func Bound(pts []Point) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{}
	}

	return MultiPoint(pts).Bound()
}

// ScaleAll returns a new slice with every point multiplied by k.
func ScaleAll(pts []Point, k int) []Point {
	return lo.Map(pts, func(p Point, _ int) Point { return p.Scale(k) })
}
