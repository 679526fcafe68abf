// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/pairmatch/geom"

// PairTable holds the distance between every two points of one case,
// keyed by the two-point mask {i, j}. It is immutable once built.
type PairTable struct {
	n    int
	dist []float64 // len 1<<n; only two-bit indices are meaningful
}

// NewPairTable computes all pairwise Euclidean distances of pts.
// Returns ErrTooManyPoints when len(pts) > MaxPoints.
//
// Complexity: O(n²) time, O(2ⁿ) space.
func NewPairTable(pts []geom.Point) (*PairTable, error) {
	n := len(pts)
	if n > MaxPoints {
		return nil, ErrTooManyPoints
	}
	t := &PairTable{n: n, dist: make([]float64, 1<<uint(n))}

	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			t.dist[PairMask(i, j)] = geom.Distance(pts[i], pts[j])
		}
	}

	return t, nil
}

// Len is the number of points the table was built for.
func (t *PairTable) Len() int { return t.n }

// At returns the distance stored for a two-point mask.
func (t *PairTable) At(pair Mask) float64 { return t.dist[pair] }

// Dist returns the distance between points i and j (0 when i == j).
func (t *PairTable) Dist(i, j int) float64 {
	if i == j {
		return 0
	}

	return t.dist[PairMask(i, j)]
}
