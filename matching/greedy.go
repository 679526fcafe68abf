// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/pairmatch/geom"

// greedyMatch repeatedly takes the lowest-index unmatched point and pairs
// it with its nearest unmatched neighbour (ties: lowest index), using an
// R-tree over the remaining points.
//
// The result is a valid perfect matching whose cost is an upper bound on
// the optimum; it is not exact. len(pts) must be even.
//
// Complexity: O(n² log n) with the point index.
func greedyMatch(pts []geom.Point, t *PairTable) (float64, []Pair) {
	var (
		n     = len(pts)
		ix    = geom.NewIndex(pts)
		done  = make([]bool, n)
		pairs = make([]Pair, 0, n/2)
		cost  float64
		u, v  int
	)
	for u = 0; u < n; u++ {
		if done[u] {
			continue
		}
		ix.Remove(u)
		done[u] = true
		v = ix.Nearest(u)
		if v < 0 {
			break // odd leftover; callers validate parity first
		}
		ix.Remove(v)
		done[v] = true

		// u is the lowest unmatched index, so u < v
		pairs = append(pairs, Pair{A: u, B: v, Dist: t.Dist(u, v)})
		cost += t.Dist(u, v)
	}

	return cost, pairs
}
