// SPDX-License-Identifier: MIT

package matching

import "math"

// bruteForce enumerates every perfect matching of the t.Len() points by
// backtracking: the lowest unmatched point is paired with each unmatched
// point after it in turn. The search state is local to the call.
//
// It returns the optimal cost and one optimal pairing (ordered by A).
// Kept as an independent oracle for the subset DP.
//
// Complexity: O((n-1)!!·n) time, O(n) space.
func bruteForce(t *PairTable) (float64, []Pair) {
	var (
		n        = t.Len()
		partner  = make([]int, n)
		best     = math.Inf(1)
		bestPart = make([]int, n)
	)
	if n == 0 {
		return 0, []Pair{}
	}
	for i := range partner {
		partner[i] = -1
	}

	var form func(from int, acc float64)
	form = func(from int, acc float64) {
		// skip points already matched as someone's partner
		for from < n && partner[from] != -1 {
			from++
		}
		if from == n {
			if acc < best {
				best = acc
				copy(bestPart, partner)
			}

			return
		}
		var j int
		for j = from + 1; j < n; j++ {
			if partner[j] != -1 {
				continue
			}
			partner[from], partner[j] = j, from
			form(from+1, acc+t.Dist(from, j))
			partner[from], partner[j] = -1, -1
		}
	}
	form(0, 0)

	pairs := make([]Pair, 0, n/2)
	for i, j := range bestPart {
		if i < j {
			pairs = append(pairs, Pair{A: i, B: j, Dist: t.Dist(i, j)})
		}
	}

	return best, pairs
}
