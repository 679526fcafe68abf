// SPDX-License-Identifier: MIT

package matching

import "math"

// MinCost returns the minimum total distance of pairing up exactly the
// points in mask, using distances from t and caching every evaluated
// subset in memo. memo must have been created for t.Len() points and must
// not hold entries from another case.
//
// Recurrence (mask ≠ 0):
//
//	cost(mask) = min over i<j, both in mask, of t.At({i,j}) + cost(mask \ {i,j})
//
// with cost(0) = 0. Each subset is computed at most once; later queries for
// the same mask are served from memo in O(1).
//
// Errors: ErrOddSubset if mask has an odd popcount, ErrMaskOutOfRange if it
// names points beyond t.Len().
//
// Complexity: O(2ⁿ·n²) time over all subsets, O(n) recursion depth.
func MinCost(t *PairTable, memo *Memo, mask Mask) (float64, error) {
	if mask&^FullMask(t.Len()) != 0 || memo.Size() < 1<<uint(t.Len()) {
		return 0, ErrMaskOutOfRange
	}
	if mask.Count()%2 != 0 {
		return 0, ErrOddSubset
	}

	return minCost(t, memo, mask), nil
}

// minCost is the unchecked recursion behind MinCost. Every call removes two
// points, so the parity of mask is preserved down to the empty set.
func minCost(t *PairTable, memo *Memo, mask Mask) float64 {
	if mask == 0 {
		return 0
	}
	if c, ok := memo.Lookup(mask); ok {
		return c
	}

	var (
		n        = t.Len()
		best     = math.Inf(1)
		bestPair Mask
		i, j     int
		pair     Mask
		cand     float64
	)
	for i = 0; i < n-1; i++ {
		if !mask.Has(i) {
			continue
		}
		for j = i + 1; j < n; j++ {
			if !mask.Has(j) {
				continue
			}
			pair = PairMask(i, j)
			cand = t.At(pair) + minCost(t, memo, mask.Without(pair))
			if cand < best {
				best, bestPair = cand, pair
			}
		}
	}
	memo.Store(mask, best, bestPair)

	return best
}
