// SPDX-License-Identifier: MIT

package matching

import "math"

// fillBottomUp evaluates the subset recurrence iteratively for every
// even-sized subset of {0..n-1} and returns the cost of the full set.
//
// Removing points from a mask always yields a numerically smaller mask, so
// walking masks in increasing order guarantees that every sub-problem is
// stored before it is read. Odd-sized masks are skipped: they are never a
// remainder of an even one.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ) space.
func fillBottomUp(t *PairTable, memo *Memo) float64 {
	var (
		n    = t.Len()
		full = FullMask(n)
		mask Mask
		i, j int
	)
	if n == 0 {
		return 0
	}

	// memoized cost of a remainder; the empty set is never stored
	rest := func(m Mask) float64 {
		if m == 0 {
			return 0
		}
		c, _ := memo.Lookup(m)

		return c
	}

	for mask = 1; mask <= full; mask++ {
		if mask.Count()%2 != 0 {
			continue
		}
		best, bestPair := math.Inf(1), Mask(0)
		for i = 0; i < n-1; i++ {
			if !mask.Has(i) {
				continue
			}
			for j = i + 1; j < n; j++ {
				if !mask.Has(j) {
					continue
				}
				pair := PairMask(i, j)
				if cand := t.At(pair) + rest(mask.Without(pair)); cand < best {
					best, bestPair = cand, pair
				}
			}
		}
		memo.Store(mask, best, bestPair)
	}

	c, _ := memo.Lookup(full)

	return c
}
