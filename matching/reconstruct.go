// SPDX-License-Identifier: MIT

package matching

import (
	"cmp"
	"slices"
)

// reconstruct walks the pair choices stored in memo from mask down to the
// empty set and returns the chosen pairs ordered by their first point.
// Every mask visited must have been computed.
//
// Complexity: O(n).
func reconstruct(t *PairTable, memo *Memo, mask Mask) []Pair {
	pairs := make([]Pair, 0, mask.Count()/2)
	for mask != 0 {
		pm := memo.Choice(mask)
		i, j, ok := pm.Split()
		if !ok {
			return nil
		}
		pairs = append(pairs, Pair{A: i, B: j, Dist: t.At(pm)})
		mask = mask.Without(pm)
	}
	sortPairs(pairs)

	return pairs
}

// sortPairs orders pairs by their first point.
func sortPairs(pairs []Pair) {
	slices.SortFunc(pairs, func(a, b Pair) int { return cmp.Compare(a.A, b.A) })
}

// PairsCost sums the distances of pairs.
func PairsCost(pairs []Pair) float64 {
	var s float64
	for _, p := range pairs {
		s += p.Dist
	}

	return s
}
