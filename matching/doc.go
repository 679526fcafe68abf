// SPDX-License-Identifier: MIT

// Package matching solves minimum-weight perfect matching of a small planar
// point set: 2n points are split into n pairs so that the sum of the pair
// distances is minimal.
//
// The exact solvers memoize over subsets of the point set encoded as bit
// masks (bit i set ⇔ point i is still unmatched):
//
//	cost(0)    = 0
//	cost(mask) = min over i<j in mask of d(i,j) + cost(mask \ {i,j})
//
//   - Memoized: top-down recursion with an explicit per-call Memo (default).
//   - BottomUp: the same recurrence filled in increasing mask order.
//   - BruteForce: backtracking over every perfect matching; a reference oracle.
//   - Greedy: nearest-neighbour pairing; fast, an upper bound only.
//
// Complexity of the exact DP: O(2ⁿ·n²) time, O(2ⁿ) memory for n points,
// which is why inputs are capped at MaxPoints (16 points, 8 pairs).
//
// Nothing in this package logs, and user input never causes a panic:
// failures are reported through the sentinel errors in types.go.
package matching
