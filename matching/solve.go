// SPDX-License-Identifier: MIT

// Unified entry point for the matching solvers.
//
//   - Solve validates the point set and options, builds the pair table once
//     and routes to the selected algorithm.
//   - MinDistance is the one-call form returning only the optimal cost.
//
// Every call owns its tables: nothing is shared between calls, so solving
// the same input twice yields the same result.
package matching

import "github.com/katalvlaran/pairmatch/geom"

// Solve computes a perfect matching of pts according to opts.
//
// Contracts:
//   - len(pts) is even, non-zero and at most MaxPoints.
//   - For exact algorithms Result.Cost is the minimum over all perfect
//     matchings; for Greedy it is an upper bound and Result.Exact is false.
//
// Errors: ErrEmptyPointSet, ErrOddPointCount, ErrTooManyPoints,
// ErrUnsupportedAlgorithm.
//
// Complexity: see the individual algorithms (O(2ⁿ·n²) for the DP).
func Solve(pts []geom.Point, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validatePoints(pts); err != nil {
		return Result{}, err
	}
	t, err := NewPairTable(pts)
	if err != nil {
		return Result{}, err
	}

	var (
		res   = Result{Exact: opts.Algo.Exact()}
		pairs []Pair
	)
	switch opts.Algo {
	case Memoized:
		memo := NewMemo(t.Len())
		full := FullMask(t.Len())
		if res.Cost, err = MinCost(t, memo, full); err != nil {
			return Result{}, err
		}
		res.Stats = memo.Stats()
		if opts.Pairs {
			res.Pairs = reconstruct(t, memo, full)
		}

	case BottomUp:
		memo := NewMemo(t.Len())
		res.Cost = fillBottomUp(t, memo)
		res.Stats = memo.Stats()
		if opts.Pairs {
			res.Pairs = reconstruct(t, memo, FullMask(t.Len()))
		}

	case BruteForce:
		res.Cost, pairs = bruteForce(t)
		if opts.Pairs {
			res.Pairs = pairs
		}

	case Greedy:
		res.Cost, pairs = greedyMatch(pts, t)
		if opts.Pairs {
			res.Pairs = pairs
		}
	}

	return res, nil
}

// MinDistance returns the minimum total pair distance of pts using the
// default memoized solver.
func MinDistance(pts []geom.Point) (float64, error) {
	opts := DefaultOptions()
	opts.Pairs = false
	res, err := Solve(pts, opts)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}
