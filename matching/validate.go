// SPDX-License-Identifier: MIT

// Validation shared by every solver.
//
// Deterministic, side-effect free, O(1): only the size of the point set
// matters, coordinates are accepted as given.
package matching

import "github.com/katalvlaran/pairmatch/geom"

// validatePoints checks that pts can be perfectly matched within the mask
// width. The capacity check runs before any mask is built.
func validatePoints(pts []geom.Point) error {
	n := len(pts)
	if n == 0 {
		return ErrEmptyPointSet
	}
	if n > MaxPoints {
		return ErrTooManyPoints
	}
	if n%2 != 0 {
		return ErrOddPointCount
	}

	return nil
}

// validateOptions rejects unknown algorithms.
func validateOptions(opts Options) error {
	switch opts.Algo {
	case Memoized, BottomUp, BruteForce, Greedy:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}
