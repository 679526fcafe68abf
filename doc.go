// SPDX-License-Identifier: MIT

// Package pairmatch forms teams of two from a small set of points so that
// the total distance between teammates is as small as possible.
//
// What is inside:
//
//	geom/         : integer points, Euclidean distance, R-tree index, random points
//	matching/     : the solvers: subset DP (memoized and bottom-up), brute force, greedy
//	casefile/     : the case stream format: reader and writer
//	driver/       : read → solve → print loop with logging and verification
//	cmd/pairmatch/: command-line front end
//
// Quick example:
//
//	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 3), geom.Pt(4, 0), geom.Pt(4, 3)}
//	cost, _ := matching.MinDistance(pts) // 6: the two short sides, not the diagonals
//
// The exact solvers handle up to matching.MaxPoints (16) points; larger
// inputs are rejected with matching.ErrTooManyPoints rather than truncated.
package pairmatch
