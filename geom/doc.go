// SPDX-License-Identifier: MIT

// Package geom holds the planar primitives used by the matching solvers.
//
// Points carry integer coordinates; every distance is the Euclidean one and
// is computed on float64 through orb/planar, so the same value is produced
// whichever solver asks for it.
//
// Contents:
//   - Point, Distance, Bound: coordinates and metric.
//   - Index: an R-tree over a point set with removal, used by the greedy
//     heuristic to find the nearest still-unmatched point.
//   - NewRand, RandomPoints: deterministic point generation for tests,
//     benchmarks and the case generator.
package geom
