// SPDX-License-Identifier: MIT

// Package matching_test shares small helpers across the *_test.go files:
// tolerance checks, deterministic random instances and matching invariants.
package matching_test

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/pairmatch/geom"
	"github.com/katalvlaran/pairmatch/matching"
)

const (
	// epsAbs and epsRel bound rounding noise between solvers that sum the
	// same distances in different orders.
	epsAbs = 1e-9
	epsRel = 1e-12

	// seedDet is the fixed seed behind every random instance.
	seedDet = int64(0)

	// span is the coordinate range of random instances.
	span = 40
)

// mustFloatClose asserts |got-want| within epsAbs or epsRel.
func mustFloatClose(t *testing.T, got, want float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(got, want, epsAbs, epsRel) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g", got, want)
	}
}

// randomSets returns count deterministic point sets of n points each.
func randomSets(count, n int) [][]geom.Point {
	base := geom.NewRand(seedDet)
	out := make([][]geom.Point, count)
	for i := range out {
		out[i] = geom.RandomPoints(geom.DeriveRand(base, uint64(i)), n, span)
	}

	return out
}

// rectangle is the 4-point example: sides of length 3 and 4, diagonals 5.
func rectangle() []geom.Point {
	return []geom.Point{geom.Pt(0, 0), geom.Pt(0, 3), geom.Pt(4, 0), geom.Pt(4, 3)}
}

// mustPerfect asserts that pairs cover each of the n points exactly once,
// carry the right distances and add up to cost.
func mustPerfect(t *testing.T, pts []geom.Point, pairs []matching.Pair, cost float64) {
	t.Helper()
	if len(pairs) != len(pts)/2 {
		t.Fatalf("got %d pairs for %d points: %+v", len(pairs), len(pts), pairs)
	}
	seen := make([]bool, len(pts))
	for _, p := range pairs {
		if p.A >= p.B {
			t.Fatalf("pair not ordered: %+v", p)
		}
		if seen[p.A] || seen[p.B] {
			t.Fatalf("point matched twice: %+v in %+v", p, pairs)
		}
		seen[p.A], seen[p.B] = true, true
		mustFloatClose(t, p.Dist, geom.Distance(pts[p.A], pts[p.B]))
	}
	mustFloatClose(t, matching.PairsCost(pairs), cost)
}

// solve runs Solve with algo and pairs enabled, failing the test on error.
func solve(t *testing.T, pts []geom.Point, algo matching.Algorithm) matching.Result {
	t.Helper()
	opts := matching.DefaultOptions()
	opts.Algo = algo
	res, err := matching.Solve(pts, opts)
	if err != nil {
		t.Fatalf("Solve(%v) failed: %v", algo, err)
	}

	return res
}
