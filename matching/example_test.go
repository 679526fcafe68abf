// SPDX-License-Identifier: MIT

// Runnable examples for the matching solvers; outputs are deterministic.
package matching_test

import (
	"fmt"

	"github.com/katalvlaran/pairmatch/geom"
	"github.com/katalvlaran/pairmatch/matching"
)

// ExampleMinDistance pairs the corners of a 4×3 rectangle: the two short
// sides win over the diagonals.
func ExampleMinDistance() {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 3), geom.Pt(4, 0), geom.Pt(4, 3)}
	cost, err := matching.MinDistance(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", cost)
	// Output:
	// 6.00
}

// ExampleSolve shows the formed teams and memo statistics.
func ExampleSolve() {
	pts := []geom.Point{
		geom.Pt(1, 1), geom.Pt(8, 6), geom.Pt(2, 1),
		geom.Pt(9, 9), geom.Pt(8, 5), geom.Pt(9, 8),
	}
	res, err := matching.Solve(pts, matching.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Pairs {
		fmt.Printf("%v-%v %.2f\n", pts[p.A], pts[p.B], p.Dist)
	}
	fmt.Printf("total %.2f, subsets %d\n", res.Cost, res.Stats.Computed)
	// Output:
	// (1, 1)-(2, 1) 1.00
	// (8, 6)-(8, 5) 1.00
	// (9, 9)-(9, 8) 1.00
	// total 3.00, subsets 31
}

// ExampleSolve_greedy contrasts the heuristic with the exact answer.
func ExampleSolve_greedy() {
	pts := []geom.Point{geom.Pt(2, 0), geom.Pt(3, 0), geom.Pt(0, 0), geom.Pt(5, 0)}

	opts := matching.DefaultOptions()
	opts.Algo = matching.Greedy
	greedy, _ := matching.Solve(pts, opts)
	exact, _ := matching.Solve(pts, matching.DefaultOptions())

	fmt.Printf("greedy %.2f (exact=%v)\n", greedy.Cost, greedy.Exact)
	fmt.Printf("memo   %.2f (exact=%v)\n", exact.Cost, exact.Exact)
	// Output:
	// greedy 6.00 (exact=false)
	// memo   4.00 (exact=true)
}
