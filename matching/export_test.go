// SPDX-License-Identifier: MIT

package matching

// Test-only bridges into unexported solvers.
var (
	TestHookFillBottomUp = fillBottomUp
	TestHookBruteForce   = bruteForce
	TestHookReconstruct  = reconstruct
)
