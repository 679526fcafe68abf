// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPoints is the largest point set a subset mask can represent here.
// Memo and pair tables hold 1<<n entries, so 16 points means 65536 entries.
const MaxPoints = 16

var (
	// ErrEmptyPointSet is returned for a point set with no points.
	ErrEmptyPointSet = errors.New("matching: empty point set")

	// ErrOddPointCount is returned when the points cannot be split into pairs.
	ErrOddPointCount = errors.New("matching: odd number of points")

	// ErrTooManyPoints is the capacity error: more points than MaxPoints.
	ErrTooManyPoints = errors.New("matching: too many points for subset mask")

	// ErrOddSubset is returned when a subset with an odd number of points is
	// queried; no perfect matching of it exists.
	ErrOddSubset = errors.New("matching: subset has an odd number of points")

	// ErrMaskOutOfRange is returned when a mask has bits beyond the table width.
	ErrMaskOutOfRange = errors.New("matching: mask out of table range")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("matching: unsupported algorithm")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Memoized is the top-down subset DP.
	Memoized Algorithm = iota
	// BottomUp is the iterative subset DP.
	BottomUp
	// BruteForce enumerates every perfect matching.
	BruteForce
	// Greedy pairs each point with its nearest free neighbour. Not exact.
	Greedy
)

var algorithmNames = [...]string{
	Memoized:   "memo",
	BottomUp:   "bottomup",
	BruteForce: "brute",
	Greedy:     "greedy",
}

// String returns the short CLI name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Exact reports whether a always returns the optimum.
func (a Algorithm) Exact() bool { return a != Greedy }

// ParseAlgorithm maps a short name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, s := range algorithmNames {
		if s == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Options configures Solve.
type Options struct {
	// Algo selects the solver. Default: Memoized.
	Algo Algorithm

	// Pairs requests the list of matched pairs in Result.Pairs.
	// The cost is computed either way. Default: true.
	Pairs bool
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{
		Algo:  Memoized,
		Pairs: true,
	}
}

// Pair is one formed team: point indices A < B and their distance.
type Pair struct {
	A    int
	B    int
	Dist float64
}

// Stats counts memo table activity for one solve.
type Stats struct {
	// Computed is the number of subset costs evaluated and stored.
	Computed int
	// Hits is the number of lookups answered from the memo.
	Hits int
}

// Result is the outcome of Solve.
type Result struct {
	// Cost is the total distance of the matching.
	Cost float64

	// Pairs lists the matching, ordered by A. Nil unless Options.Pairs.
	Pairs []Pair

	// Stats is filled by the DP solvers; zero for the others.
	Stats Stats

	// Exact is false when Cost is only an upper bound (Greedy).
	Exact bool
}
