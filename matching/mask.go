// SPDX-License-Identifier: MIT

package matching

import "math/bits"

// Mask is a subset of point indices: bit i set ⇔ point i is in the subset.
type Mask uint32

// FullMask returns the subset {0..n-1}. n must be in [0, MaxPoints].
func FullMask(n int) Mask { return Mask(1)<<uint(n) - 1 }

// PairMask returns the two-point subset {i, j}.
func PairMask(i, j int) Mask { return Mask(1)<<uint(i) | Mask(1)<<uint(j) }

// Has reports whether point i is in m.
func (m Mask) Has(i int) bool { return m&(Mask(1)<<uint(i)) != 0 }

// Without returns m with the points of sub removed.
func (m Mask) Without(sub Mask) Mask { return m &^ sub }

// Count is the popcount of m.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Lowest returns the smallest index in m, or -1 for the empty mask.
func (m Mask) Lowest() int {
	if m == 0 {
		return -1
	}

	return bits.TrailingZeros32(uint32(m))
}

// Split decodes a two-point mask into its indices i < j.
// ok is false unless m has exactly two bits set.
func (m Mask) Split() (i, j int, ok bool) {
	if m.Count() != 2 {
		return 0, 0, false
	}
	i = m.Lowest()
	j = m.Without(Mask(1) << uint(i)).Lowest()

	return i, j, true
}
