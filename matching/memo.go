// SPDX-License-Identifier: MIT

package matching

// unset marks a memo entry that has not been computed; real costs are ≥ 0.
const unset = -1.0

// Memo caches the minimum matching cost of every subset of one case,
// together with the pair chosen at that subset. Entries are written once
// per mask. A Memo belongs to a single solve: create a new one, or Reset it,
// before solving another case.
type Memo struct {
	cost     []float64
	choice   []Mask
	computed int
	hits     int
}

// NewMemo returns a memo for n points with every entry unset.
//
// Complexity: O(2ⁿ).
func NewMemo(n int) *Memo {
	size := 1 << uint(n)
	m := &Memo{
		cost:   make([]float64, size),
		choice: make([]Mask, size),
	}
	m.Reset()

	return m
}

// Reset marks every entry unset and clears the counters.
func (m *Memo) Reset() {
	for i := range m.cost {
		m.cost[i] = unset
		m.choice[i] = 0
	}
	m.computed, m.hits = 0, 0
}

// Size is the number of addressable masks.
func (m *Memo) Size() int { return len(m.cost) }

// Lookup returns the cached cost of mask. A hit is counted.
func (m *Memo) Lookup(mask Mask) (float64, bool) {
	c := m.cost[mask]
	if c < 0 {
		return 0, false
	}
	m.hits++

	return c, true
}

// Store records the cost of mask and the pair that achieved it.
func (m *Memo) Store(mask Mask, cost float64, pair Mask) {
	m.cost[mask] = cost
	m.choice[mask] = pair
	m.computed++
}

// Choice returns the pair stored for mask (0 if unset).
func (m *Memo) Choice(mask Mask) Mask { return m.choice[mask] }

// Filled counts the entries that are set.
//
// Complexity: O(2ⁿ).
func (m *Memo) Filled() int {
	var k int
	for _, c := range m.cost {
		if c >= 0 {
			k++
		}
	}

	return k
}

// Stats returns the activity counters.
func (m *Memo) Stats() Stats { return Stats{Computed: m.computed, Hits: m.hits} }
