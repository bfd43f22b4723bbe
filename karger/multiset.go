// SPDX-License-Identifier: MIT

package karger

// multiset is the working edge collection of one contraction trial. It holds
// edge IDs into a read-only endpoint table; parallel edges between the same
// pair of super-vertices are separate entries and are sampled independently.
type multiset struct {
	ids []int
}

// newMultiset holds every edge ID in [0, n).
func newMultiset(n int) multiset {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return multiset{ids: ids}
}

// Len returns the number of remaining entries.
func (m *multiset) Len() int { return len(m.ids) }

// extractRandom removes and returns an entry chosen uniformly by src.
// The relative order of the remaining entries is kept. ok is false when the
// multiset is empty.
func (m *multiset) extractRandom(src Source) (id int, ok bool) {
	n := len(m.ids)
	if n == 0 {
		return -1, false
	}
	i := src.Intn(n)
	id = m.ids[i]
	m.ids = append(m.ids[:i], m.ids[i+1:]...)

	return id, true
}

// removeSelfLoops drops, in place, every entry for which loop reports true
// and returns how many were dropped.
func (m *multiset) removeSelfLoops(loop func(id int) bool) int {
	kept := m.ids[:0]
	for _, id := range m.ids {
		if !loop(id) {
			kept = append(kept, id)
		}
	}
	dropped := len(m.ids) - len(kept)
	m.ids = kept

	return dropped
}
