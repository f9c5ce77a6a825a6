package freqmap

// Multiset is a Map whose weights are interpreted as multiplicities.
type Multiset[V comparable] struct {
	*Map[V]
}

// NewMultiset returns a Multiset counting the given values.
func NewMultiset[V comparable](values ...V) *Multiset[V] {
	return &Multiset[V]{Map: New(values...)}
}

// IsSubset reports whether every value in m occurs in other at least
// as many times. Values absent from other count as zero; an empty
// receiver is a subset of anything. "Can this word be spelled from
// those tiles" is NewMultiset(word).IsSubset(NewMultiset(tiles)).
func (m *Multiset[V]) IsSubset(other *Multiset[V]) bool {
	for v, n := range m.weights {
		if n > 0 && other.Weight(v) < n {
			return false
		}
	}
	return true
}
