// Package freqmap implements a frequency map over a discrete value
// domain: a mapping from value to numeric weight, together with the
// multiset view used for subset queries. It is the primitive the pmf
// and suite packages build on.
package freqmap

// Map accumulates weights for discrete values. Absent values
// implicitly weigh zero. A Map is not safe for concurrent mutation;
// readers may interleave freely between mutations.
type Map[V comparable] struct {
	weights map[V]float64
}

// New returns a Map in which each listed value contributes weight 1.
func New[V comparable](values ...V) *Map[V] {
	m := &Map[V]{weights: make(map[V]float64, len(values))}
	for _, v := range values {
		m.weights[v]++
	}
	return m
}

// FromWeights returns a Map holding a copy of the given weights.
func FromWeights[V comparable](weights map[V]float64) *Map[V] {
	m := &Map[V]{weights: make(map[V]float64, len(weights))}
	for v, w := range weights {
		m.weights[v] = w
	}
	return m
}

// Incr adds 1 to the weight at v.
func (m *Map[V]) Incr(v V) {
	m.IncrBy(v, 1)
}

// IncrBy adds by to the weight at v, creating the entry if absent.
// Negative increments are permitted at this layer; the pmf layer
// forbids negative weights.
func (m *Map[V]) IncrBy(v V, by float64) {
	m.weights[v] += by
}

// Set overwrites the weight at v.
func (m *Map[V]) Set(v V, w float64) {
	m.weights[v] = w
}

// Weight returns the weight at v, or 0 if v is absent.
func (m *Map[V]) Weight(v V) float64 {
	return m.weights[v]
}

// Total returns the sum of all weights.
func (m *Map[V]) Total() float64 {
	var total float64
	for _, w := range m.weights {
		total += w
	}
	return total
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	return len(m.weights)
}

// Keys returns a snapshot of the stored values, in no particular
// order.
func (m *Map[V]) Keys() []V {
	keys := make([]V, 0, len(m.weights))
	for v := range m.weights {
		keys = append(keys, v)
	}
	return keys
}

// Each calls fn for every stored (value, weight) entry. fn must not
// mutate the Map.
func (m *Map[V]) Each(fn func(v V, w float64)) {
	for v, w := range m.weights {
		fn(v, w)
	}
}

// Copy returns an independent copy of the Map.
func (m *Map[V]) Copy() *Map[V] {
	return FromWeights(m.weights)
}

// Equals reports whether both maps hold identical (value, weight)
// pairs. A stored weight of 0 is indistinguishable from an absent
// entry. Two value sequences are anagrams exactly when the Maps built
// from them compare equal.
func (m *Map[V]) Equals(other *Map[V]) bool {
	for v, w := range m.weights {
		if other.weights[v] != w {
			return false
		}
	}
	for v, w := range other.weights {
		if m.weights[v] != w {
			return false
		}
	}
	return true
}
