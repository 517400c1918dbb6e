// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Map storage and the shared algebra of operator maps.
// Determinism:
//   - Iteration follows insertion order; removal shifts later entries left
//     so the remaining order is preserved.
// Invariants:
//   - No entry with a zero coefficient is ever stored.
//   - index[key.String()] is the position of key in entries.

package core

import (
	"iter"
	"strings"
)

type entry[K Key, V Scalar[V]] struct {
	key   K
	value V
}

// Map is an insertion-ordered mapping from a product key to a coefficient.
// The zero Map is not usable; construct with NewMap.
type Map[K Key, V Scalar[V]] struct {
	entries []entry[K, V]
	index   map[string]int
}

// NewMap returns an empty map with room for capacity entries.
// Complexity: O(capacity).
func NewMap[K Key, V Scalar[V]](capacity int) *Map[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Map[K, V]{
		entries: make([]entry[K, V], 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// Len returns the number of stored terms.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// IsEmpty reports whether no term is stored.
func (m *Map[K, V]) IsEmpty() bool { return len(m.entries) == 0 }

// Get returns the coefficient of key, or the zero coefficient when absent.
// Complexity: O(1).
func (m *Map[K, V]) Get(key K) V {
	if i, ok := m.index[key.String()]; ok {
		return m.entries[i].value
	}
	var zero V

	return zero
}

// Contains reports whether key has a stored coefficient.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key.String()]

	return ok
}

// Set stores value at key, or removes key when value is zero.
// It returns the previous coefficient and whether one existed.
// Complexity: O(1) for insert/update, O(n) for removal.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	if value.IsZero() {
		return m.Remove(key)
	}
	s := key.String()
	if i, ok := m.index[s]; ok {
		old := m.entries[i].value
		m.entries[i] = entry[K, V]{key: key, value: value}

		return old, true
	}
	m.index[s] = len(m.entries)
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
	var zero V

	return zero, false
}

// AddTerm adds value to the coefficient stored at key.
func (m *Map[K, V]) AddTerm(key K, value V) {
	m.Set(key, m.Get(key).Add(value))
}

// Remove deletes key, returning the removed coefficient if present.
// Complexity: O(n).
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	s := key.String()
	i, ok := m.index[s]
	if !ok {
		return zero, false
	}
	old := m.entries[i].value
	delete(m.index, s)
	copy(m.entries[i:], m.entries[i+1:])
	m.entries[len(m.entries)-1] = entry[K, V]{}
	m.entries = m.entries[:len(m.entries)-1]
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].key.String()] = j
	}

	return old, true
}

// All iterates over (key, coefficient) pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the stored keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.key
	}

	return out
}

// Values returns the stored coefficients in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.value
	}

	return out
}

// Truncate returns a new map without the terms whose coefficient falls
// below threshold (see calc.Complex.Truncate). Symbolic terms always survive.
// Complexity: O(n).
func (m *Map[K, V]) Truncate(threshold float64) *Map[K, V] {
	out := m.EmptyClone(m.Len())
	for _, e := range m.entries {
		if v, keep := e.value.Truncate(threshold); keep {
			out.Set(e.key, v)
		}
	}

	return out
}

// Neg returns the termwise negation.
func (m *Map[K, V]) Neg() *Map[K, V] {
	out := m.EmptyClone(m.Len())
	for _, e := range m.entries {
		out.Set(e.key, e.value.Neg())
	}

	return out
}

// Scale returns the map with every coefficient multiplied by factor.
func (m *Map[K, V]) Scale(factor V) *Map[K, V] {
	out := m.EmptyClone(m.Len())
	for _, e := range m.entries {
		out.Set(e.key, e.value.Mul(factor))
	}

	return out
}

// Add returns m + other.
func (m *Map[K, V]) Add(other *Map[K, V]) *Map[K, V] {
	out := m.Clone()
	for _, e := range other.entries {
		out.AddTerm(e.key, e.value)
	}

	return out
}

// Sub returns m - other.
func (m *Map[K, V]) Sub(other *Map[K, V]) *Map[K, V] {
	out := m.Clone()
	for _, e := range other.entries {
		out.AddTerm(e.key, e.value.Neg())
	}

	return out
}

// Conjugate rebuilds the map as sum conj(v) * prefactor * key', where
// conj(key) returns (key', prefactor).
func (m *Map[K, V]) Conjugate(conj func(K) (K, float64)) *Map[K, V] {
	out := m.EmptyClone(m.Len())
	for _, e := range m.entries {
		k, p := conj(e.key)
		out.AddTerm(k, e.value.Conj().Scale(p))
	}

	return out
}

// Partition splits the map into the terms that satisfy keep and the rest.
func (m *Map[K, V]) Partition(keep func(K) bool) (matched, rest *Map[K, V]) {
	matched, rest = m.EmptyClone(0), m.EmptyClone(0)
	for _, e := range m.entries {
		if keep(e.key) {
			matched.Set(e.key, e.value)
		} else {
			rest.Set(e.key, e.value)
		}
	}

	return matched, rest
}

// Equal reports whether both maps hold the same terms, regardless of order.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	for _, e := range m.entries {
		i, ok := other.index[e.key.String()]
		if !ok || !other.entries[i].value.Equal(e.value) {
			return false
		}
	}

	return true
}

// Format renders the map as "title{\nkey: value,\n...}".
func (m *Map[K, V]) Format(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("{\n")
	for _, e := range m.entries {
		b.WriteString(e.key.String())
		b.WriteString(": ")
		b.WriteString(e.value.String())
		b.WriteString(",\n")
	}
	b.WriteString("}")

	return b.String()
}
