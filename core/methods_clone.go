// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning maps and rebuilding them under a key transformation.
// Determinism:
//   - Clones preserve insertion order.

package core

// EmptyClone returns an empty map of the same type with room for capacity terms.
// Every derived-map operation accumulates into an EmptyClone.
// Complexity: O(capacity).
func (m *Map[K, V]) EmptyClone(capacity int) *Map[K, V] {
	return NewMap[K, V](capacity)
}

// Clone returns an independent copy of the map.
// Complexity: O(n).
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := NewMap[K, V](m.Len())
	out.entries = append(out.entries, m.entries...)
	for k, i := range m.index {
		out.index[k] = i
	}

	return out
}

// Rekey rebuilds the map by sending every key through f and accumulating the
// coefficients of keys that collide. The first error from f aborts the
// rebuild and the receiver is left untouched.
// Complexity: O(n) calls of f.
func (m *Map[K, V]) Rekey(f func(K) (K, error)) (*Map[K, V], error) {
	out := m.EmptyClone(m.Len())
	for _, e := range m.entries {
		k, err := f(e.key)
		if err != nil {
			return nil, err
		}
		out.AddTerm(k, e.value)
	}

	return out, nil
}
