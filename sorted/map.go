package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Map is a map with ordered keys, iterated in ascending key order.
type Map[K cmp.Ordered, V any] struct {
	tree tree[K, V]
}

// NewMap returns an empty sorted map.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// FromMap copies a native map into a new sorted map.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Map[K, V] {
	out := NewMap[K, V]()

	for k, v := range m {
		out.Add(k, v)
	}

	return out
}

// Add inserts or replaces the value stored under key.
func (m *Map[K, V]) Add(key K, value V) {
	m.tree.put(key, value)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.get(key)
}

// Remove deletes key. It returns false if the key was absent.
func (m *Map[K, V]) Remove(key K) bool {
	return m.tree.remove(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.getNode(key) != nil
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.tree.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.size == 0
}

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.tree.walk(func(n *node[K, V]) bool {
			return yield(n.key)
		})
	}
}

// Seq iterates over the entries in ascending key order.
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.walk(func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// String renders the map as "map[a:1 b:2]", like fmt does for native maps.
func (m *Map[K, V]) String() string {
	parts := make([]string, 0, m.tree.size)

	for k, v := range m.Seq() {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	}

	return "map[" + strings.Join(parts, " ") + "]"
}
