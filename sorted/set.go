// Package sorted provides ordered containers whose iteration order is the
// natural order of their keys. They back the sorted-set and sorted-map
// defaults of the null-avoidance helpers.
//
// Both containers are red-black trees, so lookups, inserts and removals are
// O(log n). The zero value of each container is ready to use.
package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/amp-labs/amp-steroids/empty"
)

// Set is a set of ordered elements, iterated in ascending order.
type Set[T cmp.Ordered] struct {
	tree tree[T, empty.T]
}

// NewSet returns a set holding the given elements. Duplicates are dropped.
func NewSet[T cmp.Ordered](elements ...T) *Set[T] {
	s := &Set[T]{}
	s.AddAll(elements...)

	return s
}

// Add inserts element. It returns false if the element was already present.
func (s *Set[T]) Add(element T) bool {
	return s.tree.put(element, empty.V)
}

// AddAll inserts every element.
func (s *Set[T]) AddAll(elements ...T) {
	for _, element := range elements {
		s.Add(element)
	}
}

// Remove deletes element. It returns false if the element was absent.
func (s *Set[T]) Remove(element T) bool {
	return s.tree.remove(element)
}

// Contains reports whether element is in the set.
func (s *Set[T]) Contains(element T) bool {
	return s.tree.getNode(element) != nil
}

// Size returns the number of elements.
func (s *Set[T]) Size() int {
	return s.tree.size
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.tree.size == 0
}

// First returns the smallest element, if any.
func (s *Set[T]) First() (T, bool) {
	if s.tree.root == nil {
		var zero T

		return zero, false
	}

	return minimum(s.tree.root).key, true
}

// Last returns the largest element, if any.
func (s *Set[T]) Last() (T, bool) {
	if s.tree.root == nil {
		var zero T

		return zero, false
	}

	return maximum(s.tree.root).key, true
}

// Entries returns the elements in ascending order, in a new slice.
func (s *Set[T]) Entries() []T {
	out := make([]T, 0, s.tree.size)

	for element := range s.Seq() {
		out = append(out, element)
	}

	return out
}

// Seq iterates over the elements in ascending order.
func (s *Set[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.walk(func(n *node[T, empty.T]) bool {
			return yield(n.key)
		})
	}
}

// String renders the set as "[a b c]".
func (s *Set[T]) String() string {
	parts := make([]string, 0, s.tree.size)

	for element := range s.Seq() {
		parts = append(parts, fmt.Sprint(element))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
