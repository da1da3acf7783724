package avoidnull

import (
	"cmp"
	"iter"

	"github.com/amp-labs/amp-steroids/empty"
	"github.com/amp-labs/amp-steroids/sorted"
)

// Slice returns s, or a new empty slice if s is nil. It covers both plain
// collections and ordered sequences.
func Slice[S ~[]E, E any](s S) S {
	if s != nil {
		return s
	}

	return S(empty.Slice[E]())
}

// Set returns s, or a new empty set if s is nil.
func Set[S ~map[E]empty.T, E comparable](s S) S {
	if s != nil {
		return s
	}

	return S(empty.Set[E]())
}

// SortedSet returns s, or a new empty sorted set if s is nil.
func SortedSet[T cmp.Ordered](s *sorted.Set[T]) *sorted.Set[T] {
	if s != nil {
		return s
	}

	return sorted.NewSet[T]()
}

// Map returns m, or a new empty map if m is nil.
func Map[M ~map[K]V, K comparable, V any](m M) M {
	if m != nil {
		return m
	}

	return M(empty.Map[K, V]())
}

// SortedMap returns m, or a new empty sorted map if m is nil.
func SortedMap[K cmp.Ordered, V any](m *sorted.Map[K, V]) *sorted.Map[K, V] {
	if m != nil {
		return m
	}

	return sorted.NewMap[K, V]()
}

// Seq returns seq, or an iterator that yields nothing if seq is nil.
func Seq[T any](seq iter.Seq[T]) iter.Seq[T] {
	if seq != nil {
		return seq
	}

	return empty.Seq[T]()
}

// Seq2 returns seq, or an iterator that yields nothing if seq is nil.
func Seq2[K, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	if seq != nil {
		return seq
	}

	return empty.Seq2[K, V]()
}
