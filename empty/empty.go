package empty

import "iter"

// T is an empty struct type that occupies zero bytes of memory.
// It is the element type of sets modeled as map[E]T.
type T struct{}

// V is a pre-allocated instance of the empty struct T.
//
//	seen := empty.Set[string]()
//	seen["key"] = empty.V
var V = T{} //nolint:gochecknoglobals

// Slice returns a new empty, non-nil slice of the specified type.
func Slice[E any]() []E {
	return []E{}
}

// Map returns a new empty, non-nil map.
func Map[K comparable, V any]() map[K]V {
	return make(map[K]V)
}

// Set returns a new empty, non-nil set, modeled as map[E]T.
func Set[E comparable]() map[E]T {
	return make(map[E]T)
}

// Seq returns an iterator that yields nothing.
func Seq[E any]() iter.Seq[E] {
	return func(func(E) bool) {}
}

// Seq2 returns a pair iterator that yields nothing.
func Seq2[K, V any]() iter.Seq2[K, V] {
	return func(func(K, V) bool) {}
}
