// Package maps provides an immutable, copy-on-write map and the small mapping
// capability it shares with native Go maps.
//
// SimpleImmutableMap never changes after construction. "Mutating" it produces
// a new map:
//
//	m, err := maps.FromKeyValues[string, int]("k1", 1, "k2", 2)
//	bigger := m.PutToNew("k3", 3)   // m still has 2 entries
//	_, err = m.Put("k4", 4)         // errors.ErrUnsupportedOperation
//
// Iteration order is deterministic. Maps built from a native map iterate in
// natural order of the keys' string forms (k1, k2, k10) unless WithKeyOrder is
// given. Maps built from a key/value list or from entries iterate in order of
// first appearance.
package maps

import "iter"

// Map is the generic mapping capability. Both the immutable map and the
// GoMap adapter implement it, so code written against Map works with either.
//
// Thread-safety: implementations are not guaranteed to be thread-safe unless
// explicitly documented.
//
//nolint:interfacebloat
type Map[K comparable, V any] interface {
	// Size returns the number of key-value pairs in the map.
	Size() int

	// IsEmpty returns true if the map holds no entries.
	IsEmpty() bool

	// ContainsKey returns true if the key is present.
	ContainsKey(key K) bool

	// ContainsValue returns true if at least one entry holds a value equal
	// to value, using compare.Equal.
	ContainsValue(value V) bool

	// Get returns the value for key. found is false if the key is absent.
	Get(key K) (value V, found bool)

	// GetOrElse returns the value for key, or defaultValue if it is absent.
	GetOrElse(key K, defaultValue V) V

	// KeySet returns an iterator over the keys.
	KeySet() iter.Seq[K]

	// Values returns an iterator over the values, one per entry.
	Values() iter.Seq[V]

	// EntrySet returns the entries in a fresh slice. Changing the slice
	// does not affect the map.
	EntrySet() []Entry[K, V]

	// Seq returns an iterator for ranging over all key-value pairs:
	// for key, value := range m.Seq() { ... }
	Seq() iter.Seq2[K, V]

	// Put stores value under key and returns the previous value, if any.
	Put(key K, value V) (previous V, err error)

	// Remove deletes key and returns the value it held, if any.
	Remove(key K) (previous V, err error)

	// PutAll stores every entry of m.
	PutAll(m map[K]V) error

	// Clear removes every entry.
	Clear() error
}

// ImmutableMap is a Map whose contents never change. Put, Remove, PutAll and
// Clear always return errors.ErrUnsupportedOperation; the *ToNew / *FromNew
// methods return an updated copy instead.
type ImmutableMap[K comparable, V any] interface {
	Map[K, V]

	// ToMutableMap returns a native map holding the same entries. It is
	// independent of the immutable map.
	ToMutableMap() map[K]V

	// PutToNew returns a new map with key set to value.
	PutToNew(key K, value V) ImmutableMap[K, V]

	// PutAllToNew returns a new map with every entry of m added. A nil m
	// returns errors.ErrNullReference.
	PutAllToNew(m map[K]V) (ImmutableMap[K, V], error)

	// RemoveFromNew returns a new map without key.
	RemoveFromNew(key K) ImmutableMap[K, V]

	// Equals returns true if other holds the same keys mapped to equal values.
	Equals(other Map[K, V]) bool

	// HashCode returns the sum over all entries of Code(key) ^ Code(value).
	HashCode() int32

	String() string
}
