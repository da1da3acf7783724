//nolint:ireturn
package maps

import (
	"fmt"

	"github.com/amp-labs/amp-steroids/compare"
	"github.com/amp-labs/amp-steroids/errors"
	"github.com/amp-labs/amp-steroids/hashing"
	"github.com/amp-labs/amp-steroids/utils"
)

// Entry is a single key-value pair of a Map. SetValue replaces the value and
// returns the old one, or fails if the entry is read-only.
type Entry[K any, V any] interface {
	Key() K
	Value() V
	SetValue(value V) (previous V, err error)
}

// ImmutableEntry is a read-only Entry. Its hash code is the hash code of its
// key, so entries with equal keys land in the same bucket regardless of value.
type ImmutableEntry[K any, V any] struct {
	key   K
	value V
}

var _ Entry[string, int] = ImmutableEntry[string, int]{}

// NewImmutableEntry creates an entry from a key and a value.
func NewImmutableEntry[K, V any](key K, value V) ImmutableEntry[K, V] {
	return ImmutableEntry[K, V]{key: key, value: value}
}

// EntryOf is a shorthand for NewImmutableEntry.
func EntryOf[K, V any](key K, value V) ImmutableEntry[K, V] {
	return NewImmutableEntry(key, value)
}

// FromEntry copies the key and value of any entry into an ImmutableEntry.
func FromEntry[K, V any](entry Entry[K, V]) (ImmutableEntry[K, V], error) {
	if utils.IsNilish(entry) {
		return ImmutableEntry[K, V]{}, fmt.Errorf("%w: entry cannot be nil", errors.ErrNullReference)
	}

	return NewImmutableEntry(entry.Key(), entry.Value()), nil
}

func (e ImmutableEntry[K, V]) Key() K {
	return e.key
}

func (e ImmutableEntry[K, V]) Value() V {
	return e.value
}

// SetValue always returns errors.ErrUnsupportedOperation.
func (e ImmutableEntry[K, V]) SetValue(V) (V, error) {
	return e.value, fmt.Errorf("%w: ImmutableMapEntry is immutable, SetValue is not allowed",
		errors.ErrUnsupportedOperation)
}

// Equals returns true if other has an equal key and an equal value.
// A nil other is never equal.
func (e ImmutableEntry[K, V]) Equals(other Entry[K, V]) bool {
	if utils.IsNilish(other) {
		return false
	}

	return compare.Equal(e.key, other.Key()) && compare.Equal(e.value, other.Value())
}

func (e ImmutableEntry[K, V]) HashCode() int32 {
	return hashing.Code(e.key)
}

func (e ImmutableEntry[K, V]) String() string {
	return fmt.Sprintf("ImmutableMapEntry[key=%v, value=%v]", e.key, e.value)
}
