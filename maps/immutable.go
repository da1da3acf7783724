//nolint:ireturn
package maps

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/amp-labs/amp-steroids/assert"
	"github.com/amp-labs/amp-steroids/compare"
	"github.com/amp-labs/amp-steroids/errors"
	"github.com/amp-labs/amp-steroids/hashing"
	"github.com/amp-labs/amp-steroids/lazy"
	"github.com/amp-labs/amp-steroids/logger"
	"github.com/amp-labs/amp-steroids/utils"
	"github.com/amp-labs/amp-steroids/zero"
)

// SimpleImmutableMap is an ImmutableMap backed by a native map. The entries
// are materialized once, in iteration order, when the map is built. The hash
// code and string form are computed on first use and then cached.
//
// Always build one with From, FromKeyValues, FromKeyValuesWith or
// FromEntries. A SimpleImmutableMap is safe for concurrent use.
type SimpleImmutableMap[K comparable, V any] struct {
	values   map[K]V
	entries  []ImmutableEntry[K, V]
	keyOrder func(a, b K) int
	hashCode *lazy.Of[int32]
	str      *lazy.Of[string]
}

var _ ImmutableMap[string, int] = (*SimpleImmutableMap[string, int])(nil)

// From copies m into a new immutable map. A nil m gives an empty map. Keys are
// iterated in NaturalOrder unless WithKeyOrder is given.
func From[K comparable, V any](m map[K]V, opts ...Option[K]) *SimpleImmutableMap[K, V] {
	o := newOptions(opts)

	keys := make([]K, 0, len(m))
	values := make(map[K]V, len(m))

	for k, v := range m {
		keys = append(keys, k)
		values[k] = v
	}

	slices.SortStableFunc(keys, o.keyOrder)

	return newSimpleImmutableMap(keys, values, o.keyOrder)
}

// FromKeyValues builds a map from alternating keys and values:
//
//	FromKeyValues[string, int]("k1", 1, "k2", 2)
//
// Keys must be of type K and values of type V. See FromKeyValuesWith for
// the errors returned. Calling it with no arguments gives an empty map.
func FromKeyValues[K comparable, V any](keyValues ...any) (*SimpleImmutableMap[K, V], error) {
	if keyValues == nil {
		keyValues = []any{}
	}

	return FromKeyValuesWith(TypeOf[K](), TypeOf[V](), keyValues)
}

// FromKeyValuesWith builds a map from alternating keys and values, checked
// against explicit type tags. Nothing is built unless every check passes:
//
//   - a nil keyTag, valueTag or keyValues returns errors.ErrNullReference
//     (one joined error naming every nil argument);
//   - an odd number of items returns errors.ErrInvalidArgument;
//   - a key or value its tag does not match (nil never matches TypeOf tags)
//     returns errors.ErrInvalidArgument and errors.ErrWrongType, naming the
//     index, the expected type and the offending item.
//
// A key repeated in the list keeps its first position and takes its last value.
func FromKeyValuesWith[K comparable, V any](
	keyTag *Tag[K],
	valueTag *Tag[V],
	keyValues []any,
	opts ...Option[K],
) (*SimpleImmutableMap[K, V], error) {
	var errs errors.Collection

	if keyTag == nil {
		errs.Add(fmt.Errorf("%w: keyTag cannot be nil", errors.ErrNullReference))
	}

	if valueTag == nil {
		errs.Add(fmt.Errorf("%w: valueTag cannot be nil", errors.ErrNullReference))
	}

	if keyValues == nil {
		errs.Add(fmt.Errorf("%w: keyValues cannot be nil", errors.ErrNullReference))
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	if len(keyValues)%2 != 0 {
		return nil, logger.AnnotateError(
			fmt.Errorf("%w: number of items in keyValues needs to be even, got %d elements in list",
				errors.ErrInvalidArgument, len(keyValues)),
			"size", len(keyValues))
	}

	keys := make([]K, 0, len(keyValues)/2)
	values := make(map[K]V, len(keyValues)/2)

	for i := 0; i < len(keyValues); i += 2 {
		rawKey, rawValue := keyValues[i], keyValues[i+1]

		key, ok := keyTag.Match(rawKey)
		if !ok || !hashable(key) {
			return nil, mismatch("key", i, keyTag.Name(), rawKey)
		}

		value, ok := valueTag.Match(rawValue)
		if !ok {
			return nil, mismatch("value", i+1, valueTag.Name(), rawValue)
		}

		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}

		values[key] = value
	}

	return fromOrderedKeys(keys, values, opts), nil
}

// FromEntries builds a map from entries, in order of first appearance.
// A repeated key keeps its first position and takes its last value.
// A nil entry returns errors.ErrNullReference.
func FromEntries[K comparable, V any](entries []Entry[K, V], opts ...Option[K]) (*SimpleImmutableMap[K, V], error) {
	keys := make([]K, 0, len(entries))
	values := make(map[K]V, len(entries))

	for i, entry := range entries {
		if utils.IsNilish(entry) {
			return nil, logger.AnnotateError(
				fmt.Errorf("%w: entry at index %d is nil", errors.ErrNullReference, i),
				"index", i)
		}

		key := entry.Key()
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}

		values[key] = entry.Value()
	}

	return fromOrderedKeys(keys, values, opts), nil
}

func fromOrderedKeys[K comparable, V any](keys []K, values map[K]V, opts []Option[K]) *SimpleImmutableMap[K, V] {
	o := newOptions(opts)

	if o.explicit {
		slices.SortStableFunc(keys, o.keyOrder)
	}

	return newSimpleImmutableMap(keys, values, o.keyOrder)
}

// newSimpleImmutableMap takes ownership of keys and values.
func newSimpleImmutableMap[K comparable, V any](
	keys []K,
	values map[K]V,
	keyOrder func(a, b K) int,
) *SimpleImmutableMap[K, V] {
	assert.True(len(keys) == len(values), "keys and values out of sync: %d keys, %d values", len(keys), len(values))

	entries := make([]ImmutableEntry[K, V], 0, len(keys))
	for _, key := range keys {
		entries = append(entries, NewImmutableEntry(key, values[key]))
	}

	out := &SimpleImmutableMap[K, V]{
		values:   values,
		entries:  entries,
		keyOrder: keyOrder,
	}

	out.hashCode = lazy.New(out.computeHashCode)
	out.str = lazy.New(out.computeString)

	return out
}

type mismatchError struct {
	err error
}

func (e *mismatchError) Error() string {
	return e.err.Error()
}

func (e *mismatchError) Unwrap() []error {
	return []error{e.err, errors.ErrWrongType}
}

func mismatch(what string, index int, expected string, actual any) error {
	return logger.AnnotateError(
		&mismatchError{
			err: fmt.Errorf("%w: %s at index %d is not of type %s: %s=%v",
				errors.ErrInvalidArgument, what, index, expected, what, actual),
		},
		"index", index,
		"expected_type", expected,
		"actual_type", fmt.Sprintf("%T", actual))
}

// hashable rejects keys that would make a native map panic, e.g. a slice
// stored in an interface-typed key.
func hashable[K comparable](key K) bool {
	val := any(key)
	if val == nil {
		return true
	}

	return reflect.ValueOf(val).Comparable()
}

func (m *SimpleImmutableMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *SimpleImmutableMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *SimpleImmutableMap[K, V]) ContainsKey(key K) bool {
	_, found := m.values[key]

	return found
}

func (m *SimpleImmutableMap[K, V]) ContainsValue(value V) bool {
	for _, entry := range m.entries {
		if compare.Equal(entry.value, value) {
			return true
		}
	}

	return false
}

func (m *SimpleImmutableMap[K, V]) Get(key K) (V, bool) {
	value, found := m.values[key]

	return value, found
}

func (m *SimpleImmutableMap[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, found := m.values[key]; found {
		return value
	}

	return defaultValue
}

func (m *SimpleImmutableMap[K, V]) KeySet() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, entry := range m.entries {
			if !yield(entry.key) {
				return
			}
		}
	}
}

func (m *SimpleImmutableMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, entry := range m.entries {
			if !yield(entry.value) {
				return
			}
		}
	}
}

// EntrySet returns the entries as ImmutableEntry values, in iteration order.
func (m *SimpleImmutableMap[K, V]) EntrySet() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, entry)
	}

	return out
}

func (m *SimpleImmutableMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, entry := range m.entries {
			if !yield(entry.key, entry.value) {
				return
			}
		}
	}
}

func (m *SimpleImmutableMap[K, V]) ToMutableMap() map[K]V {
	out := make(map[K]V, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}

	return out
}

// PutToNew returns a copy with key set to value. An existing key keeps its
// position, a new key goes last.
func (m *SimpleImmutableMap[K, V]) PutToNew(key K, value V) ImmutableMap[K, V] {
	keys, values := m.copyState(1)

	if _, found := values[key]; !found {
		keys = append(keys, key)
	}

	values[key] = value

	return newSimpleImmutableMap(keys, values, m.keyOrder)
}

// PutAllToNew returns a copy with every entry of other added. Existing keys
// keep their position, new keys go last, sorted by this map's key order.
func (m *SimpleImmutableMap[K, V]) PutAllToNew(other map[K]V) (ImmutableMap[K, V], error) {
	if other == nil {
		return nil, fmt.Errorf("%w: given map cannot be nil", errors.ErrNullReference)
	}

	keys, values := m.copyState(len(other))

	added := make([]K, 0, len(other))

	for k, v := range other {
		if _, found := values[k]; !found {
			added = append(added, k)
		}

		values[k] = v
	}

	slices.SortStableFunc(added, m.keyOrder)

	return newSimpleImmutableMap(append(keys, added...), values, m.keyOrder), nil
}

// RemoveFromNew returns a copy without key. The other keys keep their order.
func (m *SimpleImmutableMap[K, V]) RemoveFromNew(key K) ImmutableMap[K, V] {
	keys, values := m.copyState(0)

	if _, found := values[key]; found {
		delete(values, key)

		keys = slices.DeleteFunc(keys, func(k K) bool {
			return k == key
		})
	}

	return newSimpleImmutableMap(keys, values, m.keyOrder)
}

func (m *SimpleImmutableMap[K, V]) copyState(extra int) ([]K, map[K]V) {
	keys := make([]K, 0, len(m.entries)+extra)
	values := make(map[K]V, len(m.entries)+extra)

	for _, entry := range m.entries {
		keys = append(keys, entry.key)
		values[entry.key] = entry.value
	}

	return keys, values
}

// Put always returns errors.ErrUnsupportedOperation. Use PutToNew.
func (m *SimpleImmutableMap[K, V]) Put(K, V) (V, error) {
	return zero.Value[V](), fmt.Errorf("%w: this is an immutable map, Put is not supported", errors.ErrUnsupportedOperation)
}

// Remove always returns errors.ErrUnsupportedOperation. Use RemoveFromNew.
func (m *SimpleImmutableMap[K, V]) Remove(K) (V, error) {
	return zero.Value[V](), fmt.Errorf("%w: this is an immutable map, Remove is not supported", errors.ErrUnsupportedOperation)
}

// PutAll always returns errors.ErrUnsupportedOperation. Use PutAllToNew.
func (m *SimpleImmutableMap[K, V]) PutAll(map[K]V) error {
	return fmt.Errorf("%w: this is an immutable map, PutAll is not supported", errors.ErrUnsupportedOperation)
}

// Clear always returns errors.ErrUnsupportedOperation.
func (m *SimpleImmutableMap[K, V]) Clear() error {
	return fmt.Errorf("%w: this is an immutable map, Clear is not supported", errors.ErrUnsupportedOperation)
}

// Equals returns true if other holds exactly the same keys, mapped to equal
// values. Iteration order does not matter.
func (m *SimpleImmutableMap[K, V]) Equals(other Map[K, V]) bool {
	if utils.IsNilish(other) {
		return false
	}

	if same, ok := other.(*SimpleImmutableMap[K, V]); ok && same == m {
		return true
	}

	if other.Size() != m.Size() {
		return false
	}

	for _, entry := range m.entries {
		value, found := other.Get(entry.key)
		if !found || !compare.Equal(entry.value, value) {
			return false
		}
	}

	return true
}

func (m *SimpleImmutableMap[K, V]) HashCode() int32 {
	return m.hashCode.Get()
}

func (m *SimpleImmutableMap[K, V]) String() string {
	return m.str.Get()
}

func (m *SimpleImmutableMap[K, V]) computeHashCode() int32 {
	var sum int32

	for _, entry := range m.entries {
		sum += hashing.Code(entry.key) ^ hashing.Code(entry.value)
	}

	return sum
}

func (m *SimpleImmutableMap[K, V]) computeString() string {
	var sb strings.Builder

	sb.WriteString("SimpleImmutableMap[")

	for i, entry := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}

		_, _ = fmt.Fprintf(&sb, "%v=%v", entry.key, entry.value)
	}

	sb.WriteString("]")

	return sb.String()
}
