//nolint:ireturn
package maps

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-steroids/compare"
	"github.com/amp-labs/amp-steroids/errors"
	"github.com/amp-labs/amp-steroids/utils"
)

// GoMap adapts a native Go map to the Map interface. It is mutable: Put,
// Remove, PutAll and Clear change the wrapped map, and SetValue on an entry
// from EntrySet writes through to it.
//
// Iteration order is that of the native map, i.e. unspecified. GoMap is not
// safe for concurrent use.
type GoMap[K comparable, V any] struct {
	m map[K]V
}

var _ Map[string, int] = (*GoMap[string, int])(nil)

// FromGoMap wraps m without copying it, so changes are visible both ways.
// A nil m is replaced by a new empty map.
//
// Example:
//
//	goMap := map[string]int{"a": 1, "b": 2}
//	m := FromGoMap(goMap)
//	m.Put("c", 3) // goMap["c"] == 3
func FromGoMap[K comparable, V any](m map[K]V) *GoMap[K, V] {
	if m == nil {
		m = make(map[K]V)
	}

	return &GoMap[K, V]{m: m}
}

// ToGoMap copies any Map into a new native map.
// Returns nil if the input map is nil, including a typed nil pointer.
//
// Example:
//
//	m, _ := FromKeyValues[string, int]("a", 1)
//	goMap := ToGoMap[string, int](m) // map[string]int{"a": 1}
func ToGoMap[K comparable, V any](m Map[K, V]) map[K]V {
	if utils.IsNilish(m) {
		return nil
	}

	out := make(map[K]V, m.Size())

	for k, v := range m.Seq() {
		out[k] = v
	}

	return out
}

func (g *GoMap[K, V]) Size() int {
	return len(g.m)
}

func (g *GoMap[K, V]) IsEmpty() bool {
	return len(g.m) == 0
}

func (g *GoMap[K, V]) ContainsKey(key K) bool {
	_, found := g.m[key]

	return found
}

func (g *GoMap[K, V]) ContainsValue(value V) bool {
	for _, v := range g.m {
		if compare.Equal(v, value) {
			return true
		}
	}

	return false
}

func (g *GoMap[K, V]) Get(key K) (V, bool) {
	value, found := g.m[key]

	return value, found
}

func (g *GoMap[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, found := g.m[key]; found {
		return value
	}

	return defaultValue
}

func (g *GoMap[K, V]) KeySet() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range g.m {
			if !yield(k) {
				return
			}
		}
	}
}

func (g *GoMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range g.m {
			if !yield(v) {
				return
			}
		}
	}
}

// EntrySet returns write-through entries: SetValue on one of them updates
// the wrapped map.
func (g *GoMap[K, V]) EntrySet() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(g.m))
	for k := range g.m {
		out = append(out, &goMapEntry[K, V]{owner: g, key: k})
	}

	return out
}

func (g *GoMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range g.m {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (g *GoMap[K, V]) Put(key K, value V) (V, error) {
	previous := g.m[key]
	g.m[key] = value

	return previous, nil
}

func (g *GoMap[K, V]) Remove(key K) (V, error) {
	previous := g.m[key]
	delete(g.m, key)

	return previous, nil
}

// PutAll copies every entry of m. A nil m returns errors.ErrNullReference.
func (g *GoMap[K, V]) PutAll(m map[K]V) error {
	if m == nil {
		return fmt.Errorf("%w: given map cannot be nil", errors.ErrNullReference)
	}

	for k, v := range m {
		g.m[k] = v
	}

	return nil
}

func (g *GoMap[K, V]) Clear() error {
	clear(g.m)

	return nil
}

type goMapEntry[K comparable, V any] struct {
	owner *GoMap[K, V]
	key   K
}

func (e *goMapEntry[K, V]) Key() K {
	return e.key
}

func (e *goMapEntry[K, V]) Value() V {
	return e.owner.m[e.key]
}

func (e *goMapEntry[K, V]) SetValue(value V) (V, error) {
	return e.owner.Put(e.key, value)
}
