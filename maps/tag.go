package maps

import (
	"reflect"

	"github.com/amp-labs/amp-steroids/assert"
)

// Tag identifies the type an untyped value must have to be accepted by
// FromKeyValuesWith. It has a name, used in error messages, and a match
// function that converts a matching value.
type Tag[T any] struct {
	name  string
	match func(any) (T, bool)
}

// TypeOf returns the tag of the Go type T. A value matches if it is a T
// (or, for interface types, implements T). Nil never matches.
func TypeOf[T any]() *Tag[T] {
	return &Tag[T]{
		name: reflect.TypeFor[T]().String(),
		match: func(val any) (T, bool) {
			typed, err := assert.Type[T](val)

			return typed, err == nil
		},
	}
}

// TagFunc returns a tag that accepts whatever match accepts. It is useful to
// narrow a type (only positive ints) or to convert (json.Number to int64).
// A nil match behaves like TypeOf[T]().
func TagFunc[T any](name string, match func(any) (T, bool)) *Tag[T] {
	tag := TypeOf[T]()

	if name != "" {
		tag.name = name
	}

	if match != nil {
		tag.match = match
	}

	return tag
}

// Name returns the name used in error messages.
func (t *Tag[T]) Name() string {
	return t.name
}

// Match converts val to T, reporting whether val is accepted.
func (t *Tag[T]) Match(val any) (T, bool) { //nolint:ireturn
	return t.match(val)
}
