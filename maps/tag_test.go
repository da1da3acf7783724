package maps_test

import (
	"fmt"
	"testing"

	"github.com/amp-labs/amp-steroids/maps"
	"github.com/stretchr/testify/assert"
)

type label string

func matches[T any](tag *maps.Tag[T], val any) bool {
	_, ok := tag.Match(val)

	return ok
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		match    func(any) bool
		input    any
		expected bool
	}{
		{
			name:     "string matches string",
			match:    func(v any) bool { return matches(maps.TypeOf[string](), v) },
			input:    "k1",
			expected: true,
		},
		{
			name:     "int does not match string",
			match:    func(v any) bool { return matches(maps.TypeOf[string](), v) },
			input:    1,
			expected: false,
		},
		{
			name:     "named string type does not match string",
			match:    func(v any) bool { return matches(maps.TypeOf[string](), v) },
			input:    label("k1"),
			expected: false,
		},
		{
			name:     "nil never matches",
			match:    func(v any) bool { return matches(maps.TypeOf[any](), v) },
			input:    nil,
			expected: false,
		},
		{
			name:     "interface tag matches implementations",
			match:    func(v any) bool { return matches(maps.TypeOf[fmt.Stringer](), v) },
			input:    maps.EntryOf("k", 1),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.match(tt.input))
		})
	}
}

func TestTypeOf_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string", maps.TypeOf[string]().Name())
	assert.Equal(t, "interface {}", maps.TypeOf[any]().Name())
	assert.Equal(t, "fmt.Stringer", maps.TypeOf[fmt.Stringer]().Name())
	assert.Equal(t, "*int", maps.TypeOf[*int]().Name())
}

func TestTagFunc(t *testing.T) {
	t.Parallel()

	positive := maps.TagFunc("positive int", func(v any) (int, bool) {
		n, ok := v.(int)

		return n, ok && n > 0
	})

	assert.Equal(t, "positive int", positive.Name())

	n, ok := positive.Match(3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.False(t, matches(positive, -3))

	fallback := maps.TagFunc[int]("", nil)
	assert.Equal(t, "int", fallback.Name())
	assert.True(t, matches(fallback, -3))
}
