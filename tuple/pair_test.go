package tuple_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-steroids/errors"
	"github.com/amp-labs/amp-steroids/maps"
	"github.com/amp-labs/amp-steroids/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ maps.Entry[string, int] = tuple.Pair[string, int]{}

func TestPair(t *testing.T) {
	t.Parallel()

	pair := tuple.NewPair("hello", 42)

	assert.Equal(t, "hello", pair.First())
	assert.Equal(t, 42, pair.Second())
	assert.Equal(t, "hello", pair.Key())
	assert.Equal(t, 42, pair.Value())
}

func TestPair_SetValue(t *testing.T) {
	t.Parallel()

	pair := tuple.NewPair("x", 1)

	old, err := pair.SetValue(2)
	require.ErrorIs(t, err, errors.ErrUnsupportedOperation)
	assert.Equal(t, 1, old)
	assert.Equal(t, 1, pair.Value())
}

func TestPair_ToOptional(t *testing.T) {
	t.Parallel()

	x := "x"

	value, ok := tuple.NewPair(&x, 1).ToOptional().Get()
	require.True(t, ok)
	assert.Same(t, &x, value)

	assert.True(t, tuple.NewPair[*string](nil, 1).ToOptional().Empty())
	assert.True(t, tuple.NewPair("", 1).ToOptional().NonEmpty(), "only nil is absent")
}

func TestPair_Setters(t *testing.T) {
	t.Parallel()

	pair := tuple.NewPair("x", 1)

	assert.Equal(t, tuple.NewPair("y", 1), pair.SetFirst("y"))
	assert.Equal(t, tuple.NewPair("x", 2), pair.SetSecond(2))
	assert.Equal(t, tuple.NewPair("x", 1), pair, "receiver is unchanged")
}

func TestMapPair(t *testing.T) {
	t.Parallel()

	pair := tuple.NewPair("7", 1)
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)

		return n
	}

	assert.Equal(t, tuple.NewPair(7, "1"), tuple.MapPair(pair, atoi, strconv.Itoa))
	assert.Equal(t, tuple.NewPair(7, 1), tuple.MapPairFirst(pair, atoi))
	assert.Equal(t, tuple.NewPair("7", "1"), tuple.MapPairSecond(pair, strconv.Itoa))
}

func TestPair_Equals(t *testing.T) {
	t.Parallel()

	one, alsoOne := 1, 1

	tests := []struct {
		name     string
		a, b     tuple.Pair[*string, *int]
		expected bool
	}{
		{
			name:     "both nil",
			a:        tuple.NewPair[*string, *int](nil, nil),
			b:        tuple.NewPair[*string, *int](nil, nil),
			expected: true,
		},
		{
			name:     "nil vs value",
			a:        tuple.NewPair[*string, *int](nil, &one),
			b:        tuple.NewPair[*string, *int](nil, nil),
			expected: false,
		},
		{
			name:     "equal pointees",
			a:        tuple.NewPair[*string, *int](nil, &one),
			b:        tuple.NewPair[*string, *int](nil, &alsoOne),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equals(tt.a))

			if tt.expected {
				assert.Equal(t, tt.a.HashCode(), tt.b.HashCode())
			}
		})
	}
}

func TestPair_HashCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(3721), tuple.NewPair("x", 1).HashCode())
	assert.Equal(t, int32(0), tuple.NewPair[*string, []int](nil, nil).HashCode())
	assert.Equal(t, int32(1), tuple.NewPair[*string](nil, 1).HashCode())
	assert.Equal(t, tuple.NewPair(math.NaN(), 1).HashCode(), tuple.NewPair(math.NaN(), 1).HashCode())
	assert.True(t, tuple.NewPair(math.NaN(), 1).Equals(tuple.NewPair(math.NaN(), 1)))
}

func TestPair_EqualsAgreesWithHashCode(t *testing.T) {
	t.Parallel()

	t.Run("signed zeros", func(t *testing.T) {
		t.Parallel()

		a := tuple.NewPair(0.0, 1)
		b := tuple.NewPair(math.Copysign(0, -1), 1)

		assert.False(t, a.Equals(b))
		assert.NotEqual(t, a.HashCode(), b.HashCode())
	})

	t.Run("nested immutable maps", func(t *testing.T) {
		t.Parallel()

		m1 := maps.From(map[string]int{"a": 1})
		m2 := maps.From(map[string]int{"a": 1})
		a := tuple.NewPair("x", m1)
		b := tuple.NewPair("x", m2)

		assert.True(t, a.Equals(b))
		assert.True(t, b.Equals(a))
		assert.Equal(t, a.HashCode(), b.HashCode())

		assert.False(t, a.Equals(tuple.NewPair("x", maps.From(map[string]int{"a": 2}))))
	})

	t.Run("immutable maps behind the Map interface", func(t *testing.T) {
		t.Parallel()

		var m1, m2 maps.Map[string, int] = maps.From(map[string]int{"a": 1}), maps.From(map[string]int{"a": 1})

		assert.True(t, tuple.NewPair(m1, 1).Equals(tuple.NewPair(m2, 1)))
		assert.False(t, tuple.NewPair(m1, 1).Equals(tuple.NewPair[maps.Map[string, int]](nil, 1)))
	})
}

func TestPair_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pair[x, 1]", tuple.NewPair("x", 1).String())
	assert.Equal(t, "Pair[<nil>, [1 2]]", tuple.NewPair[*string](nil, []int{1, 2}).String())
}

func TestPair_RoundTrip(t *testing.T) {
	t.Parallel()

	pair := tuple.NewPair("x", 1)
	triple := tuple.ToTriple(pair, true)

	assert.Equal(t, tuple.NewTriple("x", 1, true), triple)
	assert.True(t, triple.ToPair().Equals(pair))
}

func TestPair_AsMapKey(t *testing.T) {
	t.Parallel()

	seen := map[tuple.Pair[string, int]]bool{
		tuple.NewPair("x", 1): true,
	}

	assert.True(t, seen[tuple.NewPair("x", 1)])
	assert.False(t, seen[tuple.NewPair("x", 2)])
}
