package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	var zero Value[string]
	assert.True(t, zero.Empty())
}

func TestOfNillable(t *testing.T) {
	t.Parallel()

	var nilPtr *string

	str := "x"

	assert.True(t, OfNillable(nilPtr).Empty())
	assert.True(t, OfNillable([]int(nil)).Empty())
	assert.True(t, OfNillable[error](nil).Empty())
	assert.Equal(t, &str, OfNillable(&str).GetOrPanic())
	assert.True(t, OfNillable(0).NonEmpty(), "zero values are not nil")
	assert.True(t, OfNillable("").NonEmpty())

	// Some keeps nil on purpose.
	assert.True(t, Some(nilPtr).NonEmpty())
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrPanic())
	assert.Panics(t, func() {
		None[int]().GetOrPanic()
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))

	called := false
	fallback := func() int {
		called = true

		return 7
	}

	assert.Equal(t, 42, Some(42).GetOrElseFunc(fallback))
	assert.False(t, called)
	assert.Equal(t, 7, None[int]().GetOrElseFunc(fallback))
	assert.True(t, called)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrElse(Some(2)))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Some(1).Equals(Some(1)))
	assert.False(t, Some(1).Equals(Some(2)))
	assert.False(t, Some(1).Equals(None[int]()))
	assert.True(t, None[int]().Equals(None[int]()))
	assert.True(t, Some([]string{"a"}).Equals(Some([]string{"a"})))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, Some(2), Some(2).Filter(even))
	assert.True(t, Some(3).Filter(even).Empty())
	assert.True(t, None[int]().Filter(even).Empty())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(x)", Some("x").String())
	assert.Equal(t, "None", None[string]().String())
}

func TestAllAndForEach(t *testing.T) {
	t.Parallel()

	var seen []int

	for v := range Some(5).All() {
		seen = append(seen, v)
	}

	None[int]().ForEach(func(v int) { seen = append(seen, v) })
	Some(6).ForEach(func(v int) { seen = append(seen, v) })

	assert.Equal(t, []int{5, 6}, seen)
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("42"), Map(Some(42), strconv.Itoa))
	assert.True(t, Map(None[int](), strconv.Itoa).Empty())

	parse := func(s string) Value[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}

		return Some(n)
	}

	assert.Equal(t, Some(12), FlatMap(Some("12"), parse))
	assert.True(t, FlatMap(Some("x"), parse).Empty())
	assert.True(t, FlatMap(None[string](), parse).Empty())
}
