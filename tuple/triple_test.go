package tuple_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/amp-labs/amp-steroids/tuple"
	"github.com/stretchr/testify/assert"
)

func TestTriple(t *testing.T) {
	t.Parallel()

	triple := tuple.NewTriple("hello", 42, true)

	assert.Equal(t, "hello", triple.First())
	assert.Equal(t, 42, triple.Second())
	assert.True(t, triple.Third())
	assert.Equal(t, tuple.NewPair("hello", 42), triple.ToPair())
}

func TestTriple_Setters(t *testing.T) {
	t.Parallel()

	triple := tuple.NewTriple("x", 1, true)

	assert.Equal(t, tuple.NewTriple("y", 1, true), triple.SetFirst("y"))
	assert.Equal(t, tuple.NewTriple("x", 2, true), triple.SetSecond(2))
	assert.Equal(t, tuple.NewTriple("x", 1, false), triple.SetThird(false))
	assert.Equal(t, tuple.NewTriple("x", 1, true), triple)
}

func TestMapTriple(t *testing.T) {
	t.Parallel()

	triple := tuple.NewTriple("x", 1, true)

	assert.Equal(t,
		tuple.NewTriple("X", "1", "true"),
		tuple.MapTriple(triple, strings.ToUpper, strconv.Itoa, strconv.FormatBool))
	assert.Equal(t, tuple.NewTriple(1, 1, true), tuple.MapTripleFirst(triple, func(s string) int { return len(s) }))
	assert.Equal(t, tuple.NewTriple("x", "1", true), tuple.MapTripleSecond(triple, strconv.Itoa))
	assert.Equal(t, tuple.NewTriple("x", 1, "true"), tuple.MapTripleThird(triple, strconv.FormatBool))
}

func TestTriple_EqualsAndHashCode(t *testing.T) {
	t.Parallel()

	a := tuple.NewTriple("x", []int{1}, map[string]int{"k": 1})
	b := tuple.NewTriple("x", []int{1}, map[string]int{"k": 1})
	c := a.SetSecond([]int{2})

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, a.Equals(c))

	// ((0*31 + 120)*31 + 1)*31 + 1231
	assert.Equal(t, int32(116582), tuple.NewTriple("x", 1, true).HashCode())
}

func TestTriple_ToOptional(t *testing.T) {
	t.Parallel()

	assert.True(t, tuple.NewTriple[[]int](nil, 1, 2).ToOptional().Empty())
	assert.Equal(t, "x", tuple.NewTriple("x", 1, 2).ToOptional().GetOrElse(""))
}

func TestTriple_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Triple[x, 1, true]", tuple.NewTriple("x", 1, true).String())
}
