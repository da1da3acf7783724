//nolint:ireturn
package tuple

import (
	"fmt"

	"github.com/amp-labs/amp-steroids/compare"
	"github.com/amp-labs/amp-steroids/hashing"
	"github.com/amp-labs/amp-steroids/optional"
)

// Triple is an immutable value holding exactly three fields.
type Triple[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

func (t Triple[A, B, C]) First() A {
	return t.first
}

func (t Triple[A, B, C]) Second() B {
	return t.second
}

func (t Triple[A, B, C]) Third() C {
	return t.third
}

// ToOptional returns Some(first), or None if first is nilish.
func (t Triple[A, B, C]) ToOptional() optional.Value[A] {
	return optional.OfNillable(t.first)
}

// ToPair drops the third field.
func (t Triple[A, B, C]) ToPair() Pair[A, B] {
	return NewPair(t.first, t.second)
}

func (t Triple[A, B, C]) SetFirst(first A) Triple[A, B, C] {
	return NewTriple(first, t.second, t.third)
}

func (t Triple[A, B, C]) SetSecond(second B) Triple[A, B, C] {
	return NewTriple(t.first, second, t.third)
}

func (t Triple[A, B, C]) SetThird(third C) Triple[A, B, C] {
	return NewTriple(t.first, t.second, third)
}

// Equals reports whether all three fields are equal. Nil fields equal each other.
func (t Triple[A, B, C]) Equals(other Triple[A, B, C]) bool {
	return compare.Equal(t.first, other.first) &&
		compare.Equal(t.second, other.second) &&
		compare.Equal(t.third, other.third)
}

// HashCode combines the field hash codes in order (see hashing.Combine).
func (t Triple[A, B, C]) HashCode() int32 {
	return hashing.Combine(hashing.Code(t.first), hashing.Code(t.second), hashing.Code(t.third))
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("Triple[%v, %v, %v]", t.first, t.second, t.third)
}

// MapTriple transforms all three fields of t.
func MapTriple[A, B, C, A2, B2, C2 any](
	t Triple[A, B, C],
	mapFirst func(A) A2,
	mapSecond func(B) B2,
	mapThird func(C) C2,
) Triple[A2, B2, C2] {
	return NewTriple(mapFirst(t.first), mapSecond(t.second), mapThird(t.third))
}

func MapTripleFirst[A, B, C, A2 any](t Triple[A, B, C], f func(A) A2) Triple[A2, B, C] {
	return NewTriple(f(t.first), t.second, t.third)
}

func MapTripleSecond[A, B, C, B2 any](t Triple[A, B, C], f func(B) B2) Triple[A, B2, C] {
	return NewTriple(t.first, f(t.second), t.third)
}

func MapTripleThird[A, B, C, C2 any](t Triple[A, B, C], f func(C) C2) Triple[A, B, C2] {
	return NewTriple(t.first, t.second, f(t.third))
}
