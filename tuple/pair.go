//nolint:ireturn
package tuple

import (
	"fmt"

	"github.com/amp-labs/amp-steroids/compare"
	"github.com/amp-labs/amp-steroids/errors"
	"github.com/amp-labs/amp-steroids/hashing"
	"github.com/amp-labs/amp-steroids/optional"
)

// Pair is an immutable value holding exactly two fields.
//
// Pair also behaves as a read-only map entry: Key is the first field and
// Value is the second. SetValue always fails.
type Pair[A any, B any] struct {
	first  A
	second B
}

// NewPair creates a pair from its two fields.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{
		first:  first,
		second: second,
	}
}

func (p Pair[A, B]) First() A {
	return p.first
}

func (p Pair[A, B]) Second() B {
	return p.second
}

// Key returns the first field.
func (p Pair[A, B]) Key() A {
	return p.first
}

// Value returns the second field.
func (p Pair[A, B]) Value() B {
	return p.second
}

// SetValue always returns errors.ErrUnsupportedOperation. The pair is unchanged.
func (p Pair[A, B]) SetValue(B) (B, error) {
	return p.second, fmt.Errorf("%w: Pair is immutable, SetValue is not allowed", errors.ErrUnsupportedOperation)
}

// ToOptional returns Some(first), or None if first is nilish.
func (p Pair[A, B]) ToOptional() optional.Value[A] {
	return optional.OfNillable(p.first)
}

// SetFirst returns a copy of the pair with the first field replaced.
func (p Pair[A, B]) SetFirst(first A) Pair[A, B] {
	return NewPair(first, p.second)
}

// SetSecond returns a copy of the pair with the second field replaced.
func (p Pair[A, B]) SetSecond(second B) Pair[A, B] {
	return NewPair(p.first, second)
}

// Equals reports whether both fields are equal. Nil fields equal each other.
func (p Pair[A, B]) Equals(other Pair[A, B]) bool {
	return compare.Equal(p.first, other.first) &&
		compare.Equal(p.second, other.second)
}

// HashCode combines the field hash codes in order (see hashing.Combine).
func (p Pair[A, B]) HashCode() int32 {
	return hashing.Combine(hashing.Code(p.first), hashing.Code(p.second))
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("Pair[%v, %v]", p.first, p.second)
}

// ToTriple extends p with a third field.
func ToTriple[A, B, C any](p Pair[A, B], third C) Triple[A, B, C] {
	return NewTriple(p.first, p.second, third)
}

// MapPair transforms both fields of p.
func MapPair[A, B, A2, B2 any](p Pair[A, B], mapFirst func(A) A2, mapSecond func(B) B2) Pair[A2, B2] {
	return NewPair(mapFirst(p.first), mapSecond(p.second))
}

// MapPairFirst transforms the first field of p and keeps the second.
func MapPairFirst[A, B, A2 any](p Pair[A, B], f func(A) A2) Pair[A2, B] {
	return NewPair(f(p.first), p.second)
}

// MapPairSecond transforms the second field of p and keeps the first.
func MapPairSecond[A, B, B2 any](p Pair[A, B], f func(B) B2) Pair[A, B2] {
	return NewPair(p.first, f(p.second))
}
