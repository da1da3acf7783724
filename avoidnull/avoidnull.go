// Package avoidnull selects the first non-nil value from a list of
// candidates and substitutes fresh empty containers for nil ones.
//
// "Nil" here is utils.IsNilish: a nil pointer, map, slice, channel, func or
// interface. Values of kinds that cannot be nil are always non-nil, so for
// FirstNonNull[int] the first candidate always wins.
package avoidnull

import (
	"fmt"

	"github.com/amp-labs/amp-steroids/errors"
	"github.com/amp-labs/amp-steroids/logger"
	"github.com/amp-labs/amp-steroids/optional"
	"github.com/amp-labs/amp-steroids/utils"
	"github.com/amp-labs/amp-steroids/zero"
)

// IsNull reports whether value is nilish.
func IsNull[T any](value T) bool {
	return utils.IsNil(value)
}

// FirstNonNull returns the first non-nil candidate, checking first and then
// rest from left to right.
//
//	FirstNonNull[*string](nil, &x, nil, &y) // &x
//
// If every candidate is nil (including the case where rest is empty and first
// is nil) it returns an error wrapping errors.ErrNullReference.
func FirstNonNull[T any](first T, rest ...T) (T, error) { //nolint:ireturn
	if value, ok := TryFirstNonNull(first, rest...).Get(); ok {
		return value, nil
	}

	return zero.Value[T](), logger.AnnotateError(
		fmt.Errorf("%w: all %d candidates were nil", errors.ErrNullReference, 1+len(rest)),
		"candidates", 1+len(rest),
	)
}

// MustFirstNonNull is like FirstNonNull but panics instead of returning an
// error. Use it only when at least one candidate is known to be non-nil.
func MustFirstNonNull[T any](first T, rest ...T) T { //nolint:ireturn
	value, err := FirstNonNull(first, rest...)
	if err != nil {
		panic(err)
	}

	return value
}

// TryFirstNonNull scans the candidates like FirstNonNull and returns the
// first non-nil one wrapped in Some, or None if there is none.
func TryFirstNonNull[T any](first T, rest ...T) optional.Value[T] {
	if !IsNull(first) {
		return optional.Some(first)
	}

	for _, candidate := range rest {
		if !IsNull(candidate) {
			return optional.Some(candidate)
		}
	}

	return optional.None[T]()
}
