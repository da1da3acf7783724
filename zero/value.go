// Package zero provides the zero value of a type parameter and a structural
// zero check.
package zero

import "github.com/amp-labs/amp-steroids/compare"

// Value returns the zero value for type T.
//
//	zero.Value[int]()        // 0
//	zero.Value[*MyStruct]()  // nil
func Value[T any]() T { //nolint:ireturn
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value equals the zero value of T, using
// compare.Equal. An empty but non-nil slice or map is not zero.
func IsZero[T any](value T) bool {
	return compare.Equal(value, Value[T]())
}
