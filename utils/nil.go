// Package utils holds small reflection helpers shared by the null-avoidance,
// optional and tuple packages.
package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish returns true if the value is a literal nil, or a nil pointer, map,
// slice, channel, func or interface hiding behind a non-nil interface value.
// Values of kinds that cannot be nil (numbers, strings, structs, arrays) are
// never nilish.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// IsNil is the generic form of IsNilish. It lets callers with a type
// parameter test for "null" without boxing at the call site.
//
//	utils.IsNil[*int](nil)    // true
//	utils.IsNil(0)            // false
//	utils.IsNil([]string(nil)) // true
func IsNil[T any](val T) bool {
	return IsNilish(val)
}
