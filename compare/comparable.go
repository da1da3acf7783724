// Package compare provides utilities for comparing values.
package compare

import (
	"math"
	"reflect"

	"github.com/amp-labs/amp-steroids/utils"
	"github.com/google/go-cmp/cmp"
)

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

//nolint:gochecknoglobals
var structural = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.FilterValues(bothFloats, cmp.Comparer(floatBitsEqual)),
	cmp.FilterValues(bothHaveEquals, cmp.Comparer(callEquals)),
}

func isFloatKind(v any) bool {
	switch reflect.ValueOf(v).Kind() { //nolint:exhaustive
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// bothFloats matches floating point and complex values that do not bring
// their own Equals method.
func bothFloats(a, b any) bool {
	return isFloatKind(a) && isFloatKind(b) && !bothHaveEquals(a, b)
}

// floatBits mirrors the hashing package: NaN is canonicalized, every other
// value keeps its exact bit pattern, so 0.0 and -0.0 differ.
func floatBits(v reflect.Value) []uint64 {
	switch v.Kind() { //nolint:exhaustive
	case reflect.Float32:
		f := float32(v.Float())
		if f != f { //nolint:gocritic // NaN check
			return []uint64{0x7fc00000} //nolint:mnd
		}

		return []uint64{uint64(math.Float32bits(f))}
	case reflect.Float64:
		return []uint64{float64Bits(v.Float())}
	default:
		c := v.Complex()

		return []uint64{float64Bits(real(c)), float64Bits(imag(c))}
	}
}

func float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000 //nolint:mnd
	}

	return math.Float64bits(f)
}

func floatBitsEqual(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != vb.Kind() {
		return false
	}

	x, y := floatBits(va), floatBits(vb)
	if len(x) != len(y) {
		return false
	}

	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// equalsMethod returns the Equals(X) bool method of v when arg is assignable to X.
func equalsMethod(v, arg any) (reflect.Value, bool) {
	method := reflect.ValueOf(v).MethodByName("Equals")
	if !method.IsValid() {
		return reflect.Value{}, false
	}

	mt := method.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return reflect.Value{}, false
	}

	if !reflect.TypeOf(arg).AssignableTo(mt.In(0)) {
		return reflect.Value{}, false
	}

	return method, true
}

// bothHaveEquals matches non-nil values whose Equals method accepts the other
// value, in both directions. Nested immutable maps compare through here since
// their Equals takes the Map interface rather than the concrete type.
func bothHaveEquals(a, b any) bool {
	if utils.IsNilish(a) || utils.IsNilish(b) {
		return false
	}

	_, okA := equalsMethod(a, b)
	_, okB := equalsMethod(b, a)

	return okA && okB
}

func callEquals(a, b any) bool {
	method, ok := equalsMethod(a, b)
	if !ok {
		return false
	}

	return method.Call([]reflect.Value{reflect.ValueOf(b)})[0].Bool()
}

// Equal reports whether a and b are equal in the null-safe, structural sense
// used by tuples and immutable maps:
//
//   - two nilish values are equal, a nilish and a non-nilish value are not;
//   - if a implements Comparable[T], its Equals method decides;
//   - otherwise the values are compared field by field, with unexported
//     fields included and pointers followed. Nested values whose Equals
//     method accepts the other value are compared with it, as are types
//     with an Equal(T) bool method.
//
// Floats compare by bit pattern with NaN canonicalized, the same way the
// hashing package hashes them: NaN equals NaN and 0.0 differs from -0.0.
func Equal[T any](a, b T) bool {
	aNil, bNil := utils.IsNil(a), utils.IsNil(b)
	if aNil || bNil {
		return aNil == bNil
	}

	if c, ok := any(a).(Comparable[T]); ok {
		return c.Equals(b)
	}

	return cmp.Equal(a, b, structural...)
}
