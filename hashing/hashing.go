// Package hashing computes 32-bit hash codes that are stable across runs and
// processes. For strings, booleans, integers and floats the codes are the ones
// the JVM produces (String.hashCode, Boolean.hashCode, ...), so values hashed
// here agree with values hashed by a Java peer.
package hashing

import (
	"fmt"
	"hash"
	"math"
	"reflect"
	"unicode/utf16"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Multiplier is the factor applied to the running accumulator by Combine.
const Multiplier = 31

// HashCoder is implemented by values that know their own hash code.
// Code always prefers it over any structural rule.
type HashCoder interface {
	HashCode() int32
}

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Code digests such values with
// xxHash64 and folds the digest to 32 bits.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Combine folds field hash codes in declared order: starting from 0,
// acc = acc*31 + code for every code. Overflow wraps like Java int arithmetic.
//
//	Combine(Code("x"), Code(1)) == 31*120 + 1
func Combine(codes ...int32) int32 {
	var acc int32

	for _, code := range codes {
		acc = acc*Multiplier + code
	}

	return acc
}

// Code returns the hash code of v. Nil and nilish values hash to 0.
//
// Resolution order: HashCoder, Hashable, then by kind:
//   - string: Java String.hashCode over UTF-16 code units
//   - bool: 1231 / 1237
//   - 8/16/32-bit integers, and int/uint values fitting in 32 bits: the value itself
//   - 64-bit integers: Java Long.hashCode (v ^ v>>>32)
//   - float32 / float64: Java Float / Double hashCode (canonical NaN)
//   - pointers and interfaces: the code of the pointee
//   - slices and arrays: Java List.hashCode (starts at 1)
//   - maps: Java Map.hashCode (sum of key ^ value)
//   - structs: Combine over the fields in declaration order
//   - channels, funcs: identity, via xxh3 of the address
func Code(v any) int32 {
	if v == nil {
		return 0
	}

	return code(reflect.ValueOf(v))
}

func code(val reflect.Value) int32 { //nolint:cyclop,funlen
	if !val.IsValid() {
		return 0
	}

	if val.CanInterface() {
		switch typed := val.Interface().(type) {
		case HashCoder:
			if isNilValue(val) {
				return 0
			}

			return typed.HashCode()
		case Hashable:
			if !isNilValue(val) {
				digest := xxhash.New64()
				if err := typed.UpdateHash(digest); err == nil {
					return fold(digest.Sum64())
				}
			}
		}
	}

	switch val.Kind() { //nolint:exhaustive
	case reflect.String:
		return String(val.String())
	case reflect.Bool:
		return Bool(val.Bool())
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(val.Int()) //nolint:gosec
	case reflect.Uint8, reflect.Uint16:
		return int32(val.Uint()) //nolint:gosec
	case reflect.Int:
		n := val.Int()
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return int32(n)
		}

		return Int64(n)
	case reflect.Uint, reflect.Uint32, reflect.Uintptr:
		n := val.Uint()
		if n <= math.MaxUint32 {
			return int32(uint32(n)) //nolint:gosec
		}

		return Int64(int64(n)) //nolint:gosec
	case reflect.Int64:
		return Int64(val.Int())
	case reflect.Uint64:
		return Int64(int64(val.Uint())) //nolint:gosec
	case reflect.Float32:
		return Float32(float32(val.Float()))
	case reflect.Float64:
		return Float64(val.Float())
	case reflect.Complex64, reflect.Complex128:
		c := val.Complex()

		return Combine(Float64(real(c)), Float64(imag(c)))
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return 0
		}

		return code(val.Elem())
	case reflect.Slice:
		if val.IsNil() {
			return 0
		}

		return list(val)
	case reflect.Array:
		return list(val)
	case reflect.Map:
		if val.IsNil() {
			return 0
		}

		var sum int32

		iter := val.MapRange()
		for iter.Next() {
			sum += code(iter.Key()) ^ code(iter.Value())
		}

		return sum
	case reflect.Struct:
		var acc int32

		for i := range val.NumField() {
			acc = acc*Multiplier + code(val.Field(i))
		}

		return acc
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if val.IsNil() {
			return 0
		}

		return fold(xxh3.HashString(fmt.Sprintf("%T@%x", val.Type(), val.Pointer())))
	default:
		return fold(xxh3.HashString(fmt.Sprintf("%#v", val)))
	}
}

// String returns Java's String.hashCode for s: s[0]*31^(n-1) + ... + s[n-1]
// over the UTF-16 encoding of s.
func String(s string) int32 {
	var acc int32

	for _, unit := range utf16.Encode([]rune(s)) {
		acc = acc*Multiplier + int32(unit)
	}

	return acc
}

// Bool returns Java's Boolean.hashCode.
func Bool(b bool) int32 {
	if b {
		return 1231 //nolint:mnd
	}

	return 1237 //nolint:mnd
}

// Int64 returns Java's Long.hashCode.
func Int64(n int64) int32 {
	return fold(uint64(n)) //nolint:gosec
}

// Float32 returns Java's Float.hashCode (floatToIntBits, NaN canonicalized).
func Float32(f float32) int32 {
	if f != f { //nolint:gocritic // NaN check
		return 0x7fc00000 //nolint:mnd
	}

	return int32(math.Float32bits(f)) //nolint:gosec
}

// Float64 returns Java's Double.hashCode (doubleToLongBits, NaN canonicalized).
func Float64(f float64) int32 {
	if math.IsNaN(f) {
		return fold(0x7ff8000000000000) //nolint:mnd
	}

	return fold(math.Float64bits(f))
}

func list(val reflect.Value) int32 {
	acc := int32(1)

	for i := range val.Len() {
		acc = acc*Multiplier + code(val.Index(i))
	}

	return acc
}

func fold(u uint64) int32 {
	return int32(uint32(u ^ (u >> 32))) //nolint:gosec,mnd
}

func isNilValue(val reflect.Value) bool {
	switch val.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return val.IsNil()
	}

	return false
}
