// Package tuple provides immutable fixed-arity value containers.
//
// Pair and Triple are plain values: every "mutation" (SetFirst, MapPairSecond, ...)
// returns a new tuple and leaves the receiver untouched. Equality and hash codes
// are structural and field-wise, so two tuples holding equal values are
// interchangeable as map keys or set members.
//
//	p := tuple.NewPair("x", 1)
//	p.HashCode()                  // 3721
//	tuple.ToTriple(p, true)       // Triple[x, 1, true]
//	tuple.MapPairSecond(p, strconv.Itoa)
//
// Operations that change a field's type are package functions, since Go
// methods cannot introduce type parameters.
package tuple
