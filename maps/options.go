package maps

import (
	"fmt"

	"facette.io/natsort"
)

// Option configures how a SimpleImmutableMap orders its keys.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	keyOrder func(a, b K) int
	explicit bool
}

// WithKeyOrder sets the order in which keys are iterated. The function
// follows the cmp.Compare convention. Maps built from a key/value list or from
// entries are sorted by it too, instead of keeping order of first appearance.
func WithKeyOrder[K comparable](order func(a, b K) int) Option[K] {
	return func(o *options[K]) {
		if order != nil {
			o.keyOrder = order
			o.explicit = true
		}
	}
}

func newOptions[K comparable](opts []Option[K]) *options[K] {
	o := &options[K]{keyOrder: NaturalOrder[K]}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// NaturalOrder compares the fmt string forms of a and b in natural order, so
// that "k2" sorts before "k10".
func NaturalOrder[K any](a, b K) int {
	left, right := fmt.Sprint(a), fmt.Sprint(b)

	switch {
	case left == right:
		return 0
	case natsort.Compare(left, right):
		return -1
	case natsort.Compare(right, left):
		return 1
	default:
		return 0
	}
}
