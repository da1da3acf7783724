// Package lazy memoizes values that are expensive to compute and never change
// once computed, such as the hash code or string form of an immutable map.
package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// Of is a lazy value that is initialized at most once. It is safe for
// concurrent use; concurrent first calls to Get block until the single
// computation finishes.
type Of[T any] struct {
	create      func() T
	mu          sync.Mutex
	value       T
	initialized atomic.Bool
}

// New creates a new lazy value. The callback will be called later, when the
// value is first accessed.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}

// Get returns the value (and initializes it if necessary). A panicking
// callback leaves the value uninitialized, so the next Get retries.
func (t *Of[T]) Get() T { //nolint:ireturn
	if t.initialized.Load() {
		return t.value
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized.Load() && t.create != nil {
		// A panic here unwinds through the deferred Unlock before the flag
		// is set, so the next caller runs create again.
		t.value = t.create()
		t.create = nil
		t.initialized.Store(true)
	}

	return t.value
}

// Initialized returns true if the value has been computed.
// Intended for tests and debugging.
func (t *Of[T]) Initialized() bool {
	return t.initialized.Load()
}
