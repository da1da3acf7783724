// Package errors defines the error kinds shared by every package in this module.
// Callers match them with the standard library's errors.Is.
package errors

import "errors"

var (
	// ErrNullReference is returned when a required argument is nil, or when
	// every candidate handed to a null-coalescing helper is nil.
	ErrNullReference = errors.New("null reference")

	// ErrInvalidArgument is returned when an argument is present but malformed,
	// e.g. an odd-length key/value list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation is returned by every mutating method of an
	// immutable type. It is permanent: retrying will never succeed.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrWrongType is returned when a runtime type assertion fails.
	ErrWrongType = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when several preconditions are checked up front and all failures
// should be reported together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself if there is
// exactly one, or an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
