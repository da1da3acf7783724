package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a handler built with NewHandler,
// the attributes are extracted and included in the log output.
//
// The wrapper is transparent: Error() returns the wrapped message unchanged
// and errors.Is / errors.As see through it.
//
//	return AnnotateError(err, "index", i, "expected_type", "string")
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// Attrs returns the attributes attached by AnnotateError anywhere in the
// error chain, outermost first. It returns nil for plain errors.
func Attrs(err error) []slog.Attr {
	var out []slog.Attr

	for err != nil {
		var se *slogError
		if !errors.As(err, &se) {
			break
		}

		out = append(out, se.attrs...)
		err = se.err
	}

	return out
}

// slogError wraps an error with structured logging attributes.
type slogError struct {
	err   error
	attrs []slog.Attr
}

// Error returns the error message from the underlying error.
func (s *slogError) Error() string {
	return s.err.Error()
}

// Unwrap returns the underlying error.
func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// NewHandler decorates inner so that annotated errors logged as attribute
// values have their attributes added to the record.
func NewHandler(inner slog.Handler) slog.Handler {
	if _, ok := inner.(*slogErrorLogger); ok {
		return inner
	}

	return &slogErrorLogger{inner: inner}
}

// slogErrorLogger is a slog.Handler decorator that extracts structured attributes
// from annotated errors and includes them in log output.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle replaces each annotated error attribute with the plain error and
// appends the attributes it carried.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			if extra := Attrs(err); len(extra) > 0 {
				baseAttrs = append(baseAttrs, slog.Attr{Key: attr.Key, Value: slog.AnyValue(unwrapAnnotations(err))})
				errAttrs = append(errAttrs, extra...)

				return true
			}
		}

		baseAttrs = append(baseAttrs, attr)

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}

// unwrapAnnotations strips outer annotation layers so the logged error is
// the one the caller originally produced.
func unwrapAnnotations(err error) error {
	for {
		se, ok := err.(*slogError) //nolint:errorlint
		if !ok {
			return err
		}

		err = se.err
	}
}
