// Package logger wires log/slog for consumers of this module and carries
// structured context on errors (see AnnotateError). The library packages never
// write logs themselves; they return annotated errors and let the caller log.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	JSON     bool
	MinLevel slog.Level
	Output   io.Writer
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithJSON switches the output format to JSON.
func WithJSON() Option {
	return func(o *Options) {
		o.JSON = true
	}
}

// WithLevel sets the minimum level that will be written.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithOutput sets the destination of log records. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// New builds a logger from the options without touching global state.
// Annotated errors passed as attributes are expanded by NewHandler.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	return slog.New(NewHandler(handler))
}

// ConfigureLoggingWithOptions builds a logger with New and installs it as the
// slog default. It is safe to call concurrently.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	logger := New(opts)

	slog.SetDefault(logger)

	return logger
}

// ConfigureLogging is ConfigureLoggingWithOptions with functional options.
// Without options it logs text at info level to stdout.
func ConfigureLogging(opts ...Option) *slog.Logger {
	options := Options{MinLevel: slog.LevelInfo}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}
