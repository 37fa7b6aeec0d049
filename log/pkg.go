package log

import (
	"context"
	"log/slog"
	"os"
)

// DefaultContextProvider returns the default context used by context-unaware
// logging functions.
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

// defaultRegistry backs the package-level named-logger functions.
//
//nolint:gochecknoglobals
var defaultRegistry = NewRegistry()

// defaultLog is the writer-bound logger used by the package-level logging
// functions.
//
//nolint:gochecknoglobals
var defaultLog = Make(os.Stderr)

// New acquires or creates a named logger in the process-wide default
// registry. See [Registry.New].
func New(name string, opts ...Option) (Logger, error) {
	return defaultRegistry.New(name, opts...)
}

// Close closes the sinks of every logger in the default registry.
func Close() error {
	return defaultRegistry.Close()
}

// Config updates the default logger with the given options.
func Config(opts ...Option) {
	defaultLog = defaultLog.Wrap(opts...)
}

// DebugContext logs a message at Debug level using the default logger with
// the provided context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.DebugContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	DebugContext(DefaultContextProvider(), msg, attrs...)
}

// InfoContext logs a message at Info level using the default logger with
// the provided context.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.InfoContext(ctx, msg, attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	InfoContext(DefaultContextProvider(), msg, attrs...)
}

// WarnContext logs a message at Warning level using the default logger with
// the provided context.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.WarnContext(ctx, msg, attrs...)
}

// Warn logs a message at Warning level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	WarnContext(DefaultContextProvider(), msg, attrs...)
}

// ErrorContext logs a message at Error level using the default logger with
// the provided context.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.ErrorContext(ctx, msg, attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	ErrorContext(DefaultContextProvider(), msg, attrs...)
}

// CriticalContext logs a message at Critical level using the default logger
// with the provided context.
func CriticalContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.CriticalContext(ctx, msg, attrs...)
}

// Critical logs a message at Critical level using the default logger.
func Critical(msg string, attrs ...slog.Attr) {
	CriticalContext(DefaultContextProvider(), msg, attrs...)
}
