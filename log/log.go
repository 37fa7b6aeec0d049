package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger provides a concurrency-safe simplified logging interface.
//
// Loggers come from two places: [Registry.New] (named, registry-backed,
// reconfigurable, optional file sink) and [Make] (anonymous, bound to a
// single writer). Both expose the same logging methods.
type Logger struct {
	*slog.Logger
	config config
	name   string
}

// Make creates a new [Logger] that writes console lines to the specified
// writer. The default configuration is [DefaultLevel], [DefaultTimeLayout],
// and color disabled.
//
// Make builds console-only loggers; the [WithFile] option is honored only
// by [Registry.New], which can report file creation errors.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := apply(apply(config{}, WithDefaults(w)), opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(newConsoleHandler(cfg, "", slog.Level(cfg.level))),
	}
}

// Wrap returns a new writer-bound [Logger] using the current configuration
// as the base, overridden by the provided options.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := apply(l.config, opts...)

	return Logger{
		name:   l.name,
		config: cfg,
		Logger: slog.New(newConsoleHandler(cfg, l.name, slog.Level(cfg.level))),
	}
}

// With returns a new [Logger] that includes the given attributes in each
// log message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		name:   l.name,
		config: l.config,
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
	}
}

// Name returns the registry name of the logger, or "" for writer-bound
// loggers.
func (l Logger) Name() string { return l.name }

// Level returns the logger's current minimum log level.
//
// Registry-backed loggers share state by name, so the result reflects the
// most recent construction of the name, not necessarily the options this
// handle was created with. Writer-bound loggers report their construction
// level.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	if st, ok := l.Handler().(*state); ok {
		return Level(st.level.Level())
	}

	return l.config.level
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.DebugContext(DefaultContextProvider(), msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.InfoContext(DefaultContextProvider(), msg, attrs...)
}

// WarnContext logs a message at Warning level with the provided context.
func (l Logger) WarnContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelWarning, msg, attrs...)
}

// Warn logs a message at Warning level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.WarnContext(DefaultContextProvider(), msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.ErrorContext(DefaultContextProvider(), msg, attrs...)
}

// CriticalContext logs a message at Critical level with the provided
// context.
func (l Logger) CriticalContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelCritical, msg, attrs...)
}

// Critical logs a message at Critical level.
func (l Logger) Critical(msg string, attrs ...slog.Attr) {
	l.CriticalContext(DefaultContextProvider(), msg, attrs...)
}

// logContext writes a log message at the specified level with the provided
// context.
func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return
	}

	if !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr
	// Skip 4 frames to get to actual caller:
	// 1=runtime.Callers, 2=logContext, 3=*Context method, 4=level method
	runtime.Callers(4, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
