package log

import (
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

// criticalOffset places critical above slog's highest built-in level.
const criticalOffset = 12

const (
	LevelDebug    Level = Level(slog.LevelDebug) // debug
	LevelInfo     Level = Level(slog.LevelInfo)  // info
	LevelWarning  Level = Level(slog.LevelWarn)  // warning
	LevelError    Level = Level(slog.LevelError) // error
	LevelCritical Level = Level(criticalOffset)  // critical
)

// DefaultLevel is the default minimum log level.
const DefaultLevel = LevelInfo

// String returns the lowercase name of the level.
// Levels without a defined name fall back to slog's representation.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return strings.ToLower(slog.Level(l).String())
	}
}

// Levels returns an iterator over the names of all defined log levels,
// ordered from least to most severe.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarning,
			LevelError,
			LevelCritical,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "DEBUG", "INFO", "WARNING" (or "WARN"), "ERROR",
// and "CRITICAL", compared case-insensitively after trimming whitespace.
// Unrecognized strings return [DefaultLevel] and an error wrapping
// [ErrInvalidLevel].
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return DefaultLevel, invalidLevelError(s)
	}
}

// Schema names the JSON fields written by a file sink.
// Zero-valued fields assume their [DefaultSchema] counterpart.
type Schema struct {
	Time    string
	Level   string
	Logger  string
	Message string
}

// DefaultSchema is the field-key schema used by file sinks unless
// overridden with [WithSchema].
//
//nolint:gochecknoglobals
var DefaultSchema = Schema{
	Time:    slog.TimeKey,
	Level:   slog.LevelKey,
	Logger:  "logger",
	Message: slog.MessageKey,
}

// withDefaults fills zero-valued fields from DefaultSchema.
func (s Schema) withDefaults() Schema {
	if s.Time == "" {
		s.Time = DefaultSchema.Time
	}

	if s.Level == "" {
		s.Level = DefaultSchema.Level
	}

	if s.Logger == "" {
		s.Logger = DefaultSchema.Logger
	}

	if s.Message == "" {
		s.Message = DefaultSchema.Message
	}

	return s
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is
// provided. It mirrors the conventional "2006-01-02 15:04:05,000"
// console timestamp.
const DefaultTimeLayout = "2006-01-02 15:04:05,000"

// DefaultColor is the default setting for colorizing console output.
const DefaultColor = false

// config holds the configuration options for a Logger.
type config struct {
	console    io.Writer
	formatTime FormatTime
	schema     Schema
	file       string
	level      Level
	color      bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults(os.Stderr)), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: console output to w, [DefaultLevel], [DefaultTimeLayout],
// [DefaultSchema], no file sink, and color disabled.
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.console = w
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.schema = DefaultSchema
		c.file = ""
		c.level = DefaultLevel
		c.color = DefaultColor

		return c
	}
}

// WithConsole returns a functional option that sets the console output
// [io.Writer]. If a nil writer is provided, [io.Discard] is used instead.
func WithConsole(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.console = w

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are dropped at the source, not merely hidden
// by a sink.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFile returns a functional option that attaches a JSON file sink
// writing to the given path. The file is created if absent and appended to
// otherwise. An empty path disables file output.
func WithFile(path string) Option {
	return func(c config) config {
		c.file = path

		return c
	}
}

// WithSchema returns a functional option that sets the JSON field-key
// schema used by the file sink. Zero-valued fields assume their
// [DefaultSchema] counterpart.
func WithSchema(schema Schema) Option {
	return func(c config) config {
		c.schema = schema

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "RFC3339Nano"). Otherwise, it is passed
// verbatim to [time.Time.Format] and must follow the standard
// specification.
//
// If an empty string (after trimming whitespace) is provided, timestamps
// are disabled and no time is included in log output.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithColor returns a functional option that controls whether console
// output colorizes the level field by severity.
func WithColor(enable bool) Option {
	return func(c config) config {
		c.color = enable

		return c
	}
}

// timeLayout maps named layouts to their corresponding time.Time constants.
//
//nolint:gochecknoglobals
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Normalize only for inspection of named layouts.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
