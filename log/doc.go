// Package log provides a concurrency-safe structured logging interface
// based on [log/slog], organized around a registry of named loggers.
//
// Each named logger emits human-readable lines to the console and,
// optionally, structured JSON lines to a file. Loggers are process-wide
// singletons by name: constructing the same name twice reconfigures the
// existing logger instead of duplicating its output.
//
// # Basic Usage
//
//	logger, err := log.New("bot")
//	if err != nil {
//	    // ...
//	}
//	logger.Info("application started", slog.String("version", "1.0.0"))
//
// Console lines are shaped as
//
//	<timestamp> - <name> - <LEVEL> - <message>
//
// followed by any attributes as key=value pairs.
//
// # Configuration
//
// Configure loggers using functional options:
//
//	logger, err := log.New("bot",
//	    log.WithLevel(log.LevelDebug),
//	    log.WithFile("/var/log/bot.jsonl"),
//	    log.WithTimeLayout("RFC3339Nano"))
//
// [WithFile] attaches a JSON sink whose field keys are controlled by an
// explicit [Schema] (see [WithSchema] and [DefaultSchema]).
//
// # Supported Levels
//
// Five levels are defined, in increasing severity: [LevelDebug],
// [LevelInfo], [LevelWarning], [LevelError], and [LevelCritical]. Messages
// below a logger's configured level are dropped at the source. Level
// strings parse case-insensitively with [ParseLevel]; unrecognized strings
// fail with [ErrInvalidLevel].
//
// # Registries
//
// The package-level [New] operates on a shared default [Registry]. Code
// that needs isolation (tests, embedded use) can create its own with
// [NewRegistry]; logger names are then scoped to that registry.
//
// # Writer-Bound Loggers
//
// [Make] builds an anonymous logger writing console lines to an arbitrary
// [io.Writer]. The package-level logging functions ([Debug], [Info], and
// friends) use one such logger writing to standard error, reconfigurable
// with [Config].
package log
