package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// sink is an output attached to a logger: a handler plus the resource to
// release when the sink is detached.
type sink struct {
	handler slog.Handler
	closer  io.Closer
}

// consoleSink builds the always-present console sink.
func consoleSink(cfg config, name string, level slog.Leveler) sink {
	return sink{handler: newConsoleHandler(cfg, name, level)}
}

// fileSink opens the configured path and builds a JSON sink honoring the
// configured schema. The file is the sink's owned resource; it is closed
// when the sink is detached from its logger.
func fileSink(cfg config, name string, level slog.Leveler) (sink, error) {
	file, err := os.OpenFile(
		cfg.file,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return sink{}, fmt.Errorf("%w %q: %w", ErrCreateFile, cfg.file, err)
	}

	schema := cfg.schema.withDefaults()

	var handler slog.Handler = slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: schema.replaceAttr(cfg.formatTime),
	})

	if name != "" {
		handler = handler.WithAttrs(
			[]slog.Attr{slog.String(schema.Logger, name)},
		)
	}

	return sink{handler: handler, closer: file}, nil
}

// replaceAttr renames the built-in record fields to the schema's keys and
// normalizes their values: timestamps use the configured layout (dropped
// entirely when the layout is empty) and levels use their uppercase names.
func (s Schema) replaceAttr(
	format FormatTime,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return a
		}

		switch a.Key {
		case slog.TimeKey:
			if t, ok := a.Value.Any().(time.Time); ok {
				formatted := format(t)
				if formatted == "" {
					return slog.Attr{}
				}

				a.Value = slog.StringValue(formatted)
			}

			a.Key = s.Time

		case slog.LevelKey:
			if level, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(
					strings.ToUpper(Level(level).String()),
				)
			}

			a.Key = s.Level

		case slog.MessageKey:
			a.Key = s.Message
		}

		return a
	}
}
