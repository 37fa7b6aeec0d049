package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/strlog/strlog/config"
	"github.com/strlog/strlog/log"
)

// Emit constructs a named logger and emits a single record through it.
//
// The logger's sinks come from the configuration file's entry for the given
// name, with command-line flags taking precedence.
type Emit struct {
	Name    string `arg:"" help:"Logger name"    name:"name"`
	Message string `arg:"" help:"Record message" name:"message"`

	Level string   `default:"" enum:",debug,info,warning,error,critical" help:"Record level"                       short:"l"`
	File  string   `                                                     help:"JSON file sink path"                          type:"path"`
	Attr  []string `                                                     help:"Record attributes (key=value pairs)" short:"a"`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	attrs, err := parseAttrs(e.Attr)
	if err != nil {
		return err
	}

	level := log.DefaultLevel
	if e.Level != "" {
		level, err = log.ParseLevel(e.Level)
		if err != nil {
			return err
		}
	}

	opts, err := e.options(ctx)
	if err != nil {
		return err
	}

	reg := log.NewRegistry()
	defer reg.Close()

	logger, err := reg.New(e.Name, opts...)
	if err != nil {
		return err
	}

	emit(logger, level, e.Message, attrs...)

	log.DebugContext(ctx, "record emitted",
		slog.String("logger", e.Name),
		slog.String("level", level.String()),
		slog.Int("attrs", len(attrs)),
	)

	return nil
}

// options merges logger options from the configuration file entry for the
// named logger with command-line overrides.
func (e *Emit) options(ctx context.Context) ([]log.Option, error) {
	var opts []log.Option

	ktx := kongContextFrom(ctx)
	if ktx != nil {
		if confPath, ok := ktx.Model.Vars()[ConfigIdentifier]; ok {
			cfg, err := config.Load(confPath)

			switch {
			case err == nil:
				opts, err = cfg.Options(e.Name)
				if err != nil {
					return nil, ErrLoadConfig.
						With(slog.String("file", confPath)).
						Wrap(err)
				}

			case os.IsNotExist(err):
				// No config file: flags alone configure the logger.

			default:
				return nil, ErrLoadConfig.
					With(slog.String("file", confPath)).
					Wrap(err)
			}
		}
	}

	if e.Level != "" {
		level, err := log.ParseLevel(e.Level)
		if err != nil {
			return nil, err
		}

		opts = append(opts, log.WithLevel(level))
	}

	if e.File != "" {
		opts = append(opts, log.WithFile(e.File))
	}

	return opts, nil
}

// parseAttrs converts key=value pairs into record attributes.
func parseAttrs(pairs []string) ([]slog.Attr, error) {
	attrs := make([]slog.Attr, 0, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, ErrInvalidAttr.With(slog.String("attr", pair))
		}

		attrs = append(attrs, slog.String(key, value))
	}

	return attrs, nil
}

// emit logs the message at the given level.
func emit(logger log.Logger, level log.Level, msg string, attrs ...slog.Attr) {
	switch level {
	case log.LevelDebug:
		logger.Debug(msg, attrs...)

	case log.LevelWarning:
		logger.Warn(msg, attrs...)

	case log.LevelError:
		logger.Error(msg, attrs...)

	case log.LevelCritical:
		logger.Critical(msg, attrs...)

	default:
		logger.Info(msg, attrs...)
	}
}
