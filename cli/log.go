package cli

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/strlog/strlog/log"
)

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)

	level, err := log.ParseLevel(string(*l))
	if err != nil {
		return err
	}

	log.Config(log.WithLevel(level))

	return nil
}

type logConfig struct {
	Level      logLevel `default:"info"             enum:"debug,info,warning,error,critical" help:"Set log level."`
	TimeLayout string   `default:"${logTimeLayout}"                                          help:"Set timestamp format."`
	Color      bool     `default:"false"                                                     help:"Colorize console level names." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logTimeLayout": log.DefaultTimeLayout,
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	level, err := log.ParseLevel(string(f.Level))
	if err != nil {
		// Kong's enum constraint rejects unknown levels before we get here.
		level = log.DefaultLevel
	}

	log.Config(
		log.WithLevel(level),
		log.WithTimeLayout(f.TimeLayout),
		log.WithColor(f.Color),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("time", f.TimeLayout),
		slog.Bool("color", f.Color),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
//
// While the logLevel type implements encoding.TextUnmarshaler to configure
// the logger as flags are encountered during parsing, boolean flags like
// Color don't go through that interface. This pre-scan ensures all logger
// flags are applied early.
func (f *logConfig) scan(args []string) {
	type prefix struct {
		string

		len int
	}

	logPrefix := prefix{"--log-", 6}
	noLogPrefix := prefix{"--no-log-", 9}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		// Check if this is a log-related flag
		hasLogPrefix := len(arg) >= logPrefix.len &&
			arg[:logPrefix.len] == logPrefix.string

		hasNoLogPrefix := len(arg) >= noLogPrefix.len &&
			arg[:noLogPrefix.len] == noLogPrefix.string
		if !hasLogPrefix && !hasNoLogPrefix {
			continue
		}

		// Extract flag name and value
		var (
			name, value string
			assigned    bool
		)

		// Determine which prefix to use for parsing
		prefixLen := logPrefix.len
		if hasNoLogPrefix {
			prefixLen = noLogPrefix.len
		}

		if eq := len(arg); eq > prefixLen {
			for j := prefixLen; j < eq; j++ {
				if arg[j] == '=' {
					name, value = arg[:j], arg[j+1:]
					assigned = true

					break
				}
			}

			if name == "" {
				name = arg
			}
		}

		// Apply configuration
		switch name {
		case "--log-level":
			// Non-boolean flag: consume next arg as value if not assigned
			if !assigned && i+1 < len(args) && len(args[i+1]) > 0 &&
				args[i+1][0] != '-' {
				value = args[i+1]
				i++
			}

			_ = f.Level.UnmarshalText([]byte(value))

		case "--log-color":
			// Boolean flag: only parse value if explicitly assigned with =
			if assigned {
				v, err := strconv.ParseBool(value)
				if err == nil {
					f.Color = v
					log.Config(log.WithColor(v))
				}
			} else {
				f.Color = true

				log.Config(log.WithColor(true))
			}

		case "--no-log-color":
			// Boolean flag: only parse value if explicitly assigned with =
			if assigned {
				v, err := strconv.ParseBool(value)
				if err == nil {
					f.Color = !v
					log.Config(log.WithColor(!v))
				}
			} else {
				f.Color = false

				log.Config(log.WithColor(false))
			}
		}
	}
}
