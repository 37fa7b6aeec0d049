package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/strlog/strlog/log"
)

// DefaultFile is the base name of the configuration file.
const DefaultFile = "config.yaml"

var (
	ErrParseConfig   = errors.New("parse configuration")
	ErrMissingName   = errors.New("logger entry missing name")
	ErrDuplicateName = errors.New("duplicate logger name")
)

// Schema selects the JSON object keys written by a logger's file sink.
// Zero-valued fields fall back to the defaults in [log.DefaultSchema].
type Schema struct {
	Time    string `yaml:"time,omitempty"`
	Level   string `yaml:"level,omitempty"`
	Logger  string `yaml:"logger,omitempty"`
	Message string `yaml:"message,omitempty"`
}

func (s *Schema) toLog() log.Schema {
	if s == nil {
		return log.Schema{}
	}

	return log.Schema{
		Time:    s.Time,
		Level:   s.Level,
		Logger:  s.Logger,
		Message: s.Message,
	}
}

// Console holds defaults applied to every logger constructed from this
// configuration.
type Console struct {
	Level      string `yaml:"level,omitempty"`
	TimeLayout string `yaml:"time-layout,omitempty"`
	Color      bool   `yaml:"color,omitempty"`
}

// Logger declares a named logger and its sinks.
type Logger struct {
	Name   string  `yaml:"name"`
	Level  string  `yaml:"level,omitempty"`
	File   string  `yaml:"file,omitempty"`
	Schema *Schema `yaml:"schema,omitempty"`
}

// Config is the YAML configuration document.
//
// The flags mapping provides default values for command-line flags and is
// consumed by the CLI's configuration resolver. The console and loggers
// sections configure the logger registry.
type Config struct {
	Flags   map[string]any `yaml:"flags,omitempty"`
	Console Console        `yaml:"console,omitempty"`
	Loggers []Logger       `yaml:"loggers,omitempty"`
}

// Default returns the configuration written by the init command.
func Default() *Config {
	return &Config{
		Console: Console{
			Level:      log.DefaultLevel.String(),
			TimeLayout: log.DefaultTimeLayout,
		},
		Loggers: []Logger{
			{Name: "app", Level: log.DefaultLevel.String()},
		},
	}
}

// Parse reads and validates a YAML configuration document.
func Parse(r io.Reader) (*Config, error) {
	var c Config

	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

func (c *Config) validate() error {
	if c.Console.Level != "" {
		if _, err := log.ParseLevel(c.Console.Level); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(c.Loggers))

	for _, entry := range c.Loggers {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return ErrMissingName
		}

		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w %q", ErrDuplicateName, name)
		}

		seen[name] = struct{}{}

		if entry.Level != "" {
			if _, err := log.ParseLevel(entry.Level); err != nil {
				return err
			}
		}
	}

	return nil
}

// Options returns the logger options for the named logger, merging the
// console defaults with the logger's own entry. The entry need not exist;
// absent entries yield the console defaults only.
func (c *Config) Options(name string) ([]log.Option, error) {
	opts := []log.Option{log.WithColor(c.Console.Color)}

	if c.Console.TimeLayout != "" {
		opts = append(opts, log.WithTimeLayout(c.Console.TimeLayout))
	}

	if c.Console.Level != "" {
		level, err := log.ParseLevel(c.Console.Level)
		if err != nil {
			return nil, err
		}

		opts = append(opts, log.WithLevel(level))
	}

	for _, entry := range c.Loggers {
		if entry.Name != name {
			continue
		}

		if entry.Level != "" {
			level, err := log.ParseLevel(entry.Level)
			if err != nil {
				return nil, err
			}

			opts = append(opts, log.WithLevel(level))
		}

		if entry.File != "" {
			opts = append(opts, log.WithFile(entry.File))
		}

		if entry.Schema != nil {
			opts = append(opts, log.WithSchema(entry.Schema.toLog()))
		}

		break
	}

	return opts, nil
}

// Apply constructs every declared logger in the given registry and returns
// the constructed loggers keyed by name.
func (c *Config) Apply(reg *log.Registry) (map[string]log.Logger, error) {
	loggers := make(map[string]log.Logger, len(c.Loggers))

	for _, entry := range c.Loggers {
		opts, err := c.Options(entry.Name)
		if err != nil {
			return nil, err
		}

		logger, err := reg.New(entry.Name, opts...)
		if err != nil {
			return nil, err
		}

		loggers[entry.Name] = logger
	}

	return loggers, nil
}

// WriteTo implements [io.WriterTo] by marshaling the configuration as YAML.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)

	return int64(n), err
}
