package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/strlog/strlog/config"
)

// resolve is a [kong.ConfigurationLoader] that reads flag defaults from the
// flags mapping of a YAML configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Flag names may appear with hyphens (e.g., "log-level") or underscores
// (e.g., "log_level"):
//
//	flags:
//	  log-level: debug
//	  log-color: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-color=true
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	cfg, err := config.Parse(r)
	if err != nil {
		// Unreadable config: fall back to flag defaults
		return flagValues{}, nil
	}

	values := make(flagValues, len(cfg.Flags))
	for key, value := range cfg.Flags {
		// Kong requires numbers as strings for parsing
		switch v := value.(type) {
		case int64:
			values[key] = strconv.FormatInt(v, 10)

		case uint64:
			values[key] = strconv.FormatUint(v, 10)

		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			values[key] = value
		}
	}

	return values, nil
}

// flagValues implements [kong.Resolver] for the YAML flags mapping.
type flagValues map[string]any

// Validate implements [kong.Resolver].
func (r flagValues) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r flagValues) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
