package log

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrInvalidLevel is returned when a level string does not name a defined
// log level. Test with [errors.Is].
var ErrInvalidLevel = errors.New("invalid log level")

// ErrEmptyName is returned when acquiring a logger with an empty name.
var ErrEmptyName = errors.New("logger name is empty")

// ErrCreateFile is returned when a file sink cannot open its target path.
// The underlying OS error is wrapped and available via [errors.Unwrap].
var ErrCreateFile = errors.New("create log file")

// invalidLevelError builds an ErrInvalidLevel for the given input,
// suggesting the closest defined level name when one fuzzy-matches.
func invalidLevelError(s string) error {
	names := slices.Collect(Levels())

	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(s)), names)
	if len(matches) > 0 {
		return fmt.Errorf(
			"%w %q (did you mean %q?)",
			ErrInvalidLevel, s, matches[0].Str,
		)
	}

	return fmt.Errorf("%w %q", ErrInvalidLevel, s)
}
