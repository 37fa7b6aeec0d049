package filter

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrCompile  = errors.New("compile filter expression")
	ErrEvaluate = errors.New("evaluate filter expression")
	ErrRead     = errors.New("read records")
)

// Record is a single structured log entry read from a JSON Lines stream.
//
// Raw preserves the original line verbatim. Fields holds the decoded JSON
// object, or a synthesized object with a single msg key when the line is not
// valid JSON.
type Record struct {
	Raw    string
	Fields map[string]any
}

// Filter matches records against a compiled boolean expression.
//
// Expressions reference record fields by key and must evaluate to a boolean:
//
//	level == "ERROR" && status >= 500
//
// Fields absent from a record evaluate as nil.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile compiles the given filter expression.
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, src, err)
	}

	return &Filter{source: src, program: program}, nil
}

// String returns the original expression source.
func (f *Filter) String() string { return f.source }

// Match evaluates the filter against the given record.
func (f *Filter) Match(rec Record) (bool, error) {
	env := rec.Fields
	if env == nil {
		env = map[string]any{}
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrEvaluate, f.source, err)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w %q: non-boolean result %T", ErrEvaluate, f.source, out)
	}

	return matched, nil
}

// Records returns an iterator over the JSON Lines records read from r.
//
// Blank lines are skipped. Lines that are not valid JSON objects pass
// through as records whose only field is msg, holding the raw line. Line
// length is unbounded.
//
// A failure reading from r ends the iteration with a zero [Record] and an
// error wrapping [ErrRead]; every yielded record carries a nil error.
func Records(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		reader := bufio.NewReader(r)

		for {
			line, err := reader.ReadString('\n')

			if text := strings.TrimSpace(line); text != "" {
				rec := Record{Raw: text}

				var fields map[string]any
				if jsonErr := json.Unmarshal([]byte(text), &fields); jsonErr == nil {
					rec.Fields = fields
				} else {
					rec.Fields = map[string]any{"msg": text}
				}

				if !yield(rec, nil) {
					return
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(Record{}, fmt.Errorf("%w: %w", ErrRead, err))
				}

				return
			}
		}
	}
}
