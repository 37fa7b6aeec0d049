package log

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// Registry is an explicit, injectable registry of named loggers.
//
// Loggers are keyed by name: acquiring the same name twice yields the same
// underlying logger state, so repeated construction reconfigures rather
// than duplicates (last writer wins for level and sink set). Existing
// handles observe reconfiguration, matching the process-wide
// named-singleton behavior of conventional logging subsystems.
//
// The zero value is ready to use. Most callers use the package-level
// [New], which operates on a shared default Registry.
type Registry struct {
	mutex   sync.Mutex
	loggers map[string]*state
}

// NewRegistry returns an empty Registry.
// It persists for the lifetime of its owner; loggers it creates remain
// valid until [Registry.Close].
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*state)}
}

// New acquires or creates the named logger and reconfigures it from the
// given options, in order: set the minimum severity threshold, detach and
// close all previously attached sinks, attach a console sink, and attach a
// JSON file sink iff [WithFile] was given.
//
// The whole sequence runs under the registry lock, so concurrent
// construction with the same name cannot interleave sink replacement.
//
// New fails with [ErrEmptyName] for an unnamed logger and with an error
// wrapping [ErrCreateFile] when the file sink cannot open its target path.
// In the latter case the console sink has already been attached and
// remains attached; there is no rollback.
func (reg *Registry) New(name string, opts ...Option) (Logger, error) {
	if strings.TrimSpace(name) == "" {
		return Logger{}, ErrEmptyName
	}

	cfg := makeConfig(opts...)

	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	if reg.loggers == nil {
		reg.loggers = make(map[string]*state)
	}

	st, ok := reg.loggers[name]
	if !ok {
		st = &state{name: name, level: new(slog.LevelVar)}
		reg.loggers[name] = st
	}

	// Every sink shares this LevelVar: messages below the threshold are
	// dropped at the source, and existing handles observe the update.
	st.level.Set(slog.Level(cfg.level))

	sinks := []sink{consoleSink(cfg, name, st.level)}

	var fileErr error

	if cfg.file != "" {
		fs, err := fileSink(cfg, name, st.level)
		if err != nil {
			fileErr = err
		} else {
			sinks = append(sinks, fs)
		}
	}

	err := st.replace(sinks)

	if fileErr != nil {
		return Logger{}, errors.Join(fileErr, err)
	}

	if err != nil {
		return Logger{}, err
	}

	return Logger{name: name, config: cfg, Logger: slog.New(st)}, nil
}

// Close detaches and closes the sinks of every logger in the registry.
// Logger handles remain safe to use afterward; their records are dropped
// until the name is constructed again.
func (reg *Registry) Close() error {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	errs := make([]error, 0, len(reg.loggers))

	for _, st := range reg.loggers {
		errs = append(errs, st.replace(nil))
	}

	return errors.Join(errs...)
}

// state is the shared per-name logger state. It implements [slog.Handler]
// by fanning records out to the currently attached sinks.
type state struct {
	level *slog.LevelVar
	mutex sync.RWMutex
	name  string
	sinks []sink
}

// replace swaps the attached sinks, closing any resources owned by the
// previous set. In-flight log calls see either the old or the new set,
// never a mixture.
func (s *state) replace(sinks []sink) error {
	s.mutex.Lock()
	old := s.sinks
	s.sinks = sinks
	s.mutex.Unlock()

	errs := make([]error, 0, len(old))

	for _, sk := range old {
		if sk.closer != nil {
			errs = append(errs, sk.closer.Close())
		}
	}

	return errors.Join(errs...)
}

func (s *state) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

func (s *state) Handle(ctx context.Context, r slog.Record) error {
	s.mutex.RLock()
	sinks := s.sinks
	s.mutex.RUnlock()

	errs := make([]error, 0, len(sinks))

	for _, sk := range sinks {
		if !sk.handler.Enabled(ctx, r.Level) {
			continue
		}

		errs = append(errs, sk.handler.Handle(ctx, r.Clone()))
	}

	return errors.Join(errs...)
}

// WithAttrs returns a static fanout over the current sinks with the given
// attributes applied. The result is detached from future sink replacement.
func (s *state) WithAttrs(attrs []slog.Attr) slog.Handler {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	handlers := make(fanout, 0, len(s.sinks))

	for _, sk := range s.sinks {
		handlers = append(handlers, sk.handler.WithAttrs(attrs))
	}

	return handlers
}

// WithGroup returns a static fanout over the current sinks with the given
// group opened. The result is detached from future sink replacement.
func (s *state) WithGroup(name string) slog.Handler {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	handlers := make(fanout, 0, len(s.sinks))

	for _, sk := range s.sinks {
		handlers = append(handlers, sk.handler.WithGroup(name))
	}

	return handlers
}

// fanout dispatches records to a fixed set of handlers.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	errs := make([]error, 0, len(f))

	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		errs = append(errs, h.Handle(ctx, r.Clone()))
	}

	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(fanout, 0, len(f))

	for _, h := range f {
		handlers = append(handlers, h.WithAttrs(attrs))
	}

	return handlers
}

func (f fanout) WithGroup(name string) slog.Handler {
	handlers := make(fanout, 0, len(f))

	for _, h := range f {
		handlers = append(handlers, h.WithGroup(name))
	}

	return handlers
}
