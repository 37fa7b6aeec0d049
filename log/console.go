package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ANSI color codes for colorized console output.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
)

// fieldSeparator joins the fixed console line fields.
const fieldSeparator = " - "

// consoleHandler emits human-readable lines shaped as
//
//	<timestamp> - <name> - <LEVEL> - <message>
//
// followed by any record attributes as space-separated key=value pairs.
// Fields with no content (e.g. a disabled timestamp, an unnamed logger)
// are omitted along with their separator.
type consoleHandler struct {
	level      slog.Leveler
	formatTime FormatTime
	mu         *sync.Mutex
	w          io.Writer
	name       string
	attrs      []string
	groups     []string
	color      bool
}

func newConsoleHandler(
	cfg config,
	name string,
	level slog.Leveler,
) *consoleHandler {
	return &consoleHandler{
		level:      level,
		formatTime: cfg.formatTime,
		mu:         &sync.Mutex{},
		w:          cfg.console,
		name:       name,
		color:      cfg.color,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if ts := h.formatTime(r.Time); ts != "" {
			h.writeField(buf, ts)
		}
	}

	if h.name != "" {
		h.writeField(buf, h.name)
	}

	h.writeLevel(buf, r.Level)
	h.writeField(buf, r.Message)

	for _, kv := range h.attrs {
		buf.WriteByte(' ')
		buf.WriteString(kv)
	}

	r.Attrs(func(a slog.Attr) bool {
		if kv := h.formatAttr(a); kv != "" {
			buf.WriteByte(' ')
			buf.WriteString(kv)
		}

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h

	clone.attrs = make([]string, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)

	for _, a := range attrs {
		if kv := h.formatAttr(a); kv != "" {
			clone.attrs = append(clone.attrs, kv)
		}
	}

	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(
		h.groups[:len(h.groups):len(h.groups)],
		name,
	)

	return &clone
}

// writeField appends one fixed field, separated from the previous fields.
func (h *consoleHandler) writeField(buf *bytes.Buffer, field string) {
	if buf.Len() > 0 {
		buf.WriteString(fieldSeparator)
	}

	buf.WriteString(field)
}

// writeLevel appends the uppercase level name, colorized by severity when
// color is enabled.
func (h *consoleHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	name := strings.ToUpper(Level(level).String())

	if !h.color {
		h.writeField(buf, name)

		return
	}

	var color string

	switch {
	case level >= slog.Level(LevelCritical):
		color = colorMagenta
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level >= slog.LevelInfo:
		color = colorGreen
	default:
		color = colorBlue
	}

	h.writeField(buf, color+name+colorReset)
}

// formatAttr renders an attribute as "key=value", qualifying the key with
// any open group names. Empty attributes render as "".
func (h *consoleHandler) formatAttr(a slog.Attr) string {
	if a.Equal(slog.Attr{}) {
		return ""
	}

	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(append(h.groups[:len(h.groups):len(h.groups)], key), ".")
	}

	return key + "=" + a.Value.String()
}
