// Package view implements an interactive terminal browser for structured
// log records.
//
// Typing filters the visible records with fuzzy matching on the raw lines.
// Input beginning with "expr:" is compiled as a boolean filter expression
// and evaluated against each record's fields instead. Up/Down and
// PgUp/PgDn scroll, Esc clears the filter, and Ctrl+C (or Esc on an empty
// filter) exits.
package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strlog/strlog/filter"
)

// exprPrefix marks filter input as an expression instead of a fuzzy query.
const exprPrefix = "expr:"

const filterPrompt = "/ "

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	levelStyles = map[string]lipgloss.Style{
		"DEBUG":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"INFO":     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"WARNING":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"ERROR":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"CRITICAL": lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	}
)

// model is the Bubble Tea model for the record browser.
type model struct {
	input     textinput.Model
	records   []filter.Record
	lines     []string // raw lines, parallel to records
	visible   []int    // indices into records after filtering
	offset    int      // scroll offset into visible
	width     int
	height    int
	filterErr string
	quitting  bool
}

// Run starts the record browser with the given records.
func Run(ctx context.Context, records []filter.Record) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m := newModel(records)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

func newModel(records []filter.Record) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(filterPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	lines := make([]string, len(records))
	visible := make([]int, len(records))

	for i, rec := range records {
		lines[i] = rec.Raw
		visible[i] = i
	}

	return model{
		input:   ti,
		records: records,
		lines:   lines,
		visible: visible,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(filterPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEsc:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.refilter()

		return m, nil

	case tea.KeyUp:
		m.scrollBy(-1)

		return m, nil

	case tea.KeyDown:
		m.scrollBy(1)

		return m, nil

	case tea.KeyPgUp:
		m.scrollBy(-m.pageSize())

		return m, nil

	case tea.KeyPgDown:
		m.scrollBy(m.pageSize())

		return m, nil

	case tea.KeyHome:
		m.offset = 0

		return m, nil

	case tea.KeyEnd:
		m.offset = m.maxOffset()

		return m, nil
	}

	// Any other key edits the filter input.
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refilter()

	return m, cmd
}

func (m *model) scrollBy(delta int) {
	m.offset += delta
	if m.offset < 0 {
		m.offset = 0
	}

	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

func (m *model) maxOffset() int {
	max := len(m.visible) - m.pageSize()
	if max < 0 {
		return 0
	}

	return max
}

// pageSize is the number of record lines visible at once. Two rows are
// reserved for the filter input and status line.
func (m *model) pageSize() int {
	size := m.height - 2
	if size < 1 {
		return 1
	}

	return size
}

// refilter recomputes the visible records for the current filter input.
func (m *model) refilter() {
	m.filterErr = ""
	query := strings.TrimSpace(m.input.Value())

	switch {
	case query == "":
		m.visible = m.visible[:0]
		for i := range m.records {
			m.visible = append(m.visible, i)
		}

	case strings.HasPrefix(query, exprPrefix):
		m.refilterExpr(strings.TrimPrefix(query, exprPrefix))

	default:
		m.visible = m.visible[:0]
		for _, match := range fuzzy.Find(query, m.lines) {
			m.visible = append(m.visible, match.Index)
		}
	}

	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

// refilterExpr filters records by a boolean expression. Incomplete or
// invalid expressions leave the visible set unchanged so the status line
// can report the error while the user keeps typing.
func (m *model) refilterExpr(src string) {
	f, err := filter.Compile(src)
	if err != nil {
		m.filterErr = err.Error()

		return
	}

	m.visible = m.visible[:0]

	for i, rec := range m.records {
		ok, err := f.Match(rec)
		if err != nil {
			m.filterErr = err.Error()

			continue
		}

		if ok {
			m.visible = append(m.visible, i)
		}
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	page := m.pageSize()

	for i := m.offset; i < len(m.visible) && i < m.offset+page; i++ {
		b.WriteString(m.renderLine(m.records[m.visible[i]]))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())

	return b.String()
}

// renderLine colorizes a record line by its level field, if present.
// Lines wider than the terminal are truncated by display cells, which
// keeps multibyte runes whole.
func (m model) renderLine(rec filter.Record) string {
	line := rec.Raw
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "")
	}

	level, _ := rec.Fields["level"].(string)
	if style, ok := levelStyles[strings.ToUpper(level)]; ok {
		return style.Render(line)
	}

	return line
}

func (m model) statusLine() string {
	if m.filterErr != "" {
		return errorStyle.Render(m.filterErr)
	}

	status := fmt.Sprintf("%d/%d records", len(m.visible), len(m.records))
	if m.input.Value() == "" {
		status += "  (type to filter, expr: for expressions, Esc to quit)"
	}

	return hintStyle.Render(status)
}
