package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The print
// layer maps each value to a terminal style; data consumers (JSON, tests)
// see plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain — no colour emphasis
	SeveritySuccess                 // green  — known / positive
	SeverityWarn                    // yellow — uncertain / needs attention
	SeverityError                   // red    — unknown / negative
)

// StyledText pairs a plain string with a Severity annotation.
//
// It marshals to JSON as just the plain text so machine-readable output
// carries no ANSI codes and no extra structure. For terminal rendering, pass
// the value through [UI.Style] to obtain the coloured string:
//
//	u.Info("Network: %s", u.Style(name))
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI provides all terminal interaction for addrcard commands.
//
// It abstracts output and user prompts so that production code uses
// TerminalUI (coloured stdout, stdin prompts) while tests use RecordingUI
// (captured output, scripted inputs).
//
// Use [UI.Indent] to get a child UI at one deeper indent level for nested
// flows; the child shares the parent's writer and reader so input sequencing
// is preserved across scopes.
type UI interface {
	// Style returns the text of t coloured according to its Severity.
	// When colours are disabled (piped output, RecordingUI) the plain text
	// is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow. Degraded renders (unknown
	// network, disabled explorer link) announce themselves through Warn.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does NOT exit or return an error —
	// callers decide what to do next.
	Error(format string, args ...any)

	// KeyValue renders an aligned 2-column block — label left, value right,
	// values aligned to one column. Use for compact metadata.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row. Pass nil
	// headers for a clean bordered block.
	Table(headers []string, rows [][]string)

	// Interpret writes what addrcard understood from the user's last input,
	// indented and prefixed with "→". Shown after a fuzzy account match so
	// the user sees which address their query resolved to.
	Interpret(value string)

	// Ask displays a "> " prompt at the current indent level and reads a
	// line. It loops until validate returns nil; a nil validator accepts
	// everything.
	Ask(validate func(string) error) string

	// Confirm asks a yes/no question and returns the answer. An empty
	// response accepts the default.
	Confirm(prompt string, defaultYes bool) bool

	// Choose prints a numbered option list, prompts for a selection, and
	// returns the 0-based index of the chosen option.
	Choose(prompt string, options []string) int

	// Indent returns a child UI one indent level deeper, sharing the same
	// underlying writer and reader.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation to
	// every line, for functions that take a plain io.Writer.
	Writer() io.Writer
}
