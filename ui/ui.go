package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// print layer maps each value to a terminal style; data consumers (JSON,
// tests) see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain — no colour emphasis
	SeveritySuccess                  // green  — recognized / safe
	SeverityWarn                     // yellow — uncertain / needs attention
	SeverityError                    // red    — incompatible / dangerous
	SeverityCritical                 // bold   — must-review before sending
)

// StyledText pairs a plain string with a Severity annotation.
//
// JSON serialization: the struct marshals as just the plain Text string so
// consumers receive clean output with no ANSI codes and no extra structure.
//
// Terminal rendering: pass the value to [UI.Style] to obtain the
// appropriately coloured string for embedding in a format call.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI provides all terminal interaction for chainguard commands.
//
// It abstracts output and the single confirmation prompt so that:
//   - Production code uses TerminalUI (writes to os.Stdout, reads from os.Stdin)
//   - Tests use RecordingUI (captures all output, serves scripted inputs)
//
// Use [UI.Indent] to get a child UI at one deeper indent level, e.g. for
// rendering a bridge list under its warning line. The child shares the same
// underlying writer and reader, so output ordering and input sequencing are
// preserved across scopes.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled (piped output, RecordingUI) the plain text
	// is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line (no prefix, no colour).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error — callers decide what to do next.
	Error(format string, args ...any)

	// Critical writes data the user must review before an irreversible
	// action — here, anything about a destination that would burn funds.
	// Rendered bold in the terminal implementation.
	Critical(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== Incompatible destination ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block — label on the left,
	// value on the right — with all values left-aligned to the same column.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with a header row followed by
	// data rows.
	Table(headers []string, rows [][]string)

	// TableWithGroups renders a bordered table where each group of rows is
	// visually separated from the next by a horizontal divider line. Used
	// when rows belong to distinct logical groups (e.g. one group per
	// classified address).
	TableWithGroups(headers []string, groups [][][]string)

	// Ask displays a "> " prompt at the current indent level and reads a
	// line. It loops until validate returns nil. Pass nil to accept any
	// input.
	Ask(validate func(string) error) string

	// Confirm asks a yes/no question and returns the boolean answer.
	// It prints the prompt text followed by [Y/n] or [y/N], then a "> "
	// cursor.
	Confirm(prompt string, defaultYes bool) bool

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer and reader as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line, for functions that take an io.Writer directly
	// (e.g. a JSON encoder).
	Writer() io.Writer
}
