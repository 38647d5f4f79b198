package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string // the formatted string passed to the method (or input for Ask)
}

// sharedState holds the mutable state shared across a RecordingUI and all
// child UIs created via Indent(). Using a shared pointer ensures that Ask
// calls in a nested scope advance the same input cursor.
type sharedState struct {
	entries []Entry
	inputs  []string // scripted responses served in order to Ask/Confirm
	nextIdx int
	buf     *bytes.Buffer
}

// RecordingUI implements UI for tests.
//
// All output is captured in an entry log that can be inspected with
// [RecordingUI.Entries] and [RecordingUI.HasMessage]. Input is served in
// order from the scripted inputs provided to [NewRecordingUI].
//
// If a test Ask/Confirm call runs out of scripted inputs the call panics
// with a descriptive message, making test failures obvious.
//
// Child UIs created via Indent() share the same input queue as their
// parent, so you can script inputs for a nested flow from the top-level
// RecordingUI.
type RecordingUI struct {
	shared      *sharedState
	indentLevel int
}

// NewRecordingUI creates a RecordingUI with the given scripted inputs.
// Inputs are returned by Ask/Confirm in the order they are provided.
func NewRecordingUI(scriptedInputs ...string) *RecordingUI {
	return &RecordingUI{
		shared: &sharedState{
			inputs: scriptedInputs,
			buf:    &bytes.Buffer{},
		},
	}
}

func (r *RecordingUI) record(method, value string) {
	r.shared.entries = append(r.shared.entries, Entry{
		Method: method,
		Value:  value,
	})
}

func (r *RecordingUI) nextInput(caller string) string {
	if r.shared.nextIdx >= len(r.shared.inputs) {
		panic(fmt.Sprintf(
			"RecordingUI: no scripted input left for %s (consumed %d so far)",
			caller, r.shared.nextIdx,
		))
	}
	input := r.shared.inputs[r.shared.nextIdx]
	r.shared.nextIdx++
	return input
}

// Style returns the plain text of t without any colour markup.
// RecordingUI is colour-free so tests receive clean, predictable strings.
func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

// Ask returns the next scripted input. If validate is non-nil and the input
// fails validation, the test panics immediately rather than looping (since
// there is no real user to correct it — the test script is wrong).
func (r *RecordingUI) Ask(validate func(string) error) string {
	input := r.nextInput("Ask")
	r.record("Ask", input)
	if validate != nil {
		if err := validate(input); err != nil {
			panic(fmt.Sprintf(
				"RecordingUI: scripted input %q failed validation in Ask: %s",
				input, err,
			))
		}
	}
	return input
}

// Confirm returns the next scripted input interpreted as a boolean.
// Accepted values: "y", "yes" → true; "n", "no" → false; "" → defaultYes.
func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.record("Confirm", prompt)
	input := strings.ToLower(strings.TrimSpace(r.nextInput("Confirm")))
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

// KeyValue records each row as a "label | value" entry.
func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", fmt.Sprintf("%s | %s", row[0], row[1]))
	}
}

// Table records the headers and each row as "cell | cell | ..." entries.
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	r.TableWithGroups(headers, [][][]string{rows})
}

// TableWithGroups records headers, rows and a "---" entry between groups.
func (r *RecordingUI) TableWithGroups(headers []string, groups [][][]string) {
	if len(headers) > 0 {
		r.record("Table", strings.Join(headers, " | "))
	}
	for gi, group := range groups {
		if gi > 0 {
			r.record("Table", "---")
		}
		for _, row := range group {
			r.record("Table", strings.Join(row, " | "))
		}
	}
}

// Indent returns a child RecordingUI at one deeper indent level.
// The child shares the same entry log and input queue as the parent.
func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		shared:      r.shared,
		indentLevel: r.indentLevel + 1,
	}
}

// Writer returns a writer that appends to the internal buffer.
// Indentation is not applied in RecordingUI since tests rarely need it.
func (r *RecordingUI) Writer() io.Writer {
	return r.shared.buf
}

// --- Test helpers ---

// Entries returns all recorded UI calls in order.
func (r *RecordingUI) Entries() []Entry {
	return r.shared.entries
}

// WarnMessages returns only the values recorded by Warn calls.
func (r *RecordingUI) WarnMessages() []string {
	return r.methodValues("Warn")
}

// CriticalMessages returns only the values recorded by Critical calls.
func (r *RecordingUI) CriticalMessages() []string {
	return r.methodValues("Critical")
}

// HasMessage returns true if any recorded entry's value contains substr
// (case-insensitive substring match).
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.shared.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) methodValues(method string) []string {
	var res []string
	for _, e := range r.shared.entries {
		if e.Method == method {
			res = append(res, e.Value)
		}
	}
	return res
}
