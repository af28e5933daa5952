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
	SeverityInfo    Severity = iota // plain — no colour emphasis
	SeveritySuccess                 // green  — resolved / high confidence
	SeverityWarn                    // yellow — ambiguous / low confidence
	SeverityError                   // red    — unresolved / failed
)

// StyledText pairs a plain string with a Severity annotation.
//
// JSON serialization: the struct marshals as just the plain Text string so
// consumers receive clean output with no ANSI codes and no extra structure.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI provides all terminal output for prospector commands.
//
// Production code uses TerminalUI (coloured output to os.Stdout); tests use
// RecordingUI, which captures every call for assertions. Commands are
// non-interactive — resolution is a batch process — so there is no input
// surface here.
//
// Use [UI.Indent] to get a child UI at one deeper indent level, e.g. for
// per-call trace lines nested under a call header.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled (piped output, RecordingUI) the plain text
	// is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does NOT exit — callers decide
	// what to do next.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	Section(title string)

	// KeyValue renders an aligned 2-column block — label left, value
	// right, values aligned to the same column.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with a header row followed by
	// data rows. When headers is empty no header row is rendered.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with the given message and
	// returns a stop function:
	//
	//	stop := u.Spinner("Resolving calls...")
	//	defer stop()
	Spinner(msg string) func()

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line, for functions that take a plain io.Writer (e.g. the
	// resolver's WriterSink).
	Writer() io.Writer
}
