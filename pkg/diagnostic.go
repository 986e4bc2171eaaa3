package holyc

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a positioned lexer or parser message. Lexer and parser
// fatal conditions are returned as a *Diagnostic satisfying error; non-fatal
// conditions (malformed escape sequences, overflowing numeric escapes) are
// routed through a DiagnosticSink instead of aborting the scan.
type Diagnostic struct {
	File     string
	Pos      Position
	Severity Severity
	Message  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%s: %s", d.File, d.Pos, d.Message)
}

// DiagnosticSink receives non-fatal diagnostics emitted while lexing or
// parsing. Callers that don't care about warnings can pass NopSink{}.
type DiagnosticSink interface {
	Warn(d *Diagnostic)
}

// NopSink discards every diagnostic.
type NopSink struct{}

func (NopSink) Warn(*Diagnostic) {}

// CollectingSink accumulates diagnostics in memory, for tests and for
// callers that want to report everything at once rather than streaming it.
type CollectingSink struct {
	Diagnostics []*Diagnostic
}

func (s *CollectingSink) Warn(d *Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// ColorSink writes diagnostics to an io.Writer immediately, coloring errors
// red and warnings yellow.
type ColorSink struct {
	out     io.Writer
	errCol  *color.Color
	warnCol *color.Color
}

// NewColorSink builds a ColorSink writing to out. A nil out defaults to
// os.Stderr.
func NewColorSink(out io.Writer) *ColorSink {
	if out == nil {
		out = os.Stderr
	}
	return &ColorSink{
		out:     out,
		errCol:  color.New(color.FgRed, color.Bold),
		warnCol: color.New(color.FgYellow),
	}
}

func (s *ColorSink) Warn(d *Diagnostic) {
	c := s.warnCol
	if d.Severity == SeverityError {
		c = s.errCol
	}
	c.Fprintln(s.out, d.Error())
}
