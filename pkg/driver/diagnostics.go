// Package driver loads pre-parsed rinha programs from their JSON wire format,
// resolves the optional project manifest, and carries the diagnostic location
// model shared with the interpreter.
package driver

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"rinha/interpreter-go/pkg/ast"
)

type DiagnosticSeverity int

const (
	SeverityError DiagnosticSeverity = iota
	SeverityWarning
)

// DiagnosticLocation pinpoints a diagnostic in the original source. Line and
// Column are preferred; byte offsets are kept as a fallback because the
// interpreter never sees the source text and cannot recompute them.
type DiagnosticLocation struct {
	Path   string
	Line   int
	Column int
	Start  int
	End    int
}

// LocationFromSpan converts an AST span into a diagnostic location.
func LocationFromSpan(span ast.Span) DiagnosticLocation {
	return DiagnosticLocation{
		Path:   span.File,
		Line:   span.Line,
		Column: span.Column,
		Start:  span.Start,
		End:    span.End,
	}
}

// Diagnostic is a fully formatted, locatable failure report.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Kind     string
	Message  string
	Location DiagnosticLocation
}

// String renders the one-line form `<kind>: <message> (line X, column Y)`.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Kind)
	b.WriteString(": ")
	b.WriteString(d.Message)
	if loc := formatLocation(d.Location); loc != "" {
		fmt.Fprintf(&b, " (%s)", loc)
	}
	return b.String()
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	locationText = color.New(color.Faint)
)

// Describe renders the diagnostic with the kind prefix colored. Coloring is
// suppressed automatically when stderr is not a terminal or when
// color.NoColor has been set.
func (d Diagnostic) Describe() string {
	label := errorLabel
	if d.Severity == SeverityWarning {
		label = warningLabel
	}
	var b strings.Builder
	b.WriteString(label.Sprintf("%s:", d.Kind))
	b.WriteByte(' ')
	b.WriteString(d.Message)
	if loc := formatLocation(d.Location); loc != "" {
		b.WriteByte(' ')
		b.WriteString(locationText.Sprintf("(%s)", loc))
	}
	return b.String()
}

func formatLocation(loc DiagnosticLocation) string {
	switch {
	case loc.Line > 0 && loc.Column > 0:
		return fmt.Sprintf("line %d, column %d", loc.Line, loc.Column)
	case loc.Line > 0:
		return fmt.Sprintf("line %d", loc.Line)
	case loc.Start > 0 || loc.End > 0:
		return fmt.Sprintf("offset %d", loc.Start)
	default:
		return ""
	}
}
