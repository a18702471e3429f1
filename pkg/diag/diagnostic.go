// Package diag provides error catalogs, diagnostics, and the source-quoting
// renderer used to report lexer, parser, and runtime failures.
package diag

import (
	"errors"
	"fmt"

	"github.com/yaklabco/flexar/pkg/source"
)

// Diagnostic is an instantiated, user-facing error tied to a source position.
type Diagnostic struct {
	// Code is the stable identifier of the catalog entry (e.g. "LX001").
	Code string

	// Category is the display label of the entry (e.g. "Lexer").
	Category string

	// Message is the fully substituted message text.
	Message string

	// Pos is the span of source the diagnostic refers to.
	Pos source.Position
}

// Error implements error. It is a one-line summary; use Render for the
// source-quoting report.
func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s[%s]: %s", d.Pos, d.Category, d.Code, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", d.Category, d.Code, d.Message)
}

// AsDiagnostic unwraps err to a *Diagnostic.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// InternalError signals a defect in a grammar definition or in the toolkit
// itself, such as instantiating a template with the wrong number of
// arguments. It is raised with panic and never rendered as a Diagnostic.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

func internalf(format string, args ...any) {
	panic(&InternalError{Msg: fmt.Sprintf(format, args...)})
}
