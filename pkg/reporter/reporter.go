// Package reporter writes diagnostics and check results as text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/runner"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes diagnostics.
type Reporter interface {
	// Report writes formatted output for a check result.
	// It returns the number of failing files and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)

	// ReportDiagnostic writes a single diagnostic.
	ReportDiagnostic(ctx context.Context, d *diag.Diagnostic) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.LineLimit <= 0 {
		opts.LineLimit = diag.DefaultLineLimit
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
