package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/flexar/internal/ui/pretty"
	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportDiagnostic implements Reporter.
func (r *TextReporter) ReportDiagnostic(_ context.Context, d *diag.Diagnostic) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	_, err = fmt.Fprint(r.bw, r.styles.FormatDiagnostic(d, r.opts.LineLimit))
	return err
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	for _, file := range result.Files {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}

		path := r.opts.relativePath(file.Path)
		switch {
		case file.Error != nil:
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
		case file.Diagnostic != nil:
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(file.Diagnostic, r.opts.LineLimit))
			if file.Language != "" {
				fmt.Fprint(r.bw, r.styles.FormatLanguageHint(path, file.Language))
			}
			fmt.Fprintln(r.bw)
		}
	}

	switch {
	case r.opts.DetailedSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	case r.opts.ShowSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.FilesFailed, nil
}
