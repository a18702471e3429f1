package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/runner"
)

// jsonVersion is the version of the JSON output schema.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure for check results.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path       string          `json:"path"`
	Statements int             `json:"statements"`
	Diagnostic *JSONDiagnostic `json:"diagnostic,omitempty"`
	Language   string          `json:"language,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Code      string `json:"code"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	EndLine   int    `json:"endLine,omitempty"`
	EndColumn int    `json:"endColumn,omitempty"`
	Rendered  string `json:"rendered"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesChecked    int            `json:"filesChecked"`
	FilesFailed     int            `json:"filesFailed"`
	FilesErrored    int            `json:"filesErrored"`
	Statements      int            `json:"statements"`
	ByCode          map[string]int `json:"byCode"`
}

// NewJSONDiagnostic converts d, including its plain rendered report.
func NewJSONDiagnostic(d *diag.Diagnostic, lineLimit int) *JSONDiagnostic {
	out := &JSONDiagnostic{
		Code:     d.Code,
		Category: d.Category,
		Message:  d.Message,
		Rendered: diag.Renderer{LineLimit: lineLimit}.Render(d),
	}
	if d.Pos.IsValid() {
		out.File = d.Pos.FileName()
		out.Line = d.Pos.Start.Line
		out.Column = d.Pos.Start.Col
		out.EndLine = d.Pos.End.Line
		out.EndColumn = d.Pos.End.Col
	}
	return out
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportDiagnostic implements Reporter.
func (r *JSONReporter) ReportDiagnostic(_ context.Context, d *diag.Diagnostic) error {
	return r.encode(NewJSONDiagnostic(d, r.opts.LineLimit))
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	output := r.buildOutput(result)
	if err := r.encode(output); err != nil {
		return 0, err
	}
	return output.Summary.FilesFailed, nil
}

func (r *JSONReporter) encode(value any) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByCode: make(map[string]int)},
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:       r.opts.relativePath(file.Path),
			Statements: file.Statements,
			Language:   file.Language,
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		if file.Diagnostic != nil {
			fileResult.Diagnostic = NewJSONDiagnostic(file.Diagnostic, r.opts.LineLimit)
		}
		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesChecked:    stats.FilesChecked,
		FilesFailed:     stats.FilesFailed,
		FilesErrored:    stats.FilesErrored,
		Statements:      stats.Statements,
		ByCode:          make(map[string]int, len(stats.DiagnosticsByCode)),
	}
	maps.Copy(output.Summary.ByCode, stats.DiagnosticsByCode)

	return output
}
