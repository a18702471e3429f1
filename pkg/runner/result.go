package runner

import (
	"time"

	"github.com/yaklabco/flexar/pkg/diag"
)

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	// Path is the file that was checked.
	Path string

	// Statements is the number of statements parsed.
	Statements int

	// Diagnostic is set when the file failed to lex, parse or evaluate.
	Diagnostic *diag.Diagnostic

	// Language names the language the file appears to be written in when it
	// failed and does not look like a calculator program.
	Language string

	// Error is set if the file could not be read.
	Error error

	// Duration is the time spent on the file.
	Duration time.Duration
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesChecked    int
	FilesFailed     int
	FilesErrored    int
	Statements      int

	// DiagnosticsByCode counts failing files by diagnostic code.
	DiagnosticsByCode map[string]int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file produced a diagnostic.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

// HasErrors reports whether any file could not be read.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{DiagnosticsByCode: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesChecked++
	r.Stats.Statements += outcome.Statements
	if outcome.Diagnostic != nil {
		r.Stats.FilesFailed++
		r.Stats.DiagnosticsByCode[outcome.Diagnostic.Code]++
	}
}
