package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/flexar/pkg/diag"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stderr for
	// diagnostics).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// LineLimit is the context kept around a span in quoted source lines.
	LineLimit int

	// ShowSummary writes a one-line summary after check results.
	ShowSummary bool

	// DetailedSummary replaces the one-line summary with a summary block.
	DetailedSummary bool

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make file paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		LineLimit:   diag.DefaultLineLimit,
		ShowSummary: true,
	}
}

// relativePath shortens path against the working directory when it lies
// beneath it.
func (o Options) relativePath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
