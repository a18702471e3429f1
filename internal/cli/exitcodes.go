package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/logging"
	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/fsutil"
	"github.com/yaklabco/flexar/pkg/source"
)

// Exit codes for flexcalc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitDiagnostic indicates a lex, parse or runtime diagnostic was reported.
	ExitDiagnostic = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates a defect in a grammar or catalog definition.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrDiagnostic is returned after a diagnostic has been reported. It only
// selects the exit code and is not logged.
var ErrDiagnostic = errors.New("diagnostic reported")

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func usageErrorf(format string, args ...any) error {
	return withExitCode(ExitInvalidUsage, fmt.Errorf(format, args...))
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(ExitInvalidUsage, validate(cmd, args))
	}
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}

	switch {
	case errors.Is(err, ErrDiagnostic):
		return ExitDiagnostic
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrInvalidUTF8):
		return ExitIOError
	default:
		return ExitDiagnostic
	}
}

// Execute runs root and returns the process exit code. A panic with a
// *diag.InternalError or a source.ErrOutOfBounds error is recovered, logged
// and mapped to ExitInternalError; any other panic propagates.
func Execute(ctx context.Context, root *cobra.Command) (code int) {
	logger := logging.Default()

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		if !isInternalDefect(recovered) {
			panic(recovered)
		}
		logger.Error("internal error", logging.FieldError, recovered)
		code = ExitInternalError
	}()

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrDiagnostic) {
		logger.Error("command failed", logging.FieldError, err)
	}
	return ExitCode(err)
}

// isInternalDefect reports whether a panic value signals a defect in a
// grammar, catalog or cursor invariant.
func isInternalDefect(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var internal *diag.InternalError
	return errors.As(err, &internal) || errors.Is(err, source.ErrOutOfBounds)
}
