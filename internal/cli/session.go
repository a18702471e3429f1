package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/flexar/internal/configloader"
	"github.com/yaklabco/flexar/internal/logging"
	"github.com/yaklabco/flexar/pkg/config"
	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/fsutil"
	"github.com/yaklabco/flexar/pkg/reporter"
	"github.com/yaklabco/flexar/pkg/source"
)

// stdinName names programs read from standard input in diagnostics.
const stdinName = "<stdin>"

// annotationNoConfig marks commands that run without loading configuration.
const annotationNoConfig = "flexcalc/no-config"

type globalFlags struct {
	debug      bool
	configPath string
	color      string
	format     string
}

// session carries the resolved configuration from the root command's
// pre-run hook to the subcommand being executed.
type session struct {
	getenv func(string) string

	flags globalFlags

	// overrides holds flag values; zero fields are unset.
	overrides config.Config

	cfg     *config.Config
	form    source.Form
	workDir string
	logger  *log.Logger
}

func newSession(getenv func(string) string) *session {
	return &session{getenv: getenv, logger: logging.Default()}
}

// load resolves configuration for the executing command.
func (s *session) load(cmd *cobra.Command, _ []string) error {
	if s.flags.debug {
		logging.SetLevel("debug")
	}
	if cmd.Annotations[annotationNoConfig] != "" {
		return nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("get working directory: %w", err))
	}
	s.workDir = workDir

	s.overrides.Color = config.ColorMode(s.flags.color)
	s.overrides.Format = config.OutputFormat(s.flags.format)

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: s.flags.configPath,
		Getenv:       s.getenv,
		CLIConfig:    &s.overrides,
	})
	if err != nil {
		return withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}
	s.cfg = result.Config

	if !s.flags.debug {
		logging.SetLevel(s.cfg.LogLevel)
	}
	for _, warning := range result.Warnings {
		s.logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		s.logger.Debug("loaded configuration from", logging.FieldPaths, result.LoadedFrom)
	}

	// Validated by the loader.
	s.form, _ = source.ParseForm(s.cfg.Normalize)

	s.logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldNormalize, s.form,
		"line_limit", s.cfg.LineLimit,
		"format", s.cfg.Format,
	)
	return nil
}

// readProgram reads the program named by args, or stdin when args is empty
// or "-".
func (s *session) readProgram(cmd *cobra.Command, args []string) (*source.FileContent, error) {
	if len(args) == 1 && args[0] != "-" {
		file, err := fsutil.ReadSource(cmd.Context(), args[0], s.form)
		if err != nil {
			return nil, withExitCode(ExitIOError, err)
		}
		s.logger.Debug("read program", logging.FieldPath, args[0], "lines", file.LineCount())
		return file, nil
	}

	input := cmd.InOrStdin()
	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, usageErrorf("no input: pass a file or pipe a program to stdin")
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("read stdin: %w", err))
	}
	if !utf8.Valid(data) {
		return nil, withExitCode(ExitIOError, fmt.Errorf("%w: %s", fsutil.ErrInvalidUTF8, stdinName))
	}
	return source.NewNormalizedFileContent(stdinName, string(data), s.form), nil
}

// reporterOptions configures a reporter writing to w in the configured format.
func (s *session) reporterOptions(w io.Writer) (reporter.Options, error) {
	format, err := reporter.ParseFormat(string(s.cfg.Format))
	if err != nil {
		return reporter.Options{}, usageErrorf("invalid format: %w", err)
	}
	return reporter.Options{
		Writer:      w,
		Format:      format,
		Color:       string(s.cfg.Color),
		LineLimit:   s.cfg.LineLimit,
		ShowSummary: true,
		WorkingDir:  s.workDir,
	}, nil
}

// fail reports err to stderr when it is a diagnostic and returns
// ErrDiagnostic; other errors are returned unchanged.
func (s *session) fail(cmd *cobra.Command, err error) error {
	d, ok := diag.AsDiagnostic(err)
	if !ok {
		return err
	}

	s.logger.Debug("diagnostic", logging.FieldCode, d.Code, logging.FieldPath, d.Pos.FileName())

	opts, optErr := s.reporterOptions(cmd.ErrOrStderr())
	if optErr != nil {
		return optErr
	}
	rep, repErr := reporter.New(opts)
	if repErr != nil {
		return fmt.Errorf("create reporter: %w", repErr)
	}
	if repErr := rep.ReportDiagnostic(cmd.Context(), d); repErr != nil {
		return fmt.Errorf("report diagnostic: %w", repErr)
	}
	return ErrDiagnostic
}
