package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/logging"
	"github.com/yaklabco/flexar/pkg/reporter"
	"github.com/yaklabco/flexar/pkg/runner"
)

type checkFlags struct {
	execute bool
	summary bool
}

func newCheckCommand(sess *session) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check many programs for errors",
		Long: `Lex and parse every calculator program under the given paths and
report each failure.

By default, checks all .fx files in the current directory and its
subdirectories. Hidden directories are skipped. With --execute, programs are
also evaluated so that runtime errors such as unknown variables are found.

Examples:
  flexcalc check                    # Check the current directory
  flexcalc check examples/ a.fx     # Check a directory and a file
  flexcalc check --execute          # Also evaluate every program
  flexcalc check --format json      # Output as JSON for CI`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, sess, flags)
		},
	}

	addFormatFlag(cmd, sess)
	cmd.Flags().IntVarP(&sess.overrides.Check.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&sess.overrides.Check.Ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&sess.overrides.Check.Extensions, "ext", nil, "source file extensions (default .fx)")
	cmd.Flags().BoolVar(&flags.execute, "execute", false, "evaluate programs after parsing them")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, sess *session, flags *checkFlags) error {
	ctx := cmd.Context()
	cfg := sess.cfg

	// --execute overrides the config only when given, so false can win.
	execute := cfg.Check.ShouldExecute()
	if cmd.Flags().Changed("execute") {
		execute = flags.execute
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		Extensions:   cfg.Check.Extensions,
		ExcludeGlobs: cfg.Check.Ignore,
		Jobs:         cfg.Check.Jobs,
		Form:         sess.form,
		Execute:      execute,
	}

	sess.logger.Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		"execute", runOpts.Execute,
	)

	result, err := runner.New(sess.logger).Run(ctx, runOpts)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("check failed: %w", err))
	}

	repOpts, err := sess.reporterOptions(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	repOpts.DetailedSummary = flags.summary
	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	sess.logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
	)

	switch {
	case result.HasFailures():
		return ErrDiagnostic
	case result.HasErrors():
		return withExitCode(ExitIOError, fmt.Errorf("%d file(s) could not be read", result.Stats.FilesErrored))
	default:
		return nil
	}
}
