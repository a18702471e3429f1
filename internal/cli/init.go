package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/logging"
	"github.com/yaklabco/flexar/pkg/config"
	"github.com/yaklabco/flexar/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new flexcalc configuration file",
		Long: `Create a new .flexcalc.yml configuration file in the current directory
with every setting documented at its default.

Examples:
  flexcalc init                      Create .flexcalc.yml
  flexcalc init --format toml        Create .flexcalc.toml instead
  flexcalc init --output custom.yml  Write to a custom file path`,
		Args:        usageArgs(cobra.NoArgs),
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", string(config.TemplateYAML), "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .flexcalc.yml or .flexcalc.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	format := config.TemplateFormat(flags.format)
	if format != config.TemplateYAML && format != config.TemplateTOML {
		return usageErrorf("invalid format %q: must be yaml or toml", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".flexcalc.yml"
		if format == config.TemplateTOML {
			outputPath = ".flexcalc.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	_, statErr := os.Stat(absPath)
	switch {
	case statErr == nil && !flags.force:
		return usageErrorf("file %q already exists; use --force to overwrite", outputPath)
	case statErr == nil:
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	case !errors.Is(statErr, fs.ErrNotExist):
		return withExitCode(ExitIOError, fmt.Errorf("stat %s: %w", outputPath, statErr))
	}

	content, err := config.GenerateTemplate(format)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return withExitCode(ExitIOError, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'flexcalc errors' to see every diagnostic code")

	return nil
}
