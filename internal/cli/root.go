// Package cli provides the Cobra command structure for flexcalc.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root flexcalc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	sess := newSession(os.Getenv)

	rootCmd := &cobra.Command{
		Use:   "flexcalc",
		Short: "A calculator language with source-accurate diagnostics",
		Long: `flexcalc lexes, parses and evaluates programs in a small calculator
language and reports errors by quoting the offending source:

  error[unclosed parentheses]: expected ` + "`)`" + ` to close parentheses
   --> example.fx:1:7
  1 | (1 + 2;
    |       ^ expected ` + "`)`" + ` to close parentheses
   <--

Programs are read from a file argument, or from stdin when it is not a
terminal. Settings come from flags, FLEXCALC_* variables and .flexcalc.yml
or .flexcalc.toml files.`,
		PersistentPreRunE: sess.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&sess.flags.debug, "debug", false, "enable debug logging")
	flags.StringVar(&sess.flags.configPath, "config", "", "path to config file")
	flags.StringVar(&sess.flags.color, "color", "", "colorize output: auto, always, never")
	flags.IntVar(&sess.overrides.LineLimit, "line-limit", 0, "characters of context kept around an error in quoted lines")
	flags.StringVar(&sess.overrides.Normalize, "normalize", "", "Unicode normalization of input: none, nfc, nfd")

	// Add subcommands.
	rootCmd.AddCommand(newRunCommand(sess))
	rootCmd.AddCommand(newLexCommand(sess))
	rootCmd.AddCommand(newParseCommand(sess))
	rootCmd.AddCommand(newCheckCommand(sess))
	rootCmd.AddCommand(newErrorsCommand(sess))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(sess.flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
