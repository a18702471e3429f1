package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Long:        `Print the version, commit hash, and build date of flexcalc.`,
		Args:        usageArgs(cobra.NoArgs),
		Annotations: map[string]string{annotationNoConfig: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			logging.NewInteractive(cmd.OutOrStdout()).Info("flexcalc",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}
}
