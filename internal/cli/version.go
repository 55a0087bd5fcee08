package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the library version, the engine version and the packed version code.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewWriter(cmd.OutOrStdout(), "info")
			logger.Info("goharper",
				logging.FieldVersion, version.Library(),
				logging.FieldCoreVersion, version.CoreVersion(),
				logging.FieldVersionCode, version.Encoded(),
			)
		},
	}
}
