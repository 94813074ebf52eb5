package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/lcmap-client/internal/constants"
	"github.com/oshokin/lcmap-client/internal/version"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version.",
	Args:  cobra.NoArgs,
	// Overrides the root hook, no configuration is needed.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.ProductName, version.Full()) //nolint:errcheck // Printing to stdout.
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
