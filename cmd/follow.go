package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/lcmap-client/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Follow the result link of a response read from standard input.",
	Long: `Reads a JSON response from standard input and requests the resource
its result.link.href points to.

Example:
  lcmap-client post /api/models/sample/os-process -F seconds=5 -F year=2015 | lcmap-client follow`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		returnMode, _ := cmd.Flags().GetString("return")

		runWithApp(cmd, func(ctx context.Context, application *app.App) error {
			return application.Follow(ctx, returnMode, outputParamsFromFlags(cmd.Flags()))
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addReturnFlag(followCmd.Flags())

	rootCmd.AddCommand(followCmd)
}
