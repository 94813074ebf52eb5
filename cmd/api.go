package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/lcmap-client/internal/app"
	lcmap_service "github.com/oshokin/lcmap-client/internal/service/lcmap"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the system status.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Status(ctx, outputParamsFromFlags(cmd.Flags()))
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	tilesCmd = &cobra.Command{
		Use:   "tiles",
		Short: "Print the surface reflectance tiles around a point.",
		Long: `Prints the Landsat 8 surface reflectance tiles of a band around a point.

Example:
  lcmap-client tiles --band LANDSAT_8/OLI_TIRS/sr_band1 --x -2062080 --y 2952960 --time 2013-01-01/2015-01-01`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			query := tileQueryFromFlags(cmd.Flags())

			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Tiles(ctx, query, outputParamsFromFlags(cmd.Flags()))
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	rodCmd = &cobra.Command{
		Use:   "rod",
		Short: "Print the surface reflectance time series of a point.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			query := tileQueryFromFlags(cmd.Flags())

			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Rod(ctx, query, outputParamsFromFlags(cmd.Flags()))
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	modelCmd = &cobra.Command{
		Use:   "model",
		Short: "Model management commands.",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	modelSampleCmd = &cobra.Command{
		Use:   "sample",
		Short: "Run the sample OS process model.",
		Long: `Starts the sample OS process model and prints the job response.
With --wait the job link is followed and its result is printed instead.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()

			var request lcmap_service.SampleModelRequest

			request.Seconds, _ = flags.GetInt("seconds")
			request.Year, _ = flags.GetInt("year")
			wait, _ := flags.GetBool("wait")

			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.SampleModel(ctx, request, wait, outputParamsFromFlags(flags))
			})
		},
	}
)

// addTileQueryFlags defines the flags selecting a band, a point and a time range.
func addTileQueryFlags(flags *pflag.FlagSet) {
	flags.String("band", "", "unique band identifier, for example: LANDSAT_8/OLI_TIRS/sr_band1.")
	flags.Int64("x", 0, "projection x coordinate of the point.")
	flags.Int64("y", 0, "projection y coordinate of the point.")
	flags.String("time", "", "acquisition range, for example: 2013-01-01/2015-01-01.")
}

func tileQueryFromFlags(flags *pflag.FlagSet) lcmap_service.TileQuery {
	var query lcmap_service.TileQuery

	query.Band, _ = flags.GetString("band")
	query.X, _ = flags.GetInt64("x")
	query.Y, _ = flags.GetInt64("y")
	query.Time, _ = flags.GetString("time")

	return query
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addTileQueryFlags(tilesCmd.Flags())
	addTileQueryFlags(rodCmd.Flags())

	modelSampleCmd.Flags().Int("seconds", 1, "how long the sample process runs.")
	modelSampleCmd.Flags().Int("year", 2015, "year passed to the sample process.")
	modelSampleCmd.Flags().Bool("wait", false, "follow the job link and print the job result.")

	modelCmd.AddCommand(modelSampleCmd)

	rootCmd.AddCommand(statusCmd, tilesCmd, rodCmd, modelCmd)
}
