package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/lcmap-client/internal/app"
	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	"github.com/oshokin/lcmap-client/internal/utils"
)

// newVerbCommand creates the command sending a verb request to a path.
func newVerbCommand(verb lcmap.Verb) *cobra.Command {
	method, _ := verb.Method()

	command := &cobra.Command{
		Use:   string(verb) + " {path}",
		Short: fmt.Sprintf("Send a %s request to the API.", method),
		Long: fmt.Sprintf(`Sends a %s request to the path below the configured endpoint and prints the response.

Examples:
  lcmap-client %s /api/status
  lcmap-client %s /api/L1/T/Landsat/8/SurfaceReflectance/tiles -Q band=sr_band1 -Q point=-2062080,2952960 -r result`,
			method, verb, verb),
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params := requestParamsFromFlags(cmd.Flags())
			params.Verb = string(verb)
			params.Path = args[0]

			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Request(ctx, params, outputParamsFromFlags(cmd.Flags()))
			})
		},
	}

	addRequestFlags(command.Flags())

	return command
}

// addRequestFlags defines the flags shaping a single request.
func addRequestFlags(flags *pflag.FlagSet) {
	addReturnFlag(flags)

	flags.String(
		"version",
		"",
		"API version requested in the Accept header, for example: 1.0.")

	flags.String(
		"content-type",
		"",
		"content type requested in the Accept header, for example: json or application/json.")

	flags.StringArrayP(
		"header",
		"H",
		nil,
		"request header as name=value, repeatable.")

	flags.StringArrayP(
		"query",
		"Q",
		nil,
		"query parameter as name=value, repeatable.")

	flags.StringArrayP(
		"form",
		"F",
		nil,
		"form field as name=value, repeatable.")

	flags.StringP(
		"data",
		"d",
		"",
		"request body: a literal, @file or - for standard input.")

	flags.Bool(
		"json",
		false,
		"send --data as a JSON body.")

	flags.StringP(
		"output",
		"o",
		"",
		"save the response body to this file instead of printing it.")
}

// addReturnFlag defines the return mode flag.
func addReturnFlag(flags *pflag.FlagSet) {
	modes := utils.Map(lcmap.ReturnModes(), func(mode lcmap.ReturnMode) string {
		return string(mode)
	})

	flags.StringP(
		"return",
		"r",
		"",
		"part of the response to print: "+strings.Join(modes, ", ")+" (default is body).")
}

func requestParamsFromFlags(flags *pflag.FlagSet) app.RequestParams {
	var params app.RequestParams

	params.Return, _ = flags.GetString("return")
	params.Version, _ = flags.GetString("version")
	params.ContentType, _ = flags.GetString("content-type")
	params.Headers, _ = flags.GetStringArray("header")
	params.Query, _ = flags.GetStringArray("query")
	params.Form, _ = flags.GetStringArray("form")
	params.Data, _ = flags.GetString("data")
	params.JSON, _ = flags.GetBool("json")
	params.Output, _ = flags.GetString("output")

	return params
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, verb := range lcmap.Verbs() {
		rootCmd.AddCommand(newVerbCommand(verb))
	}
}
