package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/lcmap-client/internal/app"
	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/logger"
)

const debugLogLevel = "debug"

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "lcmap-client",
		Short: "Command-line client for the LCMAP REST API.",
		Long: `LCMAP Client is a CLI tool for calling the USGS LCMAP REST API.
It supports:
- Raw requests with any verb (get, head, post, put, delete, options, copy, move, patch)
- Surface reflectance tiles and rods
- Running models and following their result links
- Logging in and out, with tokens kept in the configuration file or the system keyring

Responses are printed as JSON or YAML and can be filtered with jq expressions.`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	addConfigFlags(rootCmd.PersistentFlags())
	addOutputFlags(rootCmd.PersistentFlags())
}

// addConfigFlags defines the flags overriding configuration values.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"endpoint",
		"e",
		"",
		"base URL of the LCMAP REST API, for example: http://localhost:1077.")

	flags.StringP(
		"token",
		"t",
		"",
		"auth token sent in the X-AuthToken header.")

	flags.StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error.")

	flags.Bool(
		"debug",
		false,
		"log requests and responses (same as --log-level debug).")

	flags.String(
		"timeout",
		"",
		"request timeout, for example: 30s, 2m.")

	flags.Bool(
		"keyring",
		false,
		"keep auth tokens in the system keyring.")

	flags.Bool(
		"metrics",
		false,
		"collect request metrics and log them on exit.")
}

// addOutputFlags defines the flags controlling how results are printed.
func addOutputFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"format",
		"f",
		app.FormatJSON,
		"output format: json or yaml.")

	flags.StringP(
		"jq",
		"q",
		"",
		"jq expression applied to the result, for example: '.result.link.href'.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("endpoint"); flag != nil && flag.Changed {
		cfg.Endpoint, _ = flags.GetString("endpoint")
	}

	if flag := flags.Lookup("token"); flag != nil && flag.Changed {
		cfg.AuthToken, _ = flags.GetString("token")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("debug"); flag != nil && flag.Changed {
		if debug, _ := flags.GetBool("debug"); debug {
			cfg.LogLevel = debugLogLevel
		}
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.Timeout, _ = flags.GetString("timeout")
	}

	if flag := flags.Lookup("keyring"); flag != nil && flag.Changed {
		cfg.UseKeyring, _ = flags.GetBool("keyring")
	}

	if flag := flags.Lookup("metrics"); flag != nil && flag.Changed {
		cfg.MetricsEnabled, _ = flags.GetBool("metrics")
	}

	return config.ValidateConfig(cfg)
}

func outputParamsFromFlags(flags *pflag.FlagSet) app.OutputParams {
	format, _ := flags.GetString("format")
	jq, _ := flags.GetString("jq")

	return app.OutputParams{
		Format: format,
		JQ:     jq,
	}
}

// runWithApp applies the flags, builds the application and runs fn with it.
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, application *app.App) error) {
	ctx := cmd.Context()

	if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(ctx, "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	application, err := app.NewApp(ctx, appConfig)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}

	err = fn(ctx, application)

	application.Close(ctx)

	if err != nil {
		logger.Fatalf(ctx, "Command failed: %v", err)
	}
}
