package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/lcmap-client/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for the LCMAP REST API.

Use 'auth login' to exchange your username and password for a token
and 'auth logout' to invalidate it.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in and save the auth token",
		Long: `Posts your username and password to the API and keeps the returned token.

The username and password are taken from the flags, falling back to
the configuration file (username, password) and the LCMAP_USERNAME and
LCMAP_PASSWORD environment variables.

The token is saved to the configuration file, or to the system keyring
when --keyring or use_keyring is set, and sent with every later request.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Login(ctx, username, password)
			})
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authLogoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Invalidate and forget the auth token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			runWithApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Logout(ctx)
			})
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authLoginCmd.Flags().StringP("username", "u", "", "account name.")
	authLoginCmd.Flags().StringP("password", "p", "", "account password.")

	authCmd.AddCommand(authLoginCmd, authLogoutCmd)

	rootCmd.AddCommand(authCmd)
}
