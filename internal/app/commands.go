package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/logger"
	lcmap_service "github.com/oshokin/lcmap-client/internal/service/lcmap"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyInput indicates that a command expecting a previous response got none.
	ErrEmptyInput = errors.New("input is empty")
)

// Status prints the system status.
func (a *App) Status(ctx context.Context, output OutputParams) error {
	if err := a.validateOutput(output); err != nil {
		return err
	}

	status, err := a.api.Status(ctx)
	if err != nil {
		return err
	}

	return a.print(ctx, status, output)
}

// Tiles prints the tiles matching query.
func (a *App) Tiles(ctx context.Context, query lcmap_service.TileQuery, output OutputParams) error {
	if err := a.validateOutput(output); err != nil {
		return err
	}

	tiles, err := a.api.Tiles(ctx, query)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Received %d tiles", len(tiles))

	return a.print(ctx, tiles, output)
}

// Rod prints the time series of the point in query.
func (a *App) Rod(ctx context.Context, query lcmap_service.TileQuery, output OutputParams) error {
	if err := a.validateOutput(output); err != nil {
		return err
	}

	rod, err := a.api.Rod(ctx, query)
	if err != nil {
		return err
	}

	return a.print(ctx, rod, output)
}

// SampleModel starts the sample model and prints its job, or the job result when wait is set.
func (a *App) SampleModel(
	ctx context.Context,
	request lcmap_service.SampleModelRequest,
	wait bool,
	output OutputParams,
) error {
	if err := a.validateOutput(output); err != nil {
		return err
	}

	job, err := a.api.RunSampleModel(ctx, request)
	if err != nil {
		return err
	}

	if !wait {
		return a.print(ctx, job.Response, output)
	}

	result, err := a.api.JobResult(ctx, job)
	if err != nil {
		return err
	}

	return a.print(ctx, result, output)
}

// Follow reads a JSON response from stdin and prints the resource its result.link.href points to.
func (a *App) Follow(ctx context.Context, returnMode string, output OutputParams) error {
	if err := a.validateOutput(output); err != nil {
		return err
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}

	if len(data) == 0 {
		return ErrEmptyInput
	}

	var previous any
	if err = json.Unmarshal(data, &previous); err != nil {
		return fmt.Errorf("%w: %w", lcmap.ErrMalformedJSON, err)
	}

	var opts lcmap.RequestOptions

	if returnMode != "" {
		mode, parseErr := lcmap.ParseReturnMode(returnMode)
		if parseErr != nil {
			return parseErr
		}

		opts.Return = &mode
	}

	response, err := a.client.FollowLink(ctx, a.lctx, previous, opts)
	if err != nil {
		return err
	}

	return a.print(ctx, response, output)
}

// Login exchanges the credentials for a token.
// Empty arguments fall back to the configured username and password.
// Without the keyring the token is written to the configuration file.
func (a *App) Login(ctx context.Context, username, password string) error {
	if username == "" {
		username = a.cfg.Username
	}

	if password == "" {
		password = a.cfg.Password
	}

	token, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if a.cfg.UseKeyring {
		logger.Infof(ctx, "Token stored in the system keyring under '%s'", a.cfg.KeyringService)
		return nil
	}

	a.cfg.AuthToken = token

	if err = config.SaveConfig(a.cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Infof(ctx, "Token saved to '%s'", a.cfg.ConfigFilename)

	return nil
}

// Logout invalidates the token on the server and forgets it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}

	if a.cfg.UseKeyring {
		return nil
	}

	a.cfg.AuthToken = ""

	if err := config.SaveConfig(a.cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return nil
}
