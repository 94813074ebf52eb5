package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	"github.com/oshokin/lcmap-client/internal/constants"
	"github.com/oshokin/lcmap-client/internal/logger"
	"github.com/oshokin/lcmap-client/internal/utils"
)

const (
	// overwriteFileOptions are the flags used to create download targets.
	overwriteFileOptions = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	// partSuffix marks an incomplete download.
	partSuffix = ".part"
	// stdinMarker reads the request data from standard input.
	stdinMarker = "-"
	// fileMarker prefixes a data argument naming a file.
	fileMarker = "@"
)

// Static error definitions for better error handling.
var (
	// ErrNotStreamed indicates that a download did not produce a streamed body.
	ErrNotStreamed = errors.New("response body was not streamed")
	// ErrIncompleteDownload indicates that fewer bytes were written than declared.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrDownloadFailed indicates that the API answered a download with an error.
	ErrDownloadFailed = errors.New("download failed")
)

// RequestParams describes a single request sent by a verb command.
type RequestParams struct {
	// Verb is the request verb (get, post, copy, ...).
	Verb string
	// Path is appended to the endpoint.
	Path string
	// Return is the return mode. Empty means the configured default.
	Return string
	// Version overrides the API version of the Accept header.
	Version string
	// ContentType overrides the content type of the Accept header.
	ContentType string
	// Headers are "name=value" header overrides.
	Headers []string
	// Query are "name=value" query parameters.
	Query []string
	// Form are "name=value" form fields.
	Form []string
	// Data is the request body: a literal, "@file" or "-" for standard input.
	Data string
	// JSON sends Data as a JSON body.
	JSON bool
	// Output saves the response body to this file instead of printing it.
	Output string
}

// Request sends a request described by params and prints the normalized response.
func (a *App) Request(ctx context.Context, params RequestParams, output OutputParams) error {
	if err := a.validateOutput(output); err != nil {
		return err
	}

	verb, err := lcmap.ParseVerb(params.Verb)
	if err != nil {
		return err
	}

	args, err := a.requestArgs(params)
	if err != nil {
		return err
	}

	if params.Output != "" {
		return a.download(ctx, verb, params, args)
	}

	response, err := a.client.Call(ctx, verb, params.Path, args)
	if err != nil {
		return err
	}

	return a.print(ctx, response, output)
}

func (a *App) requestArgs(params RequestParams) (lcmap.Args, error) {
	args := lcmap.Args{
		Client:  a.lctx,
		Request: lcmap.Values{},
	}

	if params.Return != "" {
		mode, err := lcmap.ParseReturnMode(params.Return)
		if err != nil {
			return args, err
		}

		args.Options.Return = &mode
	}

	if params.Version != "" {
		args.Options.Version = lcmap.Ptr(params.Version)
	}

	if params.ContentType != "" {
		args.Options.ContentType = lcmap.Ptr(params.ContentType)
	}

	if logger.IsDebugLevel() {
		args.Options.Debug = lcmap.Ptr(true)
	}

	headers, err := utils.ParseKeyValuePairs(params.Headers)
	if err != nil {
		return args, fmt.Errorf("invalid header: %w", err)
	}

	if len(headers) > 0 {
		args.Headers = lcmap.Headers(headers)
	}

	query, err := utils.ParseKeyValuePairs(params.Query)
	if err != nil {
		return args, fmt.Errorf("invalid query parameter: %w", err)
	}

	if len(query) > 0 {
		args.Request[lcmap.KeyQueryParams] = query
	}

	form, err := utils.ParseKeyValuePairs(params.Form)
	if err != nil {
		return args, fmt.Errorf("invalid form field: %w", err)
	}

	if len(form) > 0 {
		args.Request[lcmap.KeyFormParams] = form
	}

	if params.Data == "" {
		return args, nil
	}

	data, err := a.readData(params.Data)
	if err != nil {
		return args, err
	}

	if !params.JSON {
		args.Request[lcmap.KeyBody] = data
		return args, nil
	}

	var body any
	if err = json.Unmarshal(data, &body); err != nil {
		return args, fmt.Errorf("%w: request data: %w", lcmap.ErrMalformedJSON, err)
	}

	args.Request[lcmap.KeyJSONBody] = body

	return args, nil
}

// readData resolves a data argument into bytes.
func (a *App) readData(data string) ([]byte, error) {
	switch {
	case data == stdinMarker:
		content, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}

		return content, nil
	case strings.HasPrefix(data, fileMarker):
		filename := filepath.Clean(strings.TrimPrefix(data, fileMarker))

		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read request data: %w", err)
		}

		return content, nil
	default:
		return []byte(data), nil
	}
}

// download streams the response body of the request into params.Output.
func (a *App) download(ctx context.Context, verb lcmap.Verb, params RequestParams, args lcmap.Args) error {
	args.Options.Return = lcmap.Ptr(lcmap.ReturnRaw)
	args.Extra = lcmap.Values{lcmap.KeyAs: lcmap.AsStream}

	response, err := a.client.Call(ctx, verb, params.Path, args)
	if err != nil {
		return err
	}

	if envelope, ok := response.(*lcmap.Envelope); ok {
		return fmt.Errorf("%w: HTTP %d: %s", ErrDownloadFailed, envelope.Status, strings.Join(envelope.Errors, "; "))
	}

	raw, ok := response.(*lcmap.RawResponse)
	if !ok || raw.Stream == nil {
		return ErrNotStreamed
	}

	defer raw.Stream.Close() //nolint:errcheck // Error on close is not critical here.

	if raw.Status >= http.StatusBadRequest {
		text, _ := raw.Text()

		return fmt.Errorf("%w: HTTP %d: %s", ErrDownloadFailed, raw.Status, strings.TrimSpace(text))
	}

	written, err := a.saveStream(ctx, raw, params.Output)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Saved %s (HTTP %d) to '%s'", humanize.Bytes(utils.SafeInt64ToUint64(written)), raw.Status, params.Output)

	return nil
}

// saveStream writes the stream into a ".part" file and renames it to filename once complete.
func (a *App) saveStream(ctx context.Context, raw *lcmap.RawResponse, filename string) (int64, error) {
	filename = filepath.Clean(filename)

	if err := os.MkdirAll(filepath.Dir(filename), constants.DefaultFolderPermissions); err != nil {
		return 0, fmt.Errorf("failed to create output folder: %w", err)
	}

	tempFilename := filename + partSuffix

	f, err := os.OpenFile(tempFilename, overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var downloadSucceeded bool

	defer func() {
		closeErr := f.Close()

		if downloadSucceeded {
			return
		}

		if removeErr := os.Remove(tempFilename); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
				tempFilename, removeErr, closeErr)
		}
	}()

	var writer io.Writer = f

	if a.showProgress && logger.Level() <= zap.InfoLevel {
		writer = io.MultiWriter(f, progressbar.DefaultBytes(raw.ContentLength, "Downloading"))
	}

	written, err := io.Copy(writer, raw.Stream)
	if err != nil {
		return written, fmt.Errorf("failed to write file: %w", err)
	}

	if raw.ContentLength >= 0 && written != raw.ContentLength {
		return written, fmt.Errorf("%w: wrote %d bytes, expected %d bytes", ErrIncompleteDownload, written, raw.ContentLength)
	}

	if err = f.Close(); err != nil {
		return written, fmt.Errorf("failed to close file: %w", err)
	}

	if err = os.Rename(tempFilename, filename); err != nil {
		return written, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	downloadSucceeded = true

	return written, nil
}
