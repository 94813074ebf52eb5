package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	// FormatJSON renders indented JSON.
	FormatJSON = "json"
	// FormatYAML renders YAML.
	FormatYAML = "yaml"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownFormat indicates that the output format is not supported.
	ErrUnknownFormat = errors.New("unknown output format")
)

// OutputParams controls how command results are printed.
type OutputParams struct {
	// Format is FormatJSON or FormatYAML. Empty means FormatJSON.
	Format string
	// JQ is a jq expression applied to the result before printing.
	JQ string
}

// validateOutput checks the format and the jq expression before any request is sent.
func (a *App) validateOutput(params OutputParams) error {
	switch strings.ToLower(params.Format) {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownFormat, params.Format)
	}

	if params.JQ == "" {
		return nil
	}

	return a.executor.Validate(params.JQ)
}

// print filters value through the jq expression and writes it to stdout.
func (a *App) print(ctx context.Context, value any, params OutputParams) error {
	filtered, err := a.executor.Execute(ctx, params.JQ, value)
	if err != nil {
		return err
	}

	return render(a.stdout, filtered, params.Format)
}

// render writes value to w in format.
func render(w io.Writer, value any, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case FormatYAML:
		plain, err := toPlain(value)
		if err != nil {
			return err
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err = encoder.Encode(plain); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
	}
}

// toPlain converts value into maps, slices and scalars following its JSON field names.
func toPlain(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}

	var plain any
	if err = json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}

	return plain, nil
}
