package lcmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Response body fields.
const (
	fieldBody   = "body"
	fieldResult = "result"
	fieldErrors = "errors"
	fieldLink   = "link"
	fieldHref   = "href"
)

// Normalize extracts the part of raw selected by mode.
// Raw mode returns raw unchanged. The other modes decode the body as JSON and return
// its "body", "body.result" or "body.errors" field; an empty body yields nil.
func Normalize(raw *RawResponse, mode ReturnMode) (any, error) {
	switch mode {
	case ReturnRaw:
		return raw, nil
	case ReturnBody, ReturnResult, ReturnErrors:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnhandledReturnMode, string(mode))
	}

	if raw == nil {
		return nil, ErrNilResponse
	}

	text, err := raw.Text()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var parsed any
	if err = json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	body := field(parsed, fieldBody)

	switch mode {
	case ReturnResult:
		return field(body, fieldResult), nil
	case ReturnErrors:
		return field(body, fieldErrors), nil
	default:
		return body, nil
	}
}

// DecodeResult converts a normalized value into T.
func DecodeResult[T any](v any) (*T, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	result := new(T)
	if err = json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	return result, nil
}

func field(v any, key string) any {
	switch m := v.(type) {
	case map[string]any:
		return m[key]
	case Values:
		return m[key]
	default:
		return nil
	}
}
