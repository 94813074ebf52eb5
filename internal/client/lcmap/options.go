package lcmap

import (
	"fmt"
	"strings"

	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/constants"
)

// ReturnMode selects which part of a response is handed back to the caller.
type ReturnMode string

const (
	// ReturnRaw returns the raw transport response unchanged.
	ReturnRaw ReturnMode = "raw"
	// ReturnBody returns the "body" field of the decoded response.
	ReturnBody ReturnMode = "body"
	// ReturnResult returns the "body.result" field of the decoded response.
	ReturnResult ReturnMode = "result"
	// ReturnErrors returns the "body.errors" field of the decoded response.
	ReturnErrors ReturnMode = "errors"
)

// ReturnModes lists every supported return mode.
func ReturnModes() []ReturnMode {
	return []ReturnMode{ReturnRaw, ReturnBody, ReturnResult, ReturnErrors}
}

// IsValid reports whether m is a supported return mode.
func (m ReturnMode) IsValid() bool {
	switch m {
	case ReturnRaw, ReturnBody, ReturnResult, ReturnErrors:
		return true
	default:
		return false
	}
}

// ParseReturnMode converts a case-insensitive name into a ReturnMode.
func ParseReturnMode(s string) (ReturnMode, error) {
	mode := ReturnMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnhandledReturnMode, s)
	}

	return mode, nil
}

// RequestOptions holds the client-level options of a request.
// A nil field is "not set": it never overrides a value when options are merged.
type RequestOptions struct {
	// Endpoint is the base URL the request path is appended to.
	Endpoint *string `json:"endpoint,omitempty"`
	// Version is the API version requested through the Accept header.
	Version *string `json:"version,omitempty"`
	// ContentType is the content type requested through the Accept header.
	ContentType *string `json:"content-type,omitempty"`
	// Return selects the part of the response handed back to the caller.
	Return *ReturnMode `json:"return,omitempty"`
	// Debug enables request logging in the transport.
	Debug *bool `json:"debug,omitempty"`
	// Token is sent in the X-AuthToken header when no credential manager provides one.
	Token *string `json:"token,omitempty"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// DefaultOptions returns the options every request starts from.
func DefaultOptions(cfg *config.Config) RequestOptions {
	opts := RequestOptions{
		Endpoint:    Ptr(constants.DefaultEndpoint),
		Version:     Ptr(constants.ServerVersion),
		ContentType: Ptr(constants.DefaultContentType),
		Return:      Ptr(ReturnBody),
		Debug:       Ptr(false),
	}

	if cfg == nil {
		return opts
	}

	if cfg.Endpoint != "" {
		opts.Endpoint = Ptr(cfg.Endpoint)
	}

	if cfg.Version != "" {
		opts.Version = Ptr(cfg.Version)
	}

	if cfg.ContentType != "" {
		opts.ContentType = Ptr(cfg.ContentType)
	}

	if cfg.AuthToken != "" {
		opts.Token = Ptr(cfg.AuthToken)
	}

	return opts
}

// Merge returns a copy of o with every set field of overrides applied on top.
func (o RequestOptions) Merge(overrides RequestOptions) RequestOptions {
	merged := o

	if overrides.Endpoint != nil {
		merged.Endpoint = overrides.Endpoint
	}

	if overrides.Version != nil {
		merged.Version = overrides.Version
	}

	if overrides.ContentType != nil {
		merged.ContentType = overrides.ContentType
	}

	if overrides.Return != nil {
		merged.Return = overrides.Return
	}

	if overrides.Debug != nil {
		merged.Debug = overrides.Debug
	}

	if overrides.Token != nil {
		merged.Token = overrides.Token
	}

	return merged
}

// Values returns the set fields keyed by their option names. Unset fields are absent.
func (o RequestOptions) Values() Values {
	values := make(Values)

	if o.Endpoint != nil {
		values["endpoint"] = *o.Endpoint
	}

	if o.Version != nil {
		values["version"] = *o.Version
	}

	if o.ContentType != nil {
		values["content-type"] = *o.ContentType
	}

	if o.Return != nil {
		values["return"] = string(*o.Return)
	}

	if o.Debug != nil {
		values["debug"] = *o.Debug
	}

	if o.Token != nil {
		values["token"] = *o.Token
	}

	return values
}

// EndpointValue returns the endpoint without a trailing slash, or "" when unset.
func (o RequestOptions) EndpointValue() string {
	return strings.TrimRight(deref(o.Endpoint), "/")
}

// ReturnValue returns the return mode, or ReturnBody when unset.
func (o RequestOptions) ReturnValue() ReturnMode {
	if o.Return == nil {
		return ReturnBody
	}

	return *o.Return
}

// DebugValue returns the debug flag, or false when unset.
func (o RequestOptions) DebugValue() bool {
	return deref(o.Debug)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
