package lcmap

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"

	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/constants"
	"github.com/oshokin/lcmap-client/internal/logger"
	http_transport "github.com/oshokin/lcmap-client/internal/transport/http"
	"github.com/oshokin/lcmap-client/internal/utils"
	"github.com/oshokin/lcmap-client/internal/version"
)

// Client defines the interface for calling the LCMAP REST API.
type Client interface {
	// UpdateOptions merges overrides over the default request options.
	UpdateOptions(overrides RequestOptions) RequestOptions
	// BaseHeaders returns the user agent, Accept and X-AuthToken headers.
	BaseHeaders(version, contentType, token string) Headers
	// Dispatch sends a request and returns the response tagged with its return mode.
	Dispatch(ctx context.Context, verb Verb, path string, args Args) (*Tagged, error)
	// Call sends a request and returns the normalized response.
	Call(ctx context.Context, verb Verb, path string, args Args) (any, error)
	// Get sends a GET request.
	Get(ctx context.Context, path string, args Args) (any, error)
	// Head sends a HEAD request.
	Head(ctx context.Context, path string, args Args) (any, error)
	// Post sends a POST request.
	Post(ctx context.Context, path string, args Args) (any, error)
	// Put sends a PUT request.
	Put(ctx context.Context, path string, args Args) (any, error)
	// Delete sends a DELETE request.
	Delete(ctx context.Context, path string, args Args) (any, error)
	// Options sends an OPTIONS request.
	Options(ctx context.Context, path string, args Args) (any, error)
	// Copy sends a COPY request.
	Copy(ctx context.Context, path string, args Args) (any, error)
	// Move sends a MOVE request.
	Move(ctx context.Context, path string, args Args) (any, error)
	// Patch sends a PATCH request.
	Patch(ctx context.Context, path string, args Args) (any, error)
	// FollowLink sends a GET to the result.link.href of result.
	FollowLink(ctx context.Context, lctx *Context, result any, opts RequestOptions) (any, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// defaults are the options every request starts from.
	defaults RequestOptions
	// transport performs the HTTP calls.
	transport Transport
	// userAgentProvider supplies the client agent string.
	userAgentProvider utils.UserAgentProvider
	// noResourceStatus is the status recovered into a "Resource not found" envelope.
	noResourceStatus int
}

// Forced request field values.
const (
	// CoerceAlways makes the transport decode bodies regardless of status.
	CoerceAlways = "always"
)

// NewClient creates a new LCMAP API client.
// A nil transport means an HTTPTransport over the logging, header injecting client of the configuration.
func NewClient(cfg *config.Config, transport Transport) Client {
	userAgentProvider := utils.NewClientAgentProvider(constants.ProductName, version.Short())

	if transport == nil {
		opts := http_transport.ClientOptions{
			UserAgentProvider: userAgentProvider,
		}

		if cfg != nil {
			opts.Timeout = cfg.ParsedTimeout
			opts.MaxLogLength = cfg.ParsedMaxLogLength
		}

		transport = NewHTTPTransport(http_transport.NewClient(opts))
	}

	noResourceStatus := constants.NoResourceStatus
	if cfg != nil && cfg.NoResourceStatus != 0 {
		noResourceStatus = cfg.NoResourceStatus
	}

	return &ClientImpl{
		cfg:               cfg,
		defaults:          DefaultOptions(cfg),
		transport:         transport,
		userAgentProvider: userAgentProvider,
		noResourceStatus:  noResourceStatus,
	}
}

// UpdateOptions merges the set fields of overrides over the default request options.
func (c *ClientImpl) UpdateOptions(overrides RequestOptions) RequestOptions {
	merged := c.defaults.Merge(overrides)

	logger.Debugf(context.Background(), "Merged request options: %v", redactToken(merged.Values()))

	return merged
}

// Prepare merges options, headers and request fields into the request handed to the transport.
// The debug, coerce, throw-exceptions and connection-manager fields are always applied last.
func (c *ClientImpl) Prepare(verb Verb, path string, args Args) (*PreparedRequest, error) {
	if _, err := verb.Method(); err != nil {
		return nil, err
	}

	opts := c.UpdateOptions(args.Options)

	mode := opts.ReturnValue()
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnhandledReturnMode, string(mode))
	}

	token := args.Client.token()
	if token == "" {
		token = deref(opts.Token)
	}

	endpoint := opts.EndpointValue()
	pool := args.Client.pool(endpoint)

	headers := DeepMerge(
		c.BaseHeaders(deref(opts.Version), deref(opts.ContentType), token).Values(),
		args.Headers.Values(),
	)

	transportOpts := args.TransportOptions
	if transportHeaders, ok := asValues(transportOpts[KeyHeaders]); ok {
		transportOpts = DeepMerge(transportOpts)
		transportOpts[KeyHeaders] = lowerHeaderNames(transportHeaders)
	}

	request, err := CombineHTTPOptions(
		transportOpts,
		Values{KeyHeaders: headers},
		DeepMerge(args.Request, args.Extra),
		KeyDebug, opts.DebugValue(),
		KeyCoerce, CoerceAlways,
		KeyThrowExceptions, false,
		KeyConnectionManager, pool,
	)
	if err != nil {
		return nil, err
	}

	return &PreparedRequest{
		Verb:    verb,
		URL:     endpoint + path,
		Request: request,
		Return:  mode,
	}, nil
}

// Dispatch sends a request and tags the raw response with the requested return mode.
// A failure carrying the no-resource status is recovered into Tagged.Recovered.
func (c *ClientImpl) Dispatch(ctx context.Context, verb Verb, path string, args Args) (*Tagged, error) {
	prepared, err := c.Prepare(verb, path, args)
	if err != nil {
		return nil, err
	}

	raw, err := c.transport.Do(ctx, prepared.Verb, prepared.URL, prepared.Request)
	if err != nil {
		envelope, translateErr := c.translateError(ctx, prepared, args, err)
		if translateErr != nil {
			return nil, translateErr
		}

		return &Tagged{Recovered: envelope, Return: prepared.Return}, nil
	}

	if raw == nil {
		return nil, ErrNilResponse
	}

	return &Tagged{Result: raw, Return: prepared.Return}, nil
}

// Call sends a request and returns the normalized response, or the envelope of a recovered failure.
func (c *ClientImpl) Call(ctx context.Context, verb Verb, path string, args Args) (any, error) {
	tagged, err := c.Dispatch(ctx, verb, path, args)
	if err != nil {
		return nil, err
	}

	if tagged.Recovered != nil {
		return tagged.Recovered, nil
	}

	return Normalize(tagged.Result, tagged.Return)
}

// Get sends a GET request.
func (c *ClientImpl) Get(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbGet, path, args)
}

// Head sends a HEAD request.
func (c *ClientImpl) Head(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbHead, path, args)
}

// Post sends a POST request.
func (c *ClientImpl) Post(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbPost, path, args)
}

// Put sends a PUT request.
func (c *ClientImpl) Put(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbPut, path, args)
}

// Delete sends a DELETE request.
func (c *ClientImpl) Delete(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbDelete, path, args)
}

// Options sends an OPTIONS request.
func (c *ClientImpl) Options(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbOptions, path, args)
}

// Copy sends a COPY request.
func (c *ClientImpl) Copy(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbCopy, path, args)
}

// Move sends a MOVE request.
func (c *ClientImpl) Move(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbMove, path, args)
}

// Patch sends a PATCH request.
func (c *ClientImpl) Patch(ctx context.Context, path string, args Args) (any, error) {
	return c.Call(ctx, VerbPatch, path, args)
}

func (c *ClientImpl) translateError(ctx context.Context, prepared *PreparedRequest, args Args, err error) (*Envelope, error) {
	statusErr, ok := AsStatusError(err)
	if !ok || statusErr.Status != c.noResourceStatus {
		return nil, fmt.Errorf("%s %s failed: %w", prepared.Verb, prepared.URL, err)
	}

	logger.Errorf(ctx, "%s %s: %v", prepared.Verb, prepared.URL, err)

	return &Envelope{
		Status:  statusErr.Status,
		Result:  nil,
		Errors:  []string{constants.ResourceNotFoundMessage},
		Headers: statusErr.Headers,
		Args:    args,
	}, nil
}

func (c *ClientImpl) cfgVersion() string {
	if c.cfg == nil {
		return ""
	}

	return c.cfg.Version
}

func (c *ClientImpl) cfgContentType() string {
	if c.cfg == nil {
		return ""
	}

	return c.cfg.ContentType
}

func redactToken(values Values) Values {
	if token, ok := values["token"].(string); ok && token != "" {
		values["token"] = "[REDACTED]"
	}

	return values
}
