package lcmap

//go:generate $MOCKGEN -source=transport.go -destination=mocks/transport_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/oshokin/lcmap-client/internal/logger"
)

// Transport performs a single HTTP call.
type Transport interface {
	// Do sends request to url with the method of verb.
	// Failures carrying a response status are reported as *StatusError.
	Do(ctx context.Context, verb Verb, url string, request Values) (*RawResponse, error)
}

// Request fields understood by HTTPTransport.
const (
	// KeyHeaders holds request headers.
	KeyHeaders = "headers"
	// KeyQueryParams holds URL query parameters.
	KeyQueryParams = "query-params"
	// KeyFormParams holds form fields sent URL-encoded.
	KeyFormParams = "form-params"
	// KeyBody holds a raw body: string, []byte or io.Reader.
	KeyBody = "body"
	// KeyJSONBody holds a value sent JSON-encoded.
	KeyJSONBody = "json-body"
	// KeyAs set to "stream" leaves the response body unread in RawResponse.Stream.
	KeyAs = "as"
	// KeyDebug enables per-request logging.
	KeyDebug = "debug"
	// KeyCoerce controls body decoding; bodies are always returned as text.
	KeyCoerce = "coerce"
	// KeyThrowExceptions makes statuses >= 400 fail with *StatusError.
	KeyThrowExceptions = "throw-exceptions"
	// KeyConnectionManager holds the *http.Client to send the request with.
	KeyConnectionManager = "connection-manager"
)

// AsStream is the KeyAs value that keeps the body unread.
const AsStream = "stream"

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeForm   = "application/x-www-form-urlencoded"
)

var knownRequestKeys = map[string]struct{}{
	KeyHeaders:           {},
	KeyQueryParams:       {},
	KeyFormParams:        {},
	KeyBody:              {},
	KeyJSONBody:          {},
	KeyAs:                {},
	KeyDebug:             {},
	KeyCoerce:            {},
	KeyThrowExceptions:   {},
	KeyConnectionManager: {},
}

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	// client is used when the request has no connection-manager.
	client *http.Client
}

// NewHTTPTransport creates a transport sending requests through client.
// A nil client means http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPTransport{client: client}
}

// Do sends request to rawURL.
func (t *HTTPTransport) Do(ctx context.Context, verb Verb, rawURL string, request Values) (*RawResponse, error) {
	method, err := verb.Method()
	if err != nil {
		return nil, err
	}

	logUnknownKeys(ctx, request)

	req, err := buildHTTPRequest(ctx, method, rawURL, request)
	if err != nil {
		return nil, err
	}

	debug, _ := request[KeyDebug].(bool)
	if debug {
		logger.Debugf(ctx, "Sending %s %s", method, req.URL.Redacted())
	}

	resp, err := t.clientFor(request).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s request to %s: %w", method, req.URL.Redacted(), err)
	}

	throw, _ := request[KeyThrowExceptions].(bool)
	failed := throw && resp.StatusCode >= http.StatusBadRequest

	raw := &RawResponse{
		Status:        resp.StatusCode,
		Headers:       resp.Header,
		ContentLength: resp.ContentLength,
	}

	if as, _ := request[KeyAs].(string); as == AsStream && !failed {
		raw.Stream = resp.Body
	} else {
		defer resp.Body.Close() //nolint:errcheck // Body is fully read, close error is not actionable.

		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}

		raw.Body = string(data)
	}

	if debug {
		logger.Debugf(ctx, "Received %s %s: %d (%d bytes)", method, req.URL.Redacted(), resp.StatusCode, len(raw.Body))
	}

	if failed {
		return nil, &StatusError{
			Status:  resp.StatusCode,
			Headers: resp.Header,
			Body:    raw.Body,
			Message: fmt.Sprintf("%s %s", method, req.URL.Redacted()),
		}
	}

	return raw, nil
}

func (t *HTTPTransport) clientFor(request Values) *http.Client {
	if client, ok := request[KeyConnectionManager].(*http.Client); ok && client != nil {
		return client
	}

	return t.client
}

func buildHTTPRequest(ctx context.Context, method, rawURL string, request Values) (*http.Request, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}

	if params, ok := asValues(request[KeyQueryParams]); ok {
		query := target.Query()
		addParams(query, params)
		target.RawQuery = query.Encode()
	}

	body, contentType, err := requestBody(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}

	if headers, ok := asValues(request[KeyHeaders]); ok {
		for name, value := range lowerHeaderNames(headers) {
			text := fmt.Sprint(value)
			if value == nil || text == "" {
				continue
			}

			req.Header.Set(name, text)
		}
	}

	if contentType != "" && req.Header.Get(contentTypeHeader) == "" {
		req.Header.Set(contentTypeHeader, contentType)
	}

	return req, nil
}

func requestBody(request Values) (io.Reader, string, error) {
	var (
		body        io.Reader
		contentType string
		count       int
	)

	if value, ok := request[KeyBody]; ok && value != nil {
		count++

		switch b := value.(type) {
		case string:
			body = strings.NewReader(b)
		case []byte:
			body = bytes.NewReader(b)
		case io.Reader:
			body = b
		default:
			return nil, "", fmt.Errorf("%w: %s has type %T", ErrInvalidRequestField, KeyBody, value)
		}
	}

	if value, ok := request[KeyJSONBody]; ok && value != nil {
		count++

		data, err := json.Marshal(value)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %w", ErrInvalidRequestField, KeyJSONBody, err)
		}

		body = bytes.NewReader(data)
		contentType = contentTypeJSON
	}

	if params, ok := asValues(request[KeyFormParams]); ok {
		count++

		form := make(url.Values, len(params))
		addParams(form, params)

		body = strings.NewReader(form.Encode())
		contentType = contentTypeForm
	}

	if count > 1 {
		return nil, "", ErrConflictingBody
	}

	return body, contentType, nil
}

func addParams(target url.Values, params Values) {
	for key, value := range params {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				target.Add(key, item)
			}
		case []any:
			for _, item := range v {
				target.Add(key, fmt.Sprint(item))
			}
		default:
			target.Set(key, fmt.Sprint(v))
		}
	}
}

func logUnknownKeys(ctx context.Context, request Values) {
	if !logger.IsDebugLevel() {
		return
	}

	var unknown []string

	for key := range request {
		if _, ok := knownRequestKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return
	}

	sort.Strings(unknown)
	logger.Debugf(ctx, "Ignoring unknown request fields: %s", strings.Join(unknown, ", "))
}
