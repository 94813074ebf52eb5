package lcmap

import (
	"fmt"
	"io"
	"net/http"
)

// RawResponse is the transport-level response of a request.
type RawResponse struct {
	// Status is the HTTP status code.
	Status int `json:"status"`
	// Headers are the response headers.
	Headers http.Header `json:"headers,omitempty"`
	// Body is the response body. It is empty when Stream is set.
	Body string `json:"body"`
	// Stream is the unread response body of a request sent with "as": "stream".
	// The caller owns it and must close it.
	Stream io.ReadCloser `json:"-"`
	// ContentLength is the declared body size, or -1 when unknown.
	ContentLength int64 `json:"content-length"`
}

// Text returns the body, reading and closing Stream when the body was not buffered.
func (r *RawResponse) Text() (string, error) {
	if r.Stream == nil {
		return r.Body, nil
	}

	defer r.Stream.Close() //nolint:errcheck // Read-only stream, close error is not actionable.

	data, err := io.ReadAll(r.Stream)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	r.Body = string(data)
	r.Stream = nil

	return r.Body, nil
}

// Args bundles everything a caller can pass to a request.
type Args struct {
	// Options are the client-level options merged over the defaults.
	Options RequestOptions `json:"lcmap-opts"`
	// TransportOptions are passed through to the transport, lowest precedence.
	TransportOptions Values `json:"http-opts,omitempty"`
	// Request holds request fields such as query-params or json-body.
	Request Values `json:"request,omitempty"`
	// Headers override the base headers.
	Headers Headers `json:"headers,omitempty"`
	// Client supplies the credential and connection managers.
	Client *Context `json:"-"`
	// Extra holds any other request fields, merged after Request.
	Extra Values `json:"extra,omitempty"`
}

// Envelope is the uniform shape of a recovered failure.
type Envelope struct {
	// Status is the HTTP status of the failure.
	Status int `json:"status"`
	// Result is always nil for a recovered failure.
	Result any `json:"result"`
	// Errors lists human-readable messages in order.
	Errors []string `json:"errors"`
	// Headers are the response headers of the failure.
	Headers http.Header `json:"headers,omitempty"`
	// Args are the arguments the failed request was made with.
	Args Args `json:"args"`
}

// HasErrors reports whether the envelope carries any error message.
func (e *Envelope) HasErrors() bool {
	return e != nil && len(e.Errors) > 0
}

// Tagged is a dispatched response tagged with the return mode it should be normalized with.
type Tagged struct {
	// Result is the raw transport response. Nil when the failure was recovered.
	Result *RawResponse
	// Recovered is the envelope of a recovered failure.
	Recovered *Envelope
	// Return is the requested return mode.
	Return ReturnMode
}

// PreparedRequest is a request ready to be handed to a Transport.
type PreparedRequest struct {
	// Verb is the HTTP call to make.
	Verb Verb
	// URL is the endpoint joined with the path.
	URL string
	// Request is the fully merged transport request.
	Request Values
	// Return is the requested return mode.
	Return ReturnMode
}
