package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/oshokin/lcmap-client/internal/utils"
)

// HeaderInjector is a custom http.RoundTripper that fills in the User-Agent and X-Request-Id headers.
// Headers already present on the request are left untouched.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
	// newRequestID generates request identifiers.
	newRequestID func() string
}

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
// It takes an underlying http.RoundTripper and a UserAgentProvider to supply the User-Agent string.
func NewHeaderInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &HeaderInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
		newRequestID:      uuid.NewString,
	}
}

// RoundTrip executes a single HTTP transaction with the missing headers injected.
// It implements the http.RoundTripper interface.
// The request is cloned before modification, as RoundTrippers must not mutate their input.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	needsUserAgent := req.Header.Get(UserAgentHeader) == ""
	needsRequestID := req.Header.Get(RequestIDHeader) == ""

	if !needsUserAgent && !needsRequestID {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())

	if needsUserAgent {
		req.Header.Set(UserAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	if needsRequestID {
		req.Header.Set(RequestIDHeader, t.newRequestID())
	}

	return t.next.RoundTrip(req)
}

// CloseIdleConnections closes idle connections of the wrapped transport.
func (t *HeaderInjector) CloseIdleConnections() {
	closeIdleConnections(t.next)
}
