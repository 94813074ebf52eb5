package http

import (
	"net/http"
	"time"

	"github.com/oshokin/lcmap-client/internal/utils"
)

// ClientOptions configures NewClient.
type ClientOptions struct {
	// Base is the innermost round tripper. Nil means a clone of http.DefaultTransport.
	Base http.RoundTripper
	// UserAgentProvider supplies the User-Agent header for requests that lack one.
	UserAgentProvider utils.UserAgentProvider
	// Metrics receives request observations. Nil disables metrics.
	Metrics *Metrics
	// Timeout is the overall request timeout. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxLogLength limits logged dumps. Zero means the configured default.
	MaxLogLength uint64
}

// NewClient assembles the transport chain (metrics, header injection, logging) into an *http.Client.
func NewClient(opts ClientOptions) *http.Client {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // DefaultTransport is always *http.Transport.
	}

	userAgentProvider := opts.UserAgentProvider
	if userAgentProvider == nil {
		userAgentProvider = utils.NewSimpleUserAgentProvider("")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := NewMetricsTransport(
		NewHeaderInjector(
			NewLogTransport(base, opts.MaxLogLength),
			userAgentProvider),
		opts.Metrics)

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

type idleConnectionsCloser interface {
	CloseIdleConnections()
}

// closeIdleConnections forwards CloseIdleConnections to rt when it supports it,
// so http.Client.CloseIdleConnections reaches the pooled base transport through the chain.
func closeIdleConnections(rt http.RoundTripper) {
	if closer, ok := rt.(idleConnectionsCloser); ok {
		closer.CloseIdleConnections()
	}
}
