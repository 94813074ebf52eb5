package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// UserAgentHeader is the HTTP header name for User-Agent.
	UserAgentHeader = "User-Agent"

	// RequestIDHeader is the HTTP header carrying the per-request correlation identifier.
	RequestIDHeader = "X-Request-Id"

	// AuthTokenHeader is the HTTP header carrying the LCMAP authentication token.
	AuthTokenHeader = "X-Authtoken"

	// redactedValue replaces secrets in logged request dumps.
	redactedValue = "[redacted]"
)
