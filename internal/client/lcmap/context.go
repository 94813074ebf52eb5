package lcmap

//go:generate $MOCKGEN -source=context.go -destination=mocks/context_mock.go

import (
	"net/http"
)

// CredentialManager supplies the authentication token of a session.
type CredentialManager interface {
	// Token returns the current token, or "" when not logged in.
	Token() string
}

// ConnectionManager supplies pooled HTTP clients.
type ConnectionManager interface {
	// Pool returns the client to use for endpoint, or nil to use the transport's own.
	Pool(endpoint string) *http.Client
}

// Context bundles the caller-owned credential and connection managers.
// A nil Context, or a nil member, behaves as empty.
type Context struct {
	// CredMgr supplies the token; it takes precedence over RequestOptions.Token.
	CredMgr CredentialManager
	// ConnMgr supplies the connection pool.
	ConnMgr ConnectionManager
}

func (c *Context) token() string {
	if c == nil || c.CredMgr == nil {
		return ""
	}

	return c.CredMgr.Token()
}

func (c *Context) pool(endpoint string) *http.Client {
	if c == nil || c.ConnMgr == nil {
		return nil
	}

	return c.ConnMgr.Pool(endpoint)
}
