package pool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/lcmap-client/internal/logger"
)

// ClientFactory builds the client used for an endpoint.
type ClientFactory func(endpoint string) *http.Client

// Manager implements lcmap.ConnectionManager with a bounded set of per-endpoint clients.
type Manager struct {
	// mu makes lookup and creation of a client atomic.
	mu sync.Mutex
	// clients holds the client of each recently used endpoint.
	clients *lru.Cache[string, *http.Client]
	// newClient builds a client for an endpoint seen for the first time.
	newClient ClientFactory
}

// Static error definitions for better error handling.
var (
	// ErrNilFactory indicates that no client factory was given.
	ErrNilFactory = errors.New("client factory cannot be nil")
)

// NewManager creates a manager keeping at most size clients.
func NewManager(size int, factory ClientFactory) (*Manager, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	clients, err := lru.NewWithEvict(size, closeEvicted)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool cache: %w", err)
	}

	return &Manager{
		clients:   clients,
		newClient: factory,
	}, nil
}

// Pool returns the client of endpoint, creating it on first use.
// Endpoints differing only in trailing slashes share a client.
func (m *Manager) Pool(endpoint string) *http.Client {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")

	m.mu.Lock()
	defer m.mu.Unlock()

	if client, ok := m.clients.Get(endpoint); ok {
		return client
	}

	client := m.newClient(endpoint)
	m.clients.Add(endpoint, client)

	return client
}

// Len returns the number of pooled clients.
func (m *Manager) Len() int {
	return m.clients.Len()
}

// Close drops every client and closes its idle connections.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients.Purge()
}

func closeEvicted(endpoint string, client *http.Client) {
	if client == nil {
		return
	}

	logger.Debugf(context.Background(), "Closing idle connections of %s", endpoint)

	client.CloseIdleConnections()
}
