// Package pool keeps one pooled HTTP client per API endpoint.
// Clients live in a bounded LRU; an evicted client has its idle connections closed.
package pool
