package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"
)

// defaultAccount is the keyring account used when no username is configured.
const defaultAccount = "default"

// Static error definitions for better error handling.
var (
	// ErrTokenNotFound indicates that no token is stored for the account.
	ErrTokenNotFound = errors.New("token not found")
)

// TokenStore persists session tokens per account.
type TokenStore interface {
	// Load returns the token of account, or ErrTokenNotFound.
	Load(account string) (string, error)
	// Save stores the token of account.
	Save(account, token string) error
	// Delete removes the token of account. Deleting a missing token is not an error.
	Delete(account string) error
}

// KeyringStore keeps tokens in the system keyring.
// Supported platforms are macOS Keychain, the Linux Secret Service and the Windows Credential Manager.
type KeyringStore struct {
	// service is the keyring service name entries are stored under.
	service string
}

// NewKeyringStore creates a store writing entries under service.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Load returns the token of account.
func (s *KeyringStore) Load(account string) (string, error) {
	token, err := keyring.Get(s.service, accountName(account))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrTokenNotFound, accountName(account))
		}

		return "", fmt.Errorf("keyring error: %w", err)
	}

	return token, nil
}

// Save stores the token of account.
func (s *KeyringStore) Save(account, token string) error {
	if err := keyring.Set(s.service, accountName(account), token); err != nil {
		return fmt.Errorf("keyring error: %w", err)
	}

	return nil
}

// Delete removes the token of account.
func (s *KeyringStore) Delete(account string) error {
	if err := keyring.Delete(s.service, accountName(account)); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring error: %w", err)
	}

	return nil
}

// MemoryStore keeps tokens in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]string)}
}

// Load returns the token of account.
func (s *MemoryStore) Load(account string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[accountName(account)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTokenNotFound, accountName(account))
	}

	return token, nil
}

// Save stores the token of account.
func (s *MemoryStore) Save(account, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[accountName(account)] = token

	return nil
}

// Delete removes the token of account.
func (s *MemoryStore) Delete(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, accountName(account))

	return nil
}

func accountName(account string) string {
	if account == "" {
		return defaultAccount
	}

	return account
}
