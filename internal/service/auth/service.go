package auth

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/logger"
	"github.com/oshokin/lcmap-client/internal/utils"
)

const (
	// loginPath is the API path that exchanges credentials for a token.
	loginPath = "/api/auth/login"
	// logoutPath is the API path that invalidates a token.
	logoutPath = "/api/auth/logout"
	// tokenField is the result field holding the token.
	tokenField = "token"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyCredentials indicates that the username or password is missing.
	ErrEmptyCredentials = errors.New("username and password cannot be empty")
	// ErrLoginFailed indicates that the API rejected the credentials.
	ErrLoginFailed = errors.New("login failed")
	// ErrNoTokenInResponse indicates that a successful login returned no token.
	ErrNoTokenInResponse = errors.New("login response has no token")
	// ErrNotLoggedIn indicates that there is no token to log out with.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Service manages the API session token.
type Service interface {
	// Token returns the current token, or "" when not logged in.
	Token() string
	// Login exchanges username and password for a token and keeps it.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout invalidates the current token and forgets it.
	Logout(ctx context.Context) error
}

// ServiceImpl implements Service and lcmap.CredentialManager.
type ServiceImpl struct {
	// client sends the login and logout requests.
	client lcmap.Client
	// store persists the token between runs. Nil disables persistence.
	store TokenStore
	// account is the store key of the token.
	account string

	mu    sync.RWMutex
	token string
}

// NewService creates the credential manager.
// The initial token is the stored one for the configured username, else the configured auth token.
func NewService(ctx context.Context, cfg *config.Config, client lcmap.Client, store TokenStore) *ServiceImpl {
	service := &ServiceImpl{
		client: client,
		store:  store,
	}

	if cfg != nil {
		service.account = cfg.Username
		service.token = cfg.AuthToken
	}

	if store == nil {
		return service
	}

	token, err := store.Load(service.account)

	switch {
	case err == nil:
		service.token = token
	case errors.Is(err, ErrTokenNotFound):
	default:
		logger.Warnf(ctx, "Failed to load stored token: %v", err)
	}

	return service
}

// Token returns the current token.
func (s *ServiceImpl) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Login posts the credentials as form fields and keeps the returned token.
func (s *ServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	response, err := s.client.Post(ctx, loginPath, lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnBody)},
		Request: lcmap.Values{
			lcmap.KeyFormParams: lcmap.Values{
				"username": username,
				"password": password,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	token, err := extractToken(response)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.account = username
	s.token = token
	s.mu.Unlock()

	if s.store != nil {
		if err = s.store.Save(username, token); err != nil {
			logger.Warnf(ctx, "Failed to store token: %v", err)
		}
	}

	logger.Infof(ctx, "Logged in as %s", username)

	return token, nil
}

// Logout invalidates the current token on the server and forgets it locally.
func (s *ServiceImpl) Logout(ctx context.Context) error {
	if s.Token() == "" {
		return ErrNotLoggedIn
	}

	_, err := s.client.Post(ctx, logoutPath, lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnRaw)},
		Client:  &lcmap.Context{CredMgr: s},
	})
	if err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	s.mu.Lock()
	account := s.account
	s.token = ""
	s.mu.Unlock()

	if s.store != nil {
		if err = s.store.Delete(account); err != nil {
			return fmt.Errorf("failed to delete stored token: %w", err)
		}
	}

	logger.Info(ctx, "Logged out")

	return nil
}

func extractToken(response any) (string, error) {
	if envelope, ok := response.(*lcmap.Envelope); ok {
		return "", fmt.Errorf("%w: %s", ErrLoginFailed, strings.Join(envelope.Errors, "; "))
	}

	body, ok := response.(map[string]any)
	if !ok {
		return "", ErrNoTokenInResponse
	}

	if messages := errorMessages(body["errors"]); len(messages) > 0 {
		return "", fmt.Errorf("%w: %s", ErrLoginFailed, strings.Join(messages, "; "))
	}

	switch result := body["result"].(type) {
	case string:
		if result != "" {
			return result, nil
		}
	case map[string]any:
		if token, isString := result[tokenField].(string); isString && token != "" {
			return token, nil
		}
	}

	return "", ErrNoTokenInResponse
}

func errorMessages(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	return utils.Map(items, func(item any) string {
		return fmt.Sprint(item)
	})
}
