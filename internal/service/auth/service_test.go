package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	mock_lcmap "github.com/oshokin/lcmap-client/internal/client/lcmap/mocks"
	"github.com/oshokin/lcmap-client/internal/config"
)

// TestNewService tests the initial token resolution.
func TestNewService(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Username:  "alice",
		AuthToken: "configured",
	}

	t.Run("configured token without store", func(t *testing.T) {
		t.Parallel()

		service := NewService(context.Background(), cfg, nil, nil)
		assert.Equal(t, "configured", service.Token())
	})

	t.Run("stored token wins", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		require.NoError(t, store.Save("alice", "stored"))

		service := NewService(context.Background(), cfg, nil, store)
		assert.Equal(t, "stored", service.Token())
	})

	t.Run("missing stored token keeps configured one", func(t *testing.T) {
		t.Parallel()

		service := NewService(context.Background(), cfg, nil, NewMemoryStore())
		assert.Equal(t, "configured", service.Token())
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		service := NewService(context.Background(), nil, nil, nil)
		assert.Empty(t, service.Token())
	})
}

// TestServiceImpl_Login tests token extraction from login responses.
func TestServiceImpl_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		response  any
		callErr   error
		wantToken string
		wantErr   error
	}{
		{
			name:      "token in result map",
			response:  map[string]any{"result": map[string]any{"token": "tok123"}, "errors": []any{}},
			wantToken: "tok123",
		},
		{
			name:      "token as result",
			response:  map[string]any{"result": "tok456"},
			wantToken: "tok456",
		},
		{
			name:     "api errors",
			response: map[string]any{"result": nil, "errors": []any{"Invalid credentials"}},
			wantErr:  ErrLoginFailed,
		},
		{
			name:     "recovered envelope",
			response: &lcmap.Envelope{Status: 404, Errors: []string{"Resource not found"}},
			wantErr:  ErrLoginFailed,
		},
		{
			name:     "no token",
			response: map[string]any{"result": map[string]any{}},
			wantErr:  ErrNoTokenInResponse,
		},
		{
			name:     "unexpected shape",
			response: "plain",
			wantErr:  ErrNoTokenInResponse,
		},
		{
			name:    "transport failure",
			callErr: errors.New("connection refused"),
			wantErr: ErrLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mock_lcmap.NewMockClient(ctrl)
			store := NewMemoryStore()

			client.EXPECT().
				Post(gomock.Any(), "/api/auth/login", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, args lcmap.Args) (any, error) {
					assert.Equal(t, lcmap.ReturnBody, args.Options.ReturnValue())
					assert.Equal(t, lcmap.Values{
						"form-params": lcmap.Values{"username": "alice", "password": "secret"},
					}, args.Request)

					return tt.response, tt.callErr
				})

			service := NewService(context.Background(), nil, client, store)

			token, err := service.Login(context.Background(), "alice", "secret")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, service.Token())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantToken, service.Token())

			stored, err := store.Load("alice")
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, stored)
		})
	}
}

// TestServiceImpl_LoginEmptyCredentials tests that no request is sent without credentials.
func TestServiceImpl_LoginEmptyCredentials(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := NewService(context.Background(), nil, mock_lcmap.NewMockClient(ctrl), nil)

	_, err := service.Login(context.Background(), "alice", "")
	require.ErrorIs(t, err, ErrEmptyCredentials)
}

// TestServiceImpl_Logout tests that logout sends the session token and clears it.
func TestServiceImpl_Logout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_lcmap.NewMockClient(ctrl)
	store := NewMemoryStore()

	require.NoError(t, store.Save("alice", "tok123"))

	service := NewService(context.Background(), &config.Config{Username: "alice"}, client, store)

	client.EXPECT().
		Post(gomock.Any(), "/api/auth/logout", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args lcmap.Args) (any, error) {
			require.NotNil(t, args.Client)
			assert.Equal(t, "tok123", args.Client.CredMgr.Token())

			return &lcmap.RawResponse{Status: 200}, nil
		})

	require.NoError(t, service.Logout(context.Background()))
	assert.Empty(t, service.Token())

	_, err := store.Load("alice")
	require.ErrorIs(t, err, ErrTokenNotFound)

	require.ErrorIs(t, service.Logout(context.Background()), ErrNotLoggedIn)
}

// TestServiceImpl_LogoutFailure tests that the token is kept when logout fails.
func TestServiceImpl_LogoutFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_lcmap.NewMockClient(ctrl)

	service := NewService(context.Background(), &config.Config{AuthToken: "tok"}, client, nil)

	client.EXPECT().
		Post(gomock.Any(), "/api/auth/logout", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	require.Error(t, service.Logout(context.Background()))
	assert.Equal(t, "tok", service.Token())
}

// TestServiceImpl_CredentialManager tests that the service plugs into lcmap.Context.
func TestServiceImpl_CredentialManager(t *testing.T) {
	t.Parallel()

	var credMgr lcmap.CredentialManager = NewService(context.Background(), &config.Config{AuthToken: "tok"}, nil, nil)

	assert.Equal(t, "tok", credMgr.Token())
}
