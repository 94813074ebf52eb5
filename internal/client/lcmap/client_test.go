package lcmap_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	mock_lcmap "github.com/oshokin/lcmap-client/internal/client/lcmap/mocks"
	"github.com/oshokin/lcmap-client/internal/config"
)

const objectBody = `{"body":{"result":{"id":1},"errors":[]}}`

func newTestClient(t *testing.T) (lcmap.Client, *mock_lcmap.MockTransport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transport := mock_lcmap.NewMockTransport(ctrl)

	return lcmap.NewClient(config.Default(), transport), transport
}

// TestClient_GetResult tests a GET whose result is extracted from the body.
func TestClient_GetResult(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbGet, "http://localhost:1077/objects/1", gomock.Any()).
		Return(&lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil)

	result, err := client.Get(context.Background(), "/objects/1", lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnResult)},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(1)}, result)
}

// TestClient_DefaultReturnIsBody tests that the body is returned without a return option.
func TestClient_DefaultReturnIsBody(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbGet, gomock.Any(), gomock.Any()).
		Return(&lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil)

	result, err := client.Get(context.Background(), "/objects/1", lcmap.Args{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"result": map[string]any{"id": float64(1)}, "errors": []any{}}, result)
}

// TestClient_ForcedFields tests that forced request fields cannot be overridden by callers.
func TestClient_ForcedFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	transport := mock_lcmap.NewMockTransport(ctrl)
	connMgr := mock_lcmap.NewMockConnectionManager(ctrl)
	pool := &http.Client{}

	connMgr.EXPECT().Pool("http://localhost:1077").Return(pool)

	client := lcmap.NewClient(config.Default(), transport)

	var captured lcmap.Values

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbPost, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ lcmap.Verb, _ string, request lcmap.Values) (*lcmap.RawResponse, error) {
			captured = request

			return &lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil
		})

	_, err := client.Post(context.Background(), "/objects", lcmap.Args{
		Options: lcmap.RequestOptions{Debug: lcmap.Ptr(true)},
		TransportOptions: lcmap.Values{
			"debug":              false,
			"coerce":             "never",
			"throw-exceptions":   true,
			"connection-manager": "mine",
		},
		Request: lcmap.Values{"throw-exceptions": true},
		Extra:   lcmap.Values{"coerce": "unexceptional"},
		Client:  &lcmap.Context{ConnMgr: connMgr},
	})
	require.NoError(t, err)

	assert.Equal(t, true, captured["debug"])
	assert.Equal(t, "always", captured["coerce"])
	assert.Equal(t, false, captured["throw-exceptions"])
	assert.Same(t, pool, captured["connection-manager"])
}

// TestClient_ForcedFieldsWithoutContext tests that forced fields are present without a context.
func TestClient_ForcedFieldsWithoutContext(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbGet, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ lcmap.Verb, _ string, request lcmap.Values) (*lcmap.RawResponse, error) {
			assert.Contains(t, request, "debug")
			assert.Contains(t, request, "coerce")
			assert.Contains(t, request, "throw-exceptions")
			assert.Contains(t, request, "connection-manager")
			assert.Nil(t, request["connection-manager"])
			assert.Equal(t, false, request["debug"])

			return &lcmap.RawResponse{Status: http.StatusOK}, nil
		})

	_, err := client.Get(context.Background(), "/api/status", lcmap.Args{})
	require.NoError(t, err)
}

// TestClient_RequestMerge tests the precedence of transport options, headers, request and extra fields.
func TestClient_RequestMerge(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbPut, "https://other.example.com/api/objects/1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ lcmap.Verb, _ string, request lcmap.Values) (*lcmap.RawResponse, error) {
			headers, ok := request["headers"].(lcmap.Values)
			require.True(t, ok)

			assert.Equal(t, "application/vnd.usgs.lcmap.v1.0+json", headers["accept"])
			assert.Equal(t, "opt-token", headers["x-authtoken"])
			assert.Equal(t, "trace-1", headers["x-trace"])
			assert.Equal(t, "custom-agent", headers["user-agent"])
			assert.Equal(t, "transport", headers["x-transport"])

			assert.Equal(t, lcmap.Values{"a": "request", "b": "extra"}, request["query-params"])
			assert.Equal(t, 30, request["socket-timeout"])
			assert.Equal(t, "payload", request["body"])

			return &lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil
		})

	_, err := client.Put(context.Background(), "/api/objects/1", lcmap.Args{
		Options: lcmap.RequestOptions{
			Endpoint:    lcmap.Ptr("https://other.example.com/"),
			Version:     lcmap.Ptr("1.0"),
			ContentType: lcmap.Ptr("application/json"),
			Token:       lcmap.Ptr("opt-token"),
		},
		TransportOptions: lcmap.Values{
			"socket-timeout": 10,
			"headers":        lcmap.Values{"x-transport": "transport", "accept": "overridden"},
		},
		Headers: lcmap.Headers{"x-trace": "trace-1", "user-agent": "custom-agent"},
		Request: lcmap.Values{"query-params": lcmap.Values{"a": "request"}, "socket-timeout": 30},
		Extra:   lcmap.Values{"query-params": lcmap.Values{"b": "extra"}, "body": "payload"},
	})
	require.NoError(t, err)
}

// TestClient_RequestMergeHeaderCase tests that caller headers replace base headers whatever their case.
func TestClient_RequestMergeHeaderCase(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbGet, "http://localhost:1077/x", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ lcmap.Verb, _ string, request lcmap.Values) (*lcmap.RawResponse, error) {
			headers, ok := request["headers"].(lcmap.Values)
			require.True(t, ok)

			assert.Equal(t, lcmap.Values{
				"accept":      "text/plain",
				"user-agent":  "transport-agent",
				"x-authtoken": "caller-token",
			}, headers)

			return &lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil
		})

	_, err := client.Get(context.Background(), "/x", lcmap.Args{
		TransportOptions: lcmap.Values{
			"headers": lcmap.Values{"User-Agent": "transport-agent", "Accept": "transport-accept"},
		},
		Headers: lcmap.Headers{"Accept": "text/plain", "X-AuthToken": "caller-token"},
	})
	require.NoError(t, err)
}

// TestClient_TokenPrecedence tests that the credential manager token wins over the option token.
func TestClient_TokenPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		managerToken  string
		optionToken   *string
		expectedToken string
	}{
		{name: "manager token wins", managerToken: "mgr", optionToken: lcmap.Ptr("opt"), expectedToken: "mgr"},
		{name: "empty manager token falls back", managerToken: "", optionToken: lcmap.Ptr("opt"), expectedToken: "opt"},
		{name: "no token", managerToken: "", optionToken: nil, expectedToken: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			transport := mock_lcmap.NewMockTransport(ctrl)
			credMgr := mock_lcmap.NewMockCredentialManager(ctrl)

			credMgr.EXPECT().Token().Return(tt.managerToken)

			transport.EXPECT().
				Do(gomock.Any(), lcmap.VerbGet, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ lcmap.Verb, _ string, request lcmap.Values) (*lcmap.RawResponse, error) {
					headers, ok := request["headers"].(lcmap.Values)
					require.True(t, ok)
					assert.Equal(t, tt.expectedToken, headers["x-authtoken"])

					return &lcmap.RawResponse{Status: http.StatusOK}, nil
				})

			client := lcmap.NewClient(config.Default(), transport)

			_, err := client.Get(context.Background(), "/api/status", lcmap.Args{
				Options: lcmap.RequestOptions{Token: tt.optionToken},
				Client:  &lcmap.Context{CredMgr: credMgr},
			})
			require.NoError(t, err)
		})
	}
}

// TestClient_ResourceNotFound tests recovery of a no-resource failure into an envelope.
func TestClient_ResourceNotFound(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	headers := http.Header{"Content-Type": []string{"application/json"}}

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbGet, gomock.Any(), gomock.Any()).
		Return(nil, &lcmap.StatusError{Status: http.StatusNotFound, Headers: headers, Message: "missing"})

	args := lcmap.Args{Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnResult)}}

	result, err := client.Get(context.Background(), "/objects/404", args)
	require.NoError(t, err)

	envelope, ok := result.(*lcmap.Envelope)
	require.True(t, ok)

	assert.Equal(t, http.StatusNotFound, envelope.Status)
	assert.Nil(t, envelope.Result)
	assert.Equal(t, []string{"Resource not found"}, envelope.Errors)
	assert.Equal(t, headers, envelope.Headers)
	assert.Equal(t, args, envelope.Args)
	assert.True(t, envelope.HasErrors())
}

// TestClient_ConfiguredNoResourceStatus tests that the recovered status comes from configuration.
func TestClient_ConfiguredNoResourceStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	transport := mock_lcmap.NewMockTransport(ctrl)

	cfg := config.Default()
	cfg.NoResourceStatus = http.StatusGone

	client := lcmap.NewClient(cfg, transport)

	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &lcmap.StatusError{Status: http.StatusGone})

	tagged, err := client.Dispatch(context.Background(), lcmap.VerbDelete, "/objects/1", lcmap.Args{})
	require.NoError(t, err)
	require.NotNil(t, tagged.Recovered)
	assert.Nil(t, tagged.Result)

	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &lcmap.StatusError{Status: http.StatusNotFound})

	_, err = client.Delete(context.Background(), "/objects/1", lcmap.Args{})
	assert.True(t, lcmap.IsStatus(err, http.StatusNotFound))
}

// TestClient_TransportFailures tests that other failures propagate unchanged in identity.
func TestClient_TransportFailures(t *testing.T) {
	t.Parallel()

	networkErr := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
	}{
		{name: "server error", err: &lcmap.StatusError{Status: http.StatusInternalServerError}},
		{name: "network error", err: networkErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, transport := newTestClient(t)

			transport.EXPECT().
				Do(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			result, err := client.Get(context.Background(), "/objects/1", lcmap.Args{})
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, result)
		})
	}
}

// TestClient_UnhandledReturnMode tests that an unknown return mode fails before sending.
func TestClient_UnhandledReturnMode(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	_, err := client.Get(context.Background(), "/objects/1", lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnMode("headers"))},
	})
	require.ErrorIs(t, err, lcmap.ErrUnhandledReturnMode)
}

// TestClient_UnsupportedVerb tests that an unknown verb fails before sending.
func TestClient_UnsupportedVerb(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	_, err := client.Call(context.Background(), lcmap.Verb("trace"), "/", lcmap.Args{})
	require.ErrorIs(t, err, lcmap.ErrUnsupportedVerb)
}

// TestClient_MalformedJSON tests that decode failures propagate.
func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&lcmap.RawResponse{Status: http.StatusOK, Body: "<html>"}, nil)

	_, err := client.Get(context.Background(), "/objects/1", lcmap.Args{})
	require.ErrorIs(t, err, lcmap.ErrMalformedJSON)
}

// TestClient_NilResponse tests that a transport returning nothing is reported.
func TestClient_NilResponse(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, err := client.Get(context.Background(), "/objects/1", lcmap.Args{})
	require.ErrorIs(t, err, lcmap.ErrNilResponse)
}

// TestClient_Dispatch tests that dispatch returns the raw response tagged with its return mode.
func TestClient_Dispatch(t *testing.T) {
	t.Parallel()

	client, transport := newTestClient(t)

	raw := &lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbHead, gomock.Any(), gomock.Any()).
		Return(raw, nil)

	tagged, err := client.Dispatch(context.Background(), lcmap.VerbHead, "/objects/1", lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnErrors)},
	})
	require.NoError(t, err)
	assert.Same(t, raw, tagged.Result)
	assert.Equal(t, lcmap.ReturnErrors, tagged.Return)
	assert.Nil(t, tagged.Recovered)
}

// TestClient_VerbWrappers tests that each wrapper dispatches its own verb.
func TestClient_VerbWrappers(t *testing.T) {
	t.Parallel()

	type wrapper func(lcmap.Client) func(context.Context, string, lcmap.Args) (any, error)

	tests := []struct {
		verb lcmap.Verb
		call wrapper
	}{
		{lcmap.VerbGet, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Get }},
		{lcmap.VerbHead, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Head }},
		{lcmap.VerbPost, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Post }},
		{lcmap.VerbPut, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Put }},
		{lcmap.VerbDelete, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Delete }},
		{lcmap.VerbOptions, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Options }},
		{lcmap.VerbCopy, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Copy }},
		{lcmap.VerbMove, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Move }},
		{lcmap.VerbPatch, func(c lcmap.Client) func(context.Context, string, lcmap.Args) (any, error) { return c.Patch }},
	}

	for _, tt := range tests {
		t.Run(string(tt.verb), func(t *testing.T) {
			t.Parallel()

			client, transport := newTestClient(t)

			transport.EXPECT().
				Do(gomock.Any(), tt.verb, "http://localhost:1077/path", gomock.Any()).
				Return(&lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil)

			result, err := tt.call(client)(context.Background(), "/path", lcmap.Args{
				Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnErrors)},
			})
			require.NoError(t, err)
			assert.Equal(t, []any{}, result)
		})
	}
}

// TestClient_FollowLink tests following result.link.href with the given options.
func TestClient_FollowLink(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	transport := mock_lcmap.NewMockTransport(ctrl)
	credMgr := mock_lcmap.NewMockCredentialManager(ctrl)

	credMgr.EXPECT().Token().Return("session")

	client := lcmap.NewClient(config.Default(), transport)

	transport.EXPECT().
		Do(gomock.Any(), lcmap.VerbGet, "http://localhost:1077/next", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ lcmap.Verb, _ string, request lcmap.Values) (*lcmap.RawResponse, error) {
			headers, ok := request["headers"].(lcmap.Values)
			require.True(t, ok)
			assert.Equal(t, "session", headers["x-authtoken"])

			return &lcmap.RawResponse{Status: http.StatusOK, Body: objectBody}, nil
		})

	result, err := client.FollowLink(
		context.Background(),
		&lcmap.Context{CredMgr: credMgr},
		map[string]any{"result": map[string]any{"link": map[string]any{"href": "/next"}}},
		lcmap.RequestOptions{},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"result": map[string]any{"id": float64(1)}, "errors": []any{}}, result)
}

// TestClient_FollowLinkMissing tests that a result without a link fails without a request.
func TestClient_FollowLinkMissing(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	_, err := client.FollowLink(context.Background(), nil, map[string]any{"result": nil}, lcmap.RequestOptions{})
	require.ErrorIs(t, err, lcmap.ErrMissingLink)
}

// TestClient_UpdateOptions tests that nil overrides never replace defaults.
func TestClient_UpdateOptions(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	merged := client.UpdateOptions(lcmap.RequestOptions{
		Endpoint: nil,
		Return:   lcmap.Ptr(lcmap.ReturnRaw),
	})

	assert.Equal(t, "http://localhost:1077", merged.EndpointValue())
	assert.Equal(t, lcmap.ReturnRaw, merged.ReturnValue())
	assert.NotContains(t, merged.Values(), "token")
}
