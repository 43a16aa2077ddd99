package transport_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/game-club/library/internal/transport"
	"github.com/game-club/library/pkg/errors"
)

func TestDecodeResponseAcceptsAny2xx(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"value": "ok"}`)
		}))

		client := transport.New(nil)
		resp, err := client.Get(context.Background(), server.URL)
		require.NoError(t, err)

		var payload struct {
			Value string `json:"value"`
		}
		require.NoError(t, transport.DecodeResponse(resp, "test", &payload), "status %d", status)
		assert.Equal(t, "ok", payload.Value)
		server.Close()
	}
}

func TestDecodeResponseNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "missing")
	}))
	defer server.Close()

	client := transport.New(nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	var payload map[string]any
	err = transport.DecodeResponse(resp, "test", &payload)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "missing", apiErr.Message)
}

func TestDecodeResponseMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	defer server.Close()

	client := transport.New(nil)
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	var payload map[string]any
	assert.Error(t, transport.DecodeResponse(resp, "test", &payload))
}

func TestClientAppliesAuthAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		if r.Method == http.MethodPost {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := transport.New(&transport.BearerAuth{Token: "secret"})
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Post(ctx, server.URL, []byte(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestBearerAuthSkipsEmptyToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	auth := &transport.BearerAuth{}
	auth.Apply(req)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestNoAuthLeavesRequestUntouched(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	before := len(req.Header)
	(&transport.NoAuth{}).Apply(req)
	assert.Equal(t, before, len(req.Header))
}
