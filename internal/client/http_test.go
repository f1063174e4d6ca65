package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chamber/sites/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClientConfig = config.ClientConfig{Timeout: 5, MaxRequestsPerSecond: 100}

func TestHTTPFetcher_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chamber/data/members.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"members":[]}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL+"/chamber/", testClientConfig)
	body, err := fetcher.Fetch(context.Background(), "data/members.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"members":[]}`, string(body))
}

func TestHTTPFetcher_RelativeDotRef(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/roles.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"roles":[]}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL, testClientConfig)
	_, err := fetcher.Fetch(context.Background(), "./data/roles.json")
	require.NoError(t, err)
}

func TestHTTPFetcher_NotFound(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL, testClientConfig)
	_, err := fetcher.Fetch(context.Background(), "data/members.json")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, 1, calls, "failed requests are not retried")
}

func TestHTTPFetcher_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewHTTPFetcher(server.URL, testClientConfig)
	_, err := fetcher.Fetch(ctx, "data/members.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
