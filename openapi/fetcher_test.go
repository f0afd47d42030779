package openapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"paths": {}}`))
	}))
	defer srv.Close()

	data, err := NewHTTPFetcher(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"paths": {}}`, string(data))
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL, 0).Fetch(context.Background())
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, http.StatusServiceUnavailable, ferr.StatusCode)
	assert.Contains(t, err.Error(), "HTTP 503")
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(url, time.Second).Fetch(context.Background())
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, 0, ferr.StatusCode)
	assert.NotNil(t, errors.Unwrap(ferr))
}

func TestStaticFetcher(t *testing.T) {
	data, err := StaticFetcher(`{"paths": {}}`).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"paths": {}}`, string(data))
}
