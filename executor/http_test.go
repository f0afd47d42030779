package executor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExecutor_Execute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/weather", r.URL.Path)
		assert.Equal(t, "city=Paris&days=0", r.URL.RawQuery)
		assert.Equal(t, "*/*", r.Header.Get("Accept"))
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		w.Write([]byte(`{"temp": 21}`))
	}))
	defer srv.Close()

	res, err := NewHTTPExecutor(time.Second).Execute(context.Background(), Request{
		Method:  "GET",
		URL:     srv.URL + "/api/weather?city=Paris&days=0",
		Headers: APIKey{Header: "X-API-KEY", Key: "secret"}.Headers(),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"temp": 21}`, res.Output)
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestHTTPExecutor_ErrorStatusKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "unknown city"}`))
	}))
	defer srv.Close()

	res, err := NewHTTPExecutor(0).Execute(context.Background(), Request{Method: "GET", URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, `{"error": "unknown city"}`, res.Output)
}

func TestHTTPExecutor_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res, err := NewHTTPExecutor(time.Second).Execute(context.Background(), Request{Method: "GET", URL: url})
	require.Error(t, err)
	assert.Equal(t, err.Error(), res.Output)
	assert.Contains(t, res.Output, "executing request")
}

func TestHTTPExecutor_BadURL(t *testing.T) {
	res, err := NewHTTPExecutor(0).Execute(context.Background(), Request{Method: "GET", URL: "://nope"})
	require.Error(t, err)
	assert.Contains(t, res.Output, "creating request")
}
