package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resolved(path string, pairs ...string) ResolvedEndpoint {
	r := ResolvedEndpoint{Path: path, Method: "get"}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Params.Set(pairs[i], pairs[i+1])
	}
	return r
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		endpoint ResolvedEndpoint
		wantURL  string
	}{
		{
			name:     "no parameters",
			endpoint: resolved("/weather"),
			wantURL:  "http://localhost:8080/api/weather",
		},
		{
			name:     "parameters in order",
			endpoint: resolved("/weather", "city", "example", "days", "0"),
			wantURL:  "http://localhost:8080/api/weather?city=example&days=0",
		},
		{
			name:     "values are not encoded",
			endpoint: resolved("/weather", "city", "New York"),
			wantURL:  "http://localhost:8080/api/weather?city=New York",
		},
		{
			name:     "empty value keeps the pair",
			endpoint: resolved("/search", "q", ""),
			wantURL:  "http://localhost:8080/api/search?q=",
		},
		{
			name:     "path templates are left alone",
			endpoint: resolved("/pets/{id}", "id", "0"),
			wantURL:  "http://localhost:8080/api/pets/{id}?id=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Build("http://localhost:8080/api", tt.endpoint)
			assert.Equal(t, "GET", req.Method)
			assert.Equal(t, tt.wantURL, req.URL)
		})
	}
}

func TestBuild_NoTrailingQuestionMark(t *testing.T) {
	req := Build("http://h", ResolvedEndpoint{Path: "/x", Method: "DELETE"})
	assert.Equal(t, "http://h/x", req.URL)
	assert.NotContains(t, req.URL, "?")
	assert.Equal(t, "DELETE", req.Method)
}
