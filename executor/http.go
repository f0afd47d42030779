package executor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPExecutor runs requests with an in-process HTTP client.
type HTTPExecutor struct {
	Client *http.Client
}

// NewHTTPExecutor creates an executor. A zero timeout leaves requests bounded
// only by the caller's context.
func NewHTTPExecutor(timeout time.Duration) *HTTPExecutor {
	return &HTTPExecutor{Client: &http.Client{Timeout: timeout}}
}

// Execute returns the response body whatever the status code. Transport
// failures put the error text in Output.
func (e *HTTPExecutor) Execute(ctx context.Context, r Request) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		err = fmt.Errorf("creating request: %w", err)
		return Result{Output: err.Error()}, err
	}
	applyHeaders(req, r.Headers)

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		err = fmt.Errorf("executing request: %w", err)
		return Result{Output: err.Error()}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("reading response: %w", err)
		return Result{Output: string(body) + err.Error(), Status: resp.StatusCode}, err
	}

	return Result{Output: string(body), Status: resp.StatusCode}, nil
}
