// Package executor performs synthesized HTTP requests and captures their
// textual output.
package executor

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Header is a single request header.
type Header struct {
	Name  string
	Value string
}

// Request is what an Executor runs.
type Request struct {
	Method  string
	URL     string
	Headers []Header
}

// Result is the captured output of a request. Status is the HTTP status code
// for in-process execution or the process exit code for command execution;
// callers are free to ignore it.
type Result struct {
	Output string
	Status int
}

// Executor performs a request. Implementations return whatever output they
// managed to capture even when they also return an error.
type Executor interface {
	Execute(ctx context.Context, req Request) (Result, error)
}

// Options configures executor construction.
type Options struct {
	Timeout  time.Duration
	CurlPath string
}

type factory func(Options) Executor

var registry = map[string]factory{
	"http": func(o Options) Executor { return NewHTTPExecutor(o.Timeout) },
	"curl": func(o Options) Executor { return NewCommandExecutor(o.CurlPath, o.Timeout) },
}

// New returns the executor registered under kind.
func New(kind string, opts Options) (Executor, error) {
	f, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("executor %q not found (available: %v)", kind, Kinds())
	}
	return f(opts), nil
}

// Kinds lists the registered executor names sorted.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
