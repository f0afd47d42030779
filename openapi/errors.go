package openapi

import (
	"errors"
	"fmt"
)

// ErrMissingPaths is returned when a document has no usable "paths" object.
// Callers treat it as "no endpoints available" rather than a failure.
var ErrMissingPaths = errors.New("document has no paths")

// FetchError reports that the description source could not be read.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching description from %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching description from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a document that is not JSON at all.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parsing description: " + e.Reason
}

// MalformedParameterError reports a parameter that was skipped because it
// has no name.
type MalformedParameterError struct {
	Path   string
	Method string
	Index  int
}

func (e *MalformedParameterError) Error() string {
	return fmt.Sprintf("%s %s: parameter %d has no name", e.Method, e.Path, e.Index)
}
