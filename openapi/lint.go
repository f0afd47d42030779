package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Lint loads the document with kin-openapi and validates it. The result is
// advisory only: matching never depends on it, since real-world documents
// often carry minor issues.
func Lint(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("validating document: %w", err)
	}
	return nil
}
