package llm

import (
	"context"
	"errors"
)

// Client abstracts the text-generation backend. Implementations send the
// prompt and return the model's raw textual reply; callers must not assume
// the reply is clean JSON.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
