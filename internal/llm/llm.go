package llm

import (
	"context"
	"errors"
)

// Client abstracts text-completion providers. Implementations send a system
// instruction plus user text to a model chosen at construction time and
// return the raw completion string without any post-processing.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	_ = ctx
	_ = systemPrompt
	_ = userText
	return "", ErrNotConfigured
}
