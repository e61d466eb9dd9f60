package llm

import (
	"context"
	"errors"
)

// Summarizer abstracts language-model providers for document summarization.
type Summarizer interface {
	Summarize(ctx context.Context, text string, prompt string) (string, error)
}

var (
	// ErrNotConfigured is returned when no API credential is configured.
	ErrNotConfigured = errors.New("llm credential not configured")
	// ErrUpstream wraps failures of the remote completion call.
	ErrUpstream = errors.New("llm upstream failure")
)

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Summarize returns ErrNotConfigured.
func (PlaceholderClient) Summarize(ctx context.Context, text string, prompt string) (string, error) {
	_ = ctx
	_ = text
	_ = prompt
	return "", ErrNotConfigured
}
