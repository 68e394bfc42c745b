// Package providers holds clients for external APIs: the completion
// provider that generates post drafts and the social platform clients
// that publish approved drafts.
package providers

import (
	"context"
	"fmt"
)

// CompletionClient generates text from a prompt.
type CompletionClient interface {
	// Name returns the client identifier (e.g. "openai").
	Name() string

	// Complete sends the prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// HealthCheck verifies the provider is reachable and credentials are valid.
	HealthCheck(ctx context.Context) error
}

// SocialClient publishes post content to a social platform.
type SocialClient interface {
	// Platform returns the platform identifier (e.g. "twitter", "linkedin").
	Platform() string

	// Publish sends the content to the platform.
	Publish(ctx context.Context, content string) error
}

// UpstreamError is returned when an external API call fails.
// StatusCode is the HTTP status from the upstream, or 0 for transport
// failures that never produced a response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

// NotConfiguredError is returned when a provider slot has no client,
// typically because credentials are missing from config.
type NotConfiguredError struct {
	Name string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("provider not configured: %s", e.Name)
}
