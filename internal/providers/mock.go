package providers

import (
	"context"
	"sync"
	"sync/atomic"
)

const MockCompletionName = "mock"

// MockCompletionClient is a CompletionClient for testing.
type MockCompletionClient struct {
	// Configurable behavior
	ResponseText string
	Err          error

	requestCount atomic.Int64
}

// NewMockCompletionClient creates a mock completion client with a canned response.
func NewMockCompletionClient(response string) *MockCompletionClient {
	return &MockCompletionClient{ResponseText: response}
}

// Name returns the client identifier.
func (c *MockCompletionClient) Name() string {
	return MockCompletionName
}

// Complete returns the canned response or the configured error.
func (c *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.requestCount.Add(1)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.Err != nil {
		return "", c.Err
	}
	return c.ResponseText, nil
}

// HealthCheck always succeeds unless an error is configured.
func (c *MockCompletionClient) HealthCheck(ctx context.Context) error {
	return c.Err
}

// RequestCount returns the number of Complete calls made.
func (c *MockCompletionClient) RequestCount() int64 {
	return c.requestCount.Load()
}

var _ CompletionClient = (*MockCompletionClient)(nil)

// MockSocialClient is a SocialClient for testing. It records published
// content so tests can assert on outbound calls.
type MockSocialClient struct {
	PlatformName string
	Err          error

	mu        sync.Mutex
	published []string
}

// NewMockSocialClient creates a mock social client for the given platform.
func NewMockSocialClient(platform string) *MockSocialClient {
	return &MockSocialClient{PlatformName: platform}
}

// Platform returns the configured platform name.
func (c *MockSocialClient) Platform() string {
	return c.PlatformName
}

// Publish records the content or returns the configured error.
func (c *MockSocialClient) Publish(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Err != nil {
		return c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, content)
	return nil
}

// Published returns a copy of all published content.
func (c *MockSocialClient) Published() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.published))
	copy(out, c.published)
	return out
}

// PublishCount returns the number of successful publishes.
func (c *MockSocialClient) PublishCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.published)
}

var _ SocialClient = (*MockSocialClient)(nil)
