package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIChatName         = "openai"
	openAIChatDefaultModel = openai.ChatModelGPT4oMini

	// Matches the blank-line convention the draft splitter relies on.
	defaultSystemPrompt = "You are a social media copywriter. Write each post as a " +
		"standalone block of text and separate posts with a single blank line. " +
		"Do not number the posts or add any commentary."
)

// OpenAIChatConfig holds configuration for the OpenAI completion client.
type OpenAIChatConfig struct {
	APIKey       string
	Model        string        // "gpt-4o-mini" (default)
	MaxTokens    int           // Default 1024
	Temperature  float64       // Default 1.0
	SystemPrompt string        // Overrides the built-in splitting instructions
	MaxRetries   int           // Retry attempts for SDK transport
	Timeout      time.Duration // HTTP timeout
	BaseURL      string        // Optional (tests)
	HTTPClient   *http.Client  // Optional (tests)
}

// OpenAIChatClient implements CompletionClient using the official OpenAI SDK.
type OpenAIChatClient struct {
	apiKey       string
	model        string
	maxTokens    int
	temperature  float64
	systemPrompt string
	client       openai.Client
}

// NewOpenAIChatClient creates a new OpenAI completion client.
func NewOpenAIChatClient(cfg OpenAIChatConfig) *OpenAIChatClient {
	if cfg.Model == "" {
		cfg.Model = openAIChatDefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 1.0
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = defaultSystemPrompt
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIChatClient{
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
		systemPrompt: cfg.SystemPrompt,
		client:       openai.NewClient(opts...),
	}
}

// Name returns the provider identifier.
func (c *OpenAIChatClient) Name() string {
	return OpenAIChatName
}

// Model returns the configured model.
func (c *OpenAIChatClient) Model() string {
	return c.model
}

// HealthCheck verifies the OpenAI API is reachable and the API key is valid.
func (c *OpenAIChatClient) HealthCheck(ctx context.Context) error {
	page, err := c.client.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("openai models list failed: %w", mapOpenAIError(err))
	}
	if page == nil {
		return fmt.Errorf("openai models list returned nil response")
	}
	return nil
}

// Complete sends the prompt as a single user message and returns the
// completion text verbatim. The caller is responsible for splitting it
// into individual posts.
func (c *OpenAIChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(c.temperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", &UpstreamError{Provider: OpenAIChatName, Message: "completion returned no choices"}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", &UpstreamError{Provider: OpenAIChatName, Message: "completion returned empty content"}
	}

	return content, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "request failed"
		}
		return &UpstreamError{
			Provider:   OpenAIChatName,
			StatusCode: apiErr.StatusCode,
			Message:    msg,
		}
	}
	return &UpstreamError{Provider: OpenAIChatName, Message: err.Error()}
}

var _ CompletionClient = (*OpenAIChatClient)(nil)
