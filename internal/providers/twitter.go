package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	TwitterPlatform       = "twitter"
	twitterDefaultBaseURL = "https://api.twitter.com"
)

// TwitterConfig holds configuration for the Twitter/X publishing client.
type TwitterConfig struct {
	AccessToken string
	Timeout     time.Duration // HTTP timeout
	BaseURL     string        // Optional (tests)
	HTTPClient  *http.Client  // Optional (tests)
	Logger      *slog.Logger
}

// TwitterClient publishes posts via the X API v2 tweets endpoint.
type TwitterClient struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewTwitterClient creates a new Twitter publishing client.
func NewTwitterClient(cfg TwitterConfig) *TwitterClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = twitterDefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &TwitterClient{
		accessToken: cfg.AccessToken,
		baseURL:     cfg.BaseURL,
		httpClient:  cfg.HTTPClient,
		logger:      cfg.Logger.With("component", "twitter"),
	}
}

// Platform returns the platform identifier.
func (c *TwitterClient) Platform() string {
	return TwitterPlatform
}

// tweetRequest is the POST /2/tweets payload.
type tweetRequest struct {
	Text string `json:"text"`
}

// Publish posts the content as a tweet.
func (c *TwitterClient) Publish(ctx context.Context, content string) error {
	requestID := uuid.New().String()

	bodyBytes, err := json.Marshal(tweetRequest{Text: content})
	if err != nil {
		return fmt.Errorf("failed to marshal tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	c.logger.Info("publishing tweet", "request_id", requestID, "chars", len(content))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Provider: TwitterPlatform, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("tweet rejected", "request_id", requestID, "status", resp.StatusCode)
		return &UpstreamError{
			Provider:   TwitterPlatform,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	c.logger.Info("tweet published", "request_id", requestID)
	return nil
}

var _ SocialClient = (*TwitterClient)(nil)
