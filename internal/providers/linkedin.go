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
	LinkedInPlatform       = "linkedin"
	linkedInDefaultBaseURL = "https://api.linkedin.com"
)

// LinkedInConfig holds configuration for the LinkedIn publishing client.
type LinkedInConfig struct {
	AccessToken string
	AuthorURN   string // e.g. "urn:li:person:abc123"
	Timeout     time.Duration
	BaseURL     string       // Optional (tests)
	HTTPClient  *http.Client // Optional (tests)
	Logger      *slog.Logger
}

// LinkedInClient publishes posts via the LinkedIn ugcPosts endpoint.
type LinkedInClient struct {
	accessToken string
	authorURN   string
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewLinkedInClient creates a new LinkedIn publishing client.
func NewLinkedInClient(cfg LinkedInConfig) *LinkedInClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = linkedInDefaultBaseURL
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

	return &LinkedInClient{
		accessToken: cfg.AccessToken,
		authorURN:   cfg.AuthorURN,
		baseURL:     cfg.BaseURL,
		httpClient:  cfg.HTTPClient,
		logger:      cfg.Logger.With("component", "linkedin"),
	}
}

// Platform returns the platform identifier.
func (c *LinkedInClient) Platform() string {
	return LinkedInPlatform
}

// ugcPost is the ugcPosts payload. Field names follow LinkedIn's
// Rest.li conventions exactly.
type ugcPost struct {
	Author          string             `json:"author"`
	LifecycleState  string             `json:"lifecycleState"`
	SpecificContent ugcSpecificContent `json:"specificContent"`
	Visibility      ugcVisibility      `json:"visibility"`
}

type ugcSpecificContent struct {
	ShareContent ugcShareContent `json:"com.linkedin.ugc.ShareContent"`
}

type ugcShareContent struct {
	ShareCommentary    ugcText `json:"shareCommentary"`
	ShareMediaCategory string  `json:"shareMediaCategory"`
}

type ugcText struct {
	Text string `json:"text"`
}

type ugcVisibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

// Publish posts the content as a public LinkedIn share.
func (c *LinkedInClient) Publish(ctx context.Context, content string) error {
	requestID := uuid.New().String()

	payload := ugcPost{
		Author:         c.authorURN,
		LifecycleState: "PUBLISHED",
		SpecificContent: ugcSpecificContent{
			ShareContent: ugcShareContent{
				ShareCommentary:    ugcText{Text: content},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: ugcVisibility{MemberNetworkVisibility: "PUBLIC"},
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal share: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/ugcPosts", bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	c.logger.Info("publishing share", "request_id", requestID, "chars", len(content))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Provider: LinkedInPlatform, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("share rejected", "request_id", requestID, "status", resp.StatusCode)
		return &UpstreamError{
			Provider:   LinkedInPlatform,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	c.logger.Info("share published", "request_id", requestID)
	return nil
}

var _ SocialClient = (*LinkedInClient)(nil)
