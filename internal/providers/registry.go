package providers

import (
	"log/slog"
	"sync"
)

// Registry holds the completion client and social publishing clients.
// It supports config-driven instantiation, hot-reload, and thread-safe access.
type Registry struct {
	mu         sync.RWMutex
	completion CompletionClient
	social     map[string]SocialClient
	logger     *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		social: make(map[string]SocialClient),
		logger: slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// RegisterCompletion sets the completion client.
func (r *Registry) RegisterCompletion(client CompletionClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completion = client
	if r.logger != nil && client != nil {
		r.logger.Info("registered completion client", "name", client.Name())
	}
}

// RegisterSocial registers a social client under its platform name.
func (r *Registry) RegisterSocial(client SocialClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.social[client.Platform()] = client
	if r.logger != nil {
		r.logger.Info("registered social client", "platform", client.Platform())
	}
}

// Completion returns the completion client.
func (r *Registry) Completion() (CompletionClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.completion == nil {
		return nil, &NotConfiguredError{Name: "completion"}
	}
	return r.completion, nil
}

// Social returns the social client for a platform.
func (r *Registry) Social(platform string) (SocialClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.social[platform]
	if !ok {
		return nil, &NotConfiguredError{Name: platform}
	}
	return client, nil
}

// ListSocial returns all registered social platform names.
func (r *Registry) ListSocial() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.social))
	for name := range r.social {
		names = append(names, name)
	}
	return names
}

// HasCompletion reports whether a completion client is registered.
func (r *Registry) HasCompletion() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.completion != nil
}

// RegistryConfig defines the providers to instantiate from config.
// All credentials are expected to be resolved (no ${ENV_VAR} references).
type RegistryConfig struct {
	Completion CompletionSettings
	Twitter    TwitterSettings
	LinkedIn   LinkedInSettings
}

// CompletionSettings configures the completion client.
type CompletionSettings struct {
	Type         string // "openai"
	Model        string
	APIKey       string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	Enabled      bool
}

// TwitterSettings configures the Twitter publishing client.
type TwitterSettings struct {
	AccessToken string
	Enabled     bool
}

// LinkedInSettings configures the LinkedIn publishing client.
type LinkedInSettings struct {
	AccessToken string
	AuthorURN   string
	Enabled     bool
}

// NewRegistryFromConfig creates a registry with providers based on configuration.
// Only enabled providers with credentials are registered.
func NewRegistryFromConfig(cfg RegistryConfig) *Registry {
	r := NewRegistry()
	r.Reload(cfg)
	return r
}

// Reload updates the registry based on new configuration.
// Providers that are no longer configured are unregistered; providers
// with changed settings are recreated.
func (r *Registry) Reload(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Completion slot
	if cfg.Completion.Enabled && cfg.Completion.APIKey != "" {
		if r.completion == nil || needsCompletionUpdate(r.completion, cfg.Completion) {
			r.completion = createCompletionClient(cfg.Completion)
			if r.logger != nil && r.completion != nil {
				r.logger.Info("configured completion client", "type", cfg.Completion.Type, "model", cfg.Completion.Model)
			}
		}
	} else if r.completion != nil {
		r.completion = nil
		if r.logger != nil {
			r.logger.Info("unregistered completion client")
		}
	}

	// Twitter slot
	if cfg.Twitter.Enabled && cfg.Twitter.AccessToken != "" {
		existing, ok := r.social[TwitterPlatform].(*TwitterClient)
		if !ok || existing.accessToken != cfg.Twitter.AccessToken {
			r.social[TwitterPlatform] = NewTwitterClient(TwitterConfig{
				AccessToken: cfg.Twitter.AccessToken,
				Logger:      r.logger,
			})
			if r.logger != nil {
				r.logger.Info("configured social client", "platform", TwitterPlatform)
			}
		}
	} else {
		delete(r.social, TwitterPlatform)
	}

	// LinkedIn slot
	if cfg.LinkedIn.Enabled && cfg.LinkedIn.AccessToken != "" {
		existing, ok := r.social[LinkedInPlatform].(*LinkedInClient)
		if !ok || existing.accessToken != cfg.LinkedIn.AccessToken || existing.authorURN != cfg.LinkedIn.AuthorURN {
			r.social[LinkedInPlatform] = NewLinkedInClient(LinkedInConfig{
				AccessToken: cfg.LinkedIn.AccessToken,
				AuthorURN:   cfg.LinkedIn.AuthorURN,
				Logger:      r.logger,
			})
			if r.logger != nil {
				r.logger.Info("configured social client", "platform", LinkedInPlatform)
			}
		}
	} else {
		delete(r.social, LinkedInPlatform)
	}
}

// createCompletionClient creates a completion client based on provider type.
func createCompletionClient(cfg CompletionSettings) CompletionClient {
	switch cfg.Type {
	case "openai", "":
		return NewOpenAIChatClient(OpenAIChatConfig{
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			MaxTokens:    cfg.MaxTokens,
			Temperature:  cfg.Temperature,
			SystemPrompt: cfg.SystemPrompt,
		})
	default:
		return nil
	}
}

// needsCompletionUpdate checks if the completion client needs to be recreated.
func needsCompletionUpdate(client CompletionClient, cfg CompletionSettings) bool {
	switch c := client.(type) {
	case *OpenAIChatClient:
		model := cfg.Model
		if model == "" {
			model = openAIChatDefaultModel
		}
		return c.apiKey != cfg.APIKey || c.model != model
	default:
		return true
	}
}
