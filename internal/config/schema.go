package config

// Config holds draftdeck configuration.
// Stored at: ~/.draftdeck/config.yaml
type Config struct {
	Completion CompletionCfg `mapstructure:"completion" yaml:"completion"`
	Publishers PublishersCfg `mapstructure:"publishers" yaml:"publishers"`
	Defra      DefraConfig   `mapstructure:"defra" yaml:"defra"`
}

// CompletionCfg configures the completion provider.
type CompletionCfg struct {
	Type         string  `mapstructure:"type" yaml:"type"`                     // "openai"
	Model        string  `mapstructure:"model" yaml:"model"`                   // Model name
	APIKey       string  `mapstructure:"api_key" yaml:"api_key"`               // API key (supports ${ENV_VAR} syntax)
	SystemPrompt string  `mapstructure:"system_prompt" yaml:"system_prompt"`   // Optional override
	MaxTokens    int     `mapstructure:"max_tokens" yaml:"max_tokens"`         // Completion token budget
	Temperature  float64 `mapstructure:"temperature" yaml:"temperature"`
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
}

// PublishersCfg configures the social platform clients.
type PublishersCfg struct {
	Twitter  TwitterCfg  `mapstructure:"twitter" yaml:"twitter"`
	LinkedIn LinkedInCfg `mapstructure:"linkedin" yaml:"linkedin"`
}

// TwitterCfg configures the Twitter/X publisher.
type TwitterCfg struct {
	AccessToken string `mapstructure:"access_token" yaml:"access_token"` // Supports ${ENV_VAR} syntax
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
}

// LinkedInCfg configures the LinkedIn publisher.
type LinkedInCfg struct {
	AccessToken string `mapstructure:"access_token" yaml:"access_token"` // Supports ${ENV_VAR} syntax
	AuthorURN   string `mapstructure:"author_urn" yaml:"author_urn"`     // e.g. urn:li:person:abc123
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DefraConfig holds DefraDB container configuration.
type DefraConfig struct {
	// ContainerName is the Docker container name (default: draftdeck-defra)
	ContainerName string `mapstructure:"container_name" yaml:"container_name"`
	// Image is the Docker image to use (default: sourcenetwork/defradb:latest)
	Image string `mapstructure:"image" yaml:"image"`
	// Port is the host port to bind (default: 9181)
	Port string `mapstructure:"port" yaml:"port"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Completion: CompletionCfg{
			Type:        "openai",
			Model:       "gpt-4o-mini",
			APIKey:      "${OPENAI_API_KEY}",
			MaxTokens:   1024,
			Temperature: 1.0,
			Enabled:     true,
		},
		Publishers: PublishersCfg{
			Twitter: TwitterCfg{
				AccessToken: "${TWITTER_ACCESS_TOKEN}",
				Enabled:     true,
			},
			LinkedIn: LinkedInCfg{
				AccessToken: "${LINKEDIN_ACCESS_TOKEN}",
				AuthorURN:   "${LINKEDIN_AUTHOR_URN}",
				Enabled:     true,
			},
		},
		Defra: DefraConfig{
			ContainerName: "draftdeck-defra",
			Image:         "sourcenetwork/defradb:latest",
			Port:          "9181",
		},
	}
}
