package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("DRAFTDECK_TEST_KEY", "sk-resolved")
	t.Setenv("DRAFTDECK_TEST_URN", "urn:li:person:abc")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"no refs", "plain-value", "plain-value"},
		{"single ref", "${DRAFTDECK_TEST_KEY}", "sk-resolved"},
		{"embedded ref", "prefix-${DRAFTDECK_TEST_KEY}-suffix", "prefix-sk-resolved-suffix"},
		{"two refs", "${DRAFTDECK_TEST_KEY}:${DRAFTDECK_TEST_URN}", "sk-resolved:urn:li:person:abc"},
		{"unset ref", "${DRAFTDECK_TEST_UNSET}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEnvVars(tt.value); got != tt.want {
				t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Completion.Type != "openai" {
		t.Errorf("completion type = %q", cfg.Completion.Type)
	}
	if cfg.Completion.APIKey != "${OPENAI_API_KEY}" {
		t.Errorf("api key = %q, want env reference kept verbatim", cfg.Completion.APIKey)
	}
	if cfg.Defra.ContainerName != "draftdeck-defra" {
		t.Errorf("container name = %q", cfg.Defra.ContainerName)
	}
	if cfg.Defra.Port != "9181" {
		t.Errorf("defra port = %q", cfg.Defra.Port)
	}
}

func TestToProviderRegistryConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("TWITTER_ACCESS_TOKEN", "")

	cfg := DefaultConfig()
	rc := cfg.ToProviderRegistryConfig()

	if rc.Completion.APIKey != "sk-from-env" {
		t.Errorf("completion api key = %q, want resolved value", rc.Completion.APIKey)
	}
	if rc.Twitter.AccessToken != "" {
		t.Errorf("twitter token = %q, want empty for unset env var", rc.Twitter.AccessToken)
	}
	if !rc.Completion.Enabled || !rc.Twitter.Enabled {
		t.Error("enabled flags not carried over")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(data)

	// Credentials are written as references, never resolved values.
	if !strings.Contains(content, "${OPENAI_API_KEY}") {
		t.Error("config missing OPENAI_API_KEY reference")
	}
	if !strings.Contains(content, "sourcenetwork/defradb") {
		t.Error("config missing defra image")
	}
	if !strings.HasPrefix(content, "# draftdeck configuration") {
		t.Error("config missing header comment")
	}
}
