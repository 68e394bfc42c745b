package providers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chatCompletionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"model": "gpt-4o-mini",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": "first post\n\nsecond post"},
			"finish_reason": "stop"
		}
	]
}`

func TestOpenAIComplete(t *testing.T) {
	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	}))
	defer srv.Close()

	client := NewOpenAIChatClient(OpenAIChatConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	})

	text, err := client.Complete(t.Context(), "write two posts")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "first post\n\nsecond post" {
		t.Errorf("text = %q", text)
	}
	if gotPath != "POST /chat/completions" {
		t.Errorf("request = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth header = %q", gotAuth)
	}
}

func TestOpenAICompleteEmptyPrompt(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewOpenAIChatClient(OpenAIChatConfig{APIKey: "sk-test", BaseURL: srv.URL})

	if _, err := client.Complete(t.Context(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if called {
		t.Error("empty prompt should be rejected before any request is made")
	}
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIChatClient(OpenAIChatConfig{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := client.Complete(t.Context(), "prompt")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.Provider != OpenAIChatName {
		t.Errorf("provider = %q", upErr.Provider)
	}
}

func TestOpenAICompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIChatClient(OpenAIChatConfig{
		APIKey:     "sk-bad",
		BaseURL:    srv.URL,
		MaxRetries: 1,
	})

	_, err := client.Complete(t.Context(), "prompt")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", upErr.StatusCode)
	}
}

func TestOpenAIDefaults(t *testing.T) {
	client := NewOpenAIChatClient(OpenAIChatConfig{APIKey: "sk-test"})
	if client.Model() != string(openAIChatDefaultModel) {
		t.Errorf("model = %q", client.Model())
	}
	if client.Name() != OpenAIChatName {
		t.Errorf("name = %q", client.Name())
	}
	if client.maxTokens != 1024 {
		t.Errorf("maxTokens = %d", client.maxTokens)
	}
	if client.systemPrompt == "" {
		t.Error("system prompt not defaulted")
	}
}
