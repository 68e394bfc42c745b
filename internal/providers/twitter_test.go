package providers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTwitterPublish(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody tweetRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"1"}}`))
	}))
	defer srv.Close()

	client := NewTwitterClient(TwitterConfig{
		AccessToken: "tok-123",
		BaseURL:     srv.URL,
		Logger:      discardLogger(),
	})

	if err := client.Publish(t.Context(), "hello world"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if gotPath != "POST /2/tweets" {
		t.Errorf("request = %q, want POST /2/tweets", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.Text != "hello world" {
		t.Errorf("tweet text = %q", gotBody.Text)
	}
}

func TestTwitterPublishRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"duplicate content"}`))
	}))
	defer srv.Close()

	client := NewTwitterClient(TwitterConfig{
		AccessToken: "tok",
		BaseURL:     srv.URL,
		Logger:      discardLogger(),
	})

	err := client.Publish(t.Context(), "dup")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.Provider != TwitterPlatform || upErr.StatusCode != http.StatusForbidden {
		t.Errorf("got provider=%q status=%d", upErr.Provider, upErr.StatusCode)
	}
}

func TestTwitterPublishTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := NewTwitterClient(TwitterConfig{
		AccessToken: "tok",
		BaseURL:     srv.URL,
		Logger:      discardLogger(),
	})

	err := client.Publish(t.Context(), "post")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for transport failure", upErr.StatusCode)
	}
}
