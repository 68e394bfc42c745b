package providers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLinkedInPublish(t *testing.T) {
	var gotPath, gotAuth, gotRestli string
	var gotBody ugcPost

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRestli = r.Header.Get("X-Restli-Protocol-Version")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"urn:li:share:1"}`))
	}))
	defer srv.Close()

	client := NewLinkedInClient(LinkedInConfig{
		AccessToken: "li-token",
		AuthorURN:   "urn:li:person:abc123",
		BaseURL:     srv.URL,
		Logger:      discardLogger(),
	})

	if err := client.Publish(t.Context(), "a longer post"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if gotPath != "POST /v2/ugcPosts" {
		t.Errorf("request = %q, want POST /v2/ugcPosts", gotPath)
	}
	if gotAuth != "Bearer li-token" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotRestli != "2.0.0" {
		t.Errorf("restli header = %q", gotRestli)
	}
	if gotBody.Author != "urn:li:person:abc123" {
		t.Errorf("author = %q", gotBody.Author)
	}
	if gotBody.LifecycleState != "PUBLISHED" {
		t.Errorf("lifecycleState = %q", gotBody.LifecycleState)
	}
	if got := gotBody.SpecificContent.ShareContent.ShareCommentary.Text; got != "a longer post" {
		t.Errorf("commentary = %q", got)
	}
	if got := gotBody.Visibility.MemberNetworkVisibility; got != "PUBLIC" {
		t.Errorf("visibility = %q", got)
	}
}

func TestLinkedInPublishRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	client := NewLinkedInClient(LinkedInConfig{
		AccessToken: "expired",
		AuthorURN:   "urn:li:person:abc",
		BaseURL:     srv.URL,
		Logger:      discardLogger(),
	})

	err := client.Publish(t.Context(), "post")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.Provider != LinkedInPlatform || upErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("got provider=%q status=%d", upErr.Provider, upErr.StatusCode)
	}
}
