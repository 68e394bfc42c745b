package publish

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/providers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishDispatchesByPlatform(t *testing.T) {
	twitter := &providers.MockSocialClient{PlatformName: "twitter"}
	linkedin := &providers.MockSocialClient{PlatformName: "linkedin"}

	registry := providers.NewRegistry()
	registry.RegisterSocial(twitter)
	registry.RegisterSocial(linkedin)

	p := New(registry, testLogger())

	err := p.Publish(context.Background(), &drafts.Draft{
		ID:       "draft-1",
		Content:  "a short post",
		Platform: drafts.PlatformTwitter,
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if twitter.PublishCount() != 1 {
		t.Errorf("twitter publish count = %d, want 1", twitter.PublishCount())
	}
	if linkedin.PublishCount() != 0 {
		t.Errorf("linkedin publish count = %d, want 0", linkedin.PublishCount())
	}
	if got := twitter.Published()[0]; got != "a short post" {
		t.Errorf("published content = %q", got)
	}
}

func TestPublishUnknownPlatform(t *testing.T) {
	p := New(providers.NewRegistry(), testLogger())

	err := p.Publish(context.Background(), &drafts.Draft{
		ID:       "draft-1",
		Content:  "content",
		Platform: "myspace",
	})

	var unknownErr *ErrUnknownPlatform
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected ErrUnknownPlatform, got %v", err)
	}
	if unknownErr.Platform != "myspace" {
		t.Errorf("platform = %q", unknownErr.Platform)
	}
}

func TestPublishNotConfigured(t *testing.T) {
	// Known platform but no client registered for it.
	p := New(providers.NewRegistry(), testLogger())

	err := p.Publish(context.Background(), &drafts.Draft{
		ID:       "draft-1",
		Content:  "content",
		Platform: drafts.PlatformLinkedIn,
	})

	var notConfigured *providers.NotConfiguredError
	if !errors.As(err, &notConfigured) {
		t.Fatalf("expected NotConfiguredError, got %v", err)
	}
}

func TestPublishClientError(t *testing.T) {
	upstream := &providers.UpstreamError{Provider: "twitter", StatusCode: 503, Message: "over capacity"}
	twitter := &providers.MockSocialClient{PlatformName: "twitter", Err: upstream}

	registry := providers.NewRegistry()
	registry.RegisterSocial(twitter)

	p := New(registry, testLogger())
	err := p.Publish(context.Background(), &drafts.Draft{
		ID:       "draft-1",
		Content:  "content",
		Platform: drafts.PlatformTwitter,
	})

	var upstreamErr *providers.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected wrapped UpstreamError, got %v", err)
	}
	if upstreamErr.StatusCode != 503 {
		t.Errorf("status = %d", upstreamErr.StatusCode)
	}
}
