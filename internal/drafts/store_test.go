package drafts

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseDraft(t *testing.T) {
	record := map[string]any{
		"_docID":    "bae-123",
		"content":   "hello",
		"platform":  "twitter",
		"status":    "pending",
		"timestamp": "2026-01-05T10:00:00Z",
	}

	d := parseDraft(record)

	if d.ID != "bae-123" {
		t.Errorf("ID = %q", d.ID)
	}
	if d.Content != "hello" {
		t.Errorf("Content = %q", d.Content)
	}
	if d.Platform != PlatformTwitter {
		t.Errorf("Platform = %q", d.Platform)
	}
	if d.Status != StatusPending {
		t.Errorf("Status = %q", d.Status)
	}
	want := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	if !d.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", d.Timestamp, want)
	}
}

func TestParseDraftMalformedFields(t *testing.T) {
	record := map[string]any{
		"_docID":    "bae-123",
		"content":   42,
		"timestamp": "not-a-time",
	}

	d := parseDraft(record)

	if d.ID != "bae-123" {
		t.Errorf("ID = %q", d.ID)
	}
	if d.Content != "" {
		t.Errorf("expected empty content for non-string field, got %q", d.Content)
	}
	if !d.Timestamp.IsZero() {
		t.Errorf("expected zero timestamp for unparseable value, got %v", d.Timestamp)
	}
}

func TestMemStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	id, err := store.Insert(ctx, "hello", PlatformTwitter)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	d, err := store.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if d.Status != StatusPending {
		t.Errorf("new draft status = %q, want pending", d.Status)
	}
	if d.Timestamp.IsZero() {
		t.Error("new draft has zero timestamp")
	}

	if err := store.UpdateContent(ctx, id, "edited"); err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	d, _ = store.FindByID(ctx, id)
	if d.Content != "edited" {
		t.Errorf("content = %q after update", d.Content)
	}
	if d.Platform != PlatformTwitter || d.Status != StatusPending {
		t.Errorf("content update changed platform/status: %+v", d)
	}

	if err := store.UpdateStatus(ctx, id, StatusPosted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	pending, _ := store.FindByStatus(ctx, StatusPending)
	if len(pending) != 0 {
		t.Errorf("expected no pending drafts, got %d", len(pending))
	}
	posted, _ := store.FindByStatus(ctx, StatusPosted)
	if len(posted) != 1 {
		t.Errorf("expected 1 posted draft, got %d", len(posted))
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.FindByID(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if _, err := store.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID: expected ErrNotFound, got %v", err)
	}
	if err := store.UpdateContent(ctx, "missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateContent: expected ErrNotFound, got %v", err)
	}
	if err := store.UpdateStatus(ctx, "missing", StatusPosted); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}
