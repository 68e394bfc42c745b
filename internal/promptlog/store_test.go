package promptlog

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParsePrompt(t *testing.T) {
	record := map[string]any{
		"_docID":     "bae-abc",
		"content":    "write about Go",
		"created_at": "2026-01-05T10:00:00Z",
		"updated_at": "2026-01-06T10:00:00Z",
	}

	p := parsePrompt(record)

	if p.ID != "bae-abc" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Content != "write about Go" {
		t.Errorf("Content = %q", p.Content)
	}
	if p.CreatedAt.Day() != 5 || p.UpdatedAt.Day() != 6 {
		t.Errorf("timestamps wrong: created %v updated %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestLatestOf(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	latest, err := latestOf([]Prompt{
		{ID: "a", CreatedAt: t2},
		{ID: "b", CreatedAt: t3},
		{ID: "c", CreatedAt: t1},
	})
	if err != nil {
		t.Fatalf("latestOf: %v", err)
	}
	if latest.ID != "b" {
		t.Errorf("latest = %q, want b", latest.ID)
	}
}

func TestLatestOfTieKeepsFirst(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	latest, err := latestOf([]Prompt{
		{ID: "first", CreatedAt: ts},
		{ID: "second", CreatedAt: ts},
	})
	if err != nil {
		t.Fatalf("latestOf: %v", err)
	}
	if latest.ID != "first" {
		t.Errorf("latest = %q, want first", latest.ID)
	}
}

func TestLatestOfEmpty(t *testing.T) {
	if _, err := latestOf(nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	id, err := store.Save(ctx, "original prompt")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	p, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Content != "original prompt" {
		t.Errorf("content = %q", p.Content)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps not set on save")
	}

	if err := store.Update(ctx, id, "revised prompt"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	p, _ = store.Get(ctx, id)
	if p.Content != "revised prompt" {
		t.Errorf("content after update = %q", p.Content)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 prompt, got %d", len(all))
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if err := store.Update(ctx, "missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest: expected ErrNotFound, got %v", err)
	}
}
