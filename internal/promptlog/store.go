// Package promptlog stores the prompts used to generate drafts, so past
// prompts can be reviewed, reused, and refined.
package promptlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/draftdeck/draftdeck/internal/defra"
)

// ErrNotFound is returned when no prompt matches the given ID, or when
// Latest is called on an empty log.
var ErrNotFound = errors.New("prompt not found")

// Collection is the DefraDB collection name for prompts.
const Collection = "Prompt"

var promptFields = []string{"_docID", "content", "created_at", "updated_at"}

// Prompt is a saved generation prompt.
type Prompt struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists prompts.
type Store interface {
	// Save stores a new prompt and returns its document ID.
	Save(ctx context.Context, content string) (string, error)
	// Get returns a single prompt or ErrNotFound.
	Get(ctx context.Context, id string) (*Prompt, error)
	// List returns all saved prompts.
	List(ctx context.Context) ([]Prompt, error)
	// Update replaces a prompt's content and bumps updated_at.
	Update(ctx context.Context, id, content string) error
	// Delete removes a prompt or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Latest returns the most recently created prompt, or ErrNotFound
	// when the log is empty.
	Latest(ctx context.Context) (*Prompt, error)
}

// DefraStore stores prompts in the DefraDB Prompt collection.
type DefraStore struct {
	client *defra.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewDefraStore creates a prompt store backed by the given DefraDB client.
func NewDefraStore(client *defra.Client, logger *slog.Logger) *DefraStore {
	return &DefraStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (s *DefraStore) Save(ctx context.Context, content string) (string, error) {
	now := s.now().UTC().Format(time.RFC3339)
	input := map[string]any{
		"content":    content,
		"created_at": now,
		"updated_at": now,
	}

	docID, err := s.client.Create(ctx, Collection, input)
	if err != nil {
		return "", fmt.Errorf("failed to save prompt: %w", err)
	}

	s.logger.Debug("prompt saved", "id", docID)
	return docID, nil
}

func (s *DefraStore) Get(ctx context.Context, id string) (*Prompt, error) {
	safeID, err := defra.SafeID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	resp, err := defra.SafeQueryByDocID(ctx, s.client, Collection, safeID, promptFields...)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompt: %w", err)
	}
	if errMsg := resp.Error(); errMsg != "" {
		return nil, fmt.Errorf("query error: %s", errMsg)
	}

	docs, _ := resp.Data[Collection].([]any)
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	record, ok := docs[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected document format for prompt %s", id)
	}

	p := parsePrompt(record)
	return &p, nil
}

func (s *DefraStore) List(ctx context.Context) ([]Prompt, error) {
	resp, err := defra.NewQuery(Collection).Fields(promptFields...).Execute(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompts: %w", err)
	}
	if errMsg := resp.Error(); errMsg != "" {
		return nil, fmt.Errorf("query error: %s", errMsg)
	}

	docs, _ := resp.Data[Collection].([]any)
	results := make([]Prompt, 0, len(docs))
	for _, doc := range docs {
		record, ok := doc.(map[string]any)
		if !ok {
			continue
		}
		results = append(results, parsePrompt(record))
	}

	return results, nil
}

func (s *DefraStore) Update(ctx context.Context, id, content string) error {
	safeID, err := defra.SafeID(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	input := map[string]any{
		"content":    content,
		"updated_at": s.now().UTC().Format(time.RFC3339),
	}
	matched, err := s.client.Update(ctx, Collection, safeID, input)
	if err != nil {
		return fmt.Errorf("failed to update prompt: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *DefraStore) Delete(ctx context.Context, id string) error {
	safeID, err := defra.SafeID(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	matched, err := s.client.Delete(ctx, Collection, safeID)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *DefraStore) Latest(ctx context.Context) (*Prompt, error) {
	prompts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return latestOf(prompts)
}

// latestOf scans for the prompt with the greatest created_at. Ties keep
// the first candidate seen.
func latestOf(prompts []Prompt) (*Prompt, error) {
	if len(prompts) == 0 {
		return nil, fmt.Errorf("%w: no prompts saved", ErrNotFound)
	}

	latest := prompts[0]
	for _, p := range prompts[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return &latest, nil
}

func parsePrompt(record map[string]any) Prompt {
	p := Prompt{}
	if v, ok := record["_docID"].(string); ok {
		p.ID = v
	}
	if v, ok := record["content"].(string); ok {
		p.Content = v
	}
	if v, ok := record["created_at"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			p.CreatedAt = ts
		}
	}
	if v, ok := record["updated_at"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			p.UpdatedAt = ts
		}
	}
	return p
}
