package drafts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/draftdeck/draftdeck/internal/defra"
)

// ErrNotFound is returned when no draft matches the given ID.
var ErrNotFound = errors.New("draft not found")

// Collection is the DefraDB collection name for drafts.
const Collection = "Draft"

var draftFields = []string{"_docID", "content", "platform", "status", "timestamp"}

// Store persists drafts.
type Store interface {
	// Insert stores a new pending draft and returns its document ID.
	Insert(ctx context.Context, content string, platform Platform) (string, error)
	// FindByStatus returns all drafts with the given status.
	FindByStatus(ctx context.Context, status Status) ([]Draft, error)
	// FindByID returns a single draft or ErrNotFound.
	FindByID(ctx context.Context, id string) (*Draft, error)
	// UpdateContent replaces a draft's content. Platform and status are untouched.
	UpdateContent(ctx context.Context, id, content string) error
	// UpdateStatus transitions a draft's lifecycle status.
	UpdateStatus(ctx context.Context, id string, status Status) error
	// Delete removes a draft or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// DefraStore stores drafts in the DefraDB Draft collection.
type DefraStore struct {
	client *defra.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewDefraStore creates a draft store backed by the given DefraDB client.
func NewDefraStore(client *defra.Client, logger *slog.Logger) *DefraStore {
	return &DefraStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (s *DefraStore) Insert(ctx context.Context, content string, platform Platform) (string, error) {
	input := map[string]any{
		"content":   content,
		"platform":  string(platform),
		"status":    string(StatusPending),
		"timestamp": s.now().UTC().Format(time.RFC3339),
	}

	docID, err := s.client.Create(ctx, Collection, input)
	if err != nil {
		return "", fmt.Errorf("failed to insert draft: %w", err)
	}

	s.logger.Debug("draft inserted", "id", docID, "platform", platform)
	return docID, nil
}

func (s *DefraStore) FindByStatus(ctx context.Context, status Status) ([]Draft, error) {
	resp, err := defra.SafeQuery(ctx, s.client, Collection, "status", string(status), draftFields...)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	if errMsg := resp.Error(); errMsg != "" {
		return nil, fmt.Errorf("query error: %s", errMsg)
	}

	docs, _ := resp.Data[Collection].([]any)
	results := make([]Draft, 0, len(docs))
	for _, doc := range docs {
		record, ok := doc.(map[string]any)
		if !ok {
			continue
		}
		results = append(results, parseDraft(record))
	}

	return results, nil
}

func (s *DefraStore) FindByID(ctx context.Context, id string) (*Draft, error) {
	safeID, err := defra.SafeID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	resp, err := defra.SafeQueryByDocID(ctx, s.client, Collection, safeID, draftFields...)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft: %w", err)
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
		return nil, fmt.Errorf("unexpected document format for draft %s", id)
	}

	draft := parseDraft(record)
	return &draft, nil
}

func (s *DefraStore) UpdateContent(ctx context.Context, id, content string) error {
	return s.update(ctx, id, map[string]any{"content": content})
}

func (s *DefraStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	return s.update(ctx, id, map[string]any{"status": string(status)})
}

func (s *DefraStore) update(ctx context.Context, id string, input map[string]any) error {
	safeID, err := defra.SafeID(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	matched, err := s.client.Update(ctx, Collection, safeID, input)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
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
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// parseDraft converts a DefraDB document into a Draft. Missing or
// malformed fields fall back to zero values rather than erroring, so a
// partially written document still lists.
func parseDraft(record map[string]any) Draft {
	d := Draft{}
	if v, ok := record["_docID"].(string); ok {
		d.ID = v
	}
	if v, ok := record["content"].(string); ok {
		d.Content = v
	}
	if v, ok := record["platform"].(string); ok {
		d.Platform = Platform(v)
	}
	if v, ok := record["status"].(string); ok {
		d.Status = Status(v)
	}
	if v, ok := record["timestamp"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			d.Timestamp = ts
		}
	}
	return d
}
