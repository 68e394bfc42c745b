package drafts

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu     sync.Mutex
	docs   map[string]Draft
	order  []string
	nextID int

	// Err, when set, is returned from every operation.
	Err error
	// UpdateStatusErr, when set, fails only UpdateStatus calls.
	UpdateStatusErr error
	// Now overrides the insert timestamp when non-zero.
	Now time.Time
}

// NewMemStore creates an empty in-memory draft store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]Draft)}
}

func (s *MemStore) Insert(ctx context.Context, content string, platform Platform) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("draft-%d", s.nextID)
	ts := s.Now
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	s.docs[id] = Draft{
		ID:        id,
		Content:   content,
		Platform:  platform,
		Status:    StatusPending,
		Timestamp: ts,
	}
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemStore) FindByStatus(ctx context.Context, status Status) ([]Draft, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Draft
	for _, id := range s.order {
		d, ok := s.docs[id]
		if ok && d.Status == status {
			results = append(results, d)
		}
	}
	return results, nil
}

func (s *MemStore) FindByID(ctx context.Context, id string) (*Draft, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &d, nil
}

func (s *MemStore) UpdateContent(ctx context.Context, id, content string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	d.Content = content
	s.docs[id] = d
	return nil
}

func (s *MemStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	if s.Err != nil {
		return s.Err
	}
	if s.UpdateStatusErr != nil {
		return s.UpdateStatusErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	d.Status = status
	s.docs[id] = d
	return nil
}

func (s *MemStore) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.docs, id)
	return nil
}

// Seed adds a draft directly, bypassing insert defaults.
func (s *MemStore) Seed(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	if d.ID == "" {
		d.ID = fmt.Sprintf("draft-%d", s.nextID)
	}
	s.docs[d.ID] = d
	s.order = append(s.order, d.ID)
}

// Len reports the number of stored drafts.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
