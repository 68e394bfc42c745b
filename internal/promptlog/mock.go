package promptlog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu     sync.Mutex
	docs   map[string]Prompt
	order  []string
	nextID int

	// Err, when set, is returned from every operation.
	Err error
	// SaveErr, when set, fails only Save calls.
	SaveErr error
}

// NewMemStore creates an empty in-memory prompt store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]Prompt)}
}

func (s *MemStore) Save(ctx context.Context, content string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("prompt-%d", s.nextID)
	now := time.Now().UTC()
	s.docs[id] = Prompt{
		ID:        id,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (*Prompt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &p, nil
}

func (s *MemStore) List(ctx context.Context) ([]Prompt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]Prompt, 0, len(s.docs))
	for _, id := range s.order {
		if p, ok := s.docs[id]; ok {
			results = append(results, p)
		}
	}
	return results, nil
}

func (s *MemStore) Update(ctx context.Context, id, content string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Content = content
	p.UpdatedAt = time.Now().UTC()
	s.docs[id] = p
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

func (s *MemStore) Latest(ctx context.Context) (*Prompt, error) {
	prompts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return latestOf(prompts)
}

// Seed adds a prompt directly, bypassing save defaults.
func (s *MemStore) Seed(p Prompt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	if p.ID == "" {
		p.ID = fmt.Sprintf("prompt-%d", s.nextID)
	}
	s.docs[p.ID] = p
	s.order = append(s.order, p.ID)
}
