package contact

import (
	"context"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[string]Submission
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]Submission{}}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sub.ID] = sub
	return nil
}

// Get exists for tests and operator tooling; the public site only
// writes.
func (s *MemStore) Get(id string) (Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.m[id]
	return sub, ok
}
