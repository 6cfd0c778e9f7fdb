package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. It backs tests and keeps the
// application usable when Redis cannot be reached, at the cost of sessions
// not surviving a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Data
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Data)}
}

func (s *MemoryStore) Get(_ context.Context, token string) (Data, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.sessions[token]
	return d, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, d Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = d
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
