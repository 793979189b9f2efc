package session

import (
	"context"
	"sync"
)

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store for tests and throwaway environments.
// The zero value is not usable; call NewMemory.
type MemoryStore struct {
	mu      sync.Mutex
	sess    Session
	present bool
}

// NewMemory creates an empty in-memory session store.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadSession(_ context.Context) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return Session{}, false, nil
	}
	return s.sess, true, nil
}

func (s *MemoryStore) SaveSession(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.present = true
	return nil
}

func (s *MemoryStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
	s.present = false
	return nil
}

func (s *MemoryStore) Close() error { return nil }
