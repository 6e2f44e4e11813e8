package session

import (
	"context"
	"sync"
	"time"

	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process session store. Used in
// development mode and in tests; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an in-memory store with the given session TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

// Save stores or refreshes a session.
func (s *MemoryStore) Save(_ context.Context, id string, data Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Get returns the session data, expiring lazily.
func (s *MemoryStore) Get(_ context.Context, id string) (Data, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return Data{}, apperrors.ErrSessionNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Data{}, apperrors.ErrSessionNotFound
	}
	return entry.data, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
