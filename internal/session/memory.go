package session

import (
	"context"
	"sync"
	"time"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

type memoryEntry struct {
	state     quiz.Session
	expiresAt time.Time
}

// MemoryStore is the single-instance default: a mutex-guarded map with lazy
// TTL eviction.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (quiz.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return quiz.Session{}, nil
	}
	return entry.state, nil
}

func (s *MemoryStore) Put(_ context.Context, id string, state quiz.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = memoryEntry{state: state, expiresAt: s.now().Add(s.ttl)}

	// Piggyback eviction of expired entries on writes; the session count is
	// bounded by active conversations, so a full sweep is cheap.
	now := s.now()
	for key, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, key)
		}
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
