// Package session persists the logged-in user record keyed by session id.
// The rest of the system treats it as an opaque key-value collaborator:
// get returns a user or nothing, set stores one, delete revokes it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/travelwise/travelwise-api/internal/domain"
)

type Store interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, id string, user *domain.User, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type entry struct {
	user      domain.User
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are dropped
// lazily on read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, id)
		return nil, nil
	}
	u := e.user
	return &u, nil
}

func (s *MemoryStore) Set(_ context.Context, id string, user *domain.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = entry{user: *user, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
