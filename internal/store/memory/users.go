package memory

import (
	"sync"

	"github.com/travelwise/travelwise-api/internal/domain"
)

// UserStore is the user directory. Users are only ever appended; there is
// no update or delete path.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
	newID IDFunc
}

func NewUserStore(newID IDFunc) *UserStore {
	if newID == nil {
		newID = NewID
	}
	return &UserStore{newID: newID}
}

func (s *UserStore) List() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// FindByEmail matches on the exact email string. No case folding or
// trimming: "Admin@x.com" and "admin@x.com" are distinct entries.
func (s *UserStore) FindByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *UserStore) FindByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add appends a user with a fresh id. Returns ErrEmailExists when the exact
// email is already in the directory.
func (s *UserStore) Add(u domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return nil, domain.ErrEmailExists
		}
	}
	u.ID = s.newID()
	s.users = append(s.users, u)
	out := u
	return &out, nil
}

// Seed inserts fixture users as-is, keeping their ids. Used at startup and
// in tests; not part of the registration path.
func (s *UserStore) Seed(users ...domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, users...)
}
