package memory

import (
	"sync"

	"github.com/travelwise/travelwise-api/internal/domain"
)

// DestinationStore keeps destinations in insertion order behind a coarse
// lock. It performs no validation of field contents; cleaning inputs is the
// caller's job.
type DestinationStore struct {
	mu           sync.RWMutex
	destinations []domain.Destination
	newID        IDFunc
}

func NewDestinationStore(newID IDFunc) *DestinationStore {
	if newID == nil {
		newID = NewID
	}
	return &DestinationStore{newID: newID}
}

// List returns a snapshot of the collection in insertion order.
func (s *DestinationStore) List() []domain.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

func (s *DestinationStore) GetByID(id string) (*domain.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.destinations {
		if s.destinations[i].ID == id {
			d := s.destinations[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add assigns a fresh id, appends, and returns the stored record. Any id on
// the input is overwritten.
func (s *DestinationStore) Add(d domain.Destination) *domain.Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.newID()
	s.destinations = append(s.destinations, d)
	out := d
	return &out
}

// Update shallow-merges the patch onto the record at its current position.
// Nothing is mutated when the id is unknown.
func (s *DestinationStore) Update(id string, patch domain.DestinationPatch) (*domain.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.destinations {
		if s.destinations[i].ID == id {
			patch.Apply(&s.destinations[i])
			d := s.destinations[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes the first matching record and reports whether a removal
// occurred. Bookings referencing the deleted id are left alone.
func (s *DestinationStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.destinations {
		if s.destinations[i].ID == id {
			s.destinations = append(s.destinations[:i], s.destinations[i+1:]...)
			return true
		}
	}
	return false
}
