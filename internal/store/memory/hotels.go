package memory

import (
	"sync"

	"github.com/travelwise/travelwise-api/internal/domain"
)

// HotelStore mirrors DestinationStore for hotel records.
type HotelStore struct {
	mu     sync.RWMutex
	hotels []domain.Hotel
	newID  IDFunc
}

func NewHotelStore(newID IDFunc) *HotelStore {
	if newID == nil {
		newID = NewID
	}
	return &HotelStore{newID: newID}
}

func (s *HotelStore) List() []domain.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

func (s *HotelStore) GetByID(id string) (*domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			h := s.hotels[i]
			return &h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *HotelStore) Add(h domain.Hotel) *domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.newID()
	s.hotels = append(s.hotels, h)
	out := h
	return &out
}

func (s *HotelStore) Update(id string, patch domain.HotelPatch) (*domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			patch.Apply(&s.hotels[i])
			h := s.hotels[i]
			return &h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *HotelStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			s.hotels = append(s.hotels[:i], s.hotels[i+1:]...)
			return true
		}
	}
	return false
}
