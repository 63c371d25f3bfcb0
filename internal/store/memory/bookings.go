package memory

import (
	"sync"
	"time"

	"github.com/travelwise/travelwise-api/internal/clock"
	"github.com/travelwise/travelwise-api/internal/domain"
)

// BookingStore appends bookings in creation order. Bookings are never
// deleted; the only mutation after creation is the status field.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	newID    IDFunc
	clock    clock.Clock
}

func NewBookingStore(newID IDFunc, clk clock.Clock) *BookingStore {
	if newID == nil {
		newID = NewID
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &BookingStore{newID: newID, clock: clk}
}

func (s *BookingStore) List() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ListByUserID returns the user's bookings preserving creation order.
func (s *BookingStore) ListByUserID(userID string) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Booking
	for i := range s.bookings {
		if s.bookings[i].UserID == userID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

func (s *BookingStore) GetByID(id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add stamps id and createdAt and appends. Status and totalPrice are taken
// as supplied; the store injects no defaults and recomputes nothing.
func (s *BookingStore) Add(nb domain.NewBooking) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := domain.Booking{
		ID:         s.newID(),
		UserID:     nb.UserID,
		Type:       nb.Type,
		ItemID:     nb.ItemID,
		ItemName:   nb.ItemName,
		CheckIn:    nb.CheckIn,
		CheckOut:   nb.CheckOut,
		Guests:     nb.Guests,
		TotalPrice: nb.TotalPrice,
		Status:     nb.Status,
		CreatedAt:  s.clock.Now().Format(time.RFC3339),
	}
	s.bookings = append(s.bookings, b)
	out := b
	return &out
}

// UpdateStatus changes only the status field; every other field is immutable
// after creation.
func (s *BookingStore) UpdateStatus(id string, status domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}
