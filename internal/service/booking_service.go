package service

import (
	"context"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/store/memory"
	"github.com/travelwise/travelwise-api/pkg/events"
	"github.com/travelwise/travelwise-api/pkg/logger"
)

// BookingService fronts the booking store. It takes status and totalPrice
// exactly as the caller supplies them; pricing happens before this layer and
// the store stamps id and createdAt.
type BookingService struct {
	bookings *memory.BookingStore
	bus      events.Publisher
}

func NewBookingService(bookings *memory.BookingStore, bus events.Publisher) *BookingService {
	return &BookingService{bookings: bookings, bus: bus}
}

func (s *BookingService) Create(ctx context.Context, nb domain.NewBooking) *domain.Booking {
	booking := s.bookings.Add(nb)

	event := events.BookingCreatedEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		Type:       string(booking.Type),
		ItemID:     booking.ItemID,
		ItemName:   booking.ItemName,
		Guests:     booking.Guests,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
	if err := s.bus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish booking created event", "error", err, "booking_id", booking.ID)
	}

	return booking
}

func (s *BookingService) Get(id string) (*domain.Booking, error) {
	return s.bookings.GetByID(id)
}

func (s *BookingService) ListAll() []domain.Booking {
	return s.bookings.List()
}

func (s *BookingService) ListForUser(userID string) []domain.Booking {
	return s.bookings.ListByUserID(userID)
}

// SetStatus changes only the booking's status.
func (s *BookingService) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookings.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	event := events.BookingStatusChangedEvent{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Status:    string(booking.Status),
	}
	if err := s.bus.Publish(ctx, events.BookingStatusChanged, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish booking status event", "error", err, "booking_id", booking.ID)
	}

	return booking, nil
}

// CancelOwn cancels the booking only when it belongs to userID. A booking
// owned by someone else is reported as not found rather than forbidden, so
// callers cannot probe other users' booking ids.
func (s *BookingService) CancelOwn(ctx context.Context, userID, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s.SetStatus(ctx, id, domain.BookingCancelled)
}
