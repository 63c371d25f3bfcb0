package service

import (
	"context"
	"errors"
	"testing"

	"github.com/travelwise/travelwise-api/internal/clock"
	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/store/memory"
	"github.com/travelwise/travelwise-api/pkg/events"
)

func TestBookingLifecycleWithDanglingReference(t *testing.T) {
	bus := events.NewMemoryBus()
	var published []string
	bus.Subscribe(events.BookingCreated, func(msg *events.Message) { published = append(published, msg.Subject) })
	bus.Subscribe(events.BookingStatusChanged, func(msg *events.Message) { published = append(published, msg.Subject) })

	destinations := memory.NewDestinationStore(nil)
	hotels := memory.NewHotelStore(nil)
	catalog := NewCatalogService(destinations, hotels, bus)
	bookings := NewBookingService(memory.NewBookingStore(nil, clock.NewSystem()), bus)
	ctx := context.Background()

	dest := catalog.CreateDestination(ctx, domain.Destination{Name: "X", Price: 100, OriginalPrice: 150})

	booking := bookings.Create(ctx, domain.NewBooking{
		UserID:     "2",
		Type:       domain.BookingDestination,
		ItemID:     dest.ID,
		ItemName:   "X",
		Guests:     2,
		TotalPrice: 220,
		Status:     domain.BookingConfirmed,
	})
	if booking.ID == "" || booking.CreatedAt == "" {
		t.Fatal("store must stamp id and createdAt")
	}

	mine := bookings.ListForUser("2")
	if len(mine) != 1 || mine[0].ID != booking.ID {
		t.Fatalf("ListForUser = %+v", mine)
	}

	cancelled, err := bookings.SetStatus(ctx, booking.ID, domain.BookingCancelled)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if cancelled.Status != domain.BookingCancelled {
		t.Errorf("status = %q", cancelled.Status)
	}
	if cancelled.ItemName != "X" || cancelled.TotalPrice != 220 || cancelled.CreatedAt != booking.CreatedAt {
		t.Error("cancel must change only the status field")
	}

	// Deleting the destination leaves the booking's itemId dangling; that
	// is allowed, not an error.
	if !catalog.DeleteDestination(ctx, dest.ID) {
		t.Fatal("delete should succeed")
	}
	after, err := bookings.Get(booking.ID)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if after.ItemID != dest.ID {
		t.Errorf("itemId = %q, want dangling %q", after.ItemID, dest.ID)
	}

	if len(published) != 2 {
		t.Errorf("published events = %v, want created + status_changed", published)
	}
}

func TestCancelOwn(t *testing.T) {
	bus := events.NewMemoryBus()
	bookings := NewBookingService(memory.NewBookingStore(nil, clock.NewSystem()), bus)
	ctx := context.Background()

	booking := bookings.Create(ctx, domain.NewBooking{
		UserID: "2",
		Type:   domain.BookingHotel,
		ItemID: "1",
		Guests: 1,
		Status: domain.BookingConfirmed,
	})

	// Someone else's booking looks like it does not exist.
	if _, err := bookings.CancelOwn(ctx, "7", booking.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	cancelled, err := bookings.CancelOwn(ctx, "2", booking.ID)
	if err != nil {
		t.Fatalf("CancelOwn: %v", err)
	}
	if cancelled.Status != domain.BookingCancelled {
		t.Errorf("status = %q", cancelled.Status)
	}
}
