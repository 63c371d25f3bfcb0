package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/travelwise/travelwise-api/internal/clock"
	"github.com/travelwise/travelwise-api/internal/domain"
)

func sampleBooking(userID string) domain.NewBooking {
	return domain.NewBooking{
		UserID:     userID,
		Type:       domain.BookingDestination,
		ItemID:     "dest-1",
		ItemName:   "Santorini Island Hopping",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-01",
		Guests:     2,
		TotalPrice: 2858,
		Status:     domain.BookingConfirmed,
	}
}

func TestBookingAddAssignsIDAndCreatedAt(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s := NewBookingStore(seqIDs("bkg"), clock.NewFixed(fixed))

	b := s.Add(sampleBooking("2"))
	if b.ID == "" {
		t.Fatal("expected assigned id")
	}
	if b.CreatedAt != fixed.Format(time.RFC3339) {
		t.Errorf("createdAt = %q, want %q", b.CreatedAt, fixed.Format(time.RFC3339))
	}
	if b.Status != domain.BookingConfirmed {
		t.Errorf("status = %q, want caller-supplied %q", b.Status, domain.BookingConfirmed)
	}
}

func TestBookingIDsUniqueAndCreatedAtMonotonic(t *testing.T) {
	s := NewBookingStore(nil, clock.NewSystem())

	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 50; i++ {
		b := s.Add(sampleBooking("2"))
		if seen[b.ID] {
			t.Fatalf("duplicate id %q", b.ID)
		}
		seen[b.ID] = true
		if prev != "" && b.CreatedAt < prev {
			t.Fatalf("createdAt went backwards: %q after %q", b.CreatedAt, prev)
		}
		prev = b.CreatedAt
	}
}

func TestBookingListByUserID(t *testing.T) {
	s := NewBookingStore(seqIDs("bkg"), clock.NewSystem())

	first := s.Add(sampleBooking("2"))
	s.Add(sampleBooking("7"))
	second := s.Add(sampleBooking("2"))

	mine := s.ListByUserID("2")
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}
	if mine[0].ID != first.ID || mine[1].ID != second.ID {
		t.Errorf("creation order not preserved: %q, %q", mine[0].ID, mine[1].ID)
	}

	// Exactly the userId-matching subset of the full list.
	var want int
	for _, b := range s.List() {
		if b.UserID == "2" {
			want++
		}
	}
	if len(mine) != want {
		t.Errorf("subset size = %d, want %d", len(mine), want)
	}
}

func TestBookingUpdateStatusChangesOnlyStatus(t *testing.T) {
	s := NewBookingStore(seqIDs("bkg"), clock.NewSystem())
	created := s.Add(sampleBooking("2"))

	updated, err := s.UpdateStatus(created.ID, domain.BookingCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.BookingCancelled {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}

	want := *created
	want.Status = domain.BookingCancelled
	if *updated != want {
		t.Errorf("fields beyond status changed:\ngot  %+v\nwant %+v", *updated, want)
	}
}

func TestBookingUpdateStatusUnknownID(t *testing.T) {
	s := NewBookingStore(seqIDs("bkg"), clock.NewSystem())
	if _, err := s.UpdateStatus("nope", domain.BookingCancelled); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
