package session

import (
	"context"
	"testing"
	"time"

	"github.com/travelwise/travelwise-api/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	user := &domain.User{ID: "1", Email: "admin@travelwise.com", Role: domain.RoleAdmin}

	if err := s.Set(ctx, "sid", user, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, "sid")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != "1" {
		t.Fatalf("got = %+v", got)
	}

	if err := s.Delete(ctx, "sid"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = s.Get(ctx, "sid")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != nil {
		t.Error("deleted session still present")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	user := &domain.User{ID: "2"}

	if err := s.Set(ctx, "sid", user, -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "sid")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expired session should read as absent")
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}
