package memory

import (
	"errors"
	"testing"

	"github.com/travelwise/travelwise-api/internal/domain"
)

func TestUserAddAndFindByEmail(t *testing.T) {
	s := NewUserStore(seqIDs("user"))

	created, err := s.Add(domain.User{Email: "new@example.com", Name: "New User", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}

	got, err := s.FindByEmail("new@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("id = %q, want %q", got.ID, created.ID)
	}
}

func TestUserFindByEmailIsExactMatch(t *testing.T) {
	s := NewUserStore(seqIDs("user"))
	s.Seed(SeedUsers()...)

	// Case variants and padded input do not resolve to an existing user.
	for _, email := range []string{"ADMIN@TravelWise.com", " admin@travelwise.com", "admin@travelwise.com "} {
		if _, err := s.FindByEmail(email); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("FindByEmail(%q) err = %v, want ErrNotFound", email, err)
		}
	}

	// A case-variant registration is a distinct entry, not a conflict.
	if _, err := s.Add(domain.User{Email: "Admin@travelwise.com", Name: "Other Admin"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := s.FindByEmail("Admin@travelwise.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.Name != "Other Admin" {
		t.Errorf("resolved name = %q, want %q", got.Name, "Other Admin")
	}
}

func TestUserFindByID(t *testing.T) {
	s := NewUserStore(nil)
	s.Seed(SeedUsers()...)

	admin, err := s.FindByID("1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if admin.Email != "admin@travelwise.com" {
		t.Errorf("email = %q, want admin@travelwise.com", admin.Email)
	}

	if _, err := s.FindByID("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUserAddDuplicateEmail(t *testing.T) {
	s := NewUserStore(seqIDs("user"))
	s.Seed(SeedUsers()...)

	before := len(s.List())
	if _, err := s.Add(domain.User{Email: "admin@travelwise.com", Name: "Imposter"}); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
	if len(s.List()) != before {
		t.Error("duplicate registration appended a record")
	}
}

func TestSeedUsers(t *testing.T) {
	s := NewUserStore(nil)
	s.Seed(SeedUsers()...)

	admin, err := s.FindByEmail("admin@travelwise.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", admin.Role)
	}

	if _, err := s.FindByEmail("nobody@x.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
