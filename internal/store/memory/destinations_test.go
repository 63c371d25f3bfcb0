package memory

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/travelwise/travelwise-api/internal/domain"
)

func seqIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func sampleDestination(name string) domain.Destination {
	return domain.Destination{
		Name:          name,
		Location:      "Santorini, Greece",
		Image:         "https://example.com/img.jpeg",
		Rating:        4.9,
		Reviews:       342,
		Duration:      "7 days",
		GroupSize:     "12 people",
		Price:         1299,
		OriginalPrice: 1599,
		Category:      "Beach",
		Difficulty:    "Easy",
		Highlights:    []string{"Sunset Cruise", "Wine Tasting"},
		Description:   "A lovely tour.",
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Arrival", Description: "Welcome", Activities: []string{"Pickup", "Dinner"}},
		},
		Included:     []string{"Accommodation"},
		Excluded:     []string{"Flights"},
		Requirements: []string{"Passport"},
	}
}

func TestDestinationAddThenGet(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))

	in := sampleDestination("Santorini Island Hopping")
	created := s.Add(in)
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}

	got, err := s.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	want := in
	want.ID = created.ID
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("stored record differs from input plus id:\ngot  %+v\nwant %+v", *got, want)
	}
}

func TestDestinationAddOverwritesCallerID(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))

	in := sampleDestination("X")
	in.ID = "caller-chosen"
	created := s.Add(in)
	if created.ID == "caller-chosen" {
		t.Error("caller must not be able to supply the id")
	}
}

func TestDestinationUpdateChangesOnlyPatchedFields(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))
	created := s.Add(sampleDestination("Santorini Island Hopping"))
	before, _ := s.GetByID(created.ID)

	newPrice := 999.0
	updated, err := s.Update(created.ID, domain.DestinationPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 999 {
		t.Errorf("price = %v, want 999", updated.Price)
	}

	want := *before
	want.Price = 999
	if !reflect.DeepEqual(*updated, want) {
		t.Errorf("update touched fields beyond price:\ngot  %+v\nwant %+v", *updated, want)
	}
}

func TestDestinationUpdateReplacesSlicesWholesale(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))
	created := s.Add(sampleDestination("X"))

	patch := domain.DestinationPatch{
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "New day one", Activities: []string{"Only this"}},
		},
	}
	updated, err := s.Update(created.ID, patch)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Itinerary) != 1 || updated.Itinerary[0].Title != "New day one" {
		t.Errorf("itinerary was not replaced wholesale: %+v", updated.Itinerary)
	}
	// Fields absent from the patch stay put.
	if len(updated.Highlights) != 2 {
		t.Errorf("highlights changed: %+v", updated.Highlights)
	}
}

func TestDestinationUpdateUnknownIDMutatesNothing(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))
	created := s.Add(sampleDestination("X"))

	newPrice := 1.0
	if _, err := s.Update("nope", domain.DestinationPatch{Price: &newPrice}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	got, _ := s.GetByID(created.ID)
	if got.Price != 1299 {
		t.Errorf("existing record was mutated: price = %v", got.Price)
	}
}

func TestDestinationDelete(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))
	created := s.Add(sampleDestination("X"))
	s.Add(sampleDestination("Y"))

	if !s.Delete(created.ID) {
		t.Fatal("delete of existing id should report true")
	}
	if _, err := s.GetByID(created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleted record still retrievable, err = %v", err)
	}

	if s.Delete("nope") {
		t.Error("delete of unknown id should report false")
	}
	if len(s.List()) != 1 {
		t.Errorf("collection size = %d, want 1", len(s.List()))
	}
}

func TestDestinationListPreservesInsertionOrder(t *testing.T) {
	s := NewDestinationStore(seqIDs("dest"))
	names := []string{"A", "B", "C"}
	for _, name := range names {
		s.Add(sampleDestination(name))
	}

	list := s.List()
	if len(list) != len(names) {
		t.Fatalf("len = %d, want %d", len(list), len(names))
	}
	for i, name := range names {
		if list[i].Name != name {
			t.Errorf("list[%d].Name = %q, want %q", i, list[i].Name, name)
		}
	}
}
