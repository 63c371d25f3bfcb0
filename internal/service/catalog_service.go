package service

import (
	"context"
	"strings"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/store/memory"
	"github.com/travelwise/travelwise-api/pkg/events"
	"github.com/travelwise/travelwise-api/pkg/logger"
)

// CatalogFilter narrows list results. Zero values and "All" mean no filter,
// matching the browse pages' behavior.
type CatalogFilter struct {
	Query      string
	Category   string
	Difficulty string
}

func (f CatalogFilter) matchesText(name, location string) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(location), q)
}

func filterActive(v string) bool {
	return v != "" && v != "All"
}

// CatalogService fronts the destination and hotel stores: read paths for
// the public site, write paths for the admin console. Write paths strip
// blank list entries before storing since the store itself validates
// nothing.
type CatalogService struct {
	destinations *memory.DestinationStore
	hotels       *memory.HotelStore
	bus          events.Publisher
}

func NewCatalogService(destinations *memory.DestinationStore, hotels *memory.HotelStore, bus events.Publisher) *CatalogService {
	return &CatalogService{destinations: destinations, hotels: hotels, bus: bus}
}

func (s *CatalogService) ListDestinations(filter CatalogFilter) []domain.Destination {
	all := s.destinations.List()
	out := make([]domain.Destination, 0, len(all))
	for _, d := range all {
		if !filter.matchesText(d.Name, d.Location) {
			continue
		}
		if filterActive(filter.Category) && d.Category != filter.Category {
			continue
		}
		if filterActive(filter.Difficulty) && d.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *CatalogService) GetDestination(id string) (*domain.Destination, error) {
	return s.destinations.GetByID(id)
}

func (s *CatalogService) CreateDestination(ctx context.Context, d domain.Destination) *domain.Destination {
	d.Highlights = stripBlank(d.Highlights)
	d.Included = stripBlank(d.Included)
	d.Excluded = stripBlank(d.Excluded)
	d.Requirements = stripBlank(d.Requirements)
	for i := range d.Itinerary {
		d.Itinerary[i].Activities = stripBlank(d.Itinerary[i].Activities)
	}

	created := s.destinations.Add(d)
	s.publish(ctx, events.DestinationCreated, events.CatalogItemEvent{ItemID: created.ID, Name: created.Name})
	return created
}

func (s *CatalogService) UpdateDestination(ctx context.Context, id string, patch domain.DestinationPatch) (*domain.Destination, error) {
	patch.Highlights = stripBlank(patch.Highlights)
	patch.Included = stripBlank(patch.Included)
	patch.Excluded = stripBlank(patch.Excluded)
	patch.Requirements = stripBlank(patch.Requirements)
	for i := range patch.Itinerary {
		patch.Itinerary[i].Activities = stripBlank(patch.Itinerary[i].Activities)
	}

	updated, err := s.destinations.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.DestinationUpdated, events.CatalogItemEvent{ItemID: updated.ID, Name: updated.Name})
	return updated, nil
}

// DeleteDestination reports whether a record was removed. Bookings that
// reference the deleted destination keep their itemId; that dangling
// reference is allowed.
func (s *CatalogService) DeleteDestination(ctx context.Context, id string) bool {
	deleted := s.destinations.Delete(id)
	if deleted {
		s.publish(ctx, events.DestinationDeleted, events.CatalogItemEvent{ItemID: id})
	}
	return deleted
}

func (s *CatalogService) ListHotels(filter CatalogFilter) []domain.Hotel {
	all := s.hotels.List()
	out := make([]domain.Hotel, 0, len(all))
	for _, h := range all {
		if !filter.matchesText(h.Name, h.Location) {
			continue
		}
		if filterActive(filter.Category) && h.Category != filter.Category {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (s *CatalogService) GetHotel(id string) (*domain.Hotel, error) {
	return s.hotels.GetByID(id)
}

func (s *CatalogService) CreateHotel(ctx context.Context, h domain.Hotel) *domain.Hotel {
	h.Images = stripBlank(h.Images)
	h.Amenities = stripBlank(h.Amenities)
	h.Features = stripBlank(h.Features)
	for i := range h.RoomTypes {
		h.RoomTypes[i].Features = stripBlank(h.RoomTypes[i].Features)
	}

	created := s.hotels.Add(h)
	s.publish(ctx, events.HotelCreated, events.CatalogItemEvent{ItemID: created.ID, Name: created.Name})
	return created
}

func (s *CatalogService) UpdateHotel(ctx context.Context, id string, patch domain.HotelPatch) (*domain.Hotel, error) {
	patch.Images = stripBlank(patch.Images)
	patch.Amenities = stripBlank(patch.Amenities)
	patch.Features = stripBlank(patch.Features)
	for i := range patch.RoomTypes {
		patch.RoomTypes[i].Features = stripBlank(patch.RoomTypes[i].Features)
	}

	updated, err := s.hotels.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.HotelUpdated, events.CatalogItemEvent{ItemID: updated.ID, Name: updated.Name})
	return updated, nil
}

func (s *CatalogService) DeleteHotel(ctx context.Context, id string) bool {
	deleted := s.hotels.Delete(id)
	if deleted {
		s.publish(ctx, events.HotelDeleted, events.CatalogItemEvent{ItemID: id})
	}
	return deleted
}

func (s *CatalogService) publish(ctx context.Context, subject string, data interface{}) {
	if err := s.bus.Publish(ctx, subject, data); err != nil {
		logger.ErrorContext(ctx, "failed to publish catalog event", "error", err, "subject", subject)
	}
}

// stripBlank drops empty and whitespace-only entries, keeping order. A nil
// input stays nil so patch semantics are preserved.
func stripBlank(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
