package memory

import "github.com/travelwise/travelwise-api/internal/domain"

// Seed inserts fixture records as-is, keeping their ids.
func (s *DestinationStore) Seed(destinations ...domain.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations = append(s.destinations, destinations...)
}

func (s *HotelStore) Seed(hotels ...domain.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels = append(s.hotels, hotels...)
}

// SeedUsers are the two accounts every fresh process starts with.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:     "1",
			Email:  "admin@travelwise.com",
			Name:   "Admin User",
			Role:   domain.RoleAdmin,
			Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
		},
		{
			ID:     "2",
			Email:  "user@example.com",
			Name:   "John Doe",
			Role:   domain.RoleUser,
			Avatar: "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg",
		},
	}
}

// SeedDestinations returns the catalog fixtures a fresh process starts with.
func SeedDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID:            "1",
			Name:          "Santorini Island Hopping",
			Location:      "Santorini, Greece",
			Image:         "https://images.pexels.com/photos/161815/santorini-oia-greece-water-161815.jpeg",
			Rating:        4.9,
			Reviews:       342,
			Duration:      "7 days",
			GroupSize:     "12 people",
			Price:         1299,
			OriginalPrice: 1599,
			Category:      "Beach",
			Difficulty:    "Easy",
			Highlights:    []string{"Blue Dome Churches", "Sunset Cruise", "Wine Tasting", "Volcanic Beaches"},
			Description:   "Experience the magic of Santorini with our comprehensive island hopping tour. Discover the iconic blue-domed churches, enjoy breathtaking sunsets, and explore the unique volcanic landscape that makes this Greek island one of the world's most romantic destinations.",
			Itinerary: []domain.ItineraryDay{
				{
					Day:         1,
					Title:       "Arrival in Santorini",
					Description: "Welcome to the beautiful island of Santorini",
					Activities:  []string{"Airport pickup", "Hotel check-in", "Welcome dinner", "Sunset viewing at Oia"},
				},
				{
					Day:         2,
					Title:       "Fira and Imerovigli",
					Description: "Explore the capital and the balcony of the Aegean",
					Activities:  []string{"Fira town tour", "Cable car ride", "Imerovigli walk", "Traditional lunch"},
				},
				{
					Day:         3,
					Title:       "Wine Tasting Tour",
					Description: "Discover Santorini's unique wine culture",
					Activities:  []string{"Vineyard visits", "Wine tasting sessions", "Local cheese pairing", "Sunset dinner"},
				},
			},
			Included:     []string{"Accommodation", "Daily breakfast", "Professional guide", "Transportation", "Wine tasting"},
			Excluded:     []string{"International flights", "Personal expenses", "Travel insurance", "Lunch and dinner (except mentioned)"},
			Requirements: []string{"Valid passport", "Comfortable walking shoes", "Sun protection", "Camera"},
		},
		{
			ID:            "2",
			Name:          "Bali Cultural Adventure",
			Location:      "Bali, Indonesia",
			Image:         "https://images.pexels.com/photos/2161449/pexels-photo-2161449.jpeg",
			Rating:        4.8,
			Reviews:       528,
			Duration:      "10 days",
			GroupSize:     "16 people",
			Price:         899,
			OriginalPrice: 1199,
			Category:      "Cultural",
			Difficulty:    "Moderate",
			Highlights:    []string{"Temple Tours", "Rice Terraces", "Traditional Cooking", "Monkey Forest"},
			Description:   "Immerse yourself in the rich culture and natural beauty of Bali. From ancient temples to emerald rice terraces, this adventure offers an authentic glimpse into Balinese life and traditions.",
			Itinerary: []domain.ItineraryDay{
				{
					Day:         1,
					Title:       "Arrival in Denpasar",
					Description: "Welcome to the Island of Gods",
					Activities:  []string{"Airport pickup", "Hotel check-in", "Ubud orientation", "Traditional welcome ceremony"},
				},
				{
					Day:         2,
					Title:       "Ubud Cultural Tour",
					Description: "Explore the cultural heart of Bali",
					Activities:  []string{"Monkey Forest Sanctuary", "Ubud Palace", "Traditional market", "Art village visits"},
				},
			},
			Included:     []string{"Accommodation", "Daily breakfast", "Cultural guide", "Temple entrance fees", "Cooking class"},
			Excluded:     []string{"International flights", "Personal expenses", "Travel insurance", "Some meals"},
			Requirements: []string{"Valid passport with 6 months validity", "Modest clothing for temples", "Comfortable shoes", "Insect repellent"},
		},
	}
}

// SeedHotels returns the hotel fixtures a fresh process starts with.
func SeedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:       "1",
			Name:     "Grand Ocean Resort & Spa",
			Location: "Maldives",
			Image:    "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
			Images: []string{
				"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
				"https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg",
				"https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg",
				"https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
				"https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg",
			},
			Rating:        4.9,
			Reviews:       1248,
			Price:         450,
			OriginalPrice: 620,
			Category:      "Luxury Resort",
			Amenities:     []string{"Pool", "Spa", "Restaurant", "WiFi", "Beach Access", "Water Sports"},
			Features:      []string{"Overwater Villa", "Private Beach", "All-Inclusive"},
			Description:   "Experience paradise in our luxurious overwater villas with crystal-clear lagoon views. This exclusive resort offers world-class amenities, exceptional service, and unforgettable experiences in one of the world's most beautiful destinations.",
			RoomTypes: []domain.RoomType{
				{
					ID:            "1",
					Name:          "Beach Villa",
					Image:         "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
					Price:         350,
					OriginalPrice: 450,
					Features:      []string{"Ocean View", "Private Terrace", "King Bed", "85 sqm"},
					Description:   "Spacious beachfront villa with direct beach access and stunning ocean views.",
					MaxGuests:     2,
				},
				{
					ID:            "2",
					Name:          "Overwater Villa",
					Image:         "https://images.pexels.com/photos/1287460/pexels-photo-1287460.jpeg",
					Price:         550,
					OriginalPrice: 720,
					Features:      []string{"Overwater", "Glass Floor", "Private Deck", "120 sqm"},
					Description:   "Iconic overwater villa with glass floor panels and direct lagoon access.",
					MaxGuests:     2,
				},
			},
			Policies: domain.Policies{
				CheckIn:      "3:00 PM",
				CheckOut:     "12:00 PM",
				Cancellation: "Free cancellation until 24 hours before check-in",
				Pets:         "Pets not allowed",
				Smoking:      "No smoking in rooms",
			},
		},
	}
}
