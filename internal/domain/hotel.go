package domain

type RoomType struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Features      []string `json:"features"`
	Description   string   `json:"description"`
	MaxGuests     int      `json:"maxGuests"`
}

type Policies struct {
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Cancellation string `json:"cancellation"`
	Pets         string `json:"pets"`
	Smoking      string `json:"smoking"`
}

type Hotel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	Image         string     `json:"image"`
	Images        []string   `json:"images"`
	Rating        float64    `json:"rating"`
	Reviews       int        `json:"reviews"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice"`
	Category      string     `json:"category"`
	Amenities     []string   `json:"amenities"`
	Features      []string   `json:"features"`
	Description   string     `json:"description"`
	RoomTypes     []RoomType `json:"roomTypes"`
	Policies      Policies   `json:"policies"`
}

// HotelPatch is a partial update with the same merge rules as
// DestinationPatch: nil means untouched, present slices and the policies
// record replace wholesale.
type HotelPatch struct {
	Name          *string    `json:"name,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Image         *string    `json:"image,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	Reviews       *int       `json:"reviews,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	OriginalPrice *float64   `json:"originalPrice,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Amenities     []string   `json:"amenities,omitempty"`
	Features      []string   `json:"features,omitempty"`
	Description   *string    `json:"description,omitempty"`
	RoomTypes     []RoomType `json:"roomTypes,omitempty"`
	Policies      *Policies  `json:"policies,omitempty"`
}

func (p HotelPatch) Apply(h *Hotel) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Location != nil {
		h.Location = *p.Location
	}
	if p.Image != nil {
		h.Image = *p.Image
	}
	if p.Images != nil {
		h.Images = p.Images
	}
	if p.Rating != nil {
		h.Rating = *p.Rating
	}
	if p.Reviews != nil {
		h.Reviews = *p.Reviews
	}
	if p.Price != nil {
		h.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		h.OriginalPrice = *p.OriginalPrice
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	if p.Amenities != nil {
		h.Amenities = p.Amenities
	}
	if p.Features != nil {
		h.Features = p.Features
	}
	if p.RoomTypes != nil {
		h.RoomTypes = p.RoomTypes
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Policies != nil {
		h.Policies = *p.Policies
	}
}
