package domain

type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

type Destination struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	Image         string         `json:"image"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Duration      string         `json:"duration"`
	GroupSize     string         `json:"groupSize"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"originalPrice"`
	Category      string         `json:"category"`
	Difficulty    string         `json:"difficulty"`
	Highlights    []string       `json:"highlights"`
	Description   string         `json:"description"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Included      []string       `json:"included"`
	Excluded      []string       `json:"excluded"`
	Requirements  []string       `json:"requirements"`
}

// DestinationPatch is a partial update. Nil fields are left untouched;
// present slice fields replace the stored slice wholesale.
type DestinationPatch struct {
	Name          *string        `json:"name,omitempty"`
	Location      *string        `json:"location,omitempty"`
	Image         *string        `json:"image,omitempty"`
	Rating        *float64       `json:"rating,omitempty"`
	Reviews       *int           `json:"reviews,omitempty"`
	Duration      *string        `json:"duration,omitempty"`
	GroupSize     *string        `json:"groupSize,omitempty"`
	Price         *float64       `json:"price,omitempty"`
	OriginalPrice *float64       `json:"originalPrice,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Difficulty    *string        `json:"difficulty,omitempty"`
	Highlights    []string       `json:"highlights,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Itinerary     []ItineraryDay `json:"itinerary,omitempty"`
	Included      []string       `json:"included,omitempty"`
	Excluded      []string       `json:"excluded,omitempty"`
	Requirements  []string       `json:"requirements,omitempty"`
}

// Apply merges the patch onto d, top-level fields only.
func (p DestinationPatch) Apply(d *Destination) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Image != nil {
		d.Image = *p.Image
	}
	if p.Rating != nil {
		d.Rating = *p.Rating
	}
	if p.Reviews != nil {
		d.Reviews = *p.Reviews
	}
	if p.Duration != nil {
		d.Duration = *p.Duration
	}
	if p.GroupSize != nil {
		d.GroupSize = *p.GroupSize
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		d.OriginalPrice = *p.OriginalPrice
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Difficulty != nil {
		d.Difficulty = *p.Difficulty
	}
	if p.Highlights != nil {
		d.Highlights = p.Highlights
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Itinerary != nil {
		d.Itinerary = p.Itinerary
	}
	if p.Included != nil {
		d.Included = p.Included
	}
	if p.Excluded != nil {
		d.Excluded = p.Excluded
	}
	if p.Requirements != nil {
		d.Requirements = p.Requirements
	}
}
