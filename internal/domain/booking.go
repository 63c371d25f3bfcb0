package domain

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingConfirmed, BookingPending, BookingCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

type BookingType string

const (
	BookingHotel       BookingType = "hotel"
	BookingDestination BookingType = "destination"
)

func ParseBookingType(s string) (BookingType, bool) {
	switch BookingType(s) {
	case BookingHotel, BookingDestination:
		return BookingType(s), true
	default:
		return "", false
	}
}

// Booking links a user to a catalog item. ItemName is a snapshot taken at
// creation time and is never re-derived; ItemID may dangle after the catalog
// item is deleted.
type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	Type       BookingType   `json:"type"`
	ItemID     string        `json:"itemId"`
	ItemName   string        `json:"itemName"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  string        `json:"createdAt"`
}

// NewBooking carries every booking field the caller controls. ID and
// CreatedAt are assigned by the store, never by the caller.
type NewBooking struct {
	UserID     string        `json:"userId"`
	Type       BookingType   `json:"type"`
	ItemID     string        `json:"itemId"`
	ItemName   string        `json:"itemName"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
}
