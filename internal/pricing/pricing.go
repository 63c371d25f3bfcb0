// Package pricing computes booking totals. The store never computes prices;
// quotes are produced here and the final total travels with the booking
// request.
package pricing

import "math"

const (
	destinationTaxRate = 0.10
	hotelTaxRate       = 0.15
)

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

// DestinationQuote prices a tour: per-person price times guests, plus 10%
// taxes and fees rounded to the nearest unit.
func DestinationQuote(price float64, guests int) Quote {
	subtotal := price * float64(guests)
	taxes := math.Round(subtotal * destinationTaxRate)
	return Quote{Subtotal: subtotal, Taxes: taxes, Total: subtotal + taxes}
}

// RoomQuote prices a hotel room: the nightly room rate plus 15% taxes and
// fees rounded to the nearest unit.
func RoomQuote(roomPrice float64) Quote {
	taxes := math.Round(roomPrice * hotelTaxRate)
	return Quote{Subtotal: roomPrice, Taxes: taxes, Total: roomPrice + taxes}
}
