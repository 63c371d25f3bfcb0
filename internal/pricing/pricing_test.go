package pricing

import "testing"

func TestDestinationQuote(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		guests int
		want   Quote
	}{
		{"two guests", 1299, 2, Quote{Subtotal: 2598, Taxes: 260, Total: 2858}},
		{"single guest", 899, 1, Quote{Subtotal: 899, Taxes: 90, Total: 989}},
		{"rounds to nearest", 105, 1, Quote{Subtotal: 105, Taxes: 11, Total: 116}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DestinationQuote(tt.price, tt.guests); got != tt.want {
				t.Errorf("DestinationQuote(%v, %d) = %+v, want %+v", tt.price, tt.guests, got, tt.want)
			}
		})
	}
}

func TestRoomQuote(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  Quote
	}{
		{"beach villa", 350, Quote{Subtotal: 350, Taxes: 53, Total: 403}},
		{"overwater villa", 550, Quote{Subtotal: 550, Taxes: 83, Total: 633}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoomQuote(tt.price); got != tt.want {
				t.Errorf("RoomQuote(%v) = %+v, want %+v", tt.price, got, tt.want)
			}
		})
	}
}
