package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/http/response"
)

type createBookingRequest struct {
	Type       string  `json:"type"`
	ItemID     string  `json:"itemId"`
	ItemName   string  `json:"itemName"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
}

// CreateBooking records a reservation for the logged-in user. The client
// supplies the total and the initial status; id and createdAt come from the
// store. The catalog item is not checked to exist.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	bookingType, ok := domain.ParseBookingType(req.Type)
	if !ok {
		response.BadRequest(w, "type must be \"hotel\" or \"destination\"")
		return
	}
	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		response.BadRequest(w, "status must be \"confirmed\", \"pending\" or \"cancelled\"")
		return
	}
	if req.ItemID == "" {
		response.BadRequest(w, "itemId is required")
		return
	}
	if req.Guests < 1 {
		response.BadRequest(w, "guests must be a positive integer")
		return
	}
	if req.TotalPrice < 0 {
		response.BadRequest(w, "totalPrice must not be negative")
		return
	}

	booking := h.bookings.Create(r.Context(), domain.NewBooking{
		UserID:     user.ID,
		Type:       bookingType,
		ItemID:     req.ItemID,
		ItemName:   req.ItemName,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Status:     status,
	})
	response.WriteJSON(w, http.StatusCreated, booking)
}

// ListMyBookings returns the logged-in user's bookings in creation order.
func (h *Handlers) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	bookings := h.bookings.ListForUser(user.ID)
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	response.WriteJSON(w, http.StatusOK, bookings)
}

// CancelMyBooking sets one of the user's own bookings to cancelled.
func (h *Handlers) CancelMyBooking(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	booking, err := h.bookings.CancelOwn(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalError(w, "Cancel failed")
		return
	}
	response.WriteJSON(w, http.StatusOK, booking)
}

// ListAllBookings is the admin view of every booking.
func (h *Handlers) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.bookings.ListAll()
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	response.WriteJSON(w, http.StatusOK, bookings)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetBookingStatus lets an admin move a booking to any status.
func (h *Handlers) SetBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		response.BadRequest(w, "status must be \"confirmed\", \"pending\" or \"cancelled\"")
		return
	}

	booking, err := h.bookings.SetStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalError(w, "Status update failed")
		return
	}
	response.WriteJSON(w, http.StatusOK, booking)
}
