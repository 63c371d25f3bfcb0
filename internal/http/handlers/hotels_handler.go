package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/http/response"
	"github.com/travelwise/travelwise-api/internal/pricing"
	"github.com/travelwise/travelwise-api/internal/service"
)

func (h *Handlers) ListHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.CatalogFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	}
	response.WriteJSON(w, http.StatusOK, h.catalog.ListHotels(filter))
}

func (h *Handlers) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.catalog.GetHotel(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Hotel not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, hotel)
}

// QuoteHotel prices a stay in one of the hotel's room types.
func (h *Handlers) QuoteHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.catalog.GetHotel(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Hotel not found")
		return
	}

	roomID := r.URL.Query().Get("room")
	var room *domain.RoomType
	for i := range hotel.RoomTypes {
		if hotel.RoomTypes[i].ID == roomID {
			room = &hotel.RoomTypes[i]
			break
		}
	}
	if room == nil {
		response.NotFound(w, "Room type not found")
		return
	}

	response.WriteJSON(w, http.StatusOK, pricing.RoomQuote(room.Price))
}

func (h *Handlers) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var hotel domain.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	created := h.catalog.CreateHotel(r.Context(), hotel)
	response.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	var patch domain.HotelPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	updated, err := h.catalog.UpdateHotel(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Hotel not found")
			return
		}
		response.InternalError(w, "Update failed")
		return
	}
	response.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.DeleteHotel(r.Context(), chi.URLParam(r, "id")) {
		response.NotFound(w, "Hotel not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
