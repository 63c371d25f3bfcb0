package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/http/response"
	"github.com/travelwise/travelwise-api/internal/pricing"
	"github.com/travelwise/travelwise-api/internal/service"
)

func catalogFilter(r *http.Request) service.CatalogFilter {
	q := r.URL.Query()
	return service.CatalogFilter{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
	}
}

func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.catalog.ListDestinations(catalogFilter(r)))
}

func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	destination, err := h.catalog.GetDestination(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Destination not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, destination)
}

// QuoteDestination prices a tour for a party size.
func (h *Handlers) QuoteDestination(w http.ResponseWriter, r *http.Request) {
	destination, err := h.catalog.GetDestination(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Destination not found")
		return
	}

	guests, err := strconv.Atoi(r.URL.Query().Get("guests"))
	if err != nil || guests < 1 {
		response.BadRequest(w, "guests must be a positive integer")
		return
	}

	response.WriteJSON(w, http.StatusOK, pricing.DestinationQuote(destination.Price, guests))
}

func (h *Handlers) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var destination domain.Destination
	if err := json.NewDecoder(r.Body).Decode(&destination); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	created := h.catalog.CreateDestination(r.Context(), destination)
	response.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	var patch domain.DestinationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	updated, err := h.catalog.UpdateDestination(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Destination not found")
			return
		}
		response.InternalError(w, "Update failed")
		return
	}
	response.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.DeleteDestination(r.Context(), chi.URLParam(r, "id")) {
		response.NotFound(w, "Destination not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
