package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	mw "github.com/travelwise/travelwise-api/pkg/middleware"
)

// RouterOptions carries optional router wiring. AuthLimiter guards the
// login/register endpoints when Redis is configured; nil disables it.
type RouterOptions struct {
	AuthLimiter func(http.Handler) http.Handler
}

func (h *Handlers) Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/auth", func(r chi.Router) {
		if opts.AuthLimiter != nil {
			r.With(opts.AuthLimiter).Post("/login", h.Login)
			r.With(opts.AuthLimiter).Post("/register", h.Register)
		} else {
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
		}
		r.With(h.RequireUser).Post("/logout", h.Logout)
		r.With(h.RequireUser).Get("/me", h.Me)
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", h.ListDestinations)
		r.Get("/{id}", h.GetDestination)
		r.Get("/{id}/quote", h.QuoteDestination)
	})

	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.ListHotels)
		r.Get("/{id}", h.GetHotel)
		r.Get("/{id}/quote", h.QuoteHotel)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(h.RequireUser)
		r.Post("/", h.CreateBooking)
		r.Get("/", h.ListMyBookings)
		r.Post("/{id}/cancel", h.CancelMyBooking)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.RequireAdmin)

		r.Route("/destinations", func(r chi.Router) {
			r.Post("/", h.CreateDestination)
			r.Patch("/{id}", h.UpdateDestination)
			r.Delete("/{id}", h.DeleteDestination)
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Post("/", h.CreateHotel)
			r.Patch("/{id}", h.UpdateHotel)
			r.Delete("/{id}", h.DeleteHotel)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", h.ListAllBookings)
			r.Patch("/{id}/status", h.SetBookingStatus)
		})
	})

	return r
}
