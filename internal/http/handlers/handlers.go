package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/http/response"
	"github.com/travelwise/travelwise-api/internal/platform/auth"
	"github.com/travelwise/travelwise-api/internal/service"
	"github.com/travelwise/travelwise-api/pkg/logger"
)

type Handlers struct {
	catalog  *service.CatalogService
	bookings *service.BookingService
	auth     *service.AuthService
}

func New(catalog *service.CatalogService, bookings *service.BookingService, authSvc *service.AuthService) *Handlers {
	return &Handlers{
		catalog:  catalog,
		bookings: bookings,
		auth:     authSvc,
	}
}

type contextKey string

const (
	userContextKey   contextKey = "user"
	claimsContextKey contextKey = "claims"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireUser resolves the bearer token to a live session. Revoked and
// expired sessions are rejected the same way as missing ones.
func (h *Handlers) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w, "Missing or invalid authorization header")
			return
		}

		user, claims, err := h.auth.CurrentUser(r.Context(), token)
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}
		if user == nil {
			response.Unauthorized(w, "Session expired")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, claimsContextKey, claims)
		ctx = context.WithValue(ctx, logger.UserIDKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is RequireUser plus a role check.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return h.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := currentUser(r); user == nil || user.Role != domain.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func currentUser(r *http.Request) *domain.User {
	if user, ok := r.Context().Value(userContextKey).(*domain.User); ok {
		return user
	}
	return nil
}

func currentClaims(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
