package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/http/response"
	"github.com/travelwise/travelwise-api/pkg/logger"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	// Validation only; the email and name are stored exactly as submitted.
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		response.BadRequest(w, "A valid email is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		response.BadRequest(w, "Name is required")
		return
	}
	if req.Password == "" {
		response.BadRequest(w, "Password is required")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			response.WriteError(w, http.StatusConflict, "An account with this email already exists", response.CodeEmailExists)
			return
		}
		logger.ErrorContext(r.Context(), "registration failed", "error", err)
		response.InternalError(w, "Registration failed")
		return
	}

	response.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.WriteError(w, http.StatusUnauthorized, "Invalid email or password", response.CodeInvalidCredentials)
			return
		}
		logger.ErrorContext(r.Context(), "login failed", "error", err)
		response.InternalError(w, "Login failed")
		return
	}

	response.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	claims := currentClaims(r)
	if claims == nil {
		response.Unauthorized(w, "Not logged in")
		return
	}
	if err := h.auth.Logout(r.Context(), claims.ID); err != nil {
		logger.ErrorContext(r.Context(), "logout failed", "error", err)
		response.InternalError(w, "Logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, currentUser(r))
}
