package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
	"github.com/dyslexiaid/dyslexiaid-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service      *service.AuthService
	cookieExpiry time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie should be true in
// production so the session cookie is only sent over HTTPS.
func NewAuthHandler(svc *service.AuthService, cookieExpiry time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		cookieExpiry: cookieExpiry,
		secureCookie: secureCookie,
	}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if isRegisterValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("registration failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login requests. On success the token is
// returned in the body and also set as an httpOnly cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials),
			errors.Is(err, service.ErrLoginFieldsRequired),
			errors.Is(err, service.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int(h.cookieExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, resp)
}

// isRegisterValidationError reports whether err maps to a 400. Duplicate
// registration is reported with the same status as a validation failure.
func isRegisterValidationError(err error) bool {
	return errors.Is(err, service.ErrFieldsRequired) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrPasswordTooShort) ||
		errors.Is(err, service.ErrPasswordMismatch) ||
		errors.Is(err, service.ErrUserExists)
}
