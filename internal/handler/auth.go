package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/middleware"
	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/service"
)

// AuthHandler handles HTTP requests for accounts.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/v1/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var weak *service.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			writeJSON(w, http.StatusUnprocessableEntity, model.WeakPasswordResponse{
				Error:         service.ErrWeakPassword.Error(),
				CheckResponse: weak.Analysis(),
			})
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			slog.Error("registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		slog.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/v1/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
