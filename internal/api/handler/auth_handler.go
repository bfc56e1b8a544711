package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	auth, err := h.authService.Login(r.Context(), middleware.GetSessionID(r.Context()), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			api.ErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.SuccessJSON(w, http.StatusOK, auth)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.GetSessionID(r.Context())); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	auth, err := h.authService.Session(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, auth)
}
