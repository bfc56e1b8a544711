package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

// ListUsers query: search, role, page
// 前端在search或role變更時會把page重設為1
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	result := h.userService.FilterUsers(
		r.URL.Query().Get("search"),
		r.URL.Query().Get("role"),
		page,
	)
	api.SuccessJSON(w, http.StatusOK, result)
}

func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req dto.AddUserDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.AddUser(req.Name, req.Email, model.UserRole(req.Role), model.UserStatus(req.Status))
	if err != nil {
		writeUserError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(model.User{
		ID:     chi.URLParam(r, "id"),
		Name:   req.Name,
		Email:  req.Email,
		Role:   model.UserRole(req.Role),
		Status: model.UserStatus(req.Status),
	})
	if err != nil {
		writeUserError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(chi.URLParam(r, "id")); err != nil {
		writeUserError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.ToggleStatus(chi.URLParam(r, "id"))
	if err != nil {
		writeUserError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, user)
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotExist):
		api.ErrorJSON(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrInvalidRole):
		api.ErrorJSON(w, http.StatusBadRequest, "invalid user role")
	default:
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
