package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

// Checkout 建立訂單並清空購物車，單一請求內完成
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info := model.CustomerInfo{
		FullName:        req.FullName,
		ShippingAddress: req.ShippingAddress,
		PhoneNumber:     req.PhoneNumber,
	}

	order, err := h.orderService.Checkout(r.Context(), middleware.GetSessionID(r.Context()), info)
	if err != nil {
		var validationErrs model.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			api.FieldErrorJSON(w, http.StatusUnprocessableEntity, "validation failed", validationErrs)
		case errors.Is(err, service.ErrEmptyCart):
			api.ErrorJSON(w, http.StatusBadRequest, "cart is empty")
		default:
			api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	api.SuccessJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, orders)
}
