package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService    service.ICartService
	catalogService service.ICatalogService
}

func NewCartHandler(cartService service.ICartService, catalogService service.ICatalogService) *CartHandler {
	if cartService == nil || catalogService == nil {
		panic("cartService and catalogService cannot be nil")
	}
	return &CartHandler{cartService: cartService, catalogService: catalogService}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.GetCart(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, cart)
}

// AddItem 以product id從catalog取完整商品資料後加入購物車
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), middleware.GetSessionID(r.Context()), *product)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.SetQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.cartService.SetQuantity(r.Context(), middleware.GetSessionID(r.Context()), productID, req.Quantity)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), middleware.GetSessionID(r.Context()), productID)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.Clear(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, cart)
}

// GetTotals 購物車頁的金額試算，與結帳用同一份計算
func (h *CartHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.GetCart(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, service.ComputeTotals(cart))
}
