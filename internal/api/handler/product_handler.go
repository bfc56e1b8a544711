package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/infra/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogService service.ICatalogService
}

func NewProductHandler(catalogService service.ICatalogService) *ProductHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, categories)
}

func (h *ProductHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "missing category")
		return
	}

	products, err := h.catalogService.ListProductsByCategory(r.Context(), category)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

// 目錄服務異常回502，讓前端顯示重試按鈕，身分錯誤不會發生在這層
func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		api.ErrorJSON(w, http.StatusNotFound, "product not found")
	case errors.Is(err, catalog.ErrCatalogInvalidResponse),
		errors.Is(err, catalog.ErrCatalogUnavailable):
		api.ErrorJSON(w, http.StatusBadGateway, "catalog is unavailable, please retry")
	default:
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
