package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubCatalogClient 固定商品清單，不打外部API
type stubCatalogClient struct {
	products []model.Product
	listErr  error
}

func (c *stubCatalogClient) ListProducts(ctx context.Context) ([]model.Product, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.products, nil
}

func (c *stubCatalogClient) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (c *stubCatalogClient) ListCategories(ctx context.Context) ([]string, error) {
	return []string{"electronics"}, nil
}

func (c *stubCatalogClient) ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return c.products, nil
}

type RouterTestSuite struct {
	suite.Suite
	router *chi.Mux
	client *stubCatalogClient
}

func (s *RouterTestSuite) SetupTest() {
	s.client = &stubCatalogClient{
		products: []model.Product{
			{ID: 1, Title: "Mouse", Price: decimal.RequireFromString("29.99"), Category: "electronics"},
			{ID: 2, Title: "Keyboard", Price: decimal.RequireFromString("10.00"), Category: "electronics"},
		},
	}

	stateRepo := state_repo.NewMemStateRepo()
	catalogService := service.NewCatalogService(s.client, 0)
	cartService := service.NewCartService(stateRepo)
	orderService := service.NewOrderService(stateRepo)
	authService := service.NewAuthService(stateRepo, "admin", "admin123")
	userService := service.NewUserService()

	logger := zerolog.Nop()
	s.router = SetupRouter(Handlers{
		Product: handler.NewProductHandler(catalogService),
		Cart:    handler.NewCartHandler(cartService, catalogService),
		Order:   handler.NewOrderHandler(orderService),
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Session: handler.NewSessionHandler(service.NewSessionService(stateRepo)),
	}, authService, &logger)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

// do 以固定session cookie發請求，模擬同一個瀏覽器session
func (s *RouterTestSuite) do(method, path, sessionID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sessionID})
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decodeData(rec *httptest.ResponseRecorder, out any) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, out))
}

func (s *RouterTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestNewSessionGetsCookie() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(constants.SessionCookieName, cookies[0].Name)
	s.NotEmpty(cookies[0].Value)
}

func (s *RouterTestSuite) TestListProducts() {
	rec := s.do(http.MethodGet, "/api/v1/products", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)

	var products []model.Product
	s.decodeData(rec, &products)
	s.Len(products, 2)
}

func (s *RouterTestSuite) TestGetUnknownProductReturns404() {
	rec := s.do(http.MethodGet, "/api/v1/products/999", "sess", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestCatalogDownReturns502() {
	s.client.listErr = fmt.Errorf("%w: connection refused", catalog.ErrCatalogUnavailable)
	rec := s.do(http.MethodGet, "/api/v1/products", "sess", nil)
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *RouterTestSuite) TestCartFlow() {
	// 加兩次同商品
	rec := s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)

	var cart model.Cart
	s.decodeData(rec, &cart)
	s.Require().Len(cart.Items, 1)
	s.Equal(2, cart.ItemCount)
	s.Equal("59.98", cart.Total.StringFixed(2))

	// 金額試算與結帳走同一份規則
	rec = s.do(http.MethodGet, "/api/v1/cart/totals", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)
	var totals model.OrderTotals
	s.decodeData(rec, &totals)
	s.Equal("59.98", totals.Subtotal.StringFixed(2))
	s.Equal("0.00", totals.Shipping.StringFixed(2))
	s.Equal("4.80", totals.Tax.StringFixed(2))
	s.Equal("64.78", totals.GrandTotal.StringFixed(2))

	rec = s.do(http.MethodPut, "/api/v1/cart/items/1", "sess", map[string]int{"quantity": 5})
	s.Equal(http.StatusOK, rec.Code)
	s.decodeData(rec, &cart)
	s.Equal(5, cart.ItemCount)

	rec = s.do(http.MethodDelete, "/api/v1/cart/items/1", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.decodeData(rec, &cart)
	s.True(cart.IsEmpty())
}

func (s *RouterTestSuite) TestAddUnknownProductToCartReturns404() {
	rec := s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 999})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestSessionsHaveSeparateCarts() {
	rec := s.do(http.MethodPost, "/api/v1/cart/items", "sess-a", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cart", "sess-b", nil)
	s.Equal(http.StatusOK, rec.Code)
	var cart model.Cart
	s.decodeData(rec, &cart)
	s.True(cart.IsEmpty())
}

func (s *RouterTestSuite) TestCheckoutEmptyCartReturns400() {
	rec := s.do(http.MethodPost, "/api/v1/checkout", "sess", map[string]string{
		"full_name":        "John Smith",
		"shipping_address": "123 Main Street, Springfield",
		"phone_number":     "0912345678",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestCheckoutInvalidInfoReturns422WithFields() {
	rec := s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/checkout", "sess", map[string]string{
		"full_name":        "J",
		"shipping_address": "short",
		"phone_number":     "abc",
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body.Fields, "full_name")
	s.Contains(body.Fields, "shipping_address")
	s.Contains(body.Fields, "phone_number")

	// 驗證失敗不能動到購物車
	rec = s.do(http.MethodGet, "/api/v1/cart", "sess", nil)
	var cart model.Cart
	s.decodeData(rec, &cart)
	s.Equal(1, cart.ItemCount)
}

func (s *RouterTestSuite) TestCheckoutCreatesOrderAndClearsCart() {
	rec := s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/checkout", "sess", map[string]string{
		"full_name":        "John Smith",
		"shipping_address": "123 Main Street, Springfield",
		"phone_number":     "0912345678",
	})
	s.Equal(http.StatusCreated, rec.Code)

	var order model.Order
	s.decodeData(rec, &order)
	s.Regexp(`^ORD-\d+-[0-9a-f]{8}$`, order.OrderID)
	s.Equal(model.OrderStatusCompleted, order.Status)
	s.Equal("64.78", order.Total.StringFixed(2))

	rec = s.do(http.MethodGet, "/api/v1/cart", "sess", nil)
	var cart model.Cart
	s.decodeData(rec, &cart)
	s.True(cart.IsEmpty())

	rec = s.do(http.MethodGet, "/api/v1/orders", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)
	var orders []model.Order
	s.decodeData(rec, &orders)
	s.Require().Len(orders, 1)
	s.Equal(order.OrderID, orders[0].OrderID)
}

// 重置後購物車、訂單與登入狀態全部歸零
func (s *RouterTestSuite) TestSessionResetClearsAllState() {
	rec := s.do(http.MethodPost, "/api/v1/cart/items", "sess", map[string]int{"product_id": 1})
	s.Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, "/api/v1/auth/login", "sess", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/session", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cart", "sess", nil)
	var cart model.Cart
	s.decodeData(rec, &cart)
	s.True(cart.IsEmpty())

	rec = s.do(http.MethodGet, "/api/v1/orders", "sess", nil)
	var orders []model.Order
	s.decodeData(rec, &orders)
	s.Empty(orders)

	rec = s.do(http.MethodGet, "/api/v1/auth/session", "sess", nil)
	var auth model.AuthState
	s.decodeData(rec, &auth)
	s.False(auth.Authenticated)
}

func (s *RouterTestSuite) TestLoginWithWrongPasswordReturns401() {
	rec := s.do(http.MethodPost, "/api/v1/auth/login", "sess", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestAdminRoutesRequireLogin() {
	rec := s.do(http.MethodGet, "/api/v1/admin/users", "sess", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "sess", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/admin/users", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)

	// 登出後再次被擋下
	rec = s.do(http.MethodPost, "/api/v1/auth/logout", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/admin/users", "sess", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestSessionEndpointReflectsLoginState() {
	rec := s.do(http.MethodGet, "/api/v1/auth/session", "sess", nil)
	s.Equal(http.StatusOK, rec.Code)
	var auth model.AuthState
	s.decodeData(rec, &auth)
	s.False(auth.Authenticated)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "sess", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/auth/session", "sess", nil)
	s.decodeData(rec, &auth)
	s.True(auth.Authenticated)
	s.Equal("admin", auth.Username)
}
