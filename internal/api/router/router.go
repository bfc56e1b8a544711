package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Handlers struct {
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Session *handler.SessionHandler
}

func SetupRouter(h Handlers, authService service.IAuthService, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.SessionMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		api.SuccessJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.ListProducts)
			r.Get("/categories", h.Product.ListCategories)
			r.Get("/category/{category}", h.Product.ListProductsByCategory)
			r.Get("/{id}", h.Product.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Delete("/", h.Cart.Clear)
			r.Get("/totals", h.Cart.GetTotals)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{id}", h.Cart.SetQuantity)
			r.Delete("/items/{id}", h.Cart.RemoveItem)
		})

		r.Post("/checkout", h.Order.Checkout)
		r.Get("/orders", h.Order.ListOrders)

		// 整個session狀態的重置
		r.Delete("/session", h.Session.Reset)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/session", h.Auth.Session)
		})

		// admin demo路由，需要demo登入
		r.Route("/admin/users", func(r chi.Router) {
			r.Use(m.AdminAuthMiddleware(authService))
			r.Get("/", h.User.ListUsers)
			r.Post("/", h.User.AddUser)
			r.Put("/{id}", h.User.UpdateUser)
			r.Delete("/{id}", h.User.DeleteUser)
			r.Post("/{id}/toggle", h.User.ToggleStatus)
		})
	})

	return r
}
