package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// AdminAuthMiddleware admin路由的demo登入檢查
// 只看session裡的demo登入狀態，不是真正的授權機制
func AdminAuthMiddleware(authService service.IAuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, err := authService.Session(r.Context(), GetSessionID(r.Context()))
			if err != nil || !auth.Authenticated {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
