package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/google/uuid"
)

// SessionMiddleware 確保每個請求都有session id
// 沒有cookie就發一個新的，session id只是個隨機識別，不代表任何身分
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), constants.SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID 從context取出session id，沒有則回傳空字串
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(constants.SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}
