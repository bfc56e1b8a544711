package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type SessionHandler struct {
	sessionService service.ISessionService
}

func NewSessionHandler(sessionService service.ISessionService) *SessionHandler {
	if sessionService == nil {
		panic("sessionService cannot be nil")
	}
	return &SessionHandler{sessionService: sessionService}
}

// Reset 清掉整個session狀態，購物車、訂單歷史與登入狀態都會消失
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Reset(r.Context(), middleware.GetSessionID(r.Context())); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
		return
	}
	api.SuccessJSON(w, http.StatusOK, map[string]bool{"reset": true})
}
