package handler

import (
	"net/http"

	"github.com/clink-app/clink-backend/internal/utils"
	"github.com/clink-app/clink-backend/internal/ws"
)

// PreviewHandler upgrades dashboard connections to the live-preview
// websocket feed. Browsers cannot set an Authorization header on the
// websocket handshake, so the session token arrives as a query
// parameter instead.
type PreviewHandler struct {
	hub       *ws.Hub
	jwtSecret string
}

func NewPreviewHandler(hub *ws.Hub, jwtSecret string) *PreviewHandler {
	return &PreviewHandler{hub: hub, jwtSecret: jwtSecret}
}

func (h *PreviewHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, `{"error": "missing token"}`, http.StatusUnauthorized)
		return
	}

	claims, err := utils.ValidateToken(token, h.jwtSecret)
	if err != nil {
		http.Error(w, `{"error": "invalid or expired token"}`, http.StatusUnauthorized)
		return
	}

	ws.ServeWs(h.hub, w, r, claims.UserID)
}
