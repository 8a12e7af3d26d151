package ws

import (
	"encoding/json"
	"log"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/render"
)

// PreviewNotifier pushes a freshly rendered page view to the owner's open
// preview sessions whenever their profile is saved.
type PreviewNotifier struct {
	hub *Hub
}

func NewPreviewNotifier(hub *Hub) *PreviewNotifier {
	return &PreviewNotifier{hub: hub}
}

type previewEvent struct {
	Type string          `json:"type"`
	Page render.PageView `json:"page"`
}

func (n *PreviewNotifier) ProfileSaved(profile *domain.UserProfile) {
	page := render.BuildPage(profile)
	payload, err := json.Marshal(previewEvent{Type: "profile.updated", Page: page})
	if err != nil {
		log.Printf("[Preview Hub] failed to encode preview event: %v", err)
		return
	}
	n.hub.SendToUser(profile.ID, payload)
}
