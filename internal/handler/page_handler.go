package handler

import (
	"log"
	"net/http"

	"github.com/clink-app/clink-backend/internal/render"
	"github.com/clink-app/clink-backend/internal/service"
)

// PageHandler serves the public profile pages as server-rendered HTML.
type PageHandler struct {
	service  service.ProfileService
	renderer *render.HTMLRenderer
}

func NewPageHandler(service service.ProfileService, renderer *render.HTMLRenderer) *PageHandler {
	return &PageHandler{service: service, renderer: renderer}
}

func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		http.NotFound(w, r)
		return
	}

	profile, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if profile == nil {
		w.WriteHeader(http.StatusNotFound)
		if err := h.renderer.RenderNotFound(w, username); err != nil {
			log.Printf("failed to render not-found page: %v", err)
		}
		return
	}

	if err := h.renderer.Render(w, render.BuildPage(profile)); err != nil {
		log.Printf("failed to render page for %s: %v", username, err)
	}
}
