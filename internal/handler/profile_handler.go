package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/dto"
	"github.com/clink-app/clink-backend/internal/middleware"
	"github.com/clink-app/clink-backend/internal/service"
	"github.com/clink-app/clink-backend/internal/utils"
)

const maxAvatarUploadSize = 10 << 20 // 10 MB

type ProfileHandler struct {
	service     service.ProfileService
	fileService service.FileService
}

func NewProfileHandler(service service.ProfileService, fileService service.FileService) *ProfileHandler {
	return &ProfileHandler{service: service, fileService: fileService}
}

// GetProfile serves the public profile read used by the frontend page
// renderer. Unknown and reserved usernames both come back as 404.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		utils.WriteError(w, http.StatusBadRequest, "username is required", nil)
		return
	}

	profile, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		log.Printf("[ProfileHandler.GetProfile] Load failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	if profile == nil {
		utils.WriteError(w, http.StatusNotFound, "profile not found", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.ProfileResponse{Profile: profile})
}

// MyProfile returns the authenticated user's own profile, or 404 when
// they have never saved one.
func (h *ProfileHandler) MyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}

	profile, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("[ProfileHandler.MyProfile] Load failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	if profile == nil {
		utils.WriteError(w, http.StatusNotFound, "profile not found", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.ProfileResponse{Profile: profile})
}

// SaveProfile upserts the caller's profile. The first save creates the
// page; later saves merge the submitted fields over the stored state.
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}

	var req dto.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	profile, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.WriteError(w, http.StatusBadRequest, verr.Reason, nil)
		case errors.Is(err, domain.ErrUsernameTaken):
			utils.WriteError(w, http.StatusConflict, "Username is already taken", nil)
		default:
			log.Printf("[ProfileHandler.SaveProfile] Save failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "failed to save profile", nil)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.SaveProfileResponse{Success: true, Profile: profile})
}

// CheckUsername answers availability for the dashboard's live check.
// Format violations are a normal available:false response.
func (h *ProfileHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		utils.WriteError(w, http.StatusBadRequest, "username query parameter is required", nil)
		return
	}

	var excluding *uuid.UUID
	if userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID); ok {
		excluding = &userID
	}

	availability, err := h.service.CheckUsername(r.Context(), username, excluding)
	if err != nil {
		log.Printf("[ProfileHandler.CheckUsername] Check failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to check username", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, availability)
}

// UploadAvatar accepts a multipart image, normalizes it to a 512px
// JPEG, stores it, and points the caller's profile at the new URL. The
// previous avatar object is removed after a successful swap.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarUploadSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "avatar file is required", err)
		return
	}
	defer file.Close()

	src, err := imaging.Decode(file)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "failed to decode image", err)
		return
	}

	dst := imaging.Fit(src, 512, 512, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dst, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		log.Printf("[ProfileHandler.UploadAvatar] Encode failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to encode image", nil)
		return
	}

	existing, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("[ProfileHandler.UploadAvatar] Load failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}

	key := fmt.Sprintf("avatars/%s.jpg", uuid.New().String())
	url, err := h.fileService.Upload(r.Context(), key, buf, "image/jpeg")
	if err != nil {
		log.Printf("[ProfileHandler.UploadAvatar] Upload failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to upload avatar", nil)
		return
	}

	profile, err := h.service.Save(r.Context(), userID, dto.SaveProfileRequest{AvatarURL: &url})
	if err != nil {
		log.Printf("[ProfileHandler.UploadAvatar] Save failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to save profile", nil)
		return
	}

	// Delete the replaced object once the new URL is persisted.
	if existing != nil && existing.AvatarURL != nil && *existing.AvatarURL != "" {
		if oldKey, err := h.fileService.GetKeyFromUrl(*existing.AvatarURL); err == nil {
			_ = h.fileService.Delete(context.Background(), oldKey)
		}
	}

	utils.WriteJSON(w, http.StatusOK, dto.SaveProfileResponse{Success: true, Profile: profile})
}
