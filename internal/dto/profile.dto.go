package dto

import (
	"github.com/google/uuid"

	"github.com/clink-app/clink-backend/internal/domain"
)

// LinkInput is one link entry in a save request. The caller submits
// the complete list on every save; order comes from array position.
type LinkInput struct {
	ID            *uuid.UUID `json:"id,omitempty"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	IsActive      *bool      `json:"isActive,omitempty"`
	ThumbnailType string     `json:"thumbnailType,omitempty"`
	ThumbnailURL  *string    `json:"thumbnailUrl,omitempty"`
}

// SaveProfileRequest carries a partial profile update: nil fields keep
// their previous values. A non-nil Links slice replaces all links.
type SaveProfileRequest struct {
	Username    *string      `json:"username,omitempty"`
	DisplayName *string      `json:"displayName,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	AvatarURL   *string      `json:"avatarUrl,omitempty"`
	Theme       *string      `json:"theme,omitempty"`
	Links       *[]LinkInput `json:"links,omitempty"`
}

// SaveProfileResponse is the body of a successful profile save.
type SaveProfileResponse struct {
	Success bool                `json:"success"`
	Profile *domain.UserProfile `json:"profile"`
}

// ProfileResponse wraps a public profile read.
type ProfileResponse struct {
	Profile *domain.UserProfile `json:"profile"`
}

// Availability is the username check outcome. Format problems are a
// normal available:false answer, never an HTTP error.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ToLink converts an input entry to the domain type. Order is left for
// the repository to assign from slice position.
func (in LinkInput) ToLink() domain.Link {
	link := domain.Link{
		Title:         in.Title,
		URL:           in.URL,
		IsActive:      true,
		ThumbnailType: domain.ThumbnailType(in.ThumbnailType),
	}
	if in.ID != nil {
		link.ID = *in.ID
	}
	if in.IsActive != nil {
		link.IsActive = *in.IsActive
	}
	if in.ThumbnailURL != nil {
		link.ThumbnailURL = in.ThumbnailURL
	}
	return link
}
