package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ThumbnailType string

const (
	ThumbnailFavicon  ThumbnailType = "favicon"
	ThumbnailPreview  ThumbnailType = "preview"
	ThumbnailCustom   ThumbnailType = "custom"
	ThumbnailPlatform ThumbnailType = "platform"
)

// Link is one outbound URL entry on a profile. Order values within a
// profile always form a dense 0-based sequence; ReplaceLinks renumbers
// them from array position on every save.
type Link struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	UserID        uuid.UUID     `json:"-" db:"user_id"`
	Title         string        `json:"title" db:"title"`
	URL           string        `json:"url" db:"url"`
	Order         int           `json:"order" db:"position"`
	IsActive      bool          `json:"isActive" db:"is_active"`
	ThumbnailType ThumbnailType `json:"thumbnailType" db:"thumbnail_type"`
	ThumbnailURL  *string       `json:"thumbnailUrl,omitempty" db:"thumbnail_url"`
}

// UserProfile is a user's public page configuration. The profile row is
// created lazily on the first save; the ID comes from the users table.
type UserProfile struct {
	ID          uuid.UUID `json:"id" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	DisplayName string    `json:"displayName" db:"display_name"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	AvatarURL   *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	Theme       string    `json:"theme" db:"theme"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`

	Links []Link `json:"links"`
}

// User is an account issued by the auth module. Profiles hang off it 1:1.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*User, error)
}

// ProfileRepository owns all persisted profile/link state. Not-found is
// a nil result, never an error. Username lookups are case-insensitive.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*UserProfile, error)
	Save(ctx context.Context, profile *UserProfile) error
	ReplaceLinks(ctx context.Context, userID uuid.UUID, links []Link) error
}
