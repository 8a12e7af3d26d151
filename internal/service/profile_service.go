package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/dto"
	"github.com/clink-app/clink-backend/internal/theme"
)

// ValidationError carries a user-facing reason for a rejected write.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ProfileObserver is notified synchronously after every successful
// save. The websocket preview hub is the production implementation.
type ProfileObserver interface {
	ProfileSaved(profile *domain.UserProfile)
}

// CacheInvalidator is implemented by the cached repository; the
// service uses it to evict the old key when a profile is renamed.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, username string)
}

type ProfileService interface {
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Save(ctx context.Context, userID uuid.UUID, req dto.SaveProfileRequest) (*domain.UserProfile, error)
	CheckUsername(ctx context.Context, username string, excluding *uuid.UUID) (dto.Availability, error)
	Subscribe(obs ProfileObserver)
}

type profileService struct {
	repo      domain.ProfileRepository
	observers []ProfileObserver
}

func NewProfileService(repo domain.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

// Subscribe registers an observer. Subscriptions happen during wiring,
// before the service handles requests, so no locking is needed.
func (s *profileService) Subscribe(obs ProfileObserver) {
	s.observers = append(s.observers, obs)
}

// GetByUsername returns nil for unknown and reserved names alike;
// reserved names can never resolve to a page.
func (s *profileService) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	if domain.IsReservedRoute(username) {
		return nil, nil
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *profileService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return s.repo.GetByID(ctx, userID)
}

// Save upserts the caller's profile. On first write the profile is
// created with defaults for everything the request omits; afterwards
// only supplied fields are overwritten. A supplied link list replaces
// all existing links, renumbered from array position. The profile
// upsert and the link replacement are two separate writes.
func (s *profileService) Save(ctx context.Context, userID uuid.UUID, req dto.SaveProfileRequest) (*domain.UserProfile, error) {
	existing, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := existing
	previousUsername := ""
	if profile == nil {
		profile = &domain.UserProfile{
			ID:       userID,
			Username: defaultUsername(userID),
			Theme:    theme.DefaultTheme,
		}
	} else {
		previousUsername = profile.Username
	}

	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Theme != nil {
		profile.Theme = *req.Theme
	}
	if profile.DisplayName == "" {
		profile.DisplayName = profile.Username
	}

	if ok, reason := domain.ValidateUsername(profile.Username); !ok {
		return nil, &ValidationError{Reason: reason}
	}

	// Collision check excluding the caller, so re-saving your own
	// unchanged username always succeeds.
	owner, err := s.repo.GetByUsername(ctx, profile.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if owner != nil && owner.ID != userID {
		return nil, domain.ErrUsernameTaken
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	if req.Links != nil {
		links := make([]domain.Link, len(*req.Links))
		for i, in := range *req.Links {
			links[i] = in.ToLink()
		}
		if err := s.repo.ReplaceLinks(ctx, userID, links); err != nil {
			return nil, fmt.Errorf("failed to save links: %w", err)
		}
		profile.Links = links
	} else if existing != nil {
		profile.Links = existing.Links
	}

	if previousUsername != "" && previousUsername != profile.Username {
		if inv, ok := s.repo.(CacheInvalidator); ok {
			inv.Invalidate(ctx, previousUsername)
		}
	}

	for _, obs := range s.observers {
		obs.ProfileSaved(profile)
	}
	return profile, nil
}

// CheckUsername validates format before touching the store; malformed
// or reserved names report a reason instead of erroring.
func (s *profileService) CheckUsername(ctx context.Context, username string, excluding *uuid.UUID) (dto.Availability, error) {
	if ok, reason := domain.ValidateUsername(username); !ok {
		return dto.Availability{Available: false, Reason: reason}, nil
	}

	owner, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return dto.Availability{}, fmt.Errorf("failed to check username: %w", err)
	}
	if owner != nil && (excluding == nil || owner.ID != *excluding) {
		return dto.Availability{Available: false, Reason: "Username is already taken"}, nil
	}
	return dto.Availability{Available: true}, nil
}

// defaultUsername derives a placeholder from the user id for first
// saves that don't pick one.
func defaultUsername(userID uuid.UUID) string {
	return userID.String()[:12]
}
