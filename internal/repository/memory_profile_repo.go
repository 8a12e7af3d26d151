package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clink-app/clink-backend/internal/domain"
)

// memoryProfileRepository is the process-local store variant. It is
// injected exactly like the Postgres one, never ambient state; callers
// always receive copies of the stored records.
type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.UserProfile
}

func NewMemoryProfileRepository() domain.ProfileRepository {
	return &memoryProfileRepository{profiles: make(map[uuid.UUID]*domain.UserProfile)}
}

func (r *memoryProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[userID]; ok {
		return copyProfile(p), nil
	}
	return nil, nil
}

func (r *memoryProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lower := strings.ToLower(username)
	for _, p := range r.profiles {
		if strings.ToLower(p.Username) == lower {
			return copyProfile(p), nil
		}
	}
	return nil, nil
}

func (r *memoryProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(profile.Username)
	for id, p := range r.profiles {
		if id != profile.ID && strings.ToLower(p.Username) == lower {
			return domain.ErrUsernameTaken
		}
	}

	stored := copyProfile(profile)
	stored.UpdatedAt = time.Now()
	if existing, ok := r.profiles[profile.ID]; ok {
		stored.Links = existing.Links
	} else {
		stored.Links = nil
	}
	r.profiles[profile.ID] = stored
	return nil
}

func (r *memoryProfileRepository) ReplaceLinks(ctx context.Context, userID uuid.UUID, links []domain.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}

	for i := range links {
		links[i].UserID = userID
		links[i].Order = i
		if links[i].ID == uuid.Nil {
			links[i].ID = uuid.New()
		}
		if links[i].ThumbnailType == "" {
			links[i].ThumbnailType = domain.ThumbnailFavicon
		}
	}
	p.Links = append([]domain.Link(nil), links...)
	return nil
}

func copyProfile(p *domain.UserProfile) *domain.UserProfile {
	cp := *p
	if p.Bio != nil {
		bio := *p.Bio
		cp.Bio = &bio
	}
	if p.AvatarURL != nil {
		avatar := *p.AvatarURL
		cp.AvatarURL = &avatar
	}
	cp.Links = make([]domain.Link, len(p.Links))
	copy(cp.Links, p.Links)
	return &cp
}
