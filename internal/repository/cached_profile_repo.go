package repository

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clink-app/clink-backend/internal/domain"
)

// cachedProfileRepository is a read-through cache over another
// ProfileRepository for the hot path (public page reads by username).
// Cache failures degrade to the inner store, never to request errors.
type cachedProfileRepository struct {
	inner  domain.ProfileRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProfileRepository(inner domain.ProfileRepository, client *redis.Client, ttl time.Duration) domain.ProfileRepository {
	return &cachedProfileRepository{inner: inner, client: client, ttl: ttl}
}

func (r *cachedProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return r.inner.GetByID(ctx, userID)
}

func (r *cachedProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	key := usernameKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		profile := &domain.UserProfile{}
		if err := json.Unmarshal(val, profile); err == nil {
			return profile, nil
		}
	} else if err != redis.Nil {
		log.Printf("profile cache read failed for %s: %v", key, err)
	}

	profile, err := r.inner.GetByUsername(ctx, username)
	if err != nil || profile == nil {
		return profile, err
	}

	if payload, err := json.Marshal(profile); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			log.Printf("profile cache write failed for %s: %v", key, err)
		}
	}
	return profile, nil
}

// Save writes through and drops the cached entry for the profile's
// username. The service invalidates the previous username itself when
// a rename happens.
func (r *cachedProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	if err := r.inner.Save(ctx, profile); err != nil {
		return err
	}
	r.invalidate(ctx, profile.Username)
	return nil
}

func (r *cachedProfileRepository) ReplaceLinks(ctx context.Context, userID uuid.UUID, links []domain.Link) error {
	if err := r.inner.ReplaceLinks(ctx, userID, links); err != nil {
		return err
	}
	if profile, err := r.inner.GetByID(ctx, userID); err == nil && profile != nil {
		r.invalidate(ctx, profile.Username)
	}
	return nil
}

// Invalidate drops the cached entry for a username. Exposed so the
// service can evict the old key when a profile is renamed.
func (r *cachedProfileRepository) Invalidate(ctx context.Context, username string) {
	r.invalidate(ctx, username)
}

func (r *cachedProfileRepository) invalidate(ctx context.Context, username string) {
	if username == "" {
		return
	}
	if err := r.client.Del(ctx, usernameKey(username)).Err(); err != nil {
		log.Printf("profile cache invalidation failed for %s: %v", username, err)
	}
}

func usernameKey(username string) string {
	return "profile:username:" + strings.ToLower(username)
}
