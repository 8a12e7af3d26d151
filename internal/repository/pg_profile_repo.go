package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/clink-app/clink-backend/internal/domain"
)

type pgProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a PostgreSQL-backed profile repository.
// Profiles live in the profiles table (1:1 with users, created on
// first save) with their links in the links table.
func NewProfileRepository(db *sqlx.DB) domain.ProfileRepository {
	return &pgProfileRepository{db: db}
}

func (r *pgProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{}
	query := `SELECT user_id, username, display_name, bio, avatar_url, theme, updated_at FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadLinks(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByUsername performs a case-insensitive lookup; uniqueness is
// enforced the same way by the LOWER(username) unique index.
func (r *pgProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{}
	query := `SELECT user_id, username, display_name, bio, avatar_url, theme, updated_at FROM profiles WHERE LOWER(username) = $1`
	err := r.db.GetContext(ctx, profile, query, strings.ToLower(username))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadLinks(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Save upserts the profile row. Links are not touched here; callers
// use ReplaceLinks, so the two writes are separate and not atomic.
func (r *pgProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	profile.UpdatedAt = time.Now()
	query := `INSERT INTO profiles (user_id, username, display_name, bio, avatar_url, theme, updated_at)
		VALUES (:user_id, :username, :display_name, :bio, :avatar_url, :theme, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			theme = EXCLUDED.theme,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // Unique violation on LOWER(username)
				return domain.ErrUsernameTaken
			}
		}
		return err
	}
	return nil
}

// ReplaceLinks deletes all links owned by the user and inserts the
// supplied set in one transaction, assigning position by slice index.
func (r *pgProfileRepository) ReplaceLinks(ctx context.Context, userID uuid.UUID, links []domain.Link) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE user_id = $1`, userID); err != nil {
		return err
	}

	insert := `INSERT INTO links (id, user_id, title, url, position, is_active, thumbnail_type, thumbnail_url)
		VALUES (:id, :user_id, :title, :url, :position, :is_active, :thumbnail_type, :thumbnail_url)`
	for i := range links {
		links[i].UserID = userID
		links[i].Order = i
		if links[i].ID == uuid.Nil {
			links[i].ID = uuid.New()
		}
		if links[i].ThumbnailType == "" {
			links[i].ThumbnailType = domain.ThumbnailFavicon
		}
		if _, err := tx.NamedExecContext(ctx, insert, links[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *pgProfileRepository) loadLinks(ctx context.Context, profile *domain.UserProfile) error {
	links := []domain.Link{}
	query := `SELECT * FROM links WHERE user_id = $1 ORDER BY position`
	if err := r.db.SelectContext(ctx, &links, query, profile.ID); err != nil {
		return err
	}
	profile.Links = links
	return nil
}
