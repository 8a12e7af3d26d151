package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/repository"
)

func TestPGProfileRepository_GetByUsername(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewProfileRepository(db)
	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"user_id", "username", "display_name", "bio", "avatar_url", "theme", "updated_at"}).
		AddRow(id, "Alice", "Alice", nil, nil, "ocean", time.Now())
	// Lookup lowercases the input before hitting LOWER(username).
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE LOWER\\(username\\) = \\$1").
		WithArgs("alice").WillReturnRows(rows)
	linkRows := sqlmock.NewRows([]string{"id", "user_id", "title", "url", "position", "is_active", "thumbnail_type", "thumbnail_url"}).
		AddRow(uuid.New(), id, "Code", "https://github.com/alice", 0, true, "favicon", nil).
		AddRow(uuid.New(), id, "Site", "alice.dev", 1, true, "platform", nil)
	mock.ExpectQuery("SELECT \\* FROM links WHERE user_id = \\$1 ORDER BY position").
		WithArgs(id).WillReturnRows(linkRows)

	p, err := repo.GetByUsername(ctx, "ALICE")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Alice", p.Username)
	require.Len(t, p.Links, 2)
	assert.Equal(t, 0, p.Links[0].Order)
	assert.Equal(t, 1, p.Links[1].Order)
}

func TestPGProfileRepository_GetByUsernameNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewProfileRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE LOWER\\(username\\) = \\$1").
		WithArgs("nobody").WillReturnError(sql.ErrNoRows)

	p, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPGProfileRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewProfileRepository(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"user_id", "username", "display_name", "bio", "avatar_url", "theme", "updated_at"}).
		AddRow(id, "alice", "Alice", nil, nil, "gradient", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1").
		WithArgs(id).WillReturnRows(rows)
	mock.ExpectQuery("SELECT \\* FROM links").
		WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "url", "position", "is_active", "thumbnail_type", "thumbnail_url"}))

	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p.Links)

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1").
		WithArgs(id).WillReturnError(sql.ErrNoRows)
	p, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPGProfileRepository_Save(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewProfileRepository(db)
	id := uuid.New()
	p := &domain.UserProfile{ID: id, Username: "alice", DisplayName: "Alice", Theme: "gradient"}

	mock.ExpectExec("INSERT INTO profiles").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Save(context.Background(), p))
	assert.False(t, p.UpdatedAt.IsZero())

	mock.ExpectExec("INSERT INTO profiles").WillReturnError(&pq.Error{Code: "23505"})
	err := repo.Save(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestPGProfileRepository_ReplaceLinks(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewProfileRepository(db)
	id := uuid.New()

	links := []domain.Link{
		{Title: "A", URL: "a.com"},
		{Title: "B", URL: "b.com", Order: 7}, // position reassigned from slice index
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM links WHERE user_id = \\$1").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO links").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO links").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceLinks(context.Background(), id, links))
	assert.Equal(t, 0, links[0].Order)
	assert.Equal(t, 1, links[1].Order)
	assert.NotEqual(t, uuid.Nil, links[0].ID)
	assert.Equal(t, domain.ThumbnailFavicon, links[0].ThumbnailType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGProfileRepository_ReplaceLinksEmpty(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewProfileRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM links WHERE user_id = \\$1").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceLinks(context.Background(), id, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
