package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clink-app/clink-backend/internal/middleware"
	"github.com/clink-app/clink-backend/internal/utils"
)

func TestRequireAuth(t *testing.T) {
	newReq := func(auth string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		return req
	}

	hitNext := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitNext = true
		if _, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID); !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.NewAuthMiddleware("secret")

	rr := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rr, newReq(""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, hitNext)

	rr = httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rr, newReq("BearerOnly"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, hitNext)

	rr = httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rr, newReq("Bearer bad-token"))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, hitNext)

	token, err := utils.GenerateToken("secret", time.Hour, uuid.New())
	require.NoError(t, err)

	rr = httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rr, newReq("Bearer "+token))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, hitNext)
}

func TestOptionalAuth(t *testing.T) {
	newReq := func(auth string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/check", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		return req
	}

	var gotUserID *uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = nil
		if id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID); ok {
			gotUserID = &id
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.NewAuthMiddleware("secret")

	// Anonymous callers pass straight through.
	rr := httptest.NewRecorder()
	mw.OptionalAuth(next).ServeHTTP(rr, newReq(""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, gotUserID)

	// Garbage tokens are ignored rather than rejected.
	rr = httptest.NewRecorder()
	mw.OptionalAuth(next).ServeHTTP(rr, newReq("Bearer bad-token"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, gotUserID)

	// A valid token puts the user ID in context.
	userID := uuid.New()
	token, err := utils.GenerateToken("secret", time.Hour, userID)
	require.NoError(t, err)

	rr = httptest.NewRecorder()
	mw.OptionalAuth(next).ServeHTTP(rr, newReq("Bearer "+token))
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotUserID)
	assert.Equal(t, userID, *gotUserID)
}
