package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/clink-app/clink-backend/internal/utils"
)

type contextKey string

const ContextKeyUserId contextKey = "user_id"

type AuthMiddleWare struct {
	jwtSecret string
}

// NewAuthMiddleware creates and returns a new instance of AuthMiddleWare.
// It initializes the middleware with the provided JWT secret key used for token validation.
func NewAuthMiddleware(jwtSecret string) *AuthMiddleWare {
	return &AuthMiddleWare{jwtSecret: jwtSecret}
}

// RequireAuth is a middleware function that enforces authentication on HTTP requests.
// It validates the presence and format of a Bearer token in the Authorization header,
// verifies the token's validity and expiration using the stored JWT secret, and injects
// the authenticated user's ID into the request context for downstream handlers.
// If authentication fails at any step, it returns a 401 Unauthorized response with a
// descriptive error message.
func (m *AuthMiddleWare) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, `{"error": "missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, `{"error": "invalid authorization header format"}`, http.StatusUnauthorized)
			return
		}

		tokenStr := parts[1]
		claims, err := utils.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			http.Error(w, `{"error": "invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserId, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the caller's user ID into the request context
// when a valid Bearer token is present, and passes the request through
// unauthenticated otherwise. It never rejects; handlers behind it must
// treat a missing user ID as an anonymous caller.
func (m *AuthMiddleWare) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := utils.ValidateToken(parts[1], m.jwtSecret); err == nil {
				ctx := context.WithValue(r.Context(), ContextKeyUserId, claims.UserID)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}
