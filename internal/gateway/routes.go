package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clink-app/clink-backend/internal/handler"
	"github.com/clink-app/clink-backend/internal/middleware"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PageHandler    *handler.PageHandler
	PreviewHandler *handler.PreviewHandler
	AuthMiddleware *middleware.AuthMiddleWare

	// UploadsDir, when set, is served under /uploads/ for local file
	// storage deployments.
	UploadsDir string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check. Method-qualified so the catch-all page route below
	// stays registrable alongside it.
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth Routes
	mux.HandleFunc("POST /api/auth/register", config.AuthHandler.Register)
	mux.HandleFunc("POST /api/auth/login", config.AuthHandler.Login)
	mux.HandleFunc("POST /api/auth/google", config.AuthHandler.GoogleLogin)
	mux.Handle("GET /api/auth/me", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.AuthHandler.Me)))

	// Profile Routes
	mux.Handle("GET /api/profile", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.MyProfile)))
	// Availability is public; a token only feeds the self-exclusion so
	// owners see their current username as available.
	mux.Handle("GET /api/profile/check", config.AuthMiddleware.OptionalAuth(http.HandlerFunc(config.ProfileHandler.CheckUsername)))
	mux.HandleFunc("GET /api/profile/{username}", config.ProfileHandler.GetProfile)
	mux.Handle("POST /api/profile", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.SaveProfile)))
	mux.Handle("POST /api/profile/{username}", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.SaveProfile)))
	mux.Handle("POST /api/profile/avatar", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.UploadAvatar)))

	// Live Preview Feed
	mux.HandleFunc("GET /ws/preview", config.PreviewHandler.Subscribe)

	// Local avatar storage
	if config.UploadsDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadsDir))))
	}

	// Public Pages
	mux.HandleFunc("GET /{username}", config.PageHandler.ServePage)

	return mux
}
