package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/clink-app/clink-backend/internal/config"
	"github.com/clink-app/clink-backend/internal/database"
	"github.com/clink-app/clink-backend/internal/gateway"
	"github.com/clink-app/clink-backend/internal/handler"
	"github.com/clink-app/clink-backend/internal/middleware"
	"github.com/clink-app/clink-backend/internal/render"
	"github.com/clink-app/clink-backend/internal/repository"
	"github.com/clink-app/clink-backend/internal/service"
	"github.com/clink-app/clink-backend/internal/ws"
	"github.com/clink-app/clink-backend/pkg/migration"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	log.Println("Connecting to DB...")
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	log.Println("Database Connected Successfully!")

	if err := migration.AutoMigrate(database.BuildURL(cfg.Database), "migrations", logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Redis is optional; without it profile reads skip the cache.
	if redisClient, err := database.NewRedis(cfg.Redis); err != nil {
		log.Printf("Redis unavailable, profile cache disabled: %v", err)
	} else {
		profileRepo = repository.NewCachedProfileRepository(profileRepo, redisClient, cfg.Redis.CacheTTL)
	}

	// File storage
	var fileService service.FileService
	uploadsDir := ""
	if cfg.FileStorage.UseS3 {
		fileService, err = service.NewS3FileService(context.Background(), cfg.FileStorage)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
	} else {
		fileService, err = service.NewLocalFileService(cfg.FileStorage.LocalPath, cfg.FileStorage.LocalBaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		uploadsDir = cfg.FileStorage.LocalPath
	}

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiry, cfg.Google.ClientID)
	profileService := service.NewProfileService(profileRepo)

	// Live preview hub
	hub := ws.NewHub()
	go hub.Run()
	profileService.Subscribe(ws.NewPreviewNotifier(hub))

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		log.Fatalf("Failed to parse page templates: %v", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, fileService)
	pageHandler := handler.NewPageHandler(profileService, renderer)
	previewHandler := handler.NewPreviewHandler(hub, cfg.JWT.Secret)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		PageHandler:    pageHandler,
		PreviewHandler: previewHandler,
		AuthMiddleware: middleware.NewAuthMiddleware(cfg.JWT.Secret),
		UploadsDir:     uploadsDir,
	})

	var root http.Handler = mux
	root = middleware.PrometheusMiddleware(root)
	root = middleware.CORSMiddleware(root, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, root, logger)
	server.OnShutdown(hub.Stop)
	if err := server.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
