package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler"
	"github.com/marcos-nsantos/thumbgate/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/auth"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/camo"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/config"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/database"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/observability"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/server"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/thumbor"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/thumbnail"
)

// @title thumbgate API
// @version 1.0
// @description Authorizes image references and redirects to signed image proxy URLs.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger("thumbgate-api", cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		if err := database.RunMigrations(ctx, pool, dir); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Repositories
	attachmentRepo := postgres.NewAttachmentRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	signer := thumbor.NewSigner(cfg.Thumbor.Key)
	camoRewriter := camo.NewRewriter(cfg.Camo.URI, cfg.Camo.Key)

	// Use cases
	thumbnailSvc := thumbnail.NewService(
		attachmentRepo,
		thumbnail.NewSourceClassifier(cfg.Uploads.IsLocal()),
		signer,
		camoRewriter,
		thumbnail.Settings{
			ProxyHost:   cfg.Thumbor.Host,
			Colocated:   cfg.Thumbor.IsColocated(),
			RoutePrefix: cfg.Proxy.RoutePrefix,
		},
		logger,
	)

	// Handlers
	thumbnailHandler := handler.NewThumbnailHandler(thumbnailSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ThumbnailHandler: thumbnailHandler,
		AuthMiddleware:   authMiddleware,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Name:            "api",
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
