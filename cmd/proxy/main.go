package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/thumbgate/internal/adapter/storage"
	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/cache"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/config"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/loader"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/observability"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/server"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/storage"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/thumbor"
	"github.com/marcos-nsantos/thumbgate/internal/usecase/imageproxy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger("thumbgate-proxy", cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.Thumbor.Enabled() {
		logger.Fatal("refusing to start", zap.Error(domain.ErrProxyDisabled))
	}

	ctx := context.Background()

	// Redis is shared by the thumbnail cache and the rate limiter.
	var redisClient *redis.Client
	if cfg.Cache.Backend == "redis" || cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	// Loader backends
	loaders := imageproxy.Loaders{
		File: loader.NewFileLoader(cfg.Loader.FileRoot, cfg.Loader.MaxBodyBytes),
		HTTP: loader.NewHTTPLoader(&http.Client{Timeout: cfg.Loader.FetchTimeout}, cfg.Loader.MaxBodyBytes, cfg.Loader.UserAgent),
	}
	if cfg.S3.Bucket != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, cfg.Loader.MaxBodyBytes)
		if err != nil {
			logger.Fatal("failed to create s3 storage", zap.Error(err))
		}
		loaders.S3 = s3Storage
	} else {
		logger.Info("no uploads bucket configured, s3 references will fail")
	}

	thumbnailCache, err := newThumbnailCache(cfg.Cache, redisClient)
	if err != nil {
		logger.Fatal("failed to create thumbnail cache", zap.Error(err))
	}

	// Use cases
	dispatcher := imageproxy.NewDispatcher(loaders, cfg.Loader.FetchTimeout, logger)
	proxySvc := imageproxy.NewService(
		thumbor.NewCryptoURL(cfg.Thumbor.Key),
		dispatcher,
		storage.NewImageProcessor(),
		thumbnailCache,
		logger,
	)

	// Handlers
	proxyHandler := handler.NewProxyHandler(proxySvc, cfg.Proxy.RoutePrefix)

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, "proxy", logger)
	}

	// Router
	router := server.NewProxyRouter(server.ProxyRouterConfig{
		ProxyHandler: proxyHandler,
		RateLimiter:  rateLimiter,
		RoutePrefix:  cfg.Proxy.RoutePrefix,
		Logger:       logger,
		Environment:  cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Name:            "proxy",
		Port:            cfg.Proxy.Port,
		ReadTimeout:     cfg.Proxy.ReadTimeout,
		WriteTimeout:    cfg.Proxy.WriteTimeout,
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

func newThumbnailCache(cfg config.CacheConfig, client *redis.Client) (adapterstorage.ThumbnailCache, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedisThumbnailCache(client, cfg.TTL), nil
	case "memory":
		return cache.NewMemoryThumbnailCache(cfg.MaxEntries, cfg.TTL)
	default:
		return cache.NoopCache{}, nil
	}
}
