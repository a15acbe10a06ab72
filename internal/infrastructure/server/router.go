package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	thumbnailHandler *handler.ThumbnailHandler
	authMiddleware   *middleware.AuthMiddleware
	logger           *zap.Logger
}

type RouterConfig struct {
	ThumbnailHandler *handler.ThumbnailHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Logger           *zap.Logger
	Environment      string
}

func NewRouter(cfg RouterConfig) *Router {
	setMode(cfg.Environment)

	r := &Router{
		engine:           gin.New(),
		thumbnailHandler: cfg.ThumbnailHandler,
		authMiddleware:   cfg.AuthMiddleware,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", health)

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	thumbnails := r.engine.Group("/thumbnail")
	thumbnails.Use(r.authMiddleware.RequireAuth())
	{
		thumbnails.GET("/*reference", r.thumbnailHandler.Get)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func setMode(environment string) {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
