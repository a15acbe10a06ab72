package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/handler"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/middleware"
)

// ProxyRouter serves signed image paths under RoutePrefix plus health and
// Prometheus endpoints.
type ProxyRouter struct {
	engine       *gin.Engine
	proxyHandler *handler.ProxyHandler
	rateLimiter  *middleware.RateLimiter
	routePrefix  string
	logger       *zap.Logger
}

type ProxyRouterConfig struct {
	ProxyHandler *handler.ProxyHandler
	// RateLimiter is optional.
	RateLimiter *middleware.RateLimiter
	RoutePrefix string
	Logger      *zap.Logger
	Environment string
}

func NewProxyRouter(cfg ProxyRouterConfig) *ProxyRouter {
	setMode(cfg.Environment)

	r := &ProxyRouter{
		engine:       gin.New(),
		proxyHandler: cfg.ProxyHandler,
		rateLimiter:  cfg.RateLimiter,
		routePrefix:  cfg.RoutePrefix,
		logger:       cfg.Logger,
	}

	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))

	r.engine.GET("/health", health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	images := r.engine.Group(r.routePrefix)
	if r.rateLimiter != nil {
		images.Use(r.rateLimiter.Limit())
	}
	images.GET("/*path", r.proxyHandler.Serve)

	return r
}

func (r *ProxyRouter) Engine() *gin.Engine {
	return r.engine
}
