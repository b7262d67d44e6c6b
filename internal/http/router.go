package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shipper1953/carton-service/internal/metrics"
	"github.com/shipper1953/carton-service/internal/middleware"
	"github.com/shipper1953/carton-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit             int
	RateWindow            time.Duration
	CORSOrigins           []string
	SwaggerUser           string
	SwaggerPass           string
	LoggingService        service.LoggingService
	CatalogService        service.BoxCatalogService
	RecommendationService service.RecommendationService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the carton service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	registerAPIRoutes(api, handler, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
