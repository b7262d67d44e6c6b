// Package app provides router configuration.
package app

import (
	"context"

	"github.com/shipper1953/carton-service/config"
	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/http"
	"github.com/shipper1953/carton-service/internal/repository"
	"github.com/shipper1953/carton-service/internal/service"
)

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	return m.db.HealthCheck(context.Background())
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	var catalogService service.BoxCatalogService
	var recService service.RecommendationService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		catalogService = service.NewBoxCatalogService(dbComponents.BoxRepo)
		recService = service.NewRecommendationService(dbComponents.RecommendationRepo)
	} else {
		// No database: serve the default catalog and skip persistence.
		catalogService = service.NewBoxCatalogService(nil)
	}

	params := model.DefaultParameters()
	params.TargetUtilization = cfg.Engine.TargetUtilization
	params.DimensionalDivisor = cfg.Engine.DimensionalDivisor
	params.MaxStatsOrders = cfg.Engine.MaxStatsOrders

	handlerOpts := []http.HandlerOption{
		http.WithEngineParameters(params),
		http.WithCatalogCacheTTL(cfg.Engine.CatalogCacheTTL),
	}
	if cfg.Cache.Size > 0 {
		handlerOpts = append(handlerOpts, http.WithResultCache(service.NewResultCache(cfg.Cache.Size, cfg.Cache.TTL)))
	}

	handler := http.NewHandler(catalogService, recService, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.BoxesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_boxes", dbComponents.BoxesCircuitBreaker)
		}
		if dbComponents.RecommendationCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_recommendations", dbComponents.RecommendationCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.MongoDB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.MongoDB})
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:             cfg.Server.RateLimit,
		RateWindow:            cfg.Server.RateWindow,
		CORSOrigins:           cfg.Server.CORSOrigins,
		SwaggerUser:           cfg.Server.SwaggerUser,
		SwaggerPass:           cfg.Server.SwaggerPass,
		LoggingService:        loggingService,
		CatalogService:        catalogService,
		RecommendationService: recService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
