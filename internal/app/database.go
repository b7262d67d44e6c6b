// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shipper1953/carton-service/config"
	"github.com/shipper1953/carton-service/internal/circuitbreaker"
	"github.com/shipper1953/carton-service/internal/repository"
	"github.com/shipper1953/carton-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	BoxRepo                      repository.BoxRepositoryInterface
	RecommendationRepo           repository.RecommendationRepositoryInterface
	LoggingService               service.LoggingService
	BoxesCircuitBreaker          *circuitbreaker.CircuitBreaker
	RecommendationCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker           *circuitbreaker.CircuitBreaker
	MongoDB                      *repository.MongoDB
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	boxesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-boxes",
	})

	recCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-recommendations",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	boxRepo := repository.NewBoxRepository(db)
	boxRepoWithCB := repository.NewBoxRepositoryWithCircuitBreaker(boxRepo, boxesCB)

	recRepo := repository.NewRecommendationRepository(db)
	recRepoWithCB := repository.NewRecommendationRepositoryWithCircuitBreaker(recRepo, recCB)

	// Seed the default box catalog on first run
	if err := seedDefaultCatalog(boxRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default box catalog")
	}

	return &DatabaseComponents{
		BoxRepo:                      boxRepoWithCB,
		RecommendationRepo:           recRepoWithCB,
		LoggingService:               loggingService,
		BoxesCircuitBreaker:          boxesCB,
		RecommendationCircuitBreaker: recCB,
		LogsCircuitBreaker:           logsCB,
		MongoDB:                      db,
	}
}

// seedDefaultCatalog inserts the built-in catalog when the boxes collection
// is empty, so a fresh deployment can serve recommendations immediately.
func seedDefaultCatalog(repo repository.BoxRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := repo.SeedDefaults(ctx, service.DefaultBoxCatalog()); err != nil {
		return err
	}

	log.Info().Msg("Box catalog ready")
	return nil
}
