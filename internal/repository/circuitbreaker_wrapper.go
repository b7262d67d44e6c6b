// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/circuitbreaker"
	"github.com/shipper1953/carton-service/internal/domain/model"
)

// BoxRepositoryWithCircuitBreaker wraps BoxRepository with circuit breaker protection.
type BoxRepositoryWithCircuitBreaker struct {
	repo           *BoxRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBoxRepositoryWithCircuitBreaker(repo *BoxRepository, cb *circuitbreaker.CircuitBreaker) *BoxRepositoryWithCircuitBreaker {
	return &BoxRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListActive returns active catalog boxes with circuit breaker protection.
// When the circuit is open it returns nil so callers fall back to the
// default catalog.
func (r *BoxRepositoryWithCircuitBreaker) ListActive(ctx context.Context) ([]BoxDocument, error) {
	var result []BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// List returns all catalog boxes with circuit breaker protection.
func (r *BoxRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BoxDocument, error) {
	var result []BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetByID returns a single box with circuit breaker protection.
func (r *BoxRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Create inserts a new box with circuit breaker protection.
func (r *BoxRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *BoxDocument) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, doc)
		return cbErr
	})
	return result, err
}

// Update updates a box with circuit breaker protection.
func (r *BoxRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, doc *BoxDocument) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, doc)
		return cbErr
	})
	return result, err
}

// SeedDefaults seeds the catalog with circuit breaker protection.
func (r *BoxRepositoryWithCircuitBreaker) SeedDefaults(ctx context.Context, boxes []model.Box) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SeedDefaults(ctx, boxes)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BoxRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// RecommendationRepositoryWithCircuitBreaker wraps RecommendationRepository
// with circuit breaker protection.
type RecommendationRepositoryWithCircuitBreaker struct {
	repo           *RecommendationRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRecommendationRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRecommendationRepositoryWithCircuitBreaker(repo *RecommendationRepository, cb *circuitbreaker.CircuitBreaker) *RecommendationRepositoryWithCircuitBreaker {
	return &RecommendationRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Upsert stores a recommendation with circuit breaker protection.
func (r *RecommendationRepositoryWithCircuitBreaker) Upsert(ctx context.Context, doc *RecommendationDocument) (*RecommendationDocument, error) {
	var result *RecommendationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, doc)
		return cbErr
	})
	return result, err
}

// GetByOrderID retrieves a recommendation with circuit breaker protection.
func (r *RecommendationRepositoryWithCircuitBreaker) GetByOrderID(ctx context.Context, orderID string) (*RecommendationDocument, error) {
	var result *RecommendationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByOrderID(ctx, orderID)
		return cbErr
	})
	return result, err
}

// List returns recent recommendations with circuit breaker protection.
func (r *RecommendationRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]RecommendationDocument, error) {
	var result []RecommendationDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RecommendationRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
