package service

import (
	"context"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/repository"
)

// Recommendation modes stored alongside results.
const (
	RecommendationModeSingle = "single"
	RecommendationModeMulti  = "multi"
)

// RecommendationService persists and retrieves cartonization results per
// order so other systems can read the latest recommendation.
type RecommendationService interface {
	// SaveSingle stores a single-box recommendation for an order.
	SaveSingle(ctx context.Context, orderID string, result *model.CartonizationResult) (*repository.RecommendationDocument, error)
	// SaveMulti stores a multi-package recommendation for an order.
	SaveMulti(ctx context.Context, orderID string, result *model.MultiPackageResult) (*repository.RecommendationDocument, error)
	// GetByOrderID returns the stored recommendation for an order, or nil.
	GetByOrderID(ctx context.Context, orderID string) (*repository.RecommendationDocument, error)
	// List returns recent recommendations, newest first.
	List(ctx context.Context, limit int) ([]repository.RecommendationDocument, error)
}

// RecommendationServiceImpl implements RecommendationService.
type RecommendationServiceImpl struct {
	recRepo repository.RecommendationRepositoryInterface
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(recRepo repository.RecommendationRepositoryInterface) RecommendationService {
	return &RecommendationServiceImpl{
		recRepo: recRepo,
	}
}

// SaveSingle stores a single-box recommendation for an order.
func (s *RecommendationServiceImpl) SaveSingle(ctx context.Context, orderID string, result *model.CartonizationResult) (*repository.RecommendationDocument, error) {
	if s.recRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recRepo.Upsert(ctx, &repository.RecommendationDocument{
		OrderID: orderID,
		Mode:    RecommendationModeSingle,
		Single:  result,
	})
}

// SaveMulti stores a multi-package recommendation for an order.
func (s *RecommendationServiceImpl) SaveMulti(ctx context.Context, orderID string, result *model.MultiPackageResult) (*repository.RecommendationDocument, error) {
	if s.recRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recRepo.Upsert(ctx, &repository.RecommendationDocument{
		OrderID: orderID,
		Mode:    RecommendationModeMulti,
		Multi:   result,
	})
}

// GetByOrderID returns the stored recommendation for an order, or nil.
func (s *RecommendationServiceImpl) GetByOrderID(ctx context.Context, orderID string) (*repository.RecommendationDocument, error) {
	if s.recRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recRepo.GetByOrderID(ctx, orderID)
}

// List returns recent recommendations, newest first.
func (s *RecommendationServiceImpl) List(ctx context.Context, limit int) ([]repository.RecommendationDocument, error) {
	if s.recRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recRepo.List(ctx, limit)
}
