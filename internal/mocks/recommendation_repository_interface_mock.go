// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shipper1953/carton-service/internal/repository"
)

type MockRecommendationRepositoryInterface struct {
	mock.Mock
}

func (m *MockRecommendationRepositoryInterface) Upsert(ctx context.Context, doc *repository.RecommendationDocument) (*repository.RecommendationDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RecommendationDocument), args.Error(1)
}

func (m *MockRecommendationRepositoryInterface) GetByOrderID(ctx context.Context, orderID string) (*repository.RecommendationDocument, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RecommendationDocument), args.Error(1)
}

func (m *MockRecommendationRepositoryInterface) List(ctx context.Context, limit int) ([]repository.RecommendationDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RecommendationDocument), args.Error(1)
}
