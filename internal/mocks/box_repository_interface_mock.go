// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/repository"
)

type MockBoxRepositoryInterface struct {
	mock.Mock
}

func (m *MockBoxRepositoryInterface) ListActive(ctx context.Context) ([]repository.BoxDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BoxDocument), args.Error(1)
}

func (m *MockBoxRepositoryInterface) List(ctx context.Context, limit int) ([]repository.BoxDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BoxDocument), args.Error(1)
}

func (m *MockBoxRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*repository.BoxDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxDocument), args.Error(1)
}

func (m *MockBoxRepositoryInterface) Create(ctx context.Context, doc *repository.BoxDocument) (*repository.BoxDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxDocument), args.Error(1)
}

func (m *MockBoxRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, doc *repository.BoxDocument) (*repository.BoxDocument, error) {
	args := m.Called(ctx, id, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxDocument), args.Error(1)
}

func (m *MockBoxRepositoryInterface) SeedDefaults(ctx context.Context, boxes []model.Box) error {
	args := m.Called(ctx, boxes)
	return args.Error(0)
}
