package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/mocks"
	"github.com/shipper1953/carton-service/internal/repository"
)

// TestDefaultBoxCatalog verifies the built-in catalog is valid.
func TestDefaultBoxCatalog(t *testing.T) {
	catalog := DefaultBoxCatalog()
	assert.Len(t, catalog, 6)
	for _, box := range catalog {
		assert.NoError(t, box.Validate())
		assert.Greater(t, box.InStock, 0)
	}
}

// TestBoxCatalogService_ListActive tests catalog listing and fallbacks.
func TestBoxCatalogService_ListActive(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockBoxRepositoryInterface)
		noRepo    bool
		validate  func(*testing.T, []model.Box, error)
	}{
		{
			name:   "nil repository falls back to default catalog",
			noRepo: true,
			validate: func(t *testing.T, boxes []model.Box, err error) {
				assert.NoError(t, err)
				assert.Equal(t, DefaultBoxCatalog(), boxes)
			},
		},
		{
			name: "empty database falls back to default catalog",
			setupMock: func(m *mocks.MockBoxRepositoryInterface) {
				m.On("ListActive", mock.Anything).Return([]repository.BoxDocument{}, nil).Once()
			},
			validate: func(t *testing.T, boxes []model.Box, err error) {
				assert.NoError(t, err)
				assert.Equal(t, DefaultBoxCatalog(), boxes)
			},
		},
		{
			name: "returns stored boxes as models",
			setupMock: func(m *mocks.MockBoxRepositoryInterface) {
				id := primitive.NewObjectID()
				m.On("ListActive", mock.Anything).Return([]repository.BoxDocument{
					{ID: id, Name: "Custom", Type: "custom", Length: 10, Width: 10, Height: 10, MaxWeight: 20, Cost: 2, InStock: 7},
				}, nil).Once()
			},
			validate: func(t *testing.T, boxes []model.Box, err error) {
				assert.NoError(t, err)
				assert.Len(t, boxes, 1)
				assert.Equal(t, "Custom", boxes[0].Name)
				assert.Equal(t, model.BoxTypeCustom, boxes[0].Type)
				assert.Equal(t, 7, boxes[0].InStock)
			},
		},
		{
			name: "repository error propagates",
			setupMock: func(m *mocks.MockBoxRepositoryInterface) {
				m.On("ListActive", mock.Anything).Return(nil, errors.New("connection lost")).Once()
			},
			validate: func(t *testing.T, boxes []model.Box, err error) {
				assert.Error(t, err)
				assert.Nil(t, boxes)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc BoxCatalogService
			var mockRepo *mocks.MockBoxRepositoryInterface
			if tt.noRepo {
				svc = NewBoxCatalogService(nil)
			} else {
				mockRepo = &mocks.MockBoxRepositoryInterface{}
				if tt.setupMock != nil {
					tt.setupMock(mockRepo)
				}
				svc = NewBoxCatalogService(mockRepo)
			}

			boxes, err := svc.ListActive(context.Background())
			if tt.validate != nil {
				tt.validate(t, boxes, err)
			}
			if mockRepo != nil {
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

// TestBoxCatalogService_Create tests box creation.
func TestBoxCatalogService_Create(t *testing.T) {
	validBox := model.Box{Name: "New Box", Type: model.BoxTypeCustom, Length: 10, Width: 8, Height: 6, MaxWeight: 15, Cost: 1.5, InStock: 20}

	t.Run("creates a valid box", func(t *testing.T) {
		mockRepo := &mocks.MockBoxRepositoryInterface{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.BoxDocument")).
			Return(&repository.BoxDocument{ID: primitive.NewObjectID(), Name: "New Box"}, nil).Once()

		svc := NewBoxCatalogService(mockRepo)
		doc, err := svc.Create(context.Background(), validBox)
		assert.NoError(t, err)
		assert.NotNil(t, doc)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects an invalid box without touching the repository", func(t *testing.T) {
		mockRepo := &mocks.MockBoxRepositoryInterface{}
		svc := NewBoxCatalogService(mockRepo)

		_, err := svc.Create(context.Background(), model.Box{Name: "bad"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewBoxCatalogService(nil)
		_, err := svc.Create(context.Background(), validBox)
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

// TestBoxCatalogService_Update tests box updates.
func TestBoxCatalogService_Update(t *testing.T) {
	validBox := model.Box{Name: "Updated", Type: model.BoxTypeMedium, Length: 12, Width: 12, Height: 12, MaxWeight: 20, Cost: 2, InStock: 5}

	t.Run("updates an existing box", func(t *testing.T) {
		id := primitive.NewObjectID()
		mockRepo := &mocks.MockBoxRepositoryInterface{}
		mockRepo.On("Update", mock.Anything, id, mock.AnythingOfType("*repository.BoxDocument")).
			Return(&repository.BoxDocument{ID: id, Name: "Updated"}, nil).Once()

		svc := NewBoxCatalogService(mockRepo)
		doc, err := svc.Update(context.Background(), id.Hex(), validBox, true)
		assert.NoError(t, err)
		assert.Equal(t, "Updated", doc.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid hex id", func(t *testing.T) {
		svc := NewBoxCatalogService(&mocks.MockBoxRepositoryInterface{})
		_, err := svc.Update(context.Background(), "not-a-hex-id", validBox, true)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("missing box", func(t *testing.T) {
		id := primitive.NewObjectID()
		mockRepo := &mocks.MockBoxRepositoryInterface{}
		mockRepo.On("Update", mock.Anything, id, mock.AnythingOfType("*repository.BoxDocument")).
			Return(nil, nil).Once()

		svc := NewBoxCatalogService(mockRepo)
		_, err := svc.Update(context.Background(), id.Hex(), validBox, true)
		assert.ErrorIs(t, err, ErrBoxNotFound)
		mockRepo.AssertExpectations(t)
	})
}

// TestBoxCatalogService_List tests the full listing.
func TestBoxCatalogService_List(t *testing.T) {
	t.Run("returns documents", func(t *testing.T) {
		mockRepo := &mocks.MockBoxRepositoryInterface{}
		mockRepo.On("List", mock.Anything, 50).Return([]repository.BoxDocument{{Name: "A"}, {Name: "B"}}, nil).Once()

		svc := NewBoxCatalogService(mockRepo)
		docs, err := svc.List(context.Background(), 50)
		assert.NoError(t, err)
		assert.Len(t, docs, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewBoxCatalogService(nil)
		_, err := svc.List(context.Background(), 50)
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}
