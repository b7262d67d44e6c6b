package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrBoxNotFound is returned when a box does not exist in the catalog.
var ErrBoxNotFound = errors.New("box not found")

// DefaultBoxCatalog returns the built-in box catalog used when the database
// holds no boxes yet, or as a fallback when it is unreachable.
func DefaultBoxCatalog() []model.Box {
	return []model.Box{
		{ID: "default-1", Name: "6x6x6 Cube", Type: model.BoxTypeSmall, Length: 6, Width: 6, Height: 6, MaxWeight: 5, Cost: 0.8, InStock: 100},
		{ID: "default-2", Name: "10x8x6 Mailer", Type: model.BoxTypeSmall, Length: 10, Width: 8, Height: 6, MaxWeight: 10, Cost: 1.2, InStock: 100},
		{ID: "default-3", Name: "12x12x12 Cube", Type: model.BoxTypeMedium, Length: 12, Width: 12, Height: 12, MaxWeight: 20, Cost: 2, InStock: 100},
		{ID: "default-4", Name: "16x12x10 Carton", Type: model.BoxTypeMedium, Length: 16, Width: 12, Height: 10, MaxWeight: 30, Cost: 2.6, InStock: 100},
		{ID: "default-5", Name: "18x18x16 Carton", Type: model.BoxTypeLarge, Length: 18, Width: 18, Height: 16, MaxWeight: 50, Cost: 3.5, InStock: 100},
		{ID: "default-6", Name: "24x18x18 Carton", Type: model.BoxTypeLarge, Length: 24, Width: 18, Height: 18, MaxWeight: 65, Cost: 4.5, InStock: 100},
	}
}

// BoxCatalogService provides box catalog operations.
type BoxCatalogService interface {
	// ListActive returns the active catalog. Falls back to the default
	// catalog when no repository is configured or the database has no boxes.
	ListActive(ctx context.Context) ([]model.Box, error)
	// List returns all catalog boxes, active and inactive.
	List(ctx context.Context, limit int) ([]repository.BoxDocument, error)
	// Create adds a box to the catalog.
	Create(ctx context.Context, box model.Box) (*repository.BoxDocument, error)
	// Update replaces the mutable fields of a catalog box.
	Update(ctx context.Context, id string, box model.Box, active bool) (*repository.BoxDocument, error)
}

// BoxCatalogServiceImpl implements BoxCatalogService.
type BoxCatalogServiceImpl struct {
	boxRepo repository.BoxRepositoryInterface
}

// NewBoxCatalogService creates a new box catalog service.
func NewBoxCatalogService(boxRepo repository.BoxRepositoryInterface) BoxCatalogService {
	return &BoxCatalogServiceImpl{
		boxRepo: boxRepo,
	}
}

// ListActive returns the active catalog boxes as domain models.
func (s *BoxCatalogServiceImpl) ListActive(ctx context.Context) ([]model.Box, error) {
	if s.boxRepo == nil {
		return DefaultBoxCatalog(), nil
	}

	docs, err := s.boxRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return DefaultBoxCatalog(), nil
	}

	boxes := make([]model.Box, len(docs))
	for i := range docs {
		boxes[i] = docs[i].ToModel()
	}
	return boxes, nil
}

// List returns all catalog boxes.
func (s *BoxCatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxDocument, error) {
	if s.boxRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.boxRepo.List(ctx, limit)
}

// Create adds a box to the catalog after validating it.
func (s *BoxCatalogServiceImpl) Create(ctx context.Context, box model.Box) (*repository.BoxDocument, error) {
	if s.boxRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}

	doc := &repository.BoxDocument{
		Name:      box.Name,
		Type:      string(box.Type),
		Length:    box.Length,
		Width:     box.Width,
		Height:    box.Height,
		MaxWeight: box.MaxWeight,
		Cost:      box.Cost,
		InStock:   box.InStock,
	}
	return s.boxRepo.Create(ctx, doc)
}

// Update replaces the mutable fields of a catalog box.
func (s *BoxCatalogServiceImpl) Update(ctx context.Context, id string, box model.Box, active bool) (*repository.BoxDocument, error) {
	if s.boxRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid box id %q", model.ErrInvalidInput, id)
	}

	doc := &repository.BoxDocument{
		Name:      box.Name,
		Type:      string(box.Type),
		Length:    box.Length,
		Width:     box.Width,
		Height:    box.Height,
		MaxWeight: box.MaxWeight,
		Cost:      box.Cost,
		InStock:   box.InStock,
		Active:    active,
	}
	updated, err := s.boxRepo.Update(ctx, objectID, doc)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBoxNotFound
	}
	return updated, nil
}
