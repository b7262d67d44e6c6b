// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// BoxRepositoryInterface defines the interface for box catalog operations.
type BoxRepositoryInterface interface {
	ListActive(ctx context.Context) ([]BoxDocument, error)
	List(ctx context.Context, limit int) ([]BoxDocument, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error)
	Create(ctx context.Context, doc *BoxDocument) (*BoxDocument, error)
	Update(ctx context.Context, id primitive.ObjectID, doc *BoxDocument) (*BoxDocument, error)
	SeedDefaults(ctx context.Context, boxes []model.Box) error
}

// RecommendationRepositoryInterface defines the interface for recommendation persistence.
type RecommendationRepositoryInterface interface {
	Upsert(ctx context.Context, doc *RecommendationDocument) (*RecommendationDocument, error)
	GetByOrderID(ctx context.Context, orderID string) (*RecommendationDocument, error)
	List(ctx context.Context, limit int) ([]RecommendationDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
