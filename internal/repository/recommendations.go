// Package repository provides data access for stored recommendations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// RecommendationDocument stores the last cartonization result for an order.
// One document per order; recomputing overwrites the previous result.
type RecommendationDocument struct {
	ID        primitive.ObjectID        `bson:"_id,omitempty" json:"id"`
	OrderID   string                    `bson:"order_id" json:"order_id"`
	Mode      string                    `bson:"mode" json:"mode"`
	Single    *model.CartonizationResult `bson:"single,omitempty" json:"single,omitempty"`
	Multi     *model.MultiPackageResult  `bson:"multi,omitempty" json:"multi,omitempty"`
	CreatedAt time.Time                 `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time                 `bson:"updated_at" json:"updated_at"`
}

// RecommendationRepository provides methods for recommendation persistence.
type RecommendationRepository struct {
	collection *mongo.Collection
}

// NewRecommendationRepository creates a new recommendation repository.
func NewRecommendationRepository(db *MongoDB) *RecommendationRepository {
	return &RecommendationRepository{
		collection: db.Recommendations,
	}
}

// Upsert stores the recommendation for an order, replacing any previous one.
func (r *RecommendationRepository) Upsert(ctx context.Context, doc *RecommendationDocument) (*RecommendationDocument, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"mode":       doc.Mode,
			"single":     doc.Single,
			"multi":      doc.Multi,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"order_id":   doc.OrderID,
			"created_at": now,
		},
	}

	var stored RecommendationDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"order_id": doc.OrderID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByOrderID returns the stored recommendation for an order, or nil when
// none exists.
func (r *RecommendationRepository) GetByOrderID(ctx context.Context, orderID string) (*RecommendationDocument, error) {
	var doc RecommendationDocument
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns recent recommendations, newest first.
func (r *RecommendationRepository) List(ctx context.Context, limit int) ([]RecommendationDocument, error) {
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []RecommendationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
