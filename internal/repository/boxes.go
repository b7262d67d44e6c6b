// Package repository provides data access for the box catalog.
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

// BoxDocument represents a catalog box document in MongoDB. Inactive boxes
// stay in the collection for recommendation history but are excluded from
// catalog reads.
type BoxDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	Length    float64            `bson:"length" json:"length"`
	Width     float64            `bson:"width" json:"width"`
	Height    float64            `bson:"height" json:"height"`
	MaxWeight float64            `bson:"max_weight" json:"max_weight"`
	Cost      float64            `bson:"cost" json:"cost"`
	InStock   int                `bson:"in_stock" json:"in_stock"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the document to the domain box.
func (d *BoxDocument) ToModel() model.Box {
	return model.Box{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Type:      model.BoxType(d.Type),
		Length:    d.Length,
		Width:     d.Width,
		Height:    d.Height,
		MaxWeight: d.MaxWeight,
		Cost:      d.Cost,
		InStock:   d.InStock,
	}
}

// BoxRepository provides methods for box catalog operations.
type BoxRepository struct {
	collection *mongo.Collection
}

// NewBoxRepository creates a new box repository.
func NewBoxRepository(db *MongoDB) *BoxRepository {
	return &BoxRepository{
		collection: db.Boxes,
	}
}

// ListActive returns all active catalog boxes.
func (r *BoxRepository) ListActive(ctx context.Context) ([]BoxDocument, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []BoxDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// List returns all catalog boxes, active and inactive.
func (r *BoxRepository) List(ctx context.Context, limit int) ([]BoxDocument, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
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

	var docs []BoxDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByID returns a single box document, or nil when not found.
func (r *BoxRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error) {
	var doc BoxDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a new box document.
func (r *BoxRepository) Create(ctx context.Context, doc *BoxDocument) (*BoxDocument, error) {
	doc.ID = primitive.NewObjectID()
	doc.Active = true
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update replaces the mutable fields of a box document and returns the
// updated document, or nil when the box does not exist.
func (r *BoxRepository) Update(ctx context.Context, id primitive.ObjectID, doc *BoxDocument) (*BoxDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"name":       doc.Name,
			"type":       doc.Type,
			"length":     doc.Length,
			"width":      doc.Width,
			"height":     doc.Height,
			"max_weight": doc.MaxWeight,
			"cost":       doc.Cost,
			"in_stock":   doc.InStock,
			"active":     doc.Active,
			"updated_at": time.Now(),
		},
	}

	var updated BoxDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SeedDefaults inserts the given boxes only when the collection is empty,
// so a fresh deployment starts with a usable catalog.
func (r *BoxRepository) SeedDefaults(ctx context.Context, boxes []model.Box) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(boxes))
	for _, box := range boxes {
		docs = append(docs, &BoxDocument{
			ID:        primitive.NewObjectID(),
			Name:      box.Name,
			Type:      string(box.Type),
			Length:    box.Length,
			Width:     box.Width,
			Height:    box.Height,
			MaxWeight: box.MaxWeight,
			Cost:      box.Cost,
			InStock:   box.InStock,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
