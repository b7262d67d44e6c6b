//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

func TestBoxDocument_ToModel(t *testing.T) {
	id := primitive.NewObjectID()
	doc := BoxDocument{
		ID:        id,
		Name:      "12x12x12 Cube",
		Type:      "medium",
		Length:    12,
		Width:     12,
		Height:    12,
		MaxWeight: 20,
		Cost:      2,
		InStock:   5,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	box := doc.ToModel()

	assert.Equal(t, id.Hex(), box.ID)
	assert.Equal(t, "12x12x12 Cube", box.Name)
	assert.Equal(t, model.BoxTypeMedium, box.Type)
	assert.Equal(t, 12.0, box.Length)
	assert.Equal(t, 12.0, box.Width)
	assert.Equal(t, 12.0, box.Height)
	assert.Equal(t, 20.0, box.MaxWeight)
	assert.Equal(t, 2.0, box.Cost)
	assert.Equal(t, 5, box.InStock)

	// The converted box passes domain validation as-is.
	assert.NoError(t, box.Validate())
}

func TestBoxDocument_ToModel_UnknownType(t *testing.T) {
	doc := BoxDocument{
		ID:        primitive.NewObjectID(),
		Name:      "Mystery Box",
		Type:      "giant",
		Length:    40,
		Width:     40,
		Height:    40,
		MaxWeight: 100,
	}

	box := doc.ToModel()

	// Unknown type strings pass through untouched.
	assert.Equal(t, model.BoxType("giant"), box.Type)
}
