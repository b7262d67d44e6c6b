package model

import "fmt"

// Item is a unit of cargo to be packed, derived from an order line or the
// item master. Callers must resolve missing dimensions before building an
// Item; the engine rejects zero or negative values.
//
// @Description Order line item with resolved dimensions and weight
// @Example {"id": "sku-1", "name": "Widget", "length": 10, "width": 10, "height": 10, "weight": 5, "quantity": 1}
type Item struct {
	// ID identifies the item line.
	ID string `json:"id" example:"sku-1"`
	// Name is the item display name.
	Name string `json:"name" example:"Widget"`
	// SKU is the optional stock keeping unit from the item master.
	SKU string `json:"sku,omitempty" example:"WID-001"`
	// Length is the item length in inches.
	Length float64 `json:"length" example:"10"`
	// Width is the item width in inches.
	Width float64 `json:"width" example:"10"`
	// Height is the item height in inches.
	Height float64 `json:"height" example:"10"`
	// Weight is the per-unit weight in lbs.
	Weight float64 `json:"weight" example:"5"`
	// Quantity is the number of units on the line, at least 1.
	Quantity int `json:"quantity" example:"1" minimum:"1"`
	// Category is the optional merchandising category, used by packaging rules.
	Category string `json:"category,omitempty" example:"fragile"`
} // @name Item

// UnitVolume returns the volume of a single unit in cubic inches.
func (i Item) UnitVolume() float64 {
	return i.Length * i.Width * i.Height
}

// TotalVolume returns the volume of the full quantity line.
func (i Item) TotalVolume() float64 {
	return i.UnitVolume() * float64(i.Quantity)
}

// TotalWeight returns the weight of the full quantity line in lbs.
func (i Item) TotalWeight() float64 {
	return i.Weight * float64(i.Quantity)
}

// Validate checks the item invariants: positive dimensions, weight and quantity.
func (i Item) Validate() error {
	if i.Length <= 0 || i.Width <= 0 || i.Height <= 0 {
		return fmt.Errorf("%w: item %q has non-positive dimensions", ErrInvalidInput, i.Name)
	}
	if i.Weight <= 0 {
		return fmt.Errorf("%w: item %q has non-positive weight", ErrInvalidInput, i.Name)
	}
	if i.Quantity < 1 {
		return fmt.Errorf("%w: item %q has quantity below 1", ErrInvalidInput, i.Name)
	}
	return nil
}

// ValidateItems checks a full item list. An empty list is invalid input.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: item list is empty", ErrInvalidInput)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
