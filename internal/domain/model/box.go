// Package model defines the core domain entities for the carton service.
package model

import "fmt"

// BoxType categorizes a box within the catalog.
type BoxType string

const (
	// BoxTypeSmall is a small-format shipping box.
	BoxTypeSmall BoxType = "small"
	// BoxTypeMedium is a medium-format shipping box.
	BoxTypeMedium BoxType = "medium"
	// BoxTypeLarge is a large-format shipping box.
	BoxTypeLarge BoxType = "large"
	// BoxTypeCustom is a non-standard box defined by an admin.
	BoxTypeCustom BoxType = "custom"
)

// Box represents a candidate shipping container from the company catalog.
// Dimensions are inches, weight is lbs, cost is in currency units.
//
// @Description Candidate shipping box with dimensions, weight limit, cost and stock
// @Example {"id": "1", "name": "12x12x12 Cube", "type": "medium", "length": 12, "width": 12, "height": 12, "max_weight": 20, "cost": 2, "in_stock": 5}
type Box struct {
	// ID is the catalog identifier of the box.
	ID string `json:"id" example:"64f1c0ffee"`
	// Name is the display name of the box.
	Name string `json:"name" example:"12x12x12 Cube"`
	// Type is the box category (small, medium, large, custom).
	Type BoxType `json:"type" example:"medium"`
	// Length is the interior length in inches.
	Length float64 `json:"length" example:"12"`
	// Width is the interior width in inches.
	Width float64 `json:"width" example:"12"`
	// Height is the interior height in inches.
	Height float64 `json:"height" example:"12"`
	// MaxWeight is the maximum supported cargo weight in lbs.
	MaxWeight float64 `json:"max_weight" example:"20"`
	// Cost is the per-unit cost of the box.
	Cost float64 `json:"cost" example:"2"`
	// InStock is the number of boxes currently available.
	InStock int `json:"in_stock" example:"5"`
} // @name Box

// Volume returns the interior volume of the box in cubic inches.
func (b Box) Volume() float64 {
	return b.Length * b.Width * b.Height
}

// DimensionalWeight returns the carrier dimensional weight for the box
// using the given divisor (139 for inches/lbs on the major carriers).
func (b Box) DimensionalWeight(divisor float64) float64 {
	if divisor <= 0 {
		divisor = DefaultDimensionalDivisor
	}
	return b.Volume() / divisor
}

// Validate checks the box invariants: positive dimensions and weight limit,
// non-negative cost and stock.
func (b Box) Validate() error {
	if b.Length <= 0 || b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: box %q has non-positive dimensions", ErrInvalidInput, b.Name)
	}
	if b.MaxWeight <= 0 {
		return fmt.Errorf("%w: box %q has non-positive max weight", ErrInvalidInput, b.Name)
	}
	if b.Cost < 0 {
		return fmt.Errorf("%w: box %q has negative cost", ErrInvalidInput, b.Name)
	}
	if b.InStock < 0 {
		return fmt.Errorf("%w: box %q has negative stock", ErrInvalidInput, b.Name)
	}
	return nil
}
