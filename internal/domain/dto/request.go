// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/shipper1953/carton-service/internal/domain/model"
)

// CartonizeRequest represents the JSON request body for single-box selection.
//
// Items is required. Boxes is optional; when omitted the server's active
// catalog is used. OrderID is optional; when present the result is stored
// as the order's recommendation.
//
// @Description Request to select the optimal single box for a set of items
type CartonizeRequest struct {
	// Items are the quantity lines to pack. Must not be empty.
	Items []model.Item `json:"items" binding:"required,min=1"`
	// Boxes optionally overrides the server's box catalog for this request.
	Boxes []model.Box `json:"boxes,omitempty"`
	// OrderID optionally links the result to an order for persistence.
	OrderID string `json:"order_id,omitempty" example:"ORD-1001"`
} // @name CartonizeRequest

// Validate performs custom validation on the request.
func (r *CartonizeRequest) Validate() error {
	if err := model.ValidateItems(r.Items); err != nil {
		return err
	}
	for _, box := range r.Boxes {
		if err := box.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MultiPackageRequest represents the JSON request body for multi-package
// cartonization.
//
// @Description Request to partition items across multiple packages
type MultiPackageRequest struct {
	// Items are the quantity lines to pack. Must not be empty.
	Items []model.Item `json:"items" binding:"required,min=1"`
	// Boxes optionally overrides the server's box catalog for this request.
	Boxes []model.Box `json:"boxes,omitempty"`
	// Objective steers consolidation: minimize_packages, minimize_cost or
	// balanced. Defaults to balanced.
	Objective model.Objective `json:"objective,omitempty" example:"balanced"`
	// OrderID optionally links the result to an order for persistence.
	OrderID string `json:"order_id,omitempty" example:"ORD-1001"`
} // @name MultiPackageRequest

// Validate performs custom validation on the request.
func (r *MultiPackageRequest) Validate() error {
	if err := model.ValidateItems(r.Items); err != nil {
		return err
	}
	for _, box := range r.Boxes {
		if err := box.Validate(); err != nil {
			return err
		}
	}
	if r.Objective != "" && !r.Objective.Valid() {
		return &ValidationError{Field: "objective", Message: "must be minimize_packages, minimize_cost or balanced"}
	}
	return nil
}

// Package edit action names.
const (
	EditActionAdd    = "add_package"
	EditActionEdit   = "edit_package"
	EditActionRemove = "remove_package"
)

// PackageEdit is one manual adjustment to a multi-package plan.
//
// @Description One edit action against a multi-package plan
type PackageEdit struct {
	// Action is add_package, edit_package or remove_package.
	Action string `json:"action" binding:"required" example:"remove_package"`
	// Index selects the target package for edit_package and remove_package.
	Index int `json:"index,omitempty" example:"1"`
	// Package carries the replacement package for edit_package.
	Package *model.PackedPackage `json:"package,omitempty"`
} // @name PackageEdit

// Validate performs custom validation on the edit.
func (e *PackageEdit) Validate() error {
	switch e.Action {
	case EditActionAdd, EditActionRemove:
		return nil
	case EditActionEdit:
		if e.Package == nil {
			return &ValidationError{Field: "package", Message: "required for edit_package"}
		}
		return nil
	default:
		return &ValidationError{Field: "action", Message: "must be add_package, edit_package or remove_package"}
	}
}

// PackageEditsRequest applies a sequence of edits to a multi-package plan.
//
// @Description Request to apply manual edits to a multi-package plan
type PackageEditsRequest struct {
	// Result is the plan being edited, as previously returned by the API.
	Result model.MultiPackageResult `json:"result" binding:"required"`
	// Edits are applied in order; the first failing edit aborts the request.
	Edits []PackageEdit `json:"edits" binding:"required,min=1"`
} // @name PackageEditsRequest

// Validate performs custom validation on the request.
func (r *PackageEditsRequest) Validate() error {
	if len(r.Edits) == 0 {
		return &ValidationError{Field: "edits", Message: "must not be empty"}
	}
	for i := range r.Edits {
		if err := r.Edits[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BoxUpsertRequest creates or updates a catalog box.
//
// @Description Request to create or update a catalog box
type BoxUpsertRequest struct {
	// Name is the display name of the box.
	Name string `json:"name" binding:"required" example:"12x12x12 Cube"`
	// Type is the box category (small, medium, large, custom).
	Type string `json:"type,omitempty" example:"medium"`
	// Length is the interior length in inches.
	Length float64 `json:"length" binding:"required,gt=0" example:"12"`
	// Width is the interior width in inches.
	Width float64 `json:"width" binding:"required,gt=0" example:"12"`
	// Height is the interior height in inches.
	Height float64 `json:"height" binding:"required,gt=0" example:"12"`
	// MaxWeight is the maximum supported cargo weight in lbs.
	MaxWeight float64 `json:"max_weight" binding:"required,gt=0" example:"20"`
	// Cost is the per-unit cost of the box.
	Cost float64 `json:"cost" binding:"gte=0" example:"2"`
	// InStock is the number of boxes currently available.
	InStock int `json:"in_stock" binding:"gte=0" example:"5"`
	// Active marks the box as part of the live catalog. Defaults to true
	// on create; PUT requests set it explicitly.
	Active *bool `json:"active,omitempty"`
} // @name BoxUpsertRequest

// ToModel converts the request to a domain box.
func (r *BoxUpsertRequest) ToModel() model.Box {
	boxType := model.BoxType(r.Type)
	if r.Type == "" {
		boxType = model.BoxTypeCustom
	}
	return model.Box{
		Name:      r.Name,
		Type:      boxType,
		Length:    r.Length,
		Width:     r.Width,
		Height:    r.Height,
		MaxWeight: r.MaxWeight,
		Cost:      r.Cost,
		InStock:   r.InStock,
	}
}

// OrderStatsRequest represents the JSON request body for box-order statistics.
//
// @Description Request to compute box usage statistics over open orders
type OrderStatsRequest struct {
	// Orders are the open orders to scan.
	Orders []model.Order `json:"orders" binding:"required"`
	// Boxes optionally overrides the server's box catalog for this request.
	Boxes []model.Box `json:"boxes,omitempty"`
} // @name OrderStatsRequest

// RecommendationRequest computes and stores a recommendation for an order.
//
// @Description Request to compute and persist a recommendation for an order
type RecommendationRequest struct {
	// OrderID is the order the recommendation belongs to.
	OrderID string `json:"order_id" binding:"required" example:"ORD-1001"`
	// Items are the order's quantity lines. Must not be empty.
	Items []model.Item `json:"items" binding:"required,min=1"`
	// Boxes optionally overrides the server's box catalog for this request.
	Boxes []model.Box `json:"boxes,omitempty"`
	// Mode is single or multi. Defaults to single.
	Mode string `json:"mode,omitempty" example:"single"`
	// Objective steers multi-package consolidation. Ignored for single mode.
	Objective model.Objective `json:"objective,omitempty" example:"balanced"`
} // @name RecommendationRequest

// Validate performs custom validation on the request.
func (r *RecommendationRequest) Validate() error {
	if r.OrderID == "" {
		return &ValidationError{Field: "order_id", Message: "must not be empty"}
	}
	if err := model.ValidateItems(r.Items); err != nil {
		return err
	}
	for _, box := range r.Boxes {
		if err := box.Validate(); err != nil {
			return err
		}
	}
	switch r.Mode {
	case "", "single", "multi":
	default:
		return &ValidationError{Field: "mode", Message: "must be single or multi"}
	}
	if r.Objective != "" && !r.Objective.Valid() {
		return &ValidationError{Field: "objective", Message: "must be minimize_packages, minimize_cost or balanced"}
	}
	return nil
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
