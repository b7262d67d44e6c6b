package model

// CartonizationResult is the outcome of single-box selection.
//
// @Description Single-box recommendation with utilization, confidence and savings scores
type CartonizationResult struct {
	// RecommendedBox is the selected box.
	RecommendedBox Box `json:"recommended_box"`
	// DimensionalWeight is the carrier dimensional weight of the box in lbs.
	DimensionalWeight float64 `json:"dimensional_weight" example:"12.4"`
	// BillableWeight is max(actual weight, dimensional weight) in lbs.
	BillableWeight float64 `json:"billable_weight" example:"12.4"`
	// Utilization is the percentage of box volume occupied by items, 0-100.
	Utilization float64 `json:"utilization" example:"57.9"`
	// Confidence is a heuristic fit score, 0-100.
	Confidence float64 `json:"confidence" example:"72.5"`
	// Savings is the cost saved versus the default (largest) box, >= 0.
	Savings float64 `json:"savings" example:"3"`
	// RulesApplied lists descriptions of packaging rules that fired, in order.
	RulesApplied []string `json:"rules_applied"`
} // @name CartonizationResult

// PackedPackage is one package of a multi-package decomposition.
//
// @Description One package of a multi-package plan
type PackedPackage struct {
	// Box is the container assigned to this package.
	Box Box `json:"box"`
	// Items are the quantity lines assigned to this package.
	Items []Item `json:"items"`
	// Utilization is the percentage of box volume occupied, 0-100.
	Utilization float64 `json:"utilization" example:"63.1"`
	// Weight is the total cargo weight of the package in lbs.
	Weight float64 `json:"weight" example:"8.2"`
	// Volume is the total cargo volume of the package in cubic inches.
	Volume float64 `json:"volume" example:"1090"`
	// DimensionalWeight is the carrier dimensional weight of the box in lbs.
	DimensionalWeight float64 `json:"dimensional_weight" example:"12.4"`
	// Confidence is the heuristic fit score for this package, 0-100.
	Confidence float64 `json:"confidence" example:"70.1"`
} // @name PackedPackage

// ItemCount returns the number of units assigned to the package,
// expanding quantity lines.
func (p PackedPackage) ItemCount() int {
	count := 0
	for _, item := range p.Items {
		count += item.Quantity
	}
	return count
}

// MultiPackageResult is the outcome of multi-package decomposition. Every
// input item, respecting quantity, appears in exactly one package.
//
// @Description Multi-package cartonization plan with aggregate totals
type MultiPackageResult struct {
	// Packages is the ordered list of planned packages.
	Packages []PackedPackage `json:"packages"`
	// TotalPackages equals len(Packages).
	TotalPackages int `json:"total_packages" example:"2"`
	// TotalWeight is the sum of package cargo weights in lbs.
	TotalWeight float64 `json:"total_weight" example:"16.4"`
	// TotalCost is the sum of box costs over all packages.
	TotalCost float64 `json:"total_cost" example:"4.5"`
	// Confidence is the volume-weighted average of package confidences, 0-100.
	Confidence float64 `json:"confidence" example:"68.9"`
	// RulesApplied lists descriptions of packaging rules that fired during
	// placement, deduplicated in first-fired order.
	RulesApplied []string `json:"rules_applied"`
} // @name MultiPackageResult

// Clone returns a deep copy of the result. Package edits operate on copies
// so a caller never observes partially updated totals.
func (r *MultiPackageResult) Clone() *MultiPackageResult {
	if r == nil {
		return nil
	}
	out := &MultiPackageResult{
		TotalPackages: r.TotalPackages,
		TotalWeight:   r.TotalWeight,
		TotalCost:     r.TotalCost,
		Confidence:    r.Confidence,
		Packages:      make([]PackedPackage, len(r.Packages)),
		RulesApplied:  append([]string(nil), r.RulesApplied...),
	}
	for i, pkg := range r.Packages {
		cp := pkg
		cp.Items = append([]Item(nil), pkg.Items...)
		out.Packages[i] = cp
	}
	return out
}
