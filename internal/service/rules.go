package service

import (
	"fmt"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// Rule is a configurable packaging business rule. Apply is a pure transform
// over the fitting candidate set: it returns the (possibly reduced) set,
// whether the rule fired, and a human-readable description recorded on the
// result when it did.
type Rule interface {
	Name() string
	Apply(candidates []model.Box, items []model.Item) (out []model.Box, fired bool, description string)
}

// CategoryOverride pins orders containing a given item category to a
// specific box. The rule only fires when the pinned box is among the
// fitting candidates, so it can never break the fit invariant.
type CategoryOverride struct {
	// Category is the item category that triggers the override.
	Category string
	// BoxID is the catalog box the category must ship in.
	BoxID string
}

// Name implements Rule.
func (r CategoryOverride) Name() string { return "category_override" }

// Apply implements Rule.
func (r CategoryOverride) Apply(candidates []model.Box, items []model.Item) ([]model.Box, bool, string) {
	matched := false
	for _, item := range items {
		if item.Category == r.Category {
			matched = true
			break
		}
	}
	if !matched {
		return candidates, false, ""
	}
	for _, box := range candidates {
		if box.ID == r.BoxID {
			desc := fmt.Sprintf("category %q pinned to box %q", r.Category, box.Name)
			return []model.Box{box}, true, desc
		}
	}
	return candidates, false, ""
}

// StockFloor removes candidates whose stock is below a minimum, so that
// near-depleted boxes are reserved for orders that truly need them.
type StockFloor struct {
	// Minimum is the lowest acceptable stock count.
	Minimum int
}

// Name implements Rule.
func (r StockFloor) Name() string { return "stock_floor" }

// Apply implements Rule.
func (r StockFloor) Apply(candidates []model.Box, _ []model.Item) ([]model.Box, bool, string) {
	kept := make([]model.Box, 0, len(candidates))
	for _, box := range candidates {
		if box.InStock >= r.Minimum {
			kept = append(kept, box)
		}
	}
	if len(kept) == len(candidates) {
		return candidates, false, ""
	}
	desc := fmt.Sprintf("excluded boxes with stock below %d", r.Minimum)
	return kept, true, desc
}

// CostCap removes candidates costing more than a maximum. If the cap would
// empty the candidate set it does not fire, so a cap misconfiguration never
// turns a feasible order infeasible.
type CostCap struct {
	// MaxCost is the highest acceptable box cost.
	MaxCost float64
}

// Name implements Rule.
func (r CostCap) Name() string { return "cost_cap" }

// Apply implements Rule.
func (r CostCap) Apply(candidates []model.Box, _ []model.Item) ([]model.Box, bool, string) {
	kept := make([]model.Box, 0, len(candidates))
	for _, box := range candidates {
		if box.Cost <= r.MaxCost {
			kept = append(kept, box)
		}
	}
	if len(kept) == len(candidates) || len(kept) == 0 {
		return candidates, false, ""
	}
	desc := fmt.Sprintf("excluded boxes costing more than %.2f", r.MaxCost)
	return kept, true, desc
}

// applyRules folds the rule list over the candidate set, collecting the
// descriptions of rules that fired, in order.
func applyRules(rules []Rule, candidates []model.Box, items []model.Item) ([]model.Box, []string) {
	applied := make([]string, 0, len(rules))
	for _, rule := range rules {
		out, fired, desc := rule.Apply(candidates, items)
		if fired {
			applied = append(applied, desc)
		}
		candidates = out
	}
	return candidates, applied
}
