package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// openPackage is a package under construction during placement.
type openPackage struct {
	box   model.Box
	items []model.Item
}

// accepts reports whether the package's box still holds its contents plus
// the line, under the same volumetric, weight and bounding-dimension check
// used for single-box selection.
func (p *openPackage) accepts(line model.Item) bool {
	combined := append(append([]model.Item(nil), p.items...), line)
	return fits(p.box, aggregateRequirements(combined))
}

func (p *openPackage) add(line model.Item) {
	p.items = append(p.items, line)
}

// CalculateMultiPackage partitions the items across one or more packages.
// Quantity lines are kept atomic where possible: a line splits into single
// units only when no catalog box can hold the whole line. The objective
// steers a consolidation pass over the greedy first-fit plan.
func (s *CartonizerService) CalculateMultiPackage(items []model.Item, objective model.Objective) (*model.MultiPackageResult, error) {
	if err := model.ValidateItems(items); err != nil {
		return nil, err
	}
	if objective == "" {
		objective = model.ObjectiveBalanced
	}
	if !objective.Valid() {
		return nil, fmt.Errorf("%w: unknown objective %q", model.ErrInvalidInput, objective)
	}

	lines := expandLines(items, s)
	if lines == nil {
		return nil, nil
	}

	// Largest lines first so small lines fill the gaps they leave.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].TotalVolume() > lines[j].TotalVolume()
	})

	var packages []*openPackage
	var applied []string
	for _, line := range lines {
		placed := false
		for _, pkg := range packages {
			if pkg.accepts(line) {
				pkg.add(line)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		pkg, fired := s.openPackageFor(line)
		if pkg == nil {
			return nil, nil
		}
		packages = append(packages, pkg)
		applied = append(applied, fired...)
	}

	switch objective {
	case model.ObjectiveMinimizePackages:
		var fired []string
		packages, fired = s.mergePackages(packages)
		applied = append(applied, fired...)
	case model.ObjectiveMinimizeCost:
		applied = append(applied, s.downgradeBoxes(packages)...)
	}

	return s.finalizePlan(packages, applied), nil
}

// expandLines returns the quantity lines to place, splitting any line that
// no box can hold whole into single-unit lines. Returns nil when even a
// single unit of some item fits no box.
func expandLines(items []model.Item, s *CartonizerService) []model.Item {
	lines := make([]model.Item, 0, len(items))
	for _, item := range items {
		if s.anyBoxFits(aggregateRequirements([]model.Item{item})) {
			lines = append(lines, item)
			continue
		}
		unit := item
		unit.Quantity = 1
		if !s.anyBoxFits(aggregateRequirements([]model.Item{unit})) {
			return nil
		}
		for i := 0; i < item.Quantity; i++ {
			lines = append(lines, unit)
		}
	}
	return lines
}

func (s *CartonizerService) anyBoxFits(req requirements) bool {
	for _, box := range s.boxes {
		if box.InStock > 0 && fits(box, req) {
			return true
		}
	}
	return false
}

// openPackageFor starts a new package seeded with the line, selecting its
// box through the same filter-rules-score pipeline as single-box selection.
func (s *CartonizerService) openPackageFor(line model.Item) (*openPackage, []string) {
	req := aggregateRequirements([]model.Item{line})
	candidates := s.fittingCandidates(req)
	candidates, applied := applyRules(s.rules, candidates, []model.Item{line})
	if len(candidates) == 0 {
		return nil, nil
	}
	box := s.pickBest(candidates, req)
	pkg := &openPackage{box: box}
	pkg.add(line)
	return pkg, applied
}

// mergePackages repeatedly folds pairs of packages into one whenever a
// single catalog box holds their combined items, restarting the scan after
// every merge until no pair can be joined. The merged box is chosen through
// the same rules-then-score pipeline as placement, so a rule pin honored
// when packages were opened cannot be bypassed by consolidation.
func (s *CartonizerService) mergePackages(packages []*openPackage) ([]*openPackage, []string) {
	var applied []string
	for {
		merged := false
	scan:
		for i := 0; i < len(packages); i++ {
			for j := i + 1; j < len(packages); j++ {
				combined := append(append([]model.Item(nil), packages[i].items...), packages[j].items...)
				req := aggregateRequirements(combined)
				candidates, fired := applyRules(s.rules, s.fittingCandidates(req), combined)
				if len(candidates) == 0 {
					continue
				}
				packages[i] = &openPackage{box: s.pickBest(candidates, req), items: combined}
				packages = append(packages[:j], packages[j+1:]...)
				applied = append(applied, fired...)
				merged = true
				break scan
			}
		}
		if !merged {
			return packages, applied
		}
	}
}

// downgradeBoxes swaps each package's box for the cheapest box that still
// holds its contents and survives the rule fold.
func (s *CartonizerService) downgradeBoxes(packages []*openPackage) []string {
	var applied []string
	for _, pkg := range packages {
		req := aggregateRequirements(pkg.items)
		candidates, fired := applyRules(s.rules, s.fittingCandidates(req), pkg.items)
		best := pkg.box
		for _, box := range candidates {
			if box.Cost < best.Cost {
				best = box
			}
		}
		pkg.box = best
		applied = append(applied, fired...)
	}
	return applied
}

// finalizePlan computes per-package and aggregate metrics from scratch.
func (s *CartonizerService) finalizePlan(packages []*openPackage, applied []string) *model.MultiPackageResult {
	result := &model.MultiPackageResult{
		Packages:      make([]model.PackedPackage, 0, len(packages)),
		TotalPackages: len(packages),
		RulesApplied:  dedupe(applied),
	}

	var weightedConfidence, totalVolume float64
	for _, pkg := range packages {
		req := aggregateRequirements(pkg.items)
		utilization := req.volume / pkg.box.Volume() * 100
		confidence := s.confidence(pkg.box, req, utilization)

		result.Packages = append(result.Packages, model.PackedPackage{
			Box:               pkg.box,
			Items:             pkg.items,
			Utilization:       round2(utilization),
			Weight:            round2(req.weight),
			Volume:            round2(req.volume),
			DimensionalWeight: round2(pkg.box.DimensionalWeight(s.params.DimensionalDivisor)),
			Confidence:        round2(confidence),
		})

		result.TotalWeight += req.weight
		result.TotalCost += pkg.box.Cost
		weightedConfidence += confidence * math.Max(req.volume, 1)
		totalVolume += math.Max(req.volume, 1)
	}

	result.TotalWeight = round2(result.TotalWeight)
	result.TotalCost = round2(result.TotalCost)
	if totalVolume > 0 {
		result.Confidence = round2(weightedConfidence / totalVolume)
	}
	return result
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
