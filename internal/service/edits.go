package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

var (
	// ErrLastPackage is returned when an edit would remove the only package.
	ErrLastPackage = errors.New("cannot remove the last package")
	// ErrPackageIndex is returned when an edit references a package that
	// does not exist.
	ErrPackageIndex = errors.New("package index out of range")
)

// EditAction is a manual adjustment to a multi-package plan. Actions are
// applied through ApplyEdit, which recomputes all derived metrics so edited
// plans stay internally consistent.
type EditAction interface {
	apply(s *CartonizerService, result *model.MultiPackageResult) error
}

// AddPackageAction appends an empty package. The package is seeded with the
// smallest in-stock catalog box so the operator starts from a sensible
// container and swaps it afterwards if needed.
type AddPackageAction struct{}

// EditPackageAction replaces the package at Index with the given package.
// Only Box and Items are taken from the input; every metric is recomputed.
type EditPackageAction struct {
	Index   int
	Package model.PackedPackage
}

// RemovePackageAction deletes the package at Index. Removing the last
// remaining package is rejected; a plan always has at least one package.
type RemovePackageAction struct {
	Index int
}

// ApplyEdit applies the action to a copy of the result and returns the copy
// with totals recomputed. The input result is never modified, so a failed
// edit leaves the caller's plan untouched.
func (s *CartonizerService) ApplyEdit(result *model.MultiPackageResult, action EditAction) (*model.MultiPackageResult, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: nil result", model.ErrInvalidInput)
	}
	if action == nil {
		return nil, fmt.Errorf("%w: nil action", model.ErrInvalidInput)
	}

	edited := result.Clone()
	if err := action.apply(s, edited); err != nil {
		return nil, err
	}
	s.recomputeTotals(edited)
	return edited, nil
}

func (AddPackageAction) apply(s *CartonizerService, result *model.MultiPackageResult) error {
	box, ok := s.smallestStockedBox()
	if !ok {
		return fmt.Errorf("%w: empty box catalog", model.ErrInvalidInput)
	}
	result.Packages = append(result.Packages, model.PackedPackage{Box: box})
	return nil
}

func (a EditPackageAction) apply(s *CartonizerService, result *model.MultiPackageResult) error {
	if a.Index < 0 || a.Index >= len(result.Packages) {
		return fmt.Errorf("%w: %d", ErrPackageIndex, a.Index)
	}
	if err := a.Package.Box.Validate(); err != nil {
		return err
	}
	for _, item := range a.Package.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	result.Packages[a.Index] = model.PackedPackage{
		Box:   a.Package.Box,
		Items: append([]model.Item(nil), a.Package.Items...),
	}
	return nil
}

func (a RemovePackageAction) apply(_ *CartonizerService, result *model.MultiPackageResult) error {
	if a.Index < 0 || a.Index >= len(result.Packages) {
		return fmt.Errorf("%w: %d", ErrPackageIndex, a.Index)
	}
	if len(result.Packages) <= 1 {
		return ErrLastPackage
	}
	result.Packages = append(result.Packages[:a.Index], result.Packages[a.Index+1:]...)
	return nil
}

// recomputeTotals rebuilds every per-package metric and aggregate total from
// the packages' boxes and items. Edited packages may exceed their box's
// capacity; utilization above 100 signals the overflow to the operator
// rather than failing the edit.
func (s *CartonizerService) recomputeTotals(result *model.MultiPackageResult) {
	result.TotalPackages = len(result.Packages)
	result.TotalWeight = 0
	result.TotalCost = 0

	var weightedConfidence, totalVolume float64
	for i := range result.Packages {
		pkg := &result.Packages[i]
		req := aggregateRequirements(pkg.Items)
		utilization := 0.0
		if pkg.Box.Volume() > 0 {
			utilization = req.volume / pkg.Box.Volume() * 100
		}
		confidence := s.confidence(pkg.Box, req, utilization)

		pkg.Utilization = round2(utilization)
		pkg.Weight = round2(req.weight)
		pkg.Volume = round2(req.volume)
		pkg.DimensionalWeight = round2(pkg.Box.DimensionalWeight(s.params.DimensionalDivisor))
		pkg.Confidence = round2(confidence)

		result.TotalWeight += req.weight
		result.TotalCost += pkg.Box.Cost
		weightedConfidence += confidence * math.Max(req.volume, 1)
		totalVolume += math.Max(req.volume, 1)
	}

	result.TotalWeight = round2(result.TotalWeight)
	result.TotalCost = round2(result.TotalCost)
	result.Confidence = 0
	if totalVolume > 0 {
		result.Confidence = round2(weightedConfidence / totalVolume)
	}
}
