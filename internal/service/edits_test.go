package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// twoPackagePlan builds a plan with two packages for edit tests.
func twoPackagePlan(t *testing.T, svc *CartonizerService) *model.MultiPackageResult {
	t.Helper()
	result, err := svc.CalculateMultiPackage([]model.Item{
		{ID: "a", Name: "widget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 1},
		{ID: "b", Name: "gadget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 1},
	}, model.ObjectiveBalanced)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, 2, result.TotalPackages)
	return result
}

// TestCartonizerService_ApplyEdit_AddPackage tests appending a package.
func TestCartonizerService_ApplyEdit_AddPackage(t *testing.T) {
	svc := NewCartonizerService(testCatalog())
	plan := twoPackagePlan(t, svc)

	edited, err := svc.ApplyEdit(plan, AddPackageAction{})
	assert.NoError(t, err)
	assert.NotNil(t, edited)
	assert.Equal(t, 3, edited.TotalPackages)

	// Seeded with the smallest in-stock box, empty of items.
	added := edited.Packages[2]
	assert.Equal(t, "small", added.Box.ID)
	assert.Empty(t, added.Items)
	assert.Equal(t, 0.0, added.Utilization)

	// The input plan is untouched.
	assert.Equal(t, 2, plan.TotalPackages)
	assert.Len(t, plan.Packages, 2)
}

// TestCartonizerService_ApplyEdit_AddPackageEmptyCatalog tests add against
// an empty catalog.
func TestCartonizerService_ApplyEdit_AddPackageEmptyCatalog(t *testing.T) {
	full := NewCartonizerService(testCatalog())
	plan := twoPackagePlan(t, full)

	empty := NewCartonizerService(nil)
	edited, err := empty.ApplyEdit(plan, AddPackageAction{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Nil(t, edited)
}

// TestCartonizerService_ApplyEdit_EditPackage tests replacing a package.
func TestCartonizerService_ApplyEdit_EditPackage(t *testing.T) {
	svc := NewCartonizerService(testCatalog())
	plan := twoPackagePlan(t, svc)

	tests := []struct {
		name     string
		action   EditPackageAction
		validate func(*testing.T, *model.MultiPackageResult, error)
	}{
		{
			name: "replaces box and items and recomputes metrics",
			action: EditPackageAction{
				Index: 0,
				Package: model.PackedPackage{
					Box: model.Box{ID: "large", Name: "24x18x18 Carton", Length: 24, Width: 18, Height: 18, MaxWeight: 60, Cost: 4, InStock: 3},
					Items: []model.Item{
						{ID: "a", Name: "widget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 2},
					},
					// Stale metrics must be ignored and recomputed.
					Utilization: 999,
					Weight:      999,
				},
			},
			validate: func(t *testing.T, edited *model.MultiPackageResult, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, edited)
				pkg := edited.Packages[0]
				assert.Equal(t, "large", pkg.Box.ID)
				assert.InDelta(t, 10.0, pkg.Weight, 0.001)
				assert.InDelta(t, 2000.0/7776.0*100, pkg.Utilization, 0.01)
				assert.InDelta(t, 15.0, edited.TotalWeight, 0.001)
			},
		},
		{
			name: "overflowing edit is allowed with utilization above 100",
			action: EditPackageAction{
				Index: 0,
				Package: model.PackedPackage{
					Box: model.Box{ID: "small", Name: "6x6x6 Cube", Length: 6, Width: 6, Height: 6, MaxWeight: 5, Cost: 1, InStock: 10},
					Items: []model.Item{
						{ID: "a", Name: "widget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 1},
					},
				},
			},
			validate: func(t *testing.T, edited *model.MultiPackageResult, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, edited)
				assert.Greater(t, edited.Packages[0].Utilization, 100.0)
			},
		},
		{
			name: "index out of range",
			action: EditPackageAction{
				Index:   5,
				Package: model.PackedPackage{Box: testCatalog()[0]},
			},
			validate: func(t *testing.T, edited *model.MultiPackageResult, err error) {
				assert.ErrorIs(t, err, ErrPackageIndex)
				assert.Nil(t, edited)
			},
		},
		{
			name: "invalid box rejected",
			action: EditPackageAction{
				Index:   0,
				Package: model.PackedPackage{Box: model.Box{ID: "bad", Name: "bad"}},
			},
			validate: func(t *testing.T, edited *model.MultiPackageResult, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Nil(t, edited)
			},
		},
		{
			name: "invalid item rejected",
			action: EditPackageAction{
				Index: 0,
				Package: model.PackedPackage{
					Box:   testCatalog()[0],
					Items: []model.Item{{ID: "a", Name: "widget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 0}},
				},
			},
			validate: func(t *testing.T, edited *model.MultiPackageResult, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Nil(t, edited)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edited, err := svc.ApplyEdit(plan, tt.action)
			if tt.validate != nil {
				tt.validate(t, edited, err)
			}
			// A failed or successful edit never mutates the input.
			assert.Equal(t, 2, plan.TotalPackages)
		})
	}
}

// TestCartonizerService_ApplyEdit_RemovePackage tests package removal.
func TestCartonizerService_ApplyEdit_RemovePackage(t *testing.T) {
	svc := NewCartonizerService(testCatalog())

	t.Run("removes package and recomputes totals", func(t *testing.T) {
		plan := twoPackagePlan(t, svc)
		edited, err := svc.ApplyEdit(plan, RemovePackageAction{Index: 1})
		assert.NoError(t, err)
		assert.NotNil(t, edited)
		assert.Equal(t, 1, edited.TotalPackages)
		assert.InDelta(t, 5.0, edited.TotalWeight, 0.001)
		assert.InDelta(t, edited.Packages[0].Box.Cost, edited.TotalCost, 0.001)
	})

	t.Run("rejects removing the last package", func(t *testing.T) {
		plan := twoPackagePlan(t, svc)
		once, err := svc.ApplyEdit(plan, RemovePackageAction{Index: 0})
		require.NoError(t, err)
		require.Equal(t, 1, once.TotalPackages)

		twice, err := svc.ApplyEdit(once, RemovePackageAction{Index: 0})
		assert.ErrorIs(t, err, ErrLastPackage)
		assert.Nil(t, twice)
	})

	t.Run("rejects negative index", func(t *testing.T) {
		plan := twoPackagePlan(t, svc)
		edited, err := svc.ApplyEdit(plan, RemovePackageAction{Index: -1})
		assert.ErrorIs(t, err, ErrPackageIndex)
		assert.Nil(t, edited)
	})
}

// TestCartonizerService_ApplyEdit_InvalidArgs tests nil guards.
func TestCartonizerService_ApplyEdit_InvalidArgs(t *testing.T) {
	svc := NewCartonizerService(testCatalog())
	plan := twoPackagePlan(t, svc)

	edited, err := svc.ApplyEdit(nil, AddPackageAction{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Nil(t, edited)

	edited, err = svc.ApplyEdit(plan, nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Nil(t, edited)
}

// TestCartonizerService_ApplyEdit_CloneIsolation verifies that editing the
// returned plan does not leak into the original through shared slices.
func TestCartonizerService_ApplyEdit_CloneIsolation(t *testing.T) {
	svc := NewCartonizerService(testCatalog())
	plan := twoPackagePlan(t, svc)
	originalID := plan.Packages[0].Items[0].ID

	edited, err := svc.ApplyEdit(plan, AddPackageAction{})
	require.NoError(t, err)

	edited.Packages[0].Items[0].ID = "mutated"
	assert.Equal(t, originalID, plan.Packages[0].Items[0].ID)
}
