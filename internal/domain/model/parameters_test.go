package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObjective_Valid tests objective validation.
func TestObjective_Valid(t *testing.T) {
	tests := []struct {
		objective Objective
		want      bool
	}{
		{ObjectiveMinimizePackages, true},
		{ObjectiveMinimizeCost, true},
		{ObjectiveBalanced, true},
		{Objective(""), false},
		{Objective("fastest"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.objective), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.objective.Valid())
		})
	}
}

// TestParameters_Normalize tests default fallback behavior.
func TestParameters_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Parameters
		validate func(*testing.T, Parameters)
	}{
		{
			name:  "zero value gets all defaults",
			input: Parameters{},
			validate: func(t *testing.T, p Parameters) {
				assert.Equal(t, DefaultParameters(), p)
			},
		},
		{
			name:  "valid fields are kept",
			input: Parameters{TargetUtilization: 80, UtilizationWeight: 0.6, DimensionalDivisor: 166, MaxStatsOrders: 50},
			validate: func(t *testing.T, p Parameters) {
				assert.Equal(t, 80.0, p.TargetUtilization)
				assert.Equal(t, 0.6, p.UtilizationWeight)
				assert.Equal(t, 166.0, p.DimensionalDivisor)
				assert.Equal(t, 50, p.MaxStatsOrders)
			},
		},
		{
			name:  "utilization above 100 falls back",
			input: Parameters{TargetUtilization: 150},
			validate: func(t *testing.T, p Parameters) {
				assert.Equal(t, DefaultTargetUtilization, p.TargetUtilization)
			},
		},
		{
			name:  "negative divisor falls back",
			input: Parameters{DimensionalDivisor: -1},
			validate: func(t *testing.T, p Parameters) {
				assert.Equal(t, DefaultDimensionalDivisor, p.DimensionalDivisor)
			},
		},
		{
			name:  "zero cost and stock weights fall back to defaults",
			input: Parameters{UtilizationWeight: 1, CostWeight: 0, StockWeight: 0},
			validate: func(t *testing.T, p Parameters) {
				assert.Equal(t, DefaultParameters().CostWeight, p.CostWeight)
				assert.Equal(t, DefaultParameters().StockWeight, p.StockWeight)
			},
		},
		{
			name:  "negative weights fall back to defaults",
			input: Parameters{CostWeight: -1, StockWeight: -0.5},
			validate: func(t *testing.T, p Parameters) {
				assert.Equal(t, DefaultParameters().CostWeight, p.CostWeight)
				assert.Equal(t, DefaultParameters().StockWeight, p.StockWeight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.input.Normalize())
		})
	}
}
