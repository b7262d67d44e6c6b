package model

const (
	// DefaultDimensionalDivisor is the industry dimensional-weight divisor
	// for inches/lbs.
	DefaultDimensionalDivisor = 139.0

	// DefaultTargetUtilization is the utilization percentage the engine
	// aims for when scoring candidates.
	DefaultTargetUtilization = 75.0

	// DefaultMaxStatsOrders caps the number of orders scanned per
	// box-order statistics run.
	DefaultMaxStatsOrders = 300
)

// Objective selects the optimization goal for multi-package decomposition.
type Objective string

const (
	// ObjectiveMinimizePackages merges under-utilized packages where a
	// larger box can hold both.
	ObjectiveMinimizePackages Objective = "minimize_packages"
	// ObjectiveMinimizeCost downgrades packages to cheaper boxes that
	// still fit.
	ObjectiveMinimizeCost Objective = "minimize_cost"
	// ObjectiveBalanced keeps the greedy placement as-is.
	ObjectiveBalanced Objective = "balanced"
)

// Valid reports whether the objective is one of the supported values.
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveMinimizePackages, ObjectiveMinimizeCost, ObjectiveBalanced:
		return true
	}
	return false
}

// Parameters are the engine tunables. Zero values fall back to defaults
// through Normalize.
type Parameters struct {
	// TargetUtilization is the desired box utilization percentage.
	TargetUtilization float64 `json:"target_utilization"`
	// UtilizationWeight biases candidate scoring towards volume utilization.
	UtilizationWeight float64 `json:"utilization_weight"`
	// CostWeight biases candidate scoring towards cheaper boxes.
	CostWeight float64 `json:"cost_weight"`
	// StockWeight biases candidate scoring towards boxes with stock headroom.
	StockWeight float64 `json:"stock_weight"`
	// DimensionalDivisor is the carrier dimensional-weight divisor.
	DimensionalDivisor float64 `json:"dimensional_divisor"`
	// MaxStatsOrders caps the orders scanned by box-order statistics.
	MaxStatsOrders int `json:"max_stats_orders"`
}

// DefaultParameters returns the built-in engine tuning.
func DefaultParameters() Parameters {
	return Parameters{
		TargetUtilization:  DefaultTargetUtilization,
		UtilizationWeight:  0.5,
		CostWeight:         0.3,
		StockWeight:        0.2,
		DimensionalDivisor: DefaultDimensionalDivisor,
		MaxStatsOrders:     DefaultMaxStatsOrders,
	}
}

// Normalize fills zero or negative fields with their defaults and returns
// the result. An omitted tunable decodes as zero, so zero always means
// "use the default"; a weight cannot be disabled by setting it to 0.
func (p Parameters) Normalize() Parameters {
	def := DefaultParameters()
	if p.TargetUtilization <= 0 || p.TargetUtilization > 100 {
		p.TargetUtilization = def.TargetUtilization
	}
	if p.UtilizationWeight <= 0 {
		p.UtilizationWeight = def.UtilizationWeight
	}
	if p.CostWeight <= 0 {
		p.CostWeight = def.CostWeight
	}
	if p.StockWeight <= 0 {
		p.StockWeight = def.StockWeight
	}
	if p.DimensionalDivisor <= 0 {
		p.DimensionalDivisor = def.DimensionalDivisor
	}
	if p.MaxStatsOrders <= 0 {
		p.MaxStatsOrders = def.MaxStatsOrders
	}
	return p
}
