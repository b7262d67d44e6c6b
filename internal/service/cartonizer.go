package service

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
	"time"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/service/cache"
)

// Cartonizer selects shipping boxes for order items. Implementations are
// pure given their inputs: safe for concurrent use and idempotent.
type Cartonizer interface {
	// CalculateOptimalBox returns the best single box for the items, or a
	// nil result when no catalog box can hold them.
	CalculateOptimalBox(items []model.Item) (*model.CartonizationResult, error)
	// CalculateMultiPackage partitions the items across packages under the
	// given objective, or returns a nil result when infeasible.
	CalculateMultiPackage(items []model.Item, objective model.Objective) (*model.MultiPackageResult, error)
	// ApplyEdit applies a manual package edit to a previously computed
	// multi-package result and returns a new result with totals recomputed.
	ApplyEdit(result *model.MultiPackageResult, action EditAction) (*model.MultiPackageResult, error)
	// BoxOrderStats counts, per catalog box, how many of the given orders
	// would select it as their optimal single box.
	BoxOrderStats(orders []model.Order) []model.BoxUsageStat
	// InvalidateCache clears the result cache (call when the catalog changes).
	InvalidateCache()
}

// Option configures a CartonizerService.
type Option func(*CartonizerService)

// CartonizerService implements Cartonizer against a fixed box catalog.
// Construction is cheap; callers build a fresh instance per catalog snapshot
// rather than mutating a shared one.
type CartonizerService struct {
	boxes  []model.Box
	params model.Parameters
	rules  []Rule
	cache  cache.Cache
}

// NewCartonizerService creates a cartonizer over the given catalog.
// Boxes that fail validation are dropped up front so a single bad catalog
// row cannot poison every calculation.
func NewCartonizerService(boxes []model.Box, opts ...Option) *CartonizerService {
	valid := make([]model.Box, 0, len(boxes))
	for _, box := range boxes {
		if box.Validate() == nil {
			valid = append(valid, box)
		}
	}

	s := &CartonizerService{
		boxes:  valid,
		params: model.DefaultParameters(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithParameters sets custom engine tunables.
func WithParameters(params model.Parameters) Option {
	return func(s *CartonizerService) {
		s.params = params.Normalize()
	}
}

// WithRules sets the packaging business rules, applied in order.
func WithRules(rules []Rule) Option {
	return func(s *CartonizerService) {
		s.rules = rules
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *CartonizerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface injects a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *CartonizerService) {
		s.cache = c
	}
}

// requirements aggregates what the item set demands from a box: total
// volume, total weight, and a stacked bounding-box estimate. The bounding
// box is the footprint of the widest item with all units stacked by height,
// a deliberate simplification of true 3D packing.
type requirements struct {
	volume float64
	weight float64
	dims   [3]float64 // sorted descending
}

func aggregateRequirements(items []model.Item) requirements {
	var req requirements
	var maxLength, maxWidth, stackedHeight float64
	for _, item := range items {
		req.volume += item.TotalVolume()
		req.weight += item.TotalWeight()
		maxLength = math.Max(maxLength, item.Length)
		maxWidth = math.Max(maxWidth, item.Width)
		stackedHeight += item.Height * float64(item.Quantity)
	}
	req.dims = sortedDims(maxLength, maxWidth, stackedHeight)
	return req
}

// sortedDims returns the three dimensions in descending order.
func sortedDims(a, b, c float64) [3]float64 {
	d := [3]float64{a, b, c}
	sort.Sort(sort.Reverse(sort.Float64Slice(d[:])))
	return d
}

// fits reports whether the box can hold the requirements under some axis
// permutation, within its weight limit. Comparing dimensions sorted
// descending is equivalent to trying all axis assignments.
func fits(box model.Box, req requirements) bool {
	if box.MaxWeight < req.weight {
		return false
	}
	if box.Volume() < req.volume {
		return false
	}
	dims := sortedDims(box.Length, box.Width, box.Height)
	return dims[0] >= req.dims[0] && dims[1] >= req.dims[1] && dims[2] >= req.dims[2]
}

// CalculateOptimalBox implements the single-box selection pipeline:
// validate, filter to fitting in-stock candidates, fold business rules,
// score, and build the recommendation.
func (s *CartonizerService) CalculateOptimalBox(items []model.Item) (*model.CartonizationResult, error) {
	if err := model.ValidateItems(items); err != nil {
		return nil, err
	}

	var key uint64
	if s.cache != nil {
		key = fingerprintItems(items)
		if result, ok := s.cache.Get(key); ok {
			return &result, nil
		}
	}

	req := aggregateRequirements(items)
	candidates := s.fittingCandidates(req)
	candidates, applied := applyRules(s.rules, candidates, items)
	if len(candidates) == 0 {
		return nil, nil
	}

	best := s.pickBest(candidates, req)
	result := s.buildResult(best, req, applied)

	if s.cache != nil {
		s.cache.Set(key, *result)
	}
	return result, nil
}

// fittingCandidates filters the catalog to boxes that can hold the
// requirements. Out-of-stock boxes are excluded outright; stock is a hard
// constraint, never a scoring penalty.
func (s *CartonizerService) fittingCandidates(req requirements) []model.Box {
	candidates := make([]model.Box, 0, len(s.boxes))
	for _, box := range s.boxes {
		if box.InStock <= 0 {
			continue
		}
		if fits(box, req) {
			candidates = append(candidates, box)
		}
	}
	return candidates
}

// pickBest ranks candidates by a weighted blend of utilization, cost and
// stock headroom and returns the top scorer.
func (s *CartonizerService) pickBest(candidates []model.Box, req requirements) model.Box {
	minCost, maxCost := candidates[0].Cost, candidates[0].Cost
	for _, box := range candidates[1:] {
		minCost = math.Min(minCost, box.Cost)
		maxCost = math.Max(maxCost, box.Cost)
	}

	best := candidates[0]
	bestScore := math.Inf(-1)
	for _, box := range candidates {
		score := s.scoreBox(box, req, minCost, maxCost)
		if score > bestScore {
			best = box
			bestScore = score
		}
	}
	return best
}

func (s *CartonizerService) scoreBox(box model.Box, req requirements, minCost, maxCost float64) float64 {
	utilization := req.volume / box.Volume()

	costScore := 1.0
	if maxCost > minCost {
		costScore = 1 - (box.Cost-minCost)/(maxCost-minCost)
	}

	stockScore := math.Min(float64(box.InStock), 10) / 10

	return s.params.UtilizationWeight*utilization +
		s.params.CostWeight*costScore +
		s.params.StockWeight*stockScore
}

// buildResult computes the derived metrics for a selected box.
func (s *CartonizerService) buildResult(box model.Box, req requirements, applied []string) *model.CartonizationResult {
	utilization := req.volume / box.Volume() * 100
	dimWeight := box.DimensionalWeight(s.params.DimensionalDivisor)

	return &model.CartonizationResult{
		RecommendedBox:    box,
		DimensionalWeight: round2(dimWeight),
		BillableWeight:    round2(math.Max(req.weight, dimWeight)),
		Utilization:       round2(utilization),
		Confidence:        round2(s.confidence(box, req, utilization)),
		Savings:           round2(s.savings(box)),
		RulesApplied:      applied,
	}
}

// confidence scores how well-fit a recommendation is: monotonically
// increasing in utilization, weight margin and stock headroom, on a 0-100
// scale.
func (s *CartonizerService) confidence(box model.Box, req requirements, utilization float64) float64 {
	utilScore := math.Min(utilization/s.params.TargetUtilization, 1)
	weightMargin := 1 - req.weight/box.MaxWeight
	stockScore := math.Min(float64(box.InStock), 5) / 5

	confidence := 100 * (0.55*utilScore + 0.30*weightMargin + 0.15*stockScore)
	return clamp(confidence, 0, 100)
}

// savings is the cost delta versus the naive default choice, the largest
// box in the catalog, representing money saved by right-sizing.
func (s *CartonizerService) savings(selected model.Box) float64 {
	var largest *model.Box
	for i := range s.boxes {
		if largest == nil || s.boxes[i].Volume() > largest.Volume() {
			largest = &s.boxes[i]
		}
	}
	if largest == nil {
		return 0
	}
	return math.Max(0, largest.Cost-selected.Cost)
}

// smallestStockedBox returns the smallest-volume box with stock available,
// falling back to the smallest box overall. ok is false for an empty catalog.
func (s *CartonizerService) smallestStockedBox() (model.Box, bool) {
	var smallest, smallestStocked *model.Box
	for i := range s.boxes {
		box := &s.boxes[i]
		if smallest == nil || box.Volume() < smallest.Volume() {
			smallest = box
		}
		if box.InStock > 0 && (smallestStocked == nil || box.Volume() < smallestStocked.Volume()) {
			smallestStocked = box
		}
	}
	if smallestStocked != nil {
		return *smallestStocked, true
	}
	if smallest != nil {
		return *smallest, true
	}
	return model.Box{}, false
}

// InvalidateCache clears the result cache.
func (s *CartonizerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// fingerprintItems hashes the fields of every item that influence the
// outcome. The catalog and parameters are fixed per service instance, so
// items alone identify a computation.
func fingerprintItems(items []model.Item) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	for _, item := range items {
		_, _ = h.Write([]byte(item.ID))
		_, _ = h.Write([]byte(item.Category))
		writeFloat(item.Length)
		writeFloat(item.Width)
		writeFloat(item.Height)
		writeFloat(item.Weight)
		binary.LittleEndian.PutUint64(buf[:], uint64(item.Quantity))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
