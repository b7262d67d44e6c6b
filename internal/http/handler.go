package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shipper1953/carton-service/internal/domain/dto"
	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/i18n"
	"github.com/shipper1953/carton-service/internal/logger"
	"github.com/shipper1953/carton-service/internal/metrics"
	"github.com/shipper1953/carton-service/internal/service"
	"github.com/shipper1953/carton-service/internal/service/cache"
)

// catalogCache provides thread-safe caching of the active box catalog.
type catalogCache struct {
	boxes     atomic.Value // holds []model.Box
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns cached boxes if valid, or nil if cache is expired/empty.
func (c *catalogCache) get() []model.Box {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if boxes := c.boxes.Load(); boxes != nil {
				if b, ok := boxes.([]model.Box); ok {
					return b
				}
			}
		}
	}
	return nil
}

// set stores boxes in the cache with TTL.
func (c *catalogCache) set(boxes []model.Box) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return
		}
	}

	c.boxes.Store(boxes)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for cartonization routes.
type Handler struct {
	catalogService service.BoxCatalogService
	recService     service.RecommendationService
	rules          []service.Rule
	params         model.Parameters
	resultCache    cache.Cache
	catalogCache   *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for box catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// WithEngineRules sets the packaging business rules applied on every request.
func WithEngineRules(rules []service.Rule) HandlerOption {
	return func(h *Handler) {
		h.rules = rules
	}
}

// WithEngineParameters sets the engine tunables applied on every request.
func WithEngineParameters(params model.Parameters) HandlerOption {
	return func(h *Handler) {
		h.params = params.Normalize()
	}
}

// WithResultCache attaches a shared result cache used when the server
// catalog is in play.
func WithResultCache(c cache.Cache) HandlerOption {
	return func(h *Handler) {
		h.resultCache = c
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(catalogService service.BoxCatalogService, recService service.RecommendationService, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalogService: catalogService,
		recService:     recService,
		params:         model.DefaultParameters(),
		catalogCache:   newCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getCatalog retrieves the active box catalog from cache or database.
func (h *Handler) getCatalog(ctx context.Context) []model.Box {
	if boxes := h.catalogCache.get(); boxes != nil {
		return boxes
	}

	if h.catalogService == nil {
		return service.DefaultBoxCatalog()
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	boxes, err := h.catalogService.ListActive(ctx)
	if err != nil || len(boxes) == 0 {
		return service.DefaultBoxCatalog()
	}

	h.catalogCache.set(boxes)
	return boxes
}

// InvalidateCatalogCache invalidates the catalog cache and the shared result
// cache. Call this when the box catalog changes.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
	if h.resultCache != nil {
		h.resultCache.Clear()
	}
}

// newEngine builds a cartonizer for one request. The shared result cache is
// only attached when the server catalog is used; request-supplied catalogs
// would alias its keys.
func (h *Handler) newEngine(ctx context.Context, override []model.Box) *service.CartonizerService {
	opts := []service.Option{
		service.WithParameters(h.params),
		service.WithRules(h.rules),
	}
	if len(override) > 0 {
		return service.NewCartonizerService(override, opts...)
	}
	if h.resultCache != nil {
		opts = append(opts, service.WithCacheInterface(h.resultCache))
	}
	return service.NewCartonizerService(h.getCatalog(ctx), opts...)
}

// saveRecommendation persists a result for an order, best effort.
func (h *Handler) saveRecommendation(c *gin.Context, orderID string, save func(context.Context) error) {
	if orderID == "" || h.recService == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := save(ctx); err != nil {
		log := logger.Logger()
		log.Warn().
			Str("order_id", orderID).
			Err(err).
			Msg("Failed to store recommendation")
	}
}

// Cartonize handles POST /api/cartonize requests.
//
// @Summary      Select the optimal box
// @Description  Selects the single best box for a set of items using a volumetric and weight fit heuristic, scored by utilization, cost and stock. Returns 422 when no catalog box can hold the items.
// @Tags         Cartonization
// @Accept       json
// @Produce      json
// @Param        request body dto.CartonizeRequest true "Items to pack"
// @Success      200 {object} dto.SuccessResponse "Recommendation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "No box fits the items"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cartonize [post]
func (h *Handler) Cartonize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CartonizeRequest](c)
	if err != nil {
		metrics.RecordCartonization(0, "single", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		return
	}

	start := time.Now()
	engine := h.newEngine(c.Request.Context(), req.Boxes)
	result, err := engine.CalculateOptimalBox(req.Items)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordCartonization(duration, "single", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		return
	}
	if result == nil {
		metrics.RecordCartonization(duration, "single", "infeasible")
		builder.ErrorWithCode(http.StatusUnprocessableEntity, dto.ErrCodeInfeasible, i18n.ErrKeyNoFittingBox, nil)
		return
	}

	h.saveRecommendation(c, req.OrderID, func(ctx context.Context) error {
		_, saveErr := h.recService.SaveSingle(ctx, req.OrderID, result)
		return saveErr
	})

	metrics.RecordCartonization(duration, "single", "success")
	builder.SuccessOK(result)
}

// CartonizeMulti handles POST /api/cartonize/multi requests.
//
// @Summary      Plan multiple packages
// @Description  Partitions items across packages using greedy first-fit placement with an objective-driven consolidation pass. Returns 422 when even a single unit of some item fits no box.
// @Tags         Cartonization
// @Accept       json
// @Produce      json
// @Param        request body dto.MultiPackageRequest true "Items to pack and objective"
// @Success      200 {object} dto.SuccessResponse "Multi-package plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "No box combination fits the items"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cartonize/multi [post]
func (h *Handler) CartonizeMulti(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.MultiPackageRequest](c)
	if err != nil {
		metrics.RecordCartonization(0, "multi", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		return
	}

	start := time.Now()
	engine := h.newEngine(c.Request.Context(), req.Boxes)
	result, err := engine.CalculateMultiPackage(req.Items, req.Objective)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordCartonization(duration, "multi", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		return
	}
	if result == nil {
		metrics.RecordCartonization(duration, "multi", "infeasible")
		builder.ErrorWithCode(http.StatusUnprocessableEntity, dto.ErrCodeInfeasible, i18n.ErrKeyNoFittingBox, nil)
		return
	}

	h.saveRecommendation(c, req.OrderID, func(ctx context.Context) error {
		_, saveErr := h.recService.SaveMulti(ctx, req.OrderID, result)
		return saveErr
	})

	metrics.RecordCartonization(duration, "multi", "success")
	builder.SuccessOK(result)
}

// ApplyPackageEdits handles POST /api/cartonize/multi/edits requests.
//
// @Summary      Apply manual edits to a plan
// @Description  Applies a sequence of add, edit and remove actions to a multi-package plan, recomputing all totals. The first failing edit aborts the request and the input plan is returned unchanged.
// @Tags         Cartonization
// @Accept       json
// @Produce      json
// @Param        request body dto.PackageEditsRequest true "Plan and edits"
// @Success      200 {object} dto.SuccessResponse "Edited plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Edit rejected - last package"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cartonize/multi/edits [post]
func (h *Handler) ApplyPackageEdits(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.PackageEditsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	engine := h.newEngine(c.Request.Context(), nil)
	result := &req.Result
	for i := range req.Edits {
		action, actionErr := editToAction(&req.Edits[i])
		if actionErr != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, actionErr)
			return
		}

		result, err = engine.ApplyEdit(result, action)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrLastPackage):
				builder.Error(http.StatusConflict, i18n.ErrKeyLastPackage, err)
			case errors.Is(err, service.ErrPackageIndex), errors.Is(err, model.ErrInvalidInput):
				builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			default:
				builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			}
			return
		}
	}

	builder.SuccessOK(result)
}

// editToAction converts a DTO edit to an engine action.
func editToAction(edit *dto.PackageEdit) (service.EditAction, error) {
	switch edit.Action {
	case dto.EditActionAdd:
		return service.AddPackageAction{}, nil
	case dto.EditActionEdit:
		return service.EditPackageAction{Index: edit.Index, Package: *edit.Package}, nil
	case dto.EditActionRemove:
		return service.RemovePackageAction{Index: edit.Index}, nil
	default:
		return nil, &dto.ValidationError{Field: "action", Message: "unknown action " + edit.Action}
	}
}

// BoxOrderStats handles POST /api/boxes/stats requests.
//
// @Summary      Box usage statistics
// @Description  Scans the submitted open orders and reports, per catalog box, how many orders would select it as their optimal single box. The scan is capped to protect latency; orders past the cap are ignored.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        request body dto.OrderStatsRequest true "Orders to scan"
// @Success      200 {object} dto.SuccessResponse "Per-box usage counts"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes/stats [post]
func (h *Handler) BoxOrderStats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.OrderStatsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	engine := h.newEngine(c.Request.Context(), req.Boxes)
	stats := engine.BoxOrderStats(req.Orders)
	builder.SuccessOK(stats)
}
