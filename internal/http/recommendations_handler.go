package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shipper1953/carton-service/internal/domain/dto"
	"github.com/shipper1953/carton-service/internal/i18n"
	"github.com/shipper1953/carton-service/internal/metrics"
	"github.com/shipper1953/carton-service/internal/service"
)

// RecommendationsHandler provides HTTP handlers for recommendation routes.
type RecommendationsHandler struct {
	recService       service.RecommendationService
	cartonizeHandler *Handler
}

// NewRecommendationsHandler creates a new RecommendationsHandler instance.
func NewRecommendationsHandler(recService service.RecommendationService, cartonizeHandler *Handler) *RecommendationsHandler {
	return &RecommendationsHandler{
		recService:       recService,
		cartonizeHandler: cartonizeHandler,
	}
}

// CreateRecommendation handles POST /api/recommendations requests.
//
// @Summary      Compute and store a recommendation
// @Description  Runs cartonization for an order's items and stores the result keyed by order, replacing any previous recommendation.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        request body dto.RecommendationRequest true "Order items and mode"
// @Success      200 {object} dto.SuccessResponse "Stored recommendation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "No box fits the items"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/recommendations [post]
func (h *RecommendationsHandler) CreateRecommendation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RecommendationRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	engine := h.cartonizeHandler.newEngine(c.Request.Context(), req.Boxes)
	start := time.Now()

	if req.Mode == service.RecommendationModeMulti {
		result, calcErr := engine.CalculateMultiPackage(req.Items, req.Objective)
		duration := time.Since(start)
		if calcErr != nil {
			metrics.RecordCartonization(duration, "multi", "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, calcErr)
			return
		}
		if result == nil {
			metrics.RecordCartonization(duration, "multi", "infeasible")
			builder.ErrorWithCode(http.StatusUnprocessableEntity, dto.ErrCodeInfeasible, i18n.ErrKeyNoFittingBox, nil)
			return
		}

		doc, saveErr := h.recService.SaveMulti(c.Request.Context(), req.OrderID, result)
		if saveErr != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, saveErr)
			return
		}
		metrics.RecordCartonization(duration, "multi", "success")
		builder.SuccessOK(doc)
		return
	}

	result, calcErr := engine.CalculateOptimalBox(req.Items)
	duration := time.Since(start)
	if calcErr != nil {
		metrics.RecordCartonization(duration, "single", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, calcErr)
		return
	}
	if result == nil {
		metrics.RecordCartonization(duration, "single", "infeasible")
		builder.ErrorWithCode(http.StatusUnprocessableEntity, dto.ErrCodeInfeasible, i18n.ErrKeyNoFittingBox, nil)
		return
	}

	doc, saveErr := h.recService.SaveSingle(c.Request.Context(), req.OrderID, result)
	if saveErr != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, saveErr)
		return
	}
	metrics.RecordCartonization(duration, "single", "success")
	builder.SuccessOK(doc)
}

// GetRecommendation handles GET /api/recommendations/:orderID requests.
//
// @Summary      Get the stored recommendation for an order
// @Description  Returns the most recently stored recommendation for the order.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        orderID path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse "Stored recommendation"
// @Failure      404 {object} dto.ErrorResponse "No recommendation for this order"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/recommendations/{orderID} [get]
func (h *RecommendationsHandler) GetRecommendation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.recService.GetByOrderID(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if doc == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyRecommendationNotFound, nil)
		return
	}

	builder.SuccessOK(doc)
}
