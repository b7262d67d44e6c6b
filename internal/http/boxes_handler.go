package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shipper1953/carton-service/internal/domain/dto"
	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/i18n"
	"github.com/shipper1953/carton-service/internal/service"
)

// BoxesHandler provides HTTP handlers for box catalog routes.
type BoxesHandler struct {
	catalogService service.BoxCatalogService
	// cartonizeHandler is notified so its caches drop stale catalogs on writes.
	cartonizeHandler *Handler
}

// NewBoxesHandler creates a new BoxesHandler instance.
func NewBoxesHandler(catalogService service.BoxCatalogService, cartonizeHandler *Handler) *BoxesHandler {
	return &BoxesHandler{
		catalogService:   catalogService,
		cartonizeHandler: cartonizeHandler,
	}
}

// ListBoxes handles GET /api/boxes requests.
//
// @Summary      List catalog boxes
// @Description  Returns catalog boxes. By default only active boxes; pass all=true for the full history.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        all query bool false "Include inactive boxes"
// @Param        limit query int false "Limit number of results (all=true only)"
// @Success      200 {object} dto.SuccessResponse "Catalog boxes"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes [get]
func (h *BoxesHandler) ListBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if c.Query("all") == "true" {
		limit := 0
		if limitStr := c.Query("limit"); limitStr != "" {
			if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
				limit = l
			}
		}

		docs, err := h.catalogService.List(c.Request.Context(), limit)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		builder.SuccessOK(docs)
		return
	}

	boxes, err := h.catalogService.ListActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(boxes)
}

// CreateBox handles POST /api/boxes requests.
//
// @Summary      Create a catalog box
// @Description  Adds a box to the catalog and invalidates recommendation caches.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        request body dto.BoxUpsertRequest true "Box definition"
// @Success      201 {object} dto.SuccessResponse "Created box"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes [post]
func (h *BoxesHandler) CreateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.BoxUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	doc, err := h.catalogService.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCaches()
	builder.SuccessCreated(doc)
}

// UpdateBox handles PUT /api/boxes/:id requests.
//
// @Summary      Update a catalog box
// @Description  Replaces the mutable fields of a catalog box, including stock and active state, and invalidates recommendation caches.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Box ID"
// @Param        request body dto.BoxUpsertRequest true "Box definition"
// @Success      200 {object} dto.SuccessResponse "Updated box"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Box not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes/{id} [put]
func (h *BoxesHandler) UpdateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.BoxUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	doc, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), req.ToModel(), active)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBoxNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyBoxNotFound, err)
		case errors.Is(err, model.ErrInvalidInput):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	h.invalidateCaches()
	builder.SuccessOK(doc)
}

func (h *BoxesHandler) invalidateCaches() {
	if h.cartonizeHandler != nil {
		h.cartonizeHandler.InvalidateCatalogCache()
	}
}
