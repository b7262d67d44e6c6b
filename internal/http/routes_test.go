package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shipper1953/carton-service/internal/mocks"
	"github.com/shipper1953/carton-service/internal/service"
)

func TestRegisterAPIRoutes(t *testing.T) {
	handler := NewHandler(nil, nil)

	mockBoxRepo := &mocks.MockBoxRepositoryInterface{}
	mockBoxRepo.On("ListActive", mock.Anything).Return(nil, nil).Maybe()
	mockRecRepo := &mocks.MockRecommendationRepositoryInterface{}
	mockRecRepo.On("GetByOrderID", mock.Anything, "ORD-1").Return(nil, nil).Maybe()

	catalogService := service.NewBoxCatalogService(mockBoxRepo)
	recService := service.NewRecommendationService(mockRecRepo)

	cfg := DefaultRouterConfig()
	cfg.CatalogService = catalogService
	cfg.RecommendationService = recService

	router := gin.New()
	api := router.Group("/api")
	registerAPIRoutes(api, handler, &cfg)

	// Routes exist when they respond with anything but 404.
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/cartonize"},
		{http.MethodPost, "/api/cartonize/multi"},
		{http.MethodPost, "/api/cartonize/multi/edits"},
		{http.MethodPost, "/api/boxes/stats"},
		{http.MethodGet, "/api/boxes"},
		{http.MethodPost, "/api/boxes"},
		{http.MethodPut, "/api/boxes/abc123"},
		{http.MethodPost, "/api/recommendations"},
		{http.MethodGet, "/api/recommendations/ORD-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestRegisterAPIRoutes_WithoutOptionalServices(t *testing.T) {
	handler := NewHandler(nil, nil)
	cfg := DefaultRouterConfig()

	router := gin.New()
	api := router.Group("/api")
	registerAPIRoutes(api, handler, &cfg)

	// Catalog and recommendation routes are only mounted with their services.
	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{http.MethodGet, "/api/boxes", http.StatusNotFound},
		{http.MethodPost, "/api/recommendations", http.StatusNotFound},
		{http.MethodPost, "/api/cartonize", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRegisterAPIRoutes_NilHandler(t *testing.T) {
	cfg := DefaultRouterConfig()

	router := gin.New()
	api := router.Group("/api")
	registerAPIRoutes(api, nil, &cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/cartonize", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
