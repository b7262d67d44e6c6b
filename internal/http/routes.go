package http

import (
	"github.com/gin-gonic/gin"
)

// registerAPIRoutes registers the cartonization, box catalog and
// recommendation endpoints on the API group.
func registerAPIRoutes(api *gin.RouterGroup, handler *Handler, cfg *RouterConfig) {
	if handler == nil {
		return
	}

	api.POST("/cartonize", handler.Cartonize)
	api.POST("/cartonize/multi", handler.CartonizeMulti)
	api.POST("/cartonize/multi/edits", handler.ApplyPackageEdits)
	api.POST("/boxes/stats", handler.BoxOrderStats)

	if cfg.CatalogService != nil {
		boxesHandler := NewBoxesHandler(cfg.CatalogService, handler)
		api.GET("/boxes", boxesHandler.ListBoxes)
		api.POST("/boxes", boxesHandler.CreateBox)
		api.PUT("/boxes/:id", boxesHandler.UpdateBox)
	}

	if cfg.RecommendationService != nil {
		recHandler := NewRecommendationsHandler(cfg.RecommendationService, handler)
		api.POST("/recommendations", recHandler.CreateRecommendation)
		api.GET("/recommendations/:orderID", recHandler.GetRecommendation)
	}
}
