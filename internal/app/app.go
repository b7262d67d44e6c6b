// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/shipper1953/carton-service/config"
	"github.com/shipper1953/carton-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
