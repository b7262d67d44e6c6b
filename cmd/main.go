// Package main is the entry point for the carton-service application.
//
// @title           Carton Service API
// @version         1.0.0
// @description     API for recommending shipping boxes for order items.
//
//	The service selects the optimal single box or multi-package plan for a set
//	of items, scores recommendations by utilization, cost and stock, and keeps
//	per-order recommendation history.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/shipper1953/carton-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Cartonization
// @tag.description Box selection and multi-package planning operations
//
// @tag.name        Boxes
// @tag.description Box catalog management and usage statistics
//
// @tag.name        Recommendations
// @tag.description Stored per-order recommendations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/shipper1953/carton-service/config"
	"github.com/shipper1953/carton-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
