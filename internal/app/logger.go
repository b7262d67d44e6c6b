package app

import (
	"os"

	"github.com/shipper1953/carton-service/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and
// LOG_PRETTY. Runs before the database and router wiring so their
// startup logs come out in the configured format.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init(logLevel, os.Getenv("LOG_PRETTY") == "true")
}
