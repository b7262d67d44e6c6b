// Package config provides configuration management for the carton service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Engine   EngineConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CacheConfig holds result cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// EngineConfig holds cartonization engine tunables.
type EngineConfig struct {
	// TargetUtilization is the utilization percentage treated as a perfect fit.
	TargetUtilization float64
	// DimensionalDivisor converts cubic inches to dimensional weight in lbs.
	DimensionalDivisor float64
	// MaxStatsOrders caps how many orders a statistics scan will process.
	MaxStatsOrders int
	// CatalogCacheTTL is how long the active box catalog is cached in memory.
	CatalogCacheTTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Engine: EngineConfig{
			TargetUtilization:  getEnvFloat("TARGET_UTILIZATION", 75),
			DimensionalDivisor: getEnvFloat("DIM_WEIGHT_DIVISOR", 139),
			MaxStatsOrders:     getEnvInt("MAX_STATS_ORDERS", 300),
			CatalogCacheTTL:    getEnvDuration("CATALOG_CACHE_TTL", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "carton_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
