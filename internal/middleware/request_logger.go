package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/logger"
	"github.com/shipper1953/carton-service/internal/service"
)

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// It logs: request ID, method, path, status code, latency, IP, and user agent.
// When a logging service is provided the entry is also persisted asynchronously.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService != nil {
			entry := &model.LogEntry{
				Timestamp:  time.Now(),
				Level:      getLogLevel(statusCode),
				Message:    "HTTP request",
				RequestID:  requestID,
				Method:     method,
				Path:       path,
				StatusCode: statusCode,
				Duration:   latency.Milliseconds(),
				IP:         ip,
				UserAgent:  userAgent,
			}

			// Persistence never blocks the response path.
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = loggingService.CreateLog(ctx, entry)
			}()
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
