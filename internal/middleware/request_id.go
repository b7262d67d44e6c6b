// Package middleware provides HTTP middleware components for the carton service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is the context key under which the request ID is stored.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an ID. A client-supplied X-Request-ID
// is kept so recommendations can be correlated across the order pipeline;
// otherwise a fresh UUID is assigned. The ID is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
