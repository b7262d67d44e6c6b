// Package middleware provides HTTP middleware components for the carton service.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. Multi-package
// results repeat box dimensions per package and compress well.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
