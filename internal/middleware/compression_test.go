package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := strings.Repeat("cartonization ", 100)
	router := gin.New()
	router.Use(Compression())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, body)
	})

	t.Run("compresses when client accepts gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		reader, err := gzip.NewReader(w.Body)
		assert.NoError(t, err)
		decompressed, err := io.ReadAll(reader)
		assert.NoError(t, err)
		assert.Equal(t, body, string(decompressed))
	})

	t.Run("skips compression without the header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, body, w.Body.String())
	})
}
