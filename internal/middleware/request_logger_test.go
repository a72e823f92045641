package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{name: "2xx logs info", statusCode: http.StatusOK, wantLevel: "info"},
		{name: "3xx logs info", statusCode: http.StatusMovedPermanently, wantLevel: "info"},
		{name: "4xx logs warn", statusCode: http.StatusBadRequest, wantLevel: "warn"},
		{name: "5xx logs error", statusCode: http.StatusServiceUnavailable, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			router := gin.New()
			router.Use(RequestID(), RequestLogger(zerolog.New(buf)))
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			req.Header.Set("User-Agent", "test-agent")
			router.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/test", entry["path"])
			assert.Equal(t, float64(tt.statusCode), entry["status_code"])
			assert.Equal(t, "test-agent", entry["user_agent"])
		})
	}
}
