package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedBody   string
		wantEnvelope   bool
	}{
		{
			name: "handles gin context errors",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("test error"))
			},
			expectedStatus: http.StatusInternalServerError,
			wantEnvelope:   true,
		},
		{
			name: "keeps a response that was already written",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("late error"))
				c.String(http.StatusTeapot, "written")
			},
			expectedStatus: http.StatusTeapot,
			expectedBody:   "written",
		},
		{
			name: "does nothing when no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses, log, buf := newTestBuilder(t, false)
			router := gin.New()
			router.Use(RequestID(), ErrorHandler(responses, log))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.wantEnvelope {
				p := decodeError(t, w)
				assert.Equal(t, 500, p.Error.Code)
				assert.Equal(t, "Internal server error", p.Error.Title)
				assert.Empty(t, p.Error.Debug)
				assert.Contains(t, buf.String(), "test error")
				return
			}
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
