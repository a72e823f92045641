package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/rs/zerolog"
)

// ErrorHandler returns a middleware that reports errors attached to the gin
// context. If the handler wrote nothing, a 500 envelope is sent.
func ErrorHandler(responses *envelope.Builder, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			responses.Internal("An unexpected error occurred", err.Error()).Write(c)
		}
	}
}
