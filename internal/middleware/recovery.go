package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/rs/zerolog"
)

// Recovery returns a middleware that turns panics into a 500 envelope. The
// panic value is only exposed as debug details.
func Recovery(responses *envelope.Builder, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Msg("PANIC recovered")

				responses.Internal("An unexpected error occurred", fmt.Sprint(err)).Abort(c)
			}
		}()
		c.Next()
	}
}
