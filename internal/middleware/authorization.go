// Package middleware provides HTTP middleware components for the translate gateway.
package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/rs/zerolog"
)

// PublicEndpoints lists the paths that bypass authorization.
var PublicEndpoints = []string{"/"}

// Authorization returns a middleware that asks policy about every path not
// in public. With no public paths given, PublicEndpoints is used.
func Authorization(policy AuthorizationPolicy, responses *envelope.Builder, log zerolog.Logger, public ...string) gin.HandlerFunc {
	if policy == nil {
		policy = AlwaysAllow{}
	}
	if len(public) == 0 {
		public = PublicEndpoints
	}
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	check := func(c *gin.Context, path string) (resp envelope.Response, denied bool) {
		defer func() {
			if r := recover(); r != nil {
				resp = responses.Internal(fmt.Sprintf("Middleware error on path %s: %v", path, r), "")
				denied = true
			}
		}()

		err := policy.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		switch {
		case err == nil:
			log.Debug().Str("path", path).Msg("Authorization passed")
			return resp, false
		case errors.Is(err, ErrUnauthorized):
			return responses.Unauthorized(err.Error(), ""), true
		case errors.Is(err, ErrForbidden):
			return responses.Forbidden(err.Error(), ""), true
		default:
			return responses.Internal(fmt.Sprintf("Middleware error on path %s: %v", path, err), ""), true
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if _, ok := open[path]; ok {
			log.Info().Msgf("----> %q is not protected", path)
			c.Next()
			return
		}

		log.Info().Str("path", path).Bool("protected", true).Msgf("----> %q", path)
		if resp, denied := check(c, path); denied {
			resp.Abort(c)
			return
		}
		c.Next()
	}
}
