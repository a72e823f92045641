// Package app provides authorization initialization.
package app

import (
	"errors"

	"github.com/guttosm/translate-gateway/config"
	"github.com/guttosm/translate-gateway/internal/middleware"
	"github.com/rs/zerolog"
)

// ErrNoCredentials is returned when authorization is enabled but neither a
// JWT secret nor API key hashes are configured.
var ErrNoCredentials = errors.New("authorization is enabled but no JWT_SECRET_KEY or API_KEY_HASHES is configured")

// InitializePolicy selects the authorization policy. Disabled authorization
// allows every request; otherwise a JWT secret takes precedence over API keys.
func InitializePolicy(cfg config.AuthConfig, log zerolog.Logger) (middleware.AuthorizationPolicy, error) {
	switch {
	case !cfg.Enabled:
		log.Warn().Msg("Authorization is disabled, every endpoint is open")
		return middleware.AlwaysAllow{}, nil
	case cfg.JWTSecretKey != "":
		log.Info().Str("policy", "jwt").Msg("Authorization enabled")
		return middleware.NewJWTPolicy(cfg.JWTSecretKey, "")
	case len(cfg.APIKeyHashes) > 0:
		log.Info().Str("policy", "api_key").Int("keys", len(cfg.APIKeyHashes)).Msg("Authorization enabled")
		return middleware.NewAPIKeyPolicy(cfg.APIKeyHashes)
	default:
		return nil, ErrNoCredentials
	}
}
