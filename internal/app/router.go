// Package app provides router configuration.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/config"
	"github.com/guttosm/translate-gateway/internal/domain/dto"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/guttosm/translate-gateway/internal/http"
	"github.com/guttosm/translate-gateway/internal/logfile"
	"github.com/guttosm/translate-gateway/internal/middleware"
	"github.com/rs/zerolog"
)

// InitializeResponses builds the envelope builder from the response settings.
func InitializeResponses(cfg config.ResponseConfig, log zerolog.Logger) (*envelope.Builder, error) {
	format, err := envelope.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return envelope.NewBuilder(envelope.Config{
		Debug:         cfg.Debug,
		DefaultFormat: format,
		GoogleCompat:  cfg.GoogleCompat,
	}, log)
}

// VersionOf describes the running build.
func VersionOf(cfg config.Config) dto.VersionInfo {
	return dto.VersionInfo{
		AppName: cfg.App.Name,
		Version: config.Version,
		Date:    config.VersionDate,
		Info:    config.VersionInfo,
		Model:   cfg.Translate.Model,
	}
}

// InitializeRouter creates the handlers and the gin router.
func InitializeRouter(
	cfg config.Config,
	services *ServiceComponents,
	responses *envelope.Builder,
	policy middleware.AuthorizationPolicy,
	log zerolog.Logger,
) *gin.Engine {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("translator", services.Engine)
	healthHandler.RegisterCircuitBreaker("translator", services.Engine)

	groups := []http.RouteGroup{
		http.NewRootHandler(VersionOf(cfg), cfg.Auth.Enabled, http.ProtectedEndpoints, responses),
		http.NewTranslateHandler(services.Service, responses, cfg.Translate.MaxTextLength),
		http.NewLogsHandler(logfile.NewStore(cfg.Log.Dir, cfg.App.Name), cfg.App.Name, responses, log),
		healthHandler,
	}

	return http.NewRouter(http.RouterConfig{
		Responses:   responses,
		Logger:      log,
		Policy:      policy,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
		Groups:      groups,
	})
}
