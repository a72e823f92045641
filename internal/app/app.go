// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/config"
	"github.com/guttosm/translate-gateway/internal/logfile"
	"github.com/guttosm/translate-gateway/internal/logger"
)

// App holds the wired application.
type App struct {
	Router   *gin.Engine
	services *ServiceComponents
	logFile  *logfile.DailyWriter
}

// Close releases the cache janitor and the log file.
func (a *App) Close() error {
	if a.services != nil {
		a.services.Close()
	}
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// InitializeApp creates and wires all application dependencies.
// Configuration errors are returned before the server starts.
func InitializeApp(cfg config.Config) (*App, error) {
	if cfg.App.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logFile, err := InitializeLogger(cfg)
	if err != nil {
		return nil, err
	}
	app := &App{logFile: logFile}

	log := logger.Logger()
	log.Info().
		Str("app", cfg.App.Name).
		Str("version", config.Version).
		Str("date", config.VersionDate).
		Str("info", config.VersionInfo).
		Str("mode", cfg.App.Mode).
		Msg("Starting application")

	responses, err := InitializeResponses(cfg.Response, log)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("response settings: %w", err)
	}

	policy, err := InitializePolicy(cfg.Auth, log)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("authorization settings: %w", err)
	}

	services, err := InitializeServices(cfg.Translate, log)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("translation settings: %w", err)
	}
	app.services = services

	app.Router = InitializeRouter(cfg, services, responses, policy, log)
	return app, nil
}
