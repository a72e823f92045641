// Package main is the entry point for the translate-gateway application.
//
// @title           Translate Gateway API
// @version         0.1.0
// @description     Google Translate v2 compatible translation and language detection gateway.
//
//	Successful translate, detect and languages responses follow the Google
//	Translate v2 shapes. Every error uses the same status envelope.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/translate-gateway
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
// @description                 API key or bearer token. Required when authorization is enabled.
//
// @tag.name        Translation
// @tag.description Translation, detection and language listing
//
// @tag.name        Operations
// @tag.description Root page, version and log files
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/translate-gateway/docs" // swagger docs

	"github.com/guttosm/translate-gateway/config"
	"github.com/guttosm/translate-gateway/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization failed")
	}
	defer func() { _ = application.Close() }()

	server := app.NewServer(application.Router, cfg.Server)
	if err := server.Run(); err != nil {
		log.Error().Err(err).Msg("Server error")
	}
}
