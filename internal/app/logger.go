// Package app provides logger initialization.
package app

import (
	"fmt"

	"github.com/guttosm/translate-gateway/config"
	"github.com/guttosm/translate-gateway/internal/logfile"
	"github.com/guttosm/translate-gateway/internal/logger"
)

// InitializeLogger initializes the global logger. Output goes to the console
// and to a daily file under cfg.Log.Dir named after the application.
func InitializeLogger(cfg config.Config) (*logfile.DailyWriter, error) {
	writer, err := logfile.NewDailyWriter(cfg.Log.Dir, cfg.App.Name)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty, writer)
	return writer, nil
}
