package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/translate-gateway/internal/circuitbreaker"
	"github.com/rs/zerolog"
)

// EngineType names a translation backend.
type EngineType string

const (
	// EngineLibreTranslate uses LibreTranslate as the backend.
	EngineLibreTranslate EngineType = "libretranslate"
)

// ParseEngineType parses a backend name, case-insensitively.
func ParseEngineType(s string) (EngineType, error) {
	switch EngineType(strings.ToLower(strings.TrimSpace(s))) {
	case EngineLibreTranslate:
		return EngineLibreTranslate, nil
	default:
		return "", fmt.Errorf("unknown engine type: %s (supported: libretranslate)", s)
	}
}

// Config holds what NewEngine needs to build a Translator.
type Config struct {
	Engine  EngineType
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Breaker circuitbreaker.Config
}

// Engine combines a Detector and a Backend. Backend calls go through a
// circuit breaker; detection runs in-process and is never short-circuited.
type Engine struct {
	detector Detector
	backend  Backend
	breaker  *circuitbreaker.CircuitBreaker
}

// NewEngine creates the configured backend and a lingua detector for codes.
func NewEngine(cfg Config, codes []string, logger zerolog.Logger) (*Engine, error) {
	var backend Backend
	switch cfg.Engine {
	case EngineLibreTranslate:
		backend = NewLibreTranslateClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout, logger)
	default:
		return nil, fmt.Errorf("unknown translation engine: %s", cfg.Engine)
	}

	logger.Info().
		Str("engine", string(cfg.Engine)).
		Str("base_url", cfg.BaseURL).
		Msg("Creating translator instance")

	return New(NewLinguaDetector(codes, logger), backend, circuitbreaker.New(cfg.Breaker, logger)), nil
}

// New assembles an Engine from its parts.
func New(detector Detector, backend Backend, breaker *circuitbreaker.CircuitBreaker) *Engine {
	return &Engine{detector: detector, backend: backend, breaker: breaker}
}

// Detect implements Translator.
func (e *Engine) Detect(ctx context.Context, text string) (string, float64, error) {
	return e.detector.Detect(ctx, text)
}

// Translate implements Translator.
func (e *Engine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	var out string
	err := e.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = e.backend.Translate(ctx, text, sourceLang, targetLang)
		return err
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// CheckHealth reports the backend as unhealthy while the breaker is open.
func (e *Engine) CheckHealth(ctx context.Context) error {
	if e.breaker.IsOpen() {
		return circuitbreaker.ErrCircuitOpen
	}
	return e.backend.CheckHealth(ctx)
}

// BreakerStats exposes the backend circuit breaker state.
func (e *Engine) BreakerStats() circuitbreaker.Stats {
	return e.breaker.GetStats()
}
