// Package app provides service initialization.
package app

import (
	"github.com/guttosm/translate-gateway/config"
	"github.com/guttosm/translate-gateway/internal/catalog"
	"github.com/guttosm/translate-gateway/internal/circuitbreaker"
	"github.com/guttosm/translate-gateway/internal/metrics"
	"github.com/guttosm/translate-gateway/internal/service"
	"github.com/guttosm/translate-gateway/internal/service/cache"
	"github.com/guttosm/translate-gateway/internal/translate"
	"github.com/rs/zerolog"
)

// cacheShards is the shard count of the translation cache.
const cacheShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog *catalog.Catalog
	Engine  *translate.Engine
	// Cache is nil when caching is disabled.
	Cache   *service.ShardedCache
	Service service.TranslationService
}

// Close releases background resources.
func (s *ServiceComponents) Close() {
	if s.Cache != nil {
		s.Cache.Stop()
	}
}

// InitializeServices builds the catalog, the translation engine and the
// translation service.
func InitializeServices(cfg config.TranslateConfig, log zerolog.Logger) (*ServiceComponents, error) {
	cat, err := catalog.ForModel(cfg.Model)
	if err != nil {
		return nil, err
	}

	engineType, err := translate.ParseEngineType(cfg.Engine)
	if err != nil {
		return nil, err
	}

	breakerCfg := circuitbreaker.DefaultConfig()
	if cfg.CircuitBreakerFailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		breakerCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		breakerCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	breakerCfg.OnStateChange = func(name string, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
	}
	metrics.SetCircuitBreakerState(breakerCfg.Name, int(circuitbreaker.StateClosed))

	engine, err := translate.NewEngine(translate.Config{
		Engine:  engineType,
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
		Breaker: breakerCfg,
	}, cat.Codes(), log)
	if err != nil {
		return nil, err
	}

	components := &ServiceComponents{Catalog: cat, Engine: engine}

	var c cache.CacheWithMetrics
	if cfg.CacheSize > 0 && cfg.CacheTTL > 0 {
		components.Cache = service.NewShardedCache(cfg.CacheSize, cfg.CacheTTL, cacheShards)
		metrics.UpdateCacheMetrics(0, cfg.CacheSize)
		c = components.Cache
	}

	components.Service = service.NewTranslationService(engine, cat, c, log)

	log.Info().
		Str("model", cat.Model()).
		Int("languages", len(cat.Languages())).
		Bool("cache", components.Cache != nil).
		Msg("Translation service initialized")

	return components, nil
}
