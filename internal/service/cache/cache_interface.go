// Package cache defines the translation result cache contract.
package cache

// Cache stores translated texts by request key.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
