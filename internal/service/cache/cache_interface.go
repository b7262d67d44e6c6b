// Package cache defines the result cache contract for the cartonization engine.
package cache

import "github.com/shipper1953/carton-service/internal/domain/model"

// Cache stores single-box recommendations keyed by an input fingerprint.
type Cache interface {
	Get(key uint64) (model.CartonizationResult, bool)
	Set(key uint64, value model.CartonizationResult)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance counters.
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
