// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for staging buffer monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-ring/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// PublishPoolStats flattens ring pool accounting under the given prefix.
func (mr *MetricsRegistry) PublishPoolStats(prefix string, s api.RingPoolStats) {
	mr.mu.Lock()
	mr.metrics[prefix+".total_alloc"] = s.TotalAlloc
	mr.metrics[prefix+".total_free"] = s.TotalFree
	mr.metrics[prefix+".reused"] = s.Reused
	mr.metrics[prefix+".in_use"] = s.InUse
	mr.metrics[prefix+".idle"] = s.Idle
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// LastUpdated reports when any metric last changed.
func (mr *MetricsRegistry) LastUpdated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
