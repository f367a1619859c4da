package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine, audio and render layers
const (
	KeyTicks           = "engine.ticks"
	KeyFrameDt         = "engine.dt_ms"
	KeyRuns            = "session.runs"
	KeySpawned         = "session.spawned"
	KeyPassed          = "session.passed"
	KeyObstaclesActive = "session.obstacles"
	KeyTonesPlayed     = "audio.played"
	KeyTonesDropped    = "audio.dropped"
	KeyFPS             = "render.fps"
)

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key value" in sorted key order, ints first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.1f", key, v.Get()))
	})
	return lines
}
