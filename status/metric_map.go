package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metrics of type T
// Components look a metric up once at construction and keep the pointer, so
// only registration and listing take the lock
type MetricMap[T any] struct {
	mu      sync.Mutex
	metrics map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.metrics[key]
	if !ok {
		p = new(T)
		m.metrics[key] = p
	}
	return p
}

// Range calls fn for every metric in key order, outside the lock
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	keys := slices.Sorted(maps.Keys(m.metrics))
	ptrs := make([]*T, len(keys))
	for i, k := range keys {
		ptrs[i] = m.metrics[k]
	}
	m.mu.Unlock()

	for i, k := range keys {
		fn(k, ptrs[i])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.metrics)
}
