package status

import "sync/atomic"

// Registry holds the process counters and gauges exported on the debug endpoint
// Owners cache pointers at startup; the simulation writes them without locking
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into a plain map
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) { out[key] = v.Load() })
	r.Floats.Range(func(key string, v *AtomicFloat) { out[key] = v.Get() })
	return out
}
