package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry holds simulation telemetry
// Systems cache metric pointers at construction and write them every frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Reset zeroes every registered metric, keeping cached pointers valid
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Floats.Range(func(_ string, v *Gauge) { v.Set(0) })
}

// Line formats all metrics as "key=value" pairs in key order, ints first
func (r *Registry) Line() string {
	var sb strings.Builder
	r.Ints.Range(func(k string, v *atomic.Int64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", k, v.Load())
	})
	r.Floats.Range(func(k string, v *Gauge) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%.1f", k, v.Get())
	})
	return sb.String()
}
