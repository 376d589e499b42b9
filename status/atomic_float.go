package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as bits in an atomic word
// Zero value reads as 0.0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}
