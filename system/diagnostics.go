package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/parameter"
	"github.com/lixenwraith/sparkburst/status"
)

// fpsSmoothing is the weight of the newest sample in the FPS moving average
const fpsSmoothing = 0.1

// DiagnosticsSystem publishes per-frame telemetry after the simulation systems ran
type DiagnosticsSystem struct {
	engine.SystemBase

	fps float64

	statActive *atomic.Int64
	statFrame  *atomic.Int64
	statFPS    *status.Gauge
}

func NewDiagnosticsSystem(world *engine.World) *DiagnosticsSystem {
	s := &DiagnosticsSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statActive = s.Resource.Status.Ints.Get("particle.active")
	s.statFrame = s.Resource.Status.Ints.Get("frame.number")
	s.statFPS = s.Resource.Status.Floats.Get("frame.fps")
	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.fps = 0
	s.statActive.Store(0)
	s.statFrame.Store(0)
	s.statFPS.Set(0)
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update() {
	t := s.Resource.Time
	s.statActive.Store(int64(s.Component.Particle.Count()))
	s.statFrame.Store(t.FrameNumber)

	if dt := t.DeltaTime.Seconds(); dt > 0 {
		sample := 1 / dt
		if s.fps == 0 {
			s.fps = sample
		} else {
			s.fps += (sample - s.fps) * fpsSmoothing
		}
		s.statFPS.Set(s.fps)
	}
}
