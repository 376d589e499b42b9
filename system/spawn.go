package system

import (
	"log"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/sparkburst/component"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/parameter"
	"github.com/lixenwraith/sparkburst/vmath"
)

// SpawnSystem turns pointer input into new particles at the cursor's world position
// A press emits a burst; every held frame emits a stream batch, including the press frame
type SpawnSystem struct {
	engine.SystemBase

	// Random source for all spawn parameters
	rng *vmath.FastRand

	// Reusable descriptor buffer
	buf []SpawnDescriptor

	// Telemetry
	statSpawned *atomic.Int64
	statBursts  *atomic.Int64
}

// NewSpawnSystem creates a spawn system drawing from rng
func NewSpawnSystem(world *engine.World, rng *vmath.FastRand) *SpawnSystem {
	s := &SpawnSystem{
		SystemBase: engine.NewSystemBase(world),
		rng:        rng,
	}

	s.statSpawned = s.Resource.Status.Ints.Get("particle.spawned")
	s.statBursts = s.Resource.Status.Ints.Get("spawn.bursts")

	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.buf = make([]SpawnDescriptor, 0, parameter.BurstCount+parameter.StreamCount)
	s.statSpawned.Store(0)
	s.statBursts.Store(0)
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	input := s.Resource.Input
	if !input.JustPressed && !input.Pressed {
		return
	}

	origin, ok := s.Resource.Camera.CursorWorld(input.Cursor)
	if !ok {
		return
	}

	p := &s.Resource.Config.Config.Particle
	hue := FrameHue(s.Resource.Time.ElapsedSeconds(), p.HueRate)

	s.buf = s.buf[:0]
	if input.JustPressed {
		s.buf = AppendBurst(s.buf, s.rng, p, hue)
		s.statBursts.Add(1)
		if player := s.Resource.Audio.Player; player != nil {
			player.PlayBurst()
		}
		log.Printf("spawn: burst at (%.1f, %.1f) hue %.0f", origin.X(), origin.Y(), hue)
	}
	if input.Pressed {
		s.buf = AppendStream(s.buf, s.rng, p, hue)
	}

	for _, d := range s.buf {
		Spawn(s.World, origin, d)
	}
	s.statSpawned.Add(int64(len(s.buf)))
}

// Spawn inserts one particle at origin with the descriptor's parameters
func Spawn(world *engine.World, origin mgl32.Vec2, d SpawnDescriptor) core.Entity {
	e := world.CreateEntity()
	world.Component.Kinetic.Set(e, component.KineticComponent{
		Kinetic: core.Kinetic{
			X:       origin.X(),
			Y:       origin.Y(),
			Speed:   d.Speed,
			Heading: d.Heading,
		},
	})
	world.Component.Particle.Set(e, component.ParticleComponent{
		Size: d.Size,
		Hue:  d.Hue,
	})
	return e
}
