package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/sparkburst/camera"
	"github.com/lixenwraith/sparkburst/core"
)

// NewTestWorld creates a world with an 800x600 pixel-per-unit camera
// and a manual clock, for use by package tests
func NewTestWorld() (*World, *FrameClock, *MockTimeProvider) {
	w := NewWorld()
	w.Resource.Camera.Viewport = mgl32.Vec2{800, 600}
	w.Resource.Camera.Camera = camera.NewOrthographic(800, 600)

	provider := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewFrameClock(provider)
	return w, clock, provider
}

// StepFrame advances the clock by dt, applies the input and runs all systems
func StepFrame(w *World, clock *FrameClock, provider *MockTimeProvider, dt time.Duration, justPressed, pressed bool, cursor core.Cursor) {
	provider.Advance(dt)
	clock.Tick(w.Resource.Time)
	w.Resource.Input.Update(justPressed, pressed, cursor)
	w.Update()
}
