package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/sparkburst/camera"
	"github.com/lixenwraith/sparkburst/config"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/status"
)

// Resource holds singleton world resources, written by the host before each frame
type Resource struct {
	Time   *TimeResource
	Input  *InputResource
	Camera *CameraResource
	Config *ConfigResource
	Audio  *AudioResource

	// Telemetry
	Status *status.Registry
}

func newResource() Resource {
	return Resource{
		Time:   &TimeResource{},
		Input:  &InputResource{},
		Camera: &CameraResource{},
		Config: &ConfigResource{Config: config.Default()},
		Audio:  &AudioResource{},
		Status: status.NewRegistry(),
	}
}

// TimeResource wraps frame clock data for systems
// Updated by FrameClock at the start of a frame
type TimeResource struct {
	// Elapsed is simulation time since start, excluding pauses
	Elapsed time.Duration

	// DeltaTime is the duration since the previous frame, zero while paused
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64

	Paused bool
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(elapsed, delta time.Duration, frameNumber int64, paused bool) {
	tr.Elapsed = elapsed
	tr.DeltaTime = delta
	tr.FrameNumber = frameNumber
	tr.Paused = paused
}

// DeltaSeconds returns DeltaTime in seconds
func (tr *TimeResource) DeltaSeconds() float32 {
	return float32(tr.DeltaTime.Seconds())
}

// ElapsedSeconds returns Elapsed in seconds at full precision
func (tr *TimeResource) ElapsedSeconds() float64 {
	return tr.Elapsed.Seconds()
}

// InputResource is the designated pointer button state for the current frame
type InputResource struct {
	// JustPressed is true only on the frame the button went down
	JustPressed bool
	// Pressed is true on every frame the button is down, including the first
	Pressed bool
	// Cursor is the pointer position in screen pixels, bottom-left origin
	Cursor core.Cursor
}

// Update modifies InputResource fields in-place
func (ir *InputResource) Update(justPressed, pressed bool, cursor core.Cursor) {
	ir.JustPressed = justPressed
	ir.Pressed = pressed
	ir.Cursor = cursor
}

// CameraResource is the read-only camera and viewport seen by the core
type CameraResource struct {
	// Viewport is the screen size in pixels
	Viewport mgl32.Vec2
	Camera   camera.Camera
}

// CursorWorld resolves the current cursor into world space
func (cr *CameraResource) CursorWorld(cursor core.Cursor) (mgl32.Vec2, bool) {
	return cr.Camera.ScreenToWorld(cursor, cr.Viewport)
}

// ConfigResource wraps the loaded configuration
type ConfigResource struct {
	Config *config.Config
}

// AudioPlayer is the minimal audio interface used by systems
type AudioPlayer interface {
	PlayBurst()
}

// AudioResource wraps the optional audio player, Player is nil when muted
type AudioResource struct {
	Player AudioPlayer
}
