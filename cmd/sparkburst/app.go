package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sparkburst/audio"
	"github.com/lixenwraith/sparkburst/camera"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/input"
	"github.com/lixenwraith/sparkburst/parameter"
	"github.com/lixenwraith/sparkburst/render"
)

// App binds the terminal host to the simulation world
// Only the Run goroutine touches the world
type App struct {
	screen   tcell.Screen
	world    *engine.World
	clock    *engine.FrameClock
	mouse    *input.Mouse
	terminal *render.Terminal
	sound    *audio.Engine // nil when muted at startup or unavailable
	grid     camera.Grid
	views    []render.View
}

// NewApp wires a world to a screen and sizes the camera to it
func NewApp(screen tcell.Screen, world *engine.World, clock *engine.FrameClock, term *render.Terminal) *App {
	a := &App{
		screen:   screen,
		world:    world,
		clock:    clock,
		mouse:    input.NewMouse(),
		terminal: term,
	}
	a.applyGrid(term.Grid())
	return a
}

// applyGrid rebuilds the camera resource for a new terminal size
func (a *App) applyGrid(g camera.Grid) {
	a.grid = g
	a.world.Resource.Camera.Viewport = g.Viewport()
	a.world.Resource.Camera.Camera = g.Camera()
}

// HandleEvent applies one terminal event, returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.mouse.HandleEvent(ev)

	case *tcell.EventResize:
		a.applyGrid(a.terminal.Resize())
		log.Printf("resize: %dx%d cells", a.grid.Cols, a.grid.Rows)

	case *tcell.EventFocus:
		if !ev.Focused {
			a.mouse.Forget()
		}
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			paused := a.clock.Toggle()
			log.Printf("clock paused=%v", paused)
		case 'c':
			a.world.Reset()
			log.Printf("world cleared")
		case 'm':
			if a.sound != nil {
				a.sound.SetMuted(!a.sound.Muted())
				log.Printf("audio muted=%v", a.sound.Muted())
			}
		}
	}
	return true
}

// SetSound attaches the audio engine used by the mute key
func (a *App) SetSound(sound *audio.Engine) {
	a.sound = sound
}

// Step runs one frame: clock, input, systems, then draw
func (a *App) Step() {
	res := &a.world.Resource
	a.clock.Tick(res.Time)
	a.mouse.Apply(res.Input, a.grid)
	a.world.Update()

	a.views = render.Collect(a.world, a.views)
	status := res.Status.Line()
	if res.Time.Paused {
		status = "[paused] " + status
	}
	a.terminal.Draw(a.views, res.Camera.Camera, status)
}

// Run drives frames at frameRate until a quit key or the screen closes
func (a *App) Run(frameRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, parameter.EventBufferSize)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Step()
		}
	}
}
