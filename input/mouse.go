// Package input adapts tcell mouse events to the per-frame button and cursor
// state consumed by the simulation
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sparkburst/camera"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/engine"
)

// Mouse tracks the primary button and pointer cell between frames
// Events arrive from the host event loop, Frame is called once per tick
type Mouse struct {
	down    bool
	clicked bool // went down since the last frame

	col, row int
	tracked  bool
}

// NewMouse creates a mouse with no known pointer position
func NewMouse() *Mouse {
	return &Mouse{}
}

// HandleEvent records button edges and pointer position
func (m *Mouse) HandleEvent(ev *tcell.EventMouse) {
	m.col, m.row = ev.Position()
	m.tracked = true

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !m.down {
		m.clicked = true
	}
	m.down = down
}

// Forget drops the pointer position, used when the terminal loses it
func (m *Mouse) Forget() {
	m.tracked = false
	m.down = false
	m.clicked = false
}

// Frame returns the button edges and cursor for the current tick and consumes
// the press edge
// A press and release within one tick still reports JustPressed and Pressed
func (m *Mouse) Frame(g camera.Grid) (justPressed, pressed bool, cursor core.Cursor) {
	justPressed = m.clicked
	pressed = m.down || m.clicked
	m.clicked = false

	if m.tracked {
		cursor = g.CellCenter(m.col, m.row)
	}
	return justPressed, pressed, cursor
}

// Apply writes the current frame state into the input resource
func (m *Mouse) Apply(ir *engine.InputResource, g camera.Grid) {
	ir.Update(m.Frame(g))
}
