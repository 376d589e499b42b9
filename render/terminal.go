package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sparkburst/camera"
	"github.com/lixenwraith/sparkburst/config"
	"github.com/lixenwraith/sparkburst/parameter"
)

// Terminal draws canvas frames and a status line to a tcell screen
type Terminal struct {
	screen tcell.Screen
	canvas *Canvas
	view   config.ViewConfig

	background colorful.Color
	textStyle  tcell.Style
}

// NewTerminal creates a renderer sized to the current screen
func NewTerminal(screen tcell.Screen, view config.ViewConfig) (*Terminal, error) {
	bg, err := ParseBackground(view.Background)
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		screen:     screen,
		view:       view,
		background: bg,
		textStyle:  tcell.StyleDefault.Background(TcellColor(bg)).Foreground(contrastText(bg)),
	}
	t.canvas = NewCanvas(t.Grid(), bg, parameter.ParticleAlpha)
	return t, nil
}

// Grid returns the cell grid of the screen at its current size
func (t *Terminal) Grid() camera.Grid {
	cols, rows := t.screen.Size()
	return camera.Grid{Cols: cols, Rows: rows, CellWidth: t.view.CellWidth, CellHeight: t.view.CellHeight}
}

// Resize adopts the current screen size
func (t *Terminal) Resize() camera.Grid {
	g := t.Grid()
	t.canvas.Resize(g)
	t.screen.Sync()
	return g
}

// Draw renders one frame: particles through cam, then the status line on the top row
func (t *Terminal) Draw(views []View, cam camera.Camera, status string) {
	g := t.canvas.Grid()
	t.canvas.Clear()
	t.canvas.Draw(views, cam)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			style := tcell.StyleDefault.Background(TcellColor(t.canvas.At(col, row)))
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	t.drawText(0, 0, status)
	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, s string) {
	cols, _ := t.screen.Size()
	for _, ch := range s {
		if x >= cols {
			return
		}
		t.screen.SetContent(x, y, ch, nil, t.textStyle)
		x++
	}
}
