package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/sparkburst/core"
)

// Grid maps terminal cells to screen pixels
// Pixel space has its origin at the bottom-left corner, y up
type Grid struct {
	Cols, Rows            int
	CellWidth, CellHeight float32
}

// Viewport returns the screen size in pixels
func (g Grid) Viewport() mgl32.Vec2 {
	return mgl32.Vec2{float32(g.Cols) * g.CellWidth, float32(g.Rows) * g.CellHeight}
}

// CellCenter returns the pixel position at the center of a cell
// Cells outside the screen yield an invalid cursor
func (g Grid) CellCenter(col, row int) core.Cursor {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return core.Cursor{}
	}
	return core.Cursor{
		X:     (float32(col) + 0.5) * g.CellWidth,
		Y:     (float32(g.Rows-row) - 0.5) * g.CellHeight,
		Valid: true,
	}
}

// PixelToCell returns the cell containing a pixel position, bottom-left origin
func (g Grid) PixelToCell(x, y float32) (col, row int) {
	col = int(math.Floor(float64(x / g.CellWidth)))
	row = g.Rows - 1 - int(math.Floor(float64(y/g.CellHeight)))
	return col, row
}

// Camera returns a pixel-per-unit orthographic camera covering the grid
func (g Grid) Camera() Camera {
	v := g.Viewport()
	return NewOrthographic(v.X(), v.Y())
}
