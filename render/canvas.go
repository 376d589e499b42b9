package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sparkburst/camera"
)

// Canvas is a cell-resolution color buffer
// Each cell holds the composite of every particle disc covering its center
type Canvas struct {
	grid       camera.Grid
	background colorful.Color
	alpha      float64
	cells      []colorful.Color
}

// NewCanvas creates a canvas cleared to background
func NewCanvas(grid camera.Grid, background colorful.Color, alpha float64) *Canvas {
	c := &Canvas{background: background, alpha: alpha}
	c.Resize(grid)
	return c
}

// Resize reallocates the buffer when the grid dimensions change
func (c *Canvas) Resize(grid camera.Grid) {
	c.grid = grid
	n := grid.Cols * grid.Rows
	if n < 0 {
		n = 0
	}
	if cap(c.cells) < n {
		c.cells = make([]colorful.Color, n)
	}
	c.cells = c.cells[:n]
	c.Clear()
}

// Grid returns the current cell grid
func (c *Canvas) Grid() camera.Grid {
	return c.grid
}

// Clear fills every cell with the background
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.background
	}
}

// At returns the color of a cell, row 0 at the top
func (c *Canvas) At(col, row int) colorful.Color {
	if col < 0 || row < 0 || col >= c.grid.Cols || row >= c.grid.Rows {
		return c.background
	}
	return c.cells[row*c.grid.Cols+col]
}

// Draw composites every view through cam onto the canvas
func (c *Canvas) Draw(views []View, cam camera.Camera) {
	viewport := c.grid.Viewport()
	for _, v := range views {
		c.disc(v, cam, viewport)
	}
}

// disc fills cells whose centers lie within the projected disc
// A disc smaller than a cell still marks the cell under its center
func (c *Canvas) disc(v View, cam camera.Camera, viewport mgl32.Vec2) {
	if v.Size <= 0 {
		return
	}
	center := mgl32.Vec2{v.X, v.Y}
	sc, ok := cam.WorldToScreen(center, viewport)
	if !ok {
		return
	}
	edge, ok := cam.WorldToScreen(mgl32.Vec2{v.X + v.Size/2, v.Y}, viewport)
	if !ok {
		return
	}
	radius := edge.Sub(sc).Len()
	color := HueColor(v.Hue)

	minCol, maxRow := c.grid.PixelToCell(sc.X()-radius, sc.Y()-radius)
	maxCol, minRow := c.grid.PixelToCell(sc.X()+radius, sc.Y()+radius)
	if maxCol < 0 || maxRow < 0 || minCol >= c.grid.Cols || minRow >= c.grid.Rows {
		return
	}
	minCol, minRow = max(minCol, 0), max(minRow, 0)
	maxCol, maxRow = min(maxCol, c.grid.Cols-1), min(maxRow, c.grid.Rows-1)

	r2 := radius * radius
	hit := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := c.grid.CellCenter(col, row)
			dx, dy := p.X-sc.X(), p.Y-sc.Y()
			if dx*dx+dy*dy > r2 {
				continue
			}
			c.blend(col, row, color)
			hit = true
		}
	}

	if !hit {
		col, row := c.grid.PixelToCell(sc.X(), sc.Y())
		if col >= 0 && row >= 0 && col < c.grid.Cols && row < c.grid.Rows {
			c.blend(col, row, color)
		}
	}
}

func (c *Canvas) blend(col, row int, color colorful.Color) {
	i := row*c.grid.Cols + col
	c.cells[i] = Over(c.cells[i], color, c.alpha)
}
