package camera

import "testing"

var testGrid = Grid{Cols: 80, Rows: 24, CellWidth: 8, CellHeight: 16}

func TestGrid_CellCenter(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		valid    bool
		x, y     float32
	}{
		{"top-left", 0, 0, true, 4, 376},
		{"bottom-right", 79, 23, true, 636, 8},
		{"past right edge", 80, 0, false, 0, 0},
		{"negative row", 0, -1, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testGrid.CellCenter(tt.col, tt.row)
			if c.Valid != tt.valid {
				t.Fatalf("Expected valid=%v, got %v", tt.valid, c.Valid)
			}
			if c.Valid && (c.X != tt.x || c.Y != tt.y) {
				t.Errorf("Expected (%f,%f), got (%f,%f)", tt.x, tt.y, c.X, c.Y)
			}
		})
	}
}

func TestGrid_PixelToCellInvertsCellCenter(t *testing.T) {
	for _, cell := range [][2]int{{0, 0}, {79, 23}, {13, 7}} {
		c := testGrid.CellCenter(cell[0], cell[1])
		col, row := testGrid.PixelToCell(c.X, c.Y)
		if col != cell[0] || row != cell[1] {
			t.Errorf("Cell %v round tripped to (%d,%d)", cell, col, row)
		}
	}

	v := testGrid.Viewport()
	if v.X() != 640 || v.Y() != 384 {
		t.Errorf("Expected viewport 640x384, got %v", v)
	}
}
