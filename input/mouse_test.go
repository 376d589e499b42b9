package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sparkburst/camera"
	"github.com/lixenwraith/sparkburst/engine"
)

var testGrid = camera.Grid{Cols: 80, Rows: 24, CellWidth: 8, CellHeight: 16}

func press(m *Mouse, x, y int) {
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
}

func release(m *Mouse, x, y int) {
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestMouse_PressHoldRelease(t *testing.T) {
	m := NewMouse()

	tests := []struct {
		name        string
		event       func()
		justPressed bool
		pressed     bool
	}{
		{"idle", func() {}, false, false},
		{"press", func() { press(m, 10, 5) }, true, true},
		{"hold", func() {}, false, true},
		{"drag", func() { press(m, 12, 6) }, false, true},
		{"release", func() { release(m, 12, 6) }, false, false},
		{"idle after release", func() {}, false, false},
	}

	for _, tt := range tests {
		tt.event()
		jp, p, _ := m.Frame(testGrid)
		if jp != tt.justPressed || p != tt.pressed {
			t.Errorf("%s: got justPressed=%v pressed=%v, want %v %v", tt.name, jp, p, tt.justPressed, tt.pressed)
		}
	}
}

func TestMouse_ClickWithinOneFrame(t *testing.T) {
	m := NewMouse()
	press(m, 1, 1)
	release(m, 1, 1)

	jp, p, _ := m.Frame(testGrid)
	if !jp || !p {
		t.Errorf("Expected short click to register, got justPressed=%v pressed=%v", jp, p)
	}

	jp, p, _ = m.Frame(testGrid)
	if jp || p {
		t.Errorf("Expected click to be consumed, got justPressed=%v pressed=%v", jp, p)
	}
}

func TestMouse_CursorTracking(t *testing.T) {
	m := NewMouse()

	_, _, cursor := m.Frame(testGrid)
	if cursor.Valid {
		t.Error("Expected invalid cursor before any mouse event")
	}

	release(m, 0, 23)
	_, _, cursor = m.Frame(testGrid)
	if !cursor.Valid || cursor.X != 4 || cursor.Y != 8 {
		t.Errorf("Expected bottom-left cell center (4,8), got %+v", cursor)
	}

	m.Forget()
	_, _, cursor = m.Frame(testGrid)
	if cursor.Valid {
		t.Error("Expected invalid cursor after Forget")
	}
}

func TestMouse_Apply(t *testing.T) {
	m := NewMouse()
	press(m, 40, 12)

	var ir engine.InputResource
	m.Apply(&ir, testGrid)

	if !ir.JustPressed || !ir.Pressed || !ir.Cursor.Valid {
		t.Fatalf("Unexpected input resource: %+v", ir)
	}
	if ir.Cursor.X != 324 || ir.Cursor.Y != 184 {
		t.Errorf("Expected cursor (324,184), got (%f,%f)", ir.Cursor.X, ir.Cursor.Y)
	}
}
