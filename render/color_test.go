package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sparkburst/parameter"
)

func colorNear(a, b colorful.Color) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue  float32
		want colorful.Color
	}{
		{0, colorful.Color{R: 1, G: 0, B: 0}},
		{120, colorful.Color{R: 0, G: 1, B: 0}},
		{240, colorful.Color{R: 0, G: 0, B: 1}},
		{60, colorful.Color{R: 1, G: 1, B: 0}},
	}

	for _, tt := range tests {
		if got := HueColor(tt.hue); !colorNear(got, tt.want) {
			t.Errorf("HueColor(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestOver_HalfAlphaOnWhite(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	got := Over(white, HueColor(0), parameter.ParticleAlpha)
	want := colorful.Color{R: 1, G: 0.5, B: 0.5}
	if !colorNear(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Two overlapping particles keep darkening toward the hue
	twice := Over(got, HueColor(0), parameter.ParticleAlpha)
	if !colorNear(twice, colorful.Color{R: 1, G: 0.25, B: 0.25}) {
		t.Errorf("Expected stacked blend (1,0.25,0.25), got %v", twice)
	}
}

func TestParseBackground(t *testing.T) {
	c, err := ParseBackground("#ffffff")
	if err != nil {
		t.Fatalf("ParseBackground failed: %v", err)
	}
	if !colorNear(c, colorful.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("Expected white, got %v", c)
	}

	if _, err := ParseBackground("white"); err == nil {
		t.Error("Expected error for non-hex background")
	}
}

func TestTcellColor(t *testing.T) {
	got := TcellColor(colorful.Color{R: 1, G: 0.5, B: 0})
	if got != tcell.NewRGBColor(255, 128, 0) {
		t.Errorf("Unexpected terminal color %v", got)
	}

	// Out of gamut values clamp
	if TcellColor(colorful.Color{R: 2, G: -1, B: 0}) != tcell.NewRGBColor(255, 0, 0) {
		t.Error("Expected out of gamut color to clamp")
	}
}
