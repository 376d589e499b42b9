package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sparkburst/parameter"
)

// HueColor converts a particle hue in degrees to its opaque fill color
func HueColor(hue float32) colorful.Color {
	return colorful.Hsl(float64(hue), parameter.ParticleSaturation, parameter.ParticleLightness)
}

// Over composites src over dst with the given alpha, straight alpha in RGB space
func Over(dst, src colorful.Color, alpha float64) colorful.Color {
	return dst.BlendRgb(src, alpha)
}

// ParseBackground parses a hex clear color
func ParseBackground(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "parse background %q", hex)
	}
	return c, nil
}

// TcellColor converts to a 24-bit terminal color
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// contrastText picks black or white text for legibility on bg
func contrastText(bg colorful.Color) tcell.Color {
	_, _, l := bg.Hsl()
	if l > 0.5 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
