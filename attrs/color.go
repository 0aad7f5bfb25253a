package attrs

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB colour. It is comparable, so two colours decoded
// from the same flattened value are equal.
type Color struct {
	colorful.Color
}

// RGB builds a colour from 8-bit components. The scaling matches
// colorful.Hex so that RGB(255, 0, 0) equals the parsed "#ff0000".
func RGB(r, g, b uint8) Color {
	const factor = 1.0 / 255.0
	return Color{colorful.Color{R: float64(r) * factor, G: float64(g) * factor, B: float64(b) * factor}}
}

var namedColors = map[string]Color{
	"black":   RGB(0, 0, 0),
	"white":   RGB(255, 255, 255),
	"red":     RGB(255, 0, 0),
	"green":   RGB(0, 255, 0),
	"blue":    RGB(0, 0, 255),
	"yellow":  RGB(255, 255, 0),
	"cyan":    RGB(0, 255, 255),
	"magenta": RGB(255, 0, 255),
	"orange":  RGB(255, 128, 0),
	"purple":  RGB(128, 0, 128),
	"brown":   RGB(153, 102, 51),
	"gray":    RGB(128, 128, 128),
	"grey":    RGB(128, 128, 128),
}

// Predefined colours.
var (
	Black = namedColors["black"]
	White = namedColors["white"]
	Red   = namedColors["red"]
	Green = namedColors["green"]
	Blue  = namedColors["blue"]
)

// ParseColor accepts a colour name ("red") or a hex triplet ("#ff0000" or
// "#f00").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("unable to parse color %q: %w", s, err)
	}
	return Color{c}, nil
}

// String returns the hex form of the colour.
func (c Color) String() string {
	return c.Hex()
}
