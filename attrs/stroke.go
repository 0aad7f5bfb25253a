package attrs

import "fmt"

// Stroke describes glyph outlining. Outline-only and filled strokes share
// one flattened number: the width, negated when the glyph is also filled.
type Stroke struct {
	Width  float64
	Filled bool
}

// NotFilled strokes glyph outlines without filling them.
func NotFilled(width float64) Stroke {
	return Stroke{Width: width}
}

// Filled strokes glyph outlines and fills them with the foreground colour.
func Filled(width float64) Stroke {
	return Stroke{Width: width, Filled: true}
}

// signed returns the flattened stroke width.
func (s Stroke) signed() float64 {
	if s.Filled {
		return -s.Width
	}
	return s.Width
}

// strokeFromSigned is the inverse of signed. Zero always decodes as an
// outline-only stroke, so Filled(0) does not survive a round trip.
func strokeFromSigned(v float64) Stroke {
	if v < 0 {
		return Filled(-v)
	}
	return NotFilled(v)
}

func (s Stroke) String() string {
	if s.Filled {
		return fmt.Sprintf("filled(%g)", s.Width)
	}
	return fmt.Sprintf("outline(%g)", s.Width)
}
