package attrs

import "golang.org/x/image/font"

// Defaults is the renderer's default values table. Decode compares
// paragraph fields against Paragraph to collapse explicit defaults.
type Defaults struct {
	Paragraph Paragraph
	Font      Font
	Color     Color
}

// StandardDefaults returns the defaults of a typical renderer: default
// paragraph, 12pt regular system font, black text.
func StandardDefaults() Defaults {
	return Defaults{
		Paragraph: DefaultParagraph(),
		Font:      Font{Family: "system", Size: 12, Weight: font.WeightNormal, Style: font.StyleNormal},
		Color:     Black,
	}
}

// Value returns the flattened value the renderer assumes when key is absent.
// Keys without a fixed default (background and decoration colours, links,
// text effects) report false.
func (d Defaults) Value(key Key) (Value, bool) {
	switch key {
	case KeyFont:
		return d.Font, true
	case KeyParagraphStyle:
		return d.Paragraph, true
	case KeyForegroundColor:
		return d.Color, true
	case KeyLigature:
		return Int(1), true
	case KeyKern, KeyStrokeWidth, KeyBaselineOffset, KeyObliqueness, KeyExpansion:
		return Float(0), true
	case KeyStrikethroughStyle, KeyUnderlineStyle:
		return Int(UnderlineStyleNone), true
	case KeyVerticalGlyphForm:
		return Int(GlyphDirectionHorizontal), true
	}
	return nil, false
}

// IsDefault reports whether v is the default value of key.
func (d Defaults) IsDefault(key Key, v Value) bool {
	def, ok := d.Value(key)
	if !ok {
		return false
	}
	if a, ok := number(def); ok {
		b, ok := number(v)
		return ok && a == b
	}
	return def == v
}
