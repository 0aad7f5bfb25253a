// Package attrs maps between a typed set of text presentation attributes and
// the flattened, key-addressed form attached to spans of a run.
package attrs

import "net/url"

// Attributes is one complete style state. A nil field means the attribute is
// not set and the renderer default applies.
type Attributes struct {
	Font            *Font
	Color           *Color
	BackgroundColor *Color
	Baseline        *float64
	Kern            *float64
	Expansion       *float64
	Obliqueness     *float64
	Ligature        *bool
	Direction       *GlyphDirection
	TextEffect      *TextEffect
	URL             *url.URL

	Underline          *UnderlineStyle
	UnderlineColor     *Color
	Strikethrough      *UnderlineStyle
	StrikethroughColor *Color
	Stroke             *Stroke
	StrokeColor        *Color

	// Paragraph attributes, flattened together under KeyParagraphStyle.
	Alignment                     *TextAlignment
	LineBreakMode                 *LineBreakMode
	Leading                       *float64
	LineHeightMultiplier          *float64
	ParagraphSpacingAfter         *float64
	ParagraphSpacingBefore        *float64
	HeadIndent                    *float64
	TailIndent                    *float64
	FirstLineHeadIndent           *float64
	MinimumLineHeight             *float64
	MaximumLineHeight             *float64
	HyphenationFactor             *float64
	AllowsTighteningForTruncation *bool
}

// Mutation derives a new style state from the current one.
type Mutation func(Attributes) Attributes

// Chain combines mutations left to right. Nil entries are skipped.
func Chain(ms ...Mutation) Mutation {
	return func(a Attributes) Attributes {
		for _, m := range ms {
			if m != nil {
				a = m(a)
			}
		}
		return a
	}
}

// Reset is the Mutation form of (*Attributes).Reset.
func Reset(Attributes) Attributes {
	return Attributes{}
}

// Reset clears every attribute.
func (a *Attributes) Reset() {
	*a = Attributes{}
}

// Ptr returns a pointer to v. Handy for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// CurrentFont returns the font in effect: Font when set, FallbackFont
// otherwise.
func (a *Attributes) CurrentFont() Font {
	if a.Font != nil {
		return *a.Font
	}
	return FallbackFont
}

// FontSize returns the point size of the current font, or of FallbackFont
// when no font is set.
func (a *Attributes) FontSize() float64 {
	return a.CurrentFont().Size
}

// SetFontSize replaces the font with a resized copy of the current one. A
// nil size clears the font entirely.
func (a *Attributes) SetFontSize(size *float64) {
	if size == nil {
		a.Font = nil
		return
	}
	f := a.CurrentFont().WithSize(*size)
	a.Font = &f
}

// Bold reports whether the current font carries the bold trait.
func (a *Attributes) Bold() bool {
	return a.CurrentFont().Traits()&TraitBold != 0
}

// SetBold derives a font from the current one with the bold trait inserted
// or removed. The point size is preserved.
func (a *Attributes) SetBold(enabled bool) {
	a.setTrait(TraitBold, enabled)
}

// Italic reports whether the current font carries the italic trait.
func (a *Attributes) Italic() bool {
	return a.CurrentFont().Traits()&TraitItalic != 0
}

// SetItalic derives a font from the current one with the italic trait
// inserted or removed. The point size is preserved.
func (a *Attributes) SetItalic(enabled bool) {
	a.setTrait(TraitItalic, enabled)
}

func (a *Attributes) setTrait(t Trait, enabled bool) {
	f := a.CurrentFont()
	traits := f.Traits()
	if enabled {
		traits |= t
	} else {
		traits &^= t
	}
	f = f.WithTraits(traits)
	a.Font = &f
}

// hasParagraph reports whether any paragraph attribute is set.
func (a *Attributes) hasParagraph() bool {
	for _, pf := range paragraphFields {
		if pf.isSet(a) {
			return true
		}
	}
	return false
}
