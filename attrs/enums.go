package attrs

//go:generate go tool go-enum --marshal --names

// Horizontal alignment of paragraph lines.
// ENUM(leading, center, trailing, justified, natural)
type TextAlignment int

// How lines that do not fit the container are broken or truncated.
// ENUM(wordWrap, charWrap, clipping, truncatingHead, truncatingTail, truncatingMiddle)
type LineBreakMode int

// Glyph orientation. Flattened as an integer: horizontal is 0, vertical is 1.
// ENUM(horizontal, vertical)
type GlyphDirection int

// Line style shared by underline and strikethrough.
// ENUM(none=0, single=1, thick=2, double=9)
type UnderlineStyle int

// Special text effect. The flattened form is the enum string itself.
// ENUM(letterpress)
type TextEffect string

// Key of the flattened attribute map. The set is closed: a Map never holds
// keys outside of it.
// ENUM(font, paragraphStyle, foregroundColor, backgroundColor, ligature, kern, strikethroughStyle, underlineStyle, strokeColor, strokeWidth, textEffect, link, baselineOffset, underlineColor, strikethroughColor, obliqueness, expansion, verticalGlyphForm)
type Key int
