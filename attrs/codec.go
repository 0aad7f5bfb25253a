package attrs

import "go.uber.org/zap"

// Codec converts between Attributes and Map. Decoding never fails: values of
// the wrong shape or outside their enumeration leave the field unset.
type Codec struct {
	defaults Defaults
	log      *zap.Logger
}

// NewCodec creates a codec collapsing paragraph fields against defaults.
func NewCodec(defaults Defaults, log *zap.Logger) *Codec {
	if log == nil {
		log = zap.NewNop()
	}
	return &Codec{defaults: defaults, log: log.Named("codec")}
}

// Defaults returns the table the codec was created with.
func (c *Codec) Defaults() Defaults {
	return c.defaults
}

// keyCodec is the encode/decode pair for a single key.
type keyCodec struct {
	key    Key
	encode func(c *Codec, a *Attributes) (Value, bool)
	decode func(c *Codec, v Value, a *Attributes) bool
}

func floatField(key Key, field func(a *Attributes) **float64) keyCodec {
	return keyCodec{
		key: key,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if p := *field(a); p != nil {
				return Float(*p), true
			}
			return nil, false
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			n, ok := number(v)
			if ok {
				*field(a) = &n
			}
			return ok
		},
	}
}

func colorField(key Key, field func(a *Attributes) **Color) keyCodec {
	return keyCodec{
		key: key,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if p := *field(a); p != nil {
				return *p, true
			}
			return nil, false
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			col, ok := v.(Color)
			if ok {
				*field(a) = &col
			}
			return ok
		},
	}
}

func lineStyleField(key Key, field func(a *Attributes) **UnderlineStyle) keyCodec {
	return keyCodec{
		key: key,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if p := *field(a); p != nil {
				return Int(*p), true
			}
			return nil, false
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			raw, ok := integer(v)
			if !ok || !UnderlineStyle(raw).IsValid() {
				return false
			}
			*field(a) = Ptr(UnderlineStyle(raw))
			return true
		},
	}
}

var keyCodecs = []keyCodec{
	{
		key: KeyFont,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if a.Font == nil {
				return nil, false
			}
			return *a.Font, true
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			f, ok := v.(Font)
			if ok {
				a.Font = &f
			}
			return ok
		},
	},
	{
		key:    KeyParagraphStyle,
		encode: (*Codec).encodeParagraph,
		decode: (*Codec).decodeParagraph,
	},
	colorField(KeyForegroundColor, func(a *Attributes) **Color { return &a.Color }),
	colorField(KeyBackgroundColor, func(a *Attributes) **Color { return &a.BackgroundColor }),
	{
		key: KeyLigature,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if a.Ligature == nil {
				return nil, false
			}
			if *a.Ligature {
				return Int(1), true
			}
			return Int(0), true
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			raw, ok := integer(v)
			if ok {
				a.Ligature = Ptr(raw == 1)
			}
			return ok
		},
	},
	floatField(KeyKern, func(a *Attributes) **float64 { return &a.Kern }),
	lineStyleField(KeyStrikethroughStyle, func(a *Attributes) **UnderlineStyle { return &a.Strikethrough }),
	lineStyleField(KeyUnderlineStyle, func(a *Attributes) **UnderlineStyle { return &a.Underline }),
	colorField(KeyStrokeColor, func(a *Attributes) **Color { return &a.StrokeColor }),
	{
		key: KeyStrokeWidth,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if a.Stroke == nil {
				return nil, false
			}
			return Float(a.Stroke.signed()), true
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			n, ok := number(v)
			if ok {
				a.Stroke = Ptr(strokeFromSigned(n))
			}
			return ok
		},
	},
	{
		key: KeyTextEffect,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if a.TextEffect == nil {
				return nil, false
			}
			return Str(*a.TextEffect), true
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			s, ok := v.(Str)
			if !ok {
				return false
			}
			effect, err := ParseTextEffect(string(s))
			if err != nil {
				return false
			}
			a.TextEffect = &effect
			return true
		},
	},
	{
		key: KeyLink,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if a.URL == nil {
				return nil, false
			}
			return Link{URL: a.URL}.clone(), true
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			l, ok := v.(Link)
			if !ok || l.URL == nil {
				return false
			}
			a.URL = l.clone().URL
			return true
		},
	},
	floatField(KeyBaselineOffset, func(a *Attributes) **float64 { return &a.Baseline }),
	colorField(KeyUnderlineColor, func(a *Attributes) **Color { return &a.UnderlineColor }),
	colorField(KeyStrikethroughColor, func(a *Attributes) **Color { return &a.StrikethroughColor }),
	floatField(KeyObliqueness, func(a *Attributes) **float64 { return &a.Obliqueness }),
	floatField(KeyExpansion, func(a *Attributes) **float64 { return &a.Expansion }),
	{
		key: KeyVerticalGlyphForm,
		encode: func(_ *Codec, a *Attributes) (Value, bool) {
			if a.Direction == nil {
				return nil, false
			}
			return Int(*a.Direction), true
		},
		decode: func(_ *Codec, v Value, a *Attributes) bool {
			raw, ok := integer(v)
			if !ok || !GlyphDirection(raw).IsValid() {
				return false
			}
			a.Direction = Ptr(GlyphDirection(raw))
			return true
		},
	},
}

// Encode flattens a. The map holds a key only for attributes that are set;
// explicit default values are emitted as well.
func (c *Codec) Encode(a Attributes) Map {
	m := make(Map)
	for _, kc := range keyCodecs {
		if v, ok := kc.encode(c, &a); ok {
			m[kc.key] = v
		}
	}
	return m
}

// Decode builds Attributes from m. An empty or nil map yields an empty set.
func (c *Codec) Decode(m Map) Attributes {
	var a Attributes
	for _, kc := range keyCodecs {
		v, ok := m[kc.key]
		if !ok || v == nil {
			continue
		}
		if !kc.decode(c, v, &a) {
			c.log.Debug("Ignoring malformed attribute value",
				zap.Stringer("key", kc.key), zap.String("value", describe(v)))
		}
	}
	return a
}

func (c *Codec) encodeParagraph(a *Attributes) (Value, bool) {
	if !a.hasParagraph() {
		return nil, false
	}
	p := c.defaults.Paragraph
	for _, pf := range paragraphFields {
		if pf.isSet(a) {
			pf.apply(a, &p)
		}
	}
	return p, true
}

func (c *Codec) decodeParagraph(v Value, a *Attributes) bool {
	p, ok := v.(Paragraph)
	if !ok {
		return false
	}
	for _, pf := range paragraphFields {
		pf.decode(a, p, c.defaults.Paragraph)
		if !pf.isSet(a) {
			c.log.Debug("Paragraph attribute matches default", zap.String("field", pf.name))
		}
	}
	return true
}
