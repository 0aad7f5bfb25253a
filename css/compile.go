package css

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"textrun/attrs"
)

// setter applies one compiled declaration.
type setter func(a *target)

// target is the attribute set a mutation works on. The font in effect falls
// back to the renderer default font rather than attrs.FallbackFont.
type target struct {
	*attrs.Attributes
	fallback attrs.Font
}

func (t *target) CurrentFont() attrs.Font {
	if t.Font != nil {
		return *t.Font
	}
	return t.fallback
}

func (t *target) FontSize() float64 {
	return t.CurrentFont().Size
}

// property compiles a value into a setter. Values "initial" and "unset" are
// handled before the compiler is called.
type property struct {
	compile func(v Value) (setter, error)
	clear   setter
}

var errUnsupportedValue = errors.New("unsupported value")

// Compile parses style and returns the mutation it describes. Declarations
// are applied in source order. Invalid declarations are reported in the
// returned error but do not prevent the valid ones from being applied, so
// the mutation is always usable.
func (p *Parser) Compile(style string) (attrs.Mutation, error) {
	decls, err := p.Parse([]byte(style))
	m, cerr := p.CompileDeclarations(decls)
	return m, multierr.Append(err, cerr)
}

// CompileDeclarations turns parsed declarations into a mutation.
func (p *Parser) CompileDeclarations(decls Declarations) (attrs.Mutation, error) {
	var (
		setters []setter
		errs    error
	)
	for _, d := range decls {
		s, err := compileDeclaration(d)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", d, err))
			continue
		}
		p.log.Debug("Compiled declaration", zap.Stringer("declaration", d))
		setters = append(setters, s)
	}
	fallback := p.fallback
	return func(a attrs.Attributes) attrs.Attributes {
		t := target{Attributes: &a, fallback: fallback}
		for _, s := range setters {
			s(&t)
		}
		return a
	}, errs
}

func compileDeclaration(d Declaration) (setter, error) {
	if d.Property == "all" {
		switch d.Value.Keyword {
		case "initial", "unset":
			return func(a *target) { a.Reset() }, nil
		}
		return nil, errUnsupportedValue
	}
	prop, ok := properties[d.Property]
	if !ok {
		return nil, errors.New("unknown property")
	}
	switch d.Value.Keyword {
	case "initial", "unset":
		return prop.clear, nil
	}
	return prop.compile(d.Value)
}

// length is a value which may be relative to the font size in effect when
// the mutation runs.
type length struct {
	value float64
	unit  string
}

func parseLength(v Value) (length, error) {
	if !v.IsNumeric() {
		return length{}, errUnsupportedValue
	}
	switch v.Unit {
	case "", "pt", "px", "em":
		return length{value: v.Value, unit: v.Unit}, nil
	}
	return length{}, fmt.Errorf("unsupported unit %q", v.Unit)
}

func (l length) resolve(a *target) float64 {
	switch l.unit {
	case "px":
		return l.value * 0.75
	case "em":
		return l.value * a.FontSize()
	}
	return l.value
}

func parseNumber(v Value) (float64, error) {
	if !v.IsNumeric() || v.Unit != "" {
		return 0, errUnsupportedValue
	}
	return v.Value, nil
}

func parseColor(v Value) (attrs.Color, error) {
	s := v.Keyword
	if s == "" {
		s = v.Raw
	}
	if args, ok := strings.CutPrefix(strings.ToLower(s), "rgb("); ok {
		return parseRGB(strings.TrimSuffix(args, ")"))
	}
	return attrs.ParseColor(s)
}

func parseRGB(args string) (attrs.Color, error) {
	fields := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 3 {
		return attrs.Color{}, fmt.Errorf("rgb() needs 3 components, got %d", len(fields))
	}
	var c [3]uint8
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return attrs.Color{}, fmt.Errorf("bad rgb() component %q: %w", f, err)
		}
		c[i] = uint8(n)
	}
	return attrs.RGB(c[0], c[1], c[2]), nil
}

func lengthProperty(field func(a *attrs.Attributes) **float64) property {
	return property{
		compile: func(v Value) (setter, error) {
			l, err := parseLength(v)
			if err != nil {
				return nil, err
			}
			return func(a *target) { *field(a.Attributes) = attrs.Ptr(l.resolve(a)) }, nil
		},
		clear: func(a *target) { *field(a.Attributes) = nil },
	}
}

func numberProperty(field func(a *attrs.Attributes) **float64) property {
	return property{
		compile: func(v Value) (setter, error) {
			n, err := parseNumber(v)
			if err != nil {
				return nil, err
			}
			return func(a *target) { *field(a.Attributes) = attrs.Ptr(n) }, nil
		},
		clear: func(a *target) { *field(a.Attributes) = nil },
	}
}

func colorProperty(field func(a *attrs.Attributes) **attrs.Color) property {
	return property{
		compile: func(v Value) (setter, error) {
			c, err := parseColor(v)
			if err != nil {
				return nil, err
			}
			return func(a *target) { *field(a.Attributes) = attrs.Ptr(c) }, nil
		},
		clear: func(a *target) { *field(a.Attributes) = nil },
	}
}

// keywordProperty maps CSS keywords to values of T. Keys of the map are
// tried first, then parse (usually a go-enum parser) on the raw value.
func keywordProperty[T any](field func(a *attrs.Attributes) **T, keywords map[string]T, parse func(string) (T, error)) property {
	return property{
		compile: func(v Value) (setter, error) {
			if val, ok := keywords[v.Keyword]; ok {
				return func(a *target) { *field(a.Attributes) = attrs.Ptr(val) }, nil
			}
			if parse == nil {
				return nil, errUnsupportedValue
			}
			// enum names are case sensitive, Keyword is lowercased
			val, err := parse(v.Raw)
			if err != nil {
				val, err = parse(v.Keyword)
			}
			if err != nil {
				return nil, err
			}
			return func(a *target) { *field(a.Attributes) = attrs.Ptr(val) }, nil
		},
		clear: func(a *target) { *field(a.Attributes) = nil },
	}
}

func clearFont(a *target) { a.Font = nil }

// fontProperty derives a new font from the current one.
func fontProperty(compile func(v Value) (func(f attrs.Font, a *target) attrs.Font, error)) property {
	return property{
		compile: func(v Value) (setter, error) {
			derive, err := compile(v)
			if err != nil {
				return nil, err
			}
			return func(a *target) {
				f := a.CurrentFont()
				f = derive(f, a)
				a.Font = &f
			}, nil
		},
		clear: clearFont,
	}
}

var fontWeights = map[string]font.Weight{
	"thin":       font.WeightThin,
	"extralight": font.WeightExtraLight,
	"light":      font.WeightLight,
	"normal":     font.WeightNormal,
	"medium":     font.WeightMedium,
	"semibold":   font.WeightSemiBold,
	"bold":       font.WeightBold,
	"extrabold":  font.WeightExtraBold,
	"black":      font.WeightBlack,
}

var properties = map[string]property{
	"color":            colorProperty(func(a *attrs.Attributes) **attrs.Color { return &a.Color }),
	"background-color": colorProperty(func(a *attrs.Attributes) **attrs.Color { return &a.BackgroundColor }),

	"font-family": fontProperty(func(v Value) (func(attrs.Font, *target) attrs.Font, error) {
		family, _, _ := strings.Cut(v.Keyword, ",")
		family = unquote(family)
		if family == "" {
			return nil, errUnsupportedValue
		}
		return func(f attrs.Font, _ *target) attrs.Font {
			f.Family = family
			return f
		}, nil
	}),
	"font-size": fontProperty(func(v Value) (func(attrs.Font, *target) attrs.Font, error) {
		if v.Unit == "%" {
			factor := v.Value / 100
			return func(f attrs.Font, _ *target) attrs.Font { return f.WithSize(f.Size * factor) }, nil
		}
		l, err := parseLength(v)
		if err != nil {
			return nil, err
		}
		if l.value <= 0 {
			return nil, fmt.Errorf("font size must be positive")
		}
		return func(f attrs.Font, a *target) attrs.Font { return f.WithSize(l.resolve(a)) }, nil
	}),
	"font-weight": fontProperty(func(v Value) (func(attrs.Font, *target) attrs.Font, error) {
		w, ok := fontWeights[v.Keyword]
		if !ok {
			n, err := parseNumber(v)
			if err != nil || n < 100 || n > 900 || n != float64(int(n/100))*100 {
				return nil, errUnsupportedValue
			}
			// 400 is normal, each hundred is one step
			w = font.Weight(int(n)/100 - 4)
		}
		return func(f attrs.Font, _ *target) attrs.Font {
			f.Weight = w
			return f
		}, nil
	}),
	"font-style": fontProperty(func(v Value) (func(attrs.Font, *target) attrs.Font, error) {
		var s font.Style
		switch v.Keyword {
		case "normal":
			s = font.StyleNormal
		case "italic":
			s = font.StyleItalic
		case "oblique":
			s = font.StyleOblique
		default:
			return nil, errUnsupportedValue
		}
		return func(f attrs.Font, _ *target) attrs.Font {
			f.Style = s
			return f
		}, nil
	}),

	"letter-spacing":       lengthProperty(func(a *attrs.Attributes) **float64 { return &a.Kern }),
	"vertical-align":       lengthProperty(func(a *attrs.Attributes) **float64 { return &a.Baseline }),
	"-textrun-expansion":   numberProperty(func(a *attrs.Attributes) **float64 { return &a.Expansion }),
	"-textrun-obliqueness": numberProperty(func(a *attrs.Attributes) **float64 { return &a.Obliqueness }),

	"font-variant-ligatures": keywordProperty(func(a *attrs.Attributes) **bool { return &a.Ligature },
		map[string]bool{"normal": true, "common-ligatures": true, "none": false, "no-common-ligatures": false}, nil),
	"writing-mode": keywordProperty(func(a *attrs.Attributes) **attrs.GlyphDirection { return &a.Direction },
		map[string]attrs.GlyphDirection{
			"horizontal-tb": attrs.GlyphDirectionHorizontal,
			"vertical-rl":   attrs.GlyphDirectionVertical,
			"vertical-lr":   attrs.GlyphDirectionVertical,
		}, nil),
	"-textrun-text-effect": keywordProperty(func(a *attrs.Attributes) **attrs.TextEffect { return &a.TextEffect },
		nil, attrs.ParseTextEffect),
	"-textrun-link": {
		compile: func(v Value) (setter, error) {
			u, err := url.Parse(v.Keyword)
			if err != nil {
				return nil, err
			}
			if u.String() == "" {
				return nil, errUnsupportedValue
			}
			return func(a *target) { a.URL = attrs.Ptr(*u) }, nil
		},
		clear: func(a *target) { a.URL = nil },
	},

	"text-decoration-line": {
		compile: func(v Value) (setter, error) {
			underline, strike := attrs.UnderlineStyleNone, attrs.UnderlineStyleNone
			for w := range strings.FieldsSeq(strings.ToLower(v.Keyword)) {
				switch w {
				case "none":
				case "underline":
					underline = attrs.UnderlineStyleSingle
				case "line-through":
					strike = attrs.UnderlineStyleSingle
				default:
					return nil, fmt.Errorf("unsupported line %q", w)
				}
			}
			return func(a *target) {
				a.Underline = attrs.Ptr(underline)
				a.Strikethrough = attrs.Ptr(strike)
			}, nil
		},
		clear: func(a *target) {
			a.Underline = nil
			a.Strikethrough = nil
		},
	},
	"-textrun-underline-style": keywordProperty(func(a *attrs.Attributes) **attrs.UnderlineStyle { return &a.Underline },
		nil, attrs.ParseUnderlineStyle),
	"-textrun-strikethrough-style": keywordProperty(func(a *attrs.Attributes) **attrs.UnderlineStyle { return &a.Strikethrough },
		nil, attrs.ParseUnderlineStyle),
	"text-decoration-color":        colorProperty(func(a *attrs.Attributes) **attrs.Color { return &a.UnderlineColor }),
	"-textrun-strikethrough-color": colorProperty(func(a *attrs.Attributes) **attrs.Color { return &a.StrikethroughColor }),

	"-webkit-text-stroke-width": {
		compile: func(v Value) (setter, error) {
			l, err := parseLength(v)
			if err != nil {
				return nil, err
			}
			return func(a *target) {
				s := attrs.NotFilled(l.resolve(a))
				if a.Stroke != nil {
					s.Filled = a.Stroke.Filled
				}
				a.Stroke = &s
			}, nil
		},
		clear: func(a *target) { a.Stroke = nil },
	},
	"-textrun-stroke-fill": {
		compile: func(v Value) (setter, error) {
			var filled bool
			switch v.Keyword {
			case "filled":
				filled = true
			case "none":
			default:
				return nil, errUnsupportedValue
			}
			return func(a *target) {
				var s attrs.Stroke
				if a.Stroke != nil {
					s = *a.Stroke
				}
				s.Filled = filled
				a.Stroke = &s
			}, nil
		},
		clear: func(a *target) { a.Stroke = nil },
	},
	"-webkit-text-stroke-color": colorProperty(func(a *attrs.Attributes) **attrs.Color { return &a.StrokeColor }),

	"text-align": keywordProperty(func(a *attrs.Attributes) **attrs.TextAlignment { return &a.Alignment },
		map[string]attrs.TextAlignment{
			"left":    attrs.TextAlignmentLeading,
			"right":   attrs.TextAlignmentTrailing,
			"justify": attrs.TextAlignmentJustified,
			"start":   attrs.TextAlignmentNatural,
		}, attrs.ParseTextAlignment),
	"text-overflow": keywordProperty(func(a *attrs.Attributes) **attrs.LineBreakMode { return &a.LineBreakMode },
		map[string]attrs.LineBreakMode{
			"clip":     attrs.LineBreakModeClipping,
			"ellipsis": attrs.LineBreakModeTruncatingTail,
		}, nil),
	"-textrun-line-break-mode": keywordProperty(func(a *attrs.Attributes) **attrs.LineBreakMode { return &a.LineBreakMode },
		nil, attrs.ParseLineBreakMode),
	"line-height": {
		compile: func(v Value) (setter, error) {
			switch {
			case v.Unit == "%":
				m := v.Value / 100
				return func(a *target) { a.LineHeightMultiplier = attrs.Ptr(m) }, nil
			case v.Unit == "":
				m, err := parseNumber(v)
				if err != nil {
					return nil, err
				}
				return func(a *target) { a.LineHeightMultiplier = attrs.Ptr(m) }, nil
			}
			l, err := parseLength(v)
			if err != nil {
				return nil, err
			}
			return func(a *target) {
				h := l.resolve(a)
				a.MinimumLineHeight = attrs.Ptr(h)
				a.MaximumLineHeight = attrs.Ptr(h)
			}, nil
		},
		clear: func(a *target) {
			a.LineHeightMultiplier = nil
			a.MinimumLineHeight = nil
			a.MaximumLineHeight = nil
		},
	},
	"-textrun-leading":         lengthProperty(func(a *attrs.Attributes) **float64 { return &a.Leading }),
	"-textrun-min-line-height": lengthProperty(func(a *attrs.Attributes) **float64 { return &a.MinimumLineHeight }),
	"-textrun-max-line-height": lengthProperty(func(a *attrs.Attributes) **float64 { return &a.MaximumLineHeight }),
	"margin-top":               lengthProperty(func(a *attrs.Attributes) **float64 { return &a.ParagraphSpacingBefore }),
	"margin-bottom":            lengthProperty(func(a *attrs.Attributes) **float64 { return &a.ParagraphSpacingAfter }),
	"margin-left":              lengthProperty(func(a *attrs.Attributes) **float64 { return &a.HeadIndent }),
	"text-indent":              lengthProperty(func(a *attrs.Attributes) **float64 { return &a.FirstLineHeadIndent }),
	"margin-right": {
		compile: func(v Value) (setter, error) {
			l, err := parseLength(v)
			if err != nil {
				return nil, err
			}
			// measured from the trailing margin
			return func(a *target) { a.TailIndent = attrs.Ptr(-l.resolve(a)) }, nil
		},
		clear: func(a *target) { a.TailIndent = nil },
	},
	"hyphens": {
		compile: func(v Value) (setter, error) {
			var factor float64
			switch v.Keyword {
			case "auto":
				factor = 1
			case "none", "manual":
			default:
				return nil, errUnsupportedValue
			}
			return func(a *target) { a.HyphenationFactor = attrs.Ptr(factor) }, nil
		},
		clear: func(a *target) { a.HyphenationFactor = nil },
	},
	"-textrun-hyphenation-factor": numberProperty(func(a *attrs.Attributes) **float64 { return &a.HyphenationFactor }),
	"-textrun-tightening": keywordProperty(func(a *attrs.Attributes) **bool { return &a.AllowsTighteningForTruncation },
		map[string]bool{"true": true, "false": false}, nil),
}
