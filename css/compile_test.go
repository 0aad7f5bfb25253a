package css_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
	"golang.org/x/image/font"

	"textrun/attrs"
	"textrun/css"
)

func compile(t *testing.T, style string) attrs.Mutation {
	t.Helper()
	m, err := css.NewParser(zaptest.NewLogger(t)).Compile(style)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", style, err)
	}
	return m
}

func TestCompile(t *testing.T) {
	link, _ := url.Parse("https://example.com/a")

	tests := []struct {
		name  string
		style string
		start attrs.Attributes
		want  attrs.Attributes
	}{
		{
			name:  "colors",
			style: "color: red; background-color: #0000ff; text-decoration-color: rgb(0, 255, 0)",
			want:  attrs.Attributes{Color: &attrs.Red, BackgroundColor: &attrs.Blue, UnderlineColor: &attrs.Green},
		},
		{
			name:  "font",
			style: `font-family: "Georgia", serif; font-size: 20pt; font-weight: bold; font-style: italic`,
			want: attrs.Attributes{Font: &attrs.Font{
				Family: "Georgia", Size: 20, Weight: font.WeightBold, Style: font.StyleItalic,
			}},
		},
		{
			name:  "numeric font weight",
			style: "font-weight: 300",
			want:  attrs.Attributes{Font: &attrs.Font{Family: "system", Size: 12, Weight: font.WeightLight}},
		},
		{
			name:  "relative lengths",
			style: "font-size: 20pt; letter-spacing: 0.5em; vertical-align: 4px; font-size: 50%",
			want: attrs.Attributes{
				Font:     &attrs.Font{Family: "system", Size: 10},
				Kern:     attrs.Ptr(10.0),
				Baseline: attrs.Ptr(3.0),
			},
		},
		{
			name:  "paragraph",
			style: "text-align: justify; line-height: 1.5; margin-top: 6pt; margin-bottom: 4; margin-left: 10; margin-right: 8; text-indent: 12; hyphens: auto; text-overflow: ellipsis",
			want: attrs.Attributes{
				Alignment:              attrs.Ptr(attrs.TextAlignmentJustified),
				LineHeightMultiplier:   attrs.Ptr(1.5),
				ParagraphSpacingBefore: attrs.Ptr(6.0),
				ParagraphSpacingAfter:  attrs.Ptr(4.0),
				HeadIndent:             attrs.Ptr(10.0),
				TailIndent:             attrs.Ptr(-8.0),
				FirstLineHeadIndent:    attrs.Ptr(12.0),
				HyphenationFactor:      attrs.Ptr(1.0),
				LineBreakMode:          attrs.Ptr(attrs.LineBreakModeTruncatingTail),
			},
		},
		{
			name:  "fixed line height",
			style: "line-height: 18pt; -textrun-leading: 2",
			want: attrs.Attributes{
				MinimumLineHeight: attrs.Ptr(18.0),
				MaximumLineHeight: attrs.Ptr(18.0),
				Leading:           attrs.Ptr(2.0),
			},
		},
		{
			name:  "enum names",
			style: "text-align: natural; -textrun-line-break-mode: charWrap; -textrun-underline-style: double; -textrun-text-effect: letterpress",
			want: attrs.Attributes{
				Alignment:     attrs.Ptr(attrs.TextAlignmentNatural),
				LineBreakMode: attrs.Ptr(attrs.LineBreakModeCharWrap),
				Underline:     attrs.Ptr(attrs.UnderlineStyleDouble),
				TextEffect:    attrs.Ptr(attrs.TextEffectLetterpress),
			},
		},
		{
			name:  "decorations",
			style: "text-decoration-line: underline line-through; -textrun-strikethrough-color: white",
			want: attrs.Attributes{
				Underline:          attrs.Ptr(attrs.UnderlineStyleSingle),
				Strikethrough:      attrs.Ptr(attrs.UnderlineStyleSingle),
				StrikethroughColor: &attrs.White,
			},
		},
		{
			name:  "filled stroke",
			style: "-webkit-text-stroke-width: 3; -textrun-stroke-fill: filled; -webkit-text-stroke-color: black",
			want:  attrs.Attributes{Stroke: attrs.Ptr(attrs.Filled(3)), StrokeColor: &attrs.Black},
		},
		{
			name:  "stroke width keeps fill",
			style: "-webkit-text-stroke-width: 5",
			start: attrs.Attributes{Stroke: attrs.Ptr(attrs.Filled(1))},
			want:  attrs.Attributes{Stroke: attrs.Ptr(attrs.Filled(5))},
		},
		{
			name:  "glyphs",
			style: "font-variant-ligatures: none; writing-mode: vertical-rl; -textrun-expansion: 0.2; -textrun-obliqueness: 0.1",
			want: attrs.Attributes{
				Ligature:    attrs.Ptr(false),
				Direction:   attrs.Ptr(attrs.GlyphDirectionVertical),
				Expansion:   attrs.Ptr(0.2),
				Obliqueness: attrs.Ptr(0.1),
			},
		},
		{
			name:  "link",
			style: `-textrun-link: "https://example.com/a"`,
			want:  attrs.Attributes{URL: link},
		},
		{
			name:  "unset clears",
			style: "color: unset; line-height: initial",
			start: attrs.Attributes{Color: &attrs.Red, Kern: attrs.Ptr(1.0), LineHeightMultiplier: attrs.Ptr(2.0)},
			want:  attrs.Attributes{Kern: attrs.Ptr(1.0)},
		},
		{
			name:  "all initial resets",
			style: "all: initial; color: blue",
			start: attrs.Attributes{Color: &attrs.Red, Kern: attrs.Ptr(1.0), Alignment: attrs.Ptr(attrs.TextAlignmentCenter)},
			want:  attrs.Attributes{Color: &attrs.Blue},
		},
		{
			name:  "later declaration wins",
			style: "color: red; color: green",
			want:  attrs.Attributes{Color: &attrs.Green},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compile(t, tt.style)(tt.start)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mutation result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))
	m, err := p.Compile("colour: red; color: tomato; font-size: 12furlongs; text-align: left; font-weight: 950; all: inherit")
	if err == nil {
		t.Fatal("expected an error")
	}
	if n := len(multierr.Errors(err)); n != 5 {
		t.Errorf("expected 5 errors, got %d: %v", n, err)
	}
	if m == nil {
		t.Fatal("expected a usable mutation alongside the error")
	}
	want := attrs.Attributes{Alignment: attrs.Ptr(attrs.TextAlignmentLeading)}
	if diff := cmp.Diff(want, m(attrs.Attributes{})); diff != "" {
		t.Errorf("valid declarations not applied (-want +got):\n%s", diff)
	}
}

func TestCompile_DoesNotMutateInput(t *testing.T) {
	m := compile(t, "font-size: 30; color: red")
	start := attrs.Attributes{Font: &attrs.Font{Family: "Menlo", Size: 10}}
	_ = m(start)
	if start.Font.Size != 10 || start.Color != nil {
		t.Errorf("input attributes changed: %+v", start)
	}
}

func TestCompile_FallbackFont(t *testing.T) {
	fallback := attrs.Font{Family: "Georgia", Size: 20, Weight: font.WeightNormal, Style: font.StyleNormal}
	p := css.NewParser(zaptest.NewLogger(t), css.WithFallbackFont(fallback))

	m, err := p.Compile("margin-top: 2em; font-weight: bold")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := attrs.Attributes{
		ParagraphSpacingBefore: attrs.Ptr(40.0),
		Font:                   &attrs.Font{Family: "Georgia", Size: 20, Weight: font.WeightBold, Style: font.StyleNormal},
	}
	if diff := cmp.Diff(want, m(attrs.Attributes{})); diff != "" {
		t.Errorf("mutation mismatch (-want +got):\n%s", diff)
	}

	// a font in the attributes wins over the fallback
	m, err = p.Compile("letter-spacing: 0.5em")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	got := m(attrs.Attributes{Font: &attrs.Font{Family: "Menlo", Size: 10}})
	if got.Kern == nil || *got.Kern != 5 {
		t.Errorf("Kern = %v, want 5", got.Kern)
	}

	// sizeless font leaves the standard fallback in place
	m, err = css.NewParser(nil, css.WithFallbackFont(attrs.Font{Family: "x"})).Compile("letter-spacing: 1em")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := m(attrs.Attributes{}); got.Kern == nil || *got.Kern != attrs.FallbackFont.Size {
		t.Errorf("Kern = %v, want %v", got.Kern, attrs.FallbackFont.Size)
	}
}

func TestCompile_LinkIsCopied(t *testing.T) {
	m := compile(t, `-textrun-link: "https://example.com/a"`)
	first := m(attrs.Attributes{})
	first.URL.Path = "/changed"
	if got := m(attrs.Attributes{}).URL.String(); got != "https://example.com/a" {
		t.Errorf("second application link = %q, want unchanged", got)
	}
}
