package config

import (
	"fmt"

	"golang.org/x/image/font"

	"textrun/attrs"
)

type (
	FontConfig struct {
		Family string  `yaml:"family" validate:"required"`
		Size   float64 `yaml:"size" validate:"gt=0"`
		// CSS style numeric weight in hundreds, 400 is regular.
		Weight int    `yaml:"weight" validate:"oneof=100 200 300 400 500 600 700 800 900"`
		Style  string `yaml:"style" validate:"oneof=normal italic oblique"`
	}

	ParagraphConfig struct {
		Alignment                     attrs.TextAlignment `yaml:"alignment"`
		LineBreakMode                 attrs.LineBreakMode `yaml:"line_break_mode"`
		LineSpacing                   float64             `yaml:"line_spacing" validate:"gte=0"`
		LineHeightMultiple            float64             `yaml:"line_height_multiple" validate:"gte=0"`
		ParagraphSpacing              float64             `yaml:"paragraph_spacing" validate:"gte=0"`
		ParagraphSpacingBefore        float64             `yaml:"paragraph_spacing_before" validate:"gte=0"`
		HeadIndent                    float64             `yaml:"head_indent" validate:"gte=0"`
		TailIndent                    float64             `yaml:"tail_indent"`
		FirstLineHeadIndent           float64             `yaml:"first_line_head_indent" validate:"gte=0"`
		MinimumLineHeight             float64             `yaml:"minimum_line_height" validate:"gte=0"`
		MaximumLineHeight             float64             `yaml:"maximum_line_height" validate:"gte=0"`
		HyphenationFactor             float64             `yaml:"hyphenation_factor" validate:"gte=0,lte=1"`
		AllowsTighteningForTruncation bool                `yaml:"allows_tightening_for_truncation"`
	}

	// DefaultsConfig describes the renderer defaults attributes are compared
	// against.
	DefaultsConfig struct {
		Font      FontConfig      `yaml:"font"`
		Color     string          `yaml:"color" validate:"required"`
		Paragraph ParagraphConfig `yaml:"paragraph"`
	}
)

var fontStyles = map[string]font.Style{
	"normal":  font.StyleNormal,
	"italic":  font.StyleItalic,
	"oblique": font.StyleOblique,
}

// ToDefaults converts configuration into the table used by attrs.Codec.
func (conf *DefaultsConfig) ToDefaults() (attrs.Defaults, error) {
	col, err := attrs.ParseColor(conf.Color)
	if err != nil {
		return attrs.Defaults{}, fmt.Errorf("bad default color: %w", err)
	}
	if w := conf.Font.Weight; w < 100 || w > 900 || w%100 != 0 {
		return attrs.Defaults{}, fmt.Errorf("bad default font weight %d", w)
	}
	style, ok := fontStyles[conf.Font.Style]
	if !ok {
		return attrs.Defaults{}, fmt.Errorf("bad default font style %q", conf.Font.Style)
	}
	p := conf.Paragraph
	return attrs.Defaults{
		Font: attrs.Font{
			Family: conf.Font.Family,
			Size:   conf.Font.Size,
			Weight: font.Weight(conf.Font.Weight/100 - 4),
			Style:  style,
		},
		Color: col,
		Paragraph: attrs.Paragraph{
			Alignment:                     p.Alignment,
			LineBreakMode:                 p.LineBreakMode,
			LineSpacing:                   p.LineSpacing,
			LineHeightMultiple:            p.LineHeightMultiple,
			ParagraphSpacing:              p.ParagraphSpacing,
			ParagraphSpacingBefore:        p.ParagraphSpacingBefore,
			HeadIndent:                    p.HeadIndent,
			TailIndent:                    p.TailIndent,
			FirstLineHeadIndent:           p.FirstLineHeadIndent,
			MinimumLineHeight:             p.MinimumLineHeight,
			MaximumLineHeight:             p.MaximumLineHeight,
			HyphenationFactor:             p.HyphenationFactor,
			AllowsTighteningForTruncation: p.AllowsTighteningForTruncation,
		},
	}, nil
}
