package attrs

import (
	"fmt"

	"golang.org/x/image/font"
)

// Trait is a symbolic font trait.
type Trait uint8

const (
	TraitBold Trait = 1 << iota
	TraitItalic
)

// Font identifies a face by family, point size and style. Weight and Style
// use the x/image/font vocabulary.
type Font struct {
	Family string
	Size   float64
	Weight font.Weight
	Style  font.Style
}

// FallbackFont is used by the derived accessors when no font is set.
var FallbackFont = Font{Family: "system", Size: 12, Weight: font.WeightNormal, Style: font.StyleNormal}

// Traits reports the symbolic traits of f.
func (f Font) Traits() Trait {
	var t Trait
	if f.Weight >= font.WeightSemiBold {
		t |= TraitBold
	}
	if f.Style == font.StyleItalic || f.Style == font.StyleOblique {
		t |= TraitItalic
	}
	return t
}

// WithSize returns a copy of f resized to size points.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// WithTraits returns a copy of f whose weight and style express t. A bold
// face that keeps its bold trait keeps its exact weight.
func (f Font) WithTraits(t Trait) Font {
	switch bold := t&TraitBold != 0; {
	case bold && f.Weight < font.WeightSemiBold:
		f.Weight = font.WeightBold
	case !bold && f.Weight >= font.WeightSemiBold:
		f.Weight = font.WeightNormal
	}
	switch italic := t&TraitItalic != 0; {
	case italic && f.Style == font.StyleNormal:
		f.Style = font.StyleItalic
	case !italic:
		f.Style = font.StyleNormal
	}
	return f
}

func (f Font) String() string {
	return fmt.Sprintf("%s %gpt weight=%d style=%d", f.Family, f.Size, f.Weight, f.Style)
}
