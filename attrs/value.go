package attrs

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
)

// Value is a flattened attribute value. The set of implementations is
// closed: Float, Int, Str, Color, Font, Paragraph and Link.
type Value interface {
	attributeValue()
}

type (
	// Float is a floating point attribute (kern, baseline offset, stroke width...).
	Float float64
	// Int is an integer attribute (ligature, underline style, glyph form).
	Int int
	// Str is a string attribute (text effect).
	Str string
	// Link is a hyperlink target.
	Link struct {
		URL *url.URL
	}
)

func (Float) attributeValue()     {}
func (Int) attributeValue()       {}
func (Str) attributeValue()       {}
func (Link) attributeValue()      {}
func (Color) attributeValue()     {}
func (Font) attributeValue()      {}
func (Paragraph) attributeValue() {}

func (v Float) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Int) String() string   { return strconv.Itoa(int(v)) }
func (v Str) String() string   { return strconv.Quote(string(v)) }

// clone returns a Link owning a private copy of its URL.
func (v Link) clone() Link {
	if v.URL == nil {
		return v
	}
	u := *v.URL
	return Link{URL: &u}
}

func (v Link) String() string {
	if v.URL == nil {
		return "<nil>"
	}
	return v.URL.String()
}

// Map is the flattened attribute representation attached to a span.
type Map map[Key]Value

// Keys returns the keys of m in enumeration order.
func (m Map) Keys() []Key {
	return slices.Sorted(maps.Keys(m))
}

// Clone returns a copy of m. Link values get their own URL, all other values
// are immutable and shared.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	c := maps.Clone(m)
	for k, v := range c {
		if l, ok := v.(Link); ok {
			c[k] = l.clone()
		}
	}
	return c
}

// number extracts a floating point value, accepting integers as well.
func number(v Value) (float64, bool) {
	switch n := v.(type) {
	case Float:
		return float64(n), true
	case Int:
		return float64(n), true
	}
	return 0, false
}

// integer extracts an integer value, accepting integral floats as well.
func integer(v Value) (int, bool) {
	switch n := v.(type) {
	case Int:
		return int(n), true
	case Float:
		if i := int(n); Float(i) == n {
			return i, true
		}
	}
	return 0, false
}

func describe(v Value) string {
	return fmt.Sprintf("%T(%v)", v, v)
}
