// Package run accumulates styled spans of text and inline images. Every
// appended span starts from the attributes in effect at the end of the run,
// so styling carries forward until it is overridden or reset.
package run

import (
	"image"
	"slices"
	"strings"

	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"textrun/attrs"
)

// Span is one appended piece of content with its flattened attributes.
type Span struct {
	Content    Content
	Attributes attrs.Map
}

// Len returns the number of user-perceived characters in the span.
func (s Span) Len() int {
	switch c := s.Content.(type) {
	case Text:
		return uniseg.GraphemeClusterCount(string(c))
	case *Attachment:
		return 1
	}
	return 0
}

// Builder is a mutable run under construction. It is not safe for
// concurrent use.
type Builder struct {
	codec *attrs.Codec
	log   *zap.Logger
	spans []Span
}

// Option configures a Builder.
type Option func(*Builder)

// WithCodec sets the codec used to read and write span attributes.
func WithCodec(c *attrs.Codec) Option {
	return func(b *Builder) {
		b.codec = c
	}
}

// WithLogger sets the builder logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// New returns an empty run. Without WithCodec the standard renderer defaults
// are used.
func New(opts ...Option) *Builder {
	b := &Builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	if b.codec == nil {
		b.codec = attrs.NewCodec(attrs.StandardDefaults(), b.log)
	}
	b.log = b.log.Named("run")
	return b
}

// Append adds text styled by applying mutations, in order, to the running
// attributes.
func (b *Builder) Append(text string, mutations ...attrs.Mutation) *Builder {
	return b.append(Text(text), mutations)
}

// AppendImage adds img as an attachment. bounds, when not nil, replaces the
// natural image size.
func (b *Builder) AppendImage(img image.Image, bounds *Rect, mutations ...attrs.Mutation) *Builder {
	return b.append(NewAttachment(img, bounds), mutations)
}

// AppendAttachment adds a prepared attachment.
func (b *Builder) AppendAttachment(att *Attachment, mutations ...attrs.Mutation) *Builder {
	return b.append(att, mutations)
}

func (b *Builder) append(c Content, mutations []attrs.Mutation) *Builder {
	a := attrs.Chain(mutations...)(b.RunningAttributes())
	span := Span{Content: c, Attributes: b.codec.Encode(a)}
	b.spans = append(b.spans, span)

	if ce := b.log.Check(zap.DebugLevel, "Span appended"); ce != nil {
		ce.Write(zap.Int("index", len(b.spans)-1), zap.Int("length", span.Len()), zap.Int("keys", len(span.Attributes)))
	}
	return b
}

// RunningAttributes returns the attributes in effect at the last character
// of the run. Spans without characters do not contribute. An empty run
// yields an empty set.
func (b *Builder) RunningAttributes() attrs.Attributes {
	for i := len(b.spans) - 1; i >= 0; i-- {
		if b.spans[i].Len() > 0 {
			return b.codec.Decode(b.spans[i].Attributes)
		}
	}
	return attrs.Attributes{}
}

// AttributesAt returns the flattened attributes of the character at index,
// counted in grapheme clusters.
func (b *Builder) AttributesAt(index int) (attrs.Map, bool) {
	if index < 0 {
		return nil, false
	}
	for _, s := range b.spans {
		n := s.Len()
		if index < n {
			return s.Attributes.Clone(), true
		}
		index -= n
	}
	return nil, false
}

// Len returns the number of characters in the run.
func (b *Builder) Len() int {
	var n int
	for _, s := range b.spans {
		n += s.Len()
	}
	return n
}

// String returns the plain text of the run with attachments replaced by
// ObjectReplacement.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, s := range b.spans {
		switch c := s.Content.(type) {
		case Text:
			sb.WriteString(string(c))
		case *Attachment:
			sb.WriteString(ObjectReplacement)
		}
	}
	return sb.String()
}

// Spans returns a copy of the appended spans.
func (b *Builder) Spans() []Span {
	spans := slices.Clone(b.spans)
	for i := range spans {
		spans[i].Attributes = spans[i].Attributes.Clone()
	}
	return spans
}

// Codec returns the codec the builder was created with.
func (b *Builder) Codec() *attrs.Codec {
	return b.codec
}
