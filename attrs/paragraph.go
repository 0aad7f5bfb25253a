package attrs

// Paragraph is the paragraph style sub-object stored under
// KeyParagraphStyle. Unlike Attributes every field carries a value; fields
// nobody set hold the renderer default.
type Paragraph struct {
	Alignment                     TextAlignment
	LineBreakMode                 LineBreakMode
	LineSpacing                   float64
	LineHeightMultiple            float64
	ParagraphSpacing              float64
	ParagraphSpacingBefore        float64
	HeadIndent                    float64
	TailIndent                    float64
	FirstLineHeadIndent           float64
	MinimumLineHeight             float64
	MaximumLineHeight             float64
	HyphenationFactor             float64
	AllowsTighteningForTruncation bool
}

// DefaultParagraph is the renderer's default paragraph style: natural
// alignment, word wrapping, all metrics zero.
func DefaultParagraph() Paragraph {
	return Paragraph{
		Alignment:     TextAlignmentNatural,
		LineBreakMode: LineBreakModeWordWrap,
	}
}

// paragraphFields lists the Attributes fields backed by the paragraph
// sub-object together with their projection from Paragraph. encode and
// decode walk the same list.
var paragraphFields = []struct {
	name   string
	isSet  func(a *Attributes) bool
	apply  func(a *Attributes, p *Paragraph)
	decode func(a *Attributes, p, def Paragraph)
}{
	{
		name:  "alignment",
		isSet: func(a *Attributes) bool { return a.Alignment != nil },
		apply: func(a *Attributes, p *Paragraph) { p.Alignment = *a.Alignment },
		decode: func(a *Attributes, p, def Paragraph) {
			a.Alignment = collapse(p.Alignment, def.Alignment)
		},
	},
	{
		name:  "line break mode",
		isSet: func(a *Attributes) bool { return a.LineBreakMode != nil },
		apply: func(a *Attributes, p *Paragraph) { p.LineBreakMode = *a.LineBreakMode },
		decode: func(a *Attributes, p, def Paragraph) {
			a.LineBreakMode = collapse(p.LineBreakMode, def.LineBreakMode)
		},
	},
	{
		name:  "leading",
		isSet: func(a *Attributes) bool { return a.Leading != nil },
		apply: func(a *Attributes, p *Paragraph) { p.LineSpacing = *a.Leading },
		decode: func(a *Attributes, p, def Paragraph) {
			a.Leading = collapse(p.LineSpacing, def.LineSpacing)
		},
	},
	{
		name:  "line height multiplier",
		isSet: func(a *Attributes) bool { return a.LineHeightMultiplier != nil },
		apply: func(a *Attributes, p *Paragraph) { p.LineHeightMultiple = *a.LineHeightMultiplier },
		decode: func(a *Attributes, p, def Paragraph) {
			a.LineHeightMultiplier = collapse(p.LineHeightMultiple, def.LineHeightMultiple)
		},
	},
	{
		name:  "spacing after",
		isSet: func(a *Attributes) bool { return a.ParagraphSpacingAfter != nil },
		apply: func(a *Attributes, p *Paragraph) { p.ParagraphSpacing = *a.ParagraphSpacingAfter },
		decode: func(a *Attributes, p, def Paragraph) {
			a.ParagraphSpacingAfter = collapse(p.ParagraphSpacing, def.ParagraphSpacing)
		},
	},
	{
		name:  "spacing before",
		isSet: func(a *Attributes) bool { return a.ParagraphSpacingBefore != nil },
		apply: func(a *Attributes, p *Paragraph) { p.ParagraphSpacingBefore = *a.ParagraphSpacingBefore },
		decode: func(a *Attributes, p, def Paragraph) {
			a.ParagraphSpacingBefore = collapse(p.ParagraphSpacingBefore, def.ParagraphSpacingBefore)
		},
	},
	{
		name:  "head indent",
		isSet: func(a *Attributes) bool { return a.HeadIndent != nil },
		apply: func(a *Attributes, p *Paragraph) { p.HeadIndent = *a.HeadIndent },
		decode: func(a *Attributes, p, def Paragraph) {
			a.HeadIndent = collapse(p.HeadIndent, def.HeadIndent)
		},
	},
	{
		name:  "tail indent",
		isSet: func(a *Attributes) bool { return a.TailIndent != nil },
		apply: func(a *Attributes, p *Paragraph) { p.TailIndent = *a.TailIndent },
		decode: func(a *Attributes, p, def Paragraph) {
			a.TailIndent = collapse(p.TailIndent, def.TailIndent)
		},
	},
	{
		name:  "first line head indent",
		isSet: func(a *Attributes) bool { return a.FirstLineHeadIndent != nil },
		apply: func(a *Attributes, p *Paragraph) { p.FirstLineHeadIndent = *a.FirstLineHeadIndent },
		decode: func(a *Attributes, p, def Paragraph) {
			a.FirstLineHeadIndent = collapse(p.FirstLineHeadIndent, def.FirstLineHeadIndent)
		},
	},
	{
		name:  "minimum line height",
		isSet: func(a *Attributes) bool { return a.MinimumLineHeight != nil },
		apply: func(a *Attributes, p *Paragraph) { p.MinimumLineHeight = *a.MinimumLineHeight },
		decode: func(a *Attributes, p, def Paragraph) {
			a.MinimumLineHeight = collapse(p.MinimumLineHeight, def.MinimumLineHeight)
		},
	},
	{
		name:  "maximum line height",
		isSet: func(a *Attributes) bool { return a.MaximumLineHeight != nil },
		apply: func(a *Attributes, p *Paragraph) { p.MaximumLineHeight = *a.MaximumLineHeight },
		decode: func(a *Attributes, p, def Paragraph) {
			a.MaximumLineHeight = collapse(p.MaximumLineHeight, def.MaximumLineHeight)
		},
	},
	{
		name:  "hyphenation factor",
		isSet: func(a *Attributes) bool { return a.HyphenationFactor != nil },
		apply: func(a *Attributes, p *Paragraph) { p.HyphenationFactor = *a.HyphenationFactor },
		decode: func(a *Attributes, p, def Paragraph) {
			a.HyphenationFactor = collapse(p.HyphenationFactor, def.HyphenationFactor)
		},
	},
	{
		name:  "tightening for truncation",
		isSet: func(a *Attributes) bool { return a.AllowsTighteningForTruncation != nil },
		apply: func(a *Attributes, p *Paragraph) { p.AllowsTighteningForTruncation = *a.AllowsTighteningForTruncation },
		decode: func(a *Attributes, p, def Paragraph) {
			a.AllowsTighteningForTruncation = collapse(p.AllowsTighteningForTruncation, def.AllowsTighteningForTruncation)
		},
	},
}

// collapse returns nil when v equals the default, a pointer to v otherwise.
func collapse[T comparable](v, def T) *T {
	if v == def {
		return nil
	}
	return &v
}
