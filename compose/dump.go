package compose

import (
	"textrun/attrs"
	"textrun/run"
	"textrun/utils/debug"
)

// Dump renders spans and their flattened attributes as an indented tree.
// Values equal to the renderer default are marked, paragraph styles list
// only the fields which differ from def.
func Dump(b *run.Builder, def attrs.Defaults) string {
	tw := debug.NewTreeWriter()
	spans := b.Spans()
	tw.Line(0, "run: %d spans, %d characters", len(spans), b.Len())

	var pos int
	for i, s := range spans {
		n := s.Len()
		tw.Line(1, "span %d [%d:%d]", i, pos, pos+n)
		pos += n

		switch c := s.Content.(type) {
		case run.Text:
			tw.TextBlock(2, "text", string(c))
		case *run.Attachment:
			tw.Line(2, "attachment %s", c.ID)
			tw.Field(3, "mime", c.MIME)
			tw.Field(3, "bounds", c.EffectiveBounds())
		}

		if len(s.Attributes) == 0 {
			continue
		}
		tw.Line(2, "attributes")
		for _, k := range s.Attributes.Keys() {
			v := s.Attributes[k]
			if p, ok := v.(attrs.Paragraph); ok {
				tw.Line(3, "%s", k)
				dumpParagraph(tw, 4, p, def.Paragraph)
				continue
			}
			if def.IsDefault(k, v) {
				tw.Line(3, "%s = %v (default)", k, v)
				continue
			}
			tw.Field(3, k.String(), v)
		}
	}
	return tw.String()
}

func dumpParagraph(tw *debug.TreeWriter, depth int, p, def attrs.Paragraph) {
	fields := []struct {
		name     string
		val, def any
	}{
		{"alignment", p.Alignment, def.Alignment},
		{"lineBreakMode", p.LineBreakMode, def.LineBreakMode},
		{"lineSpacing", p.LineSpacing, def.LineSpacing},
		{"lineHeightMultiple", p.LineHeightMultiple, def.LineHeightMultiple},
		{"paragraphSpacing", p.ParagraphSpacing, def.ParagraphSpacing},
		{"paragraphSpacingBefore", p.ParagraphSpacingBefore, def.ParagraphSpacingBefore},
		{"headIndent", p.HeadIndent, def.HeadIndent},
		{"tailIndent", p.TailIndent, def.TailIndent},
		{"firstLineHeadIndent", p.FirstLineHeadIndent, def.FirstLineHeadIndent},
		{"minimumLineHeight", p.MinimumLineHeight, def.MinimumLineHeight},
		{"maximumLineHeight", p.MaximumLineHeight, def.MaximumLineHeight},
		{"hyphenationFactor", p.HyphenationFactor, def.HyphenationFactor},
		{"allowsTighteningForTruncation", p.AllowsTighteningForTruncation, def.AllowsTighteningForTruncation},
	}
	var written bool
	for _, f := range fields {
		if f.val != f.def {
			tw.Field(depth, f.name, f.val)
			written = true
		}
	}
	if !written {
		tw.Line(depth, "(defaults)")
	}
}
