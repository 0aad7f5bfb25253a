package run

import (
	"image"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"textrun/attrs"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	log := zaptest.NewLogger(t)
	return New(WithLogger(log), WithCodec(attrs.NewCodec(attrs.StandardDefaults(), log)))
}

func align(v attrs.TextAlignment) attrs.Mutation {
	return func(a attrs.Attributes) attrs.Attributes {
		a.Alignment = &v
		return a
	}
}

func foreground(c attrs.Color) attrs.Mutation {
	return func(a attrs.Attributes) attrs.Attributes {
		a.Color = &c
		return a
	}
}

func kern(v float64) attrs.Mutation {
	return func(a attrs.Attributes) attrs.Attributes {
		a.Kern = &v
		return a
	}
}

func TestEmptyRun(t *testing.T) {
	b := newTestBuilder(t)
	if diff := cmp.Diff(attrs.Attributes{}, b.RunningAttributes()); diff != "" {
		t.Errorf("RunningAttributes() on empty run (-want +got):\n%s", diff)
	}
	if b.Len() != 0 || b.String() != "" || len(b.Spans()) != 0 {
		t.Errorf("empty run: Len()=%d String()=%q spans=%d", b.Len(), b.String(), len(b.Spans()))
	}
	if _, ok := b.AttributesAt(0); ok {
		t.Error("AttributesAt(0) on empty run reported a character")
	}

	b.Append("plain")
	spans := b.Spans()
	if len(spans) != 1 || len(spans[0].Attributes) != 0 {
		t.Errorf("first unstyled span = %+v, want no attributes", spans)
	}
}

func TestInheritance(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("red ", foreground(attrs.Red)).Append("still red ").Append("kerned", kern(2))

	spans := b.Spans()
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(spans))
	}
	for i, s := range spans {
		if got := s.Attributes[attrs.KeyForegroundColor]; got != attrs.Red {
			t.Errorf("span %d foreground = %v, want red", i, got)
		}
	}
	if _, ok := spans[1].Attributes[attrs.KeyKern]; ok {
		t.Error("span 1 has kern before it was set")
	}
	if got := spans[2].Attributes[attrs.KeyKern]; got != attrs.Float(2) {
		t.Errorf("span 2 kern = %v, want 2", got)
	}
}

func TestOverride(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("tomato", align(attrs.TextAlignmentCenter)).
		Append("potato", align(attrs.TextAlignmentJustified))

	spans := b.Spans()
	last := spans[len(spans)-1].Attributes
	if len(last) != 1 {
		t.Fatalf("potato span keys = %v, want exactly one", last.Keys())
	}
	p, ok := last[attrs.KeyParagraphStyle].(attrs.Paragraph)
	if !ok {
		t.Fatalf("potato span has no paragraph style: %v", last)
	}
	if p.Alignment != attrs.TextAlignmentJustified {
		t.Errorf("potato alignment = %v, want justified", p.Alignment)
	}

	got := b.RunningAttributes()
	want := attrs.Attributes{Alignment: attrs.Ptr(attrs.TextAlignmentJustified)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunningAttributes() mismatch (-want +got):\n%s", diff)
	}
}

func TestExplicitClear(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("red", foreground(attrs.Red), kern(1)).Append("plain", func(a attrs.Attributes) attrs.Attributes {
		a.Color = nil
		return a
	})

	last := b.Spans()[1].Attributes
	if _, ok := last[attrs.KeyForegroundColor]; ok {
		t.Error("cleared foreground color is still present")
	}
	if got := last[attrs.KeyKern]; got != attrs.Float(1) {
		t.Errorf("kern = %v, want 1 inherited", got)
	}
}

func TestReset(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("styled", foreground(attrs.Blue), align(attrs.TextAlignmentCenter)).
		Append("reset", attrs.Reset).
		Append("reset then styled", attrs.Reset, kern(4))

	spans := b.Spans()
	if n := len(spans[1].Attributes); n != 0 {
		t.Errorf("reset span has %d keys, want 0", n)
	}
	if diff := cmp.Diff(attrs.Map{attrs.KeyKern: attrs.Float(4)}, spans[2].Attributes); diff != "" {
		t.Errorf("reset then kern mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyTextSpanDoesNotCarryStyle(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("a", foreground(attrs.Red)).Append("", foreground(attrs.Blue)).Append("b")

	spans := b.Spans()
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(spans))
	}
	if got := spans[1].Attributes[attrs.KeyForegroundColor]; got != attrs.Blue {
		t.Errorf("empty span foreground = %v, want blue", got)
	}
	if got := spans[2].Attributes[attrs.KeyForegroundColor]; got != attrs.Red {
		t.Errorf("span after empty one foreground = %v, want red", got)
	}
}

func TestAppendImage(t *testing.T) {
	b := newTestBuilder(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	b.Append("see ", foreground(attrs.Green)).
		AppendImage(img, nil).
		AppendImage(img, &Rect{Width: 40, Height: 30}, kern(1))

	spans := b.Spans()
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(spans))
	}

	natural, ok := spans[1].Content.(*Attachment)
	if !ok {
		t.Fatalf("span 1 content = %T, want *Attachment", spans[1].Content)
	}
	if diff := cmp.Diff(Rect{Width: 4, Height: 3}, natural.EffectiveBounds()); diff != "" {
		t.Errorf("natural bounds mismatch (-want +got):\n%s", diff)
	}
	if got := spans[1].Attributes[attrs.KeyForegroundColor]; got != attrs.Green {
		t.Errorf("image span foreground = %v, want inherited green", got)
	}

	explicit := spans[2].Content.(*Attachment)
	if diff := cmp.Diff(Rect{Width: 40, Height: 30}, explicit.EffectiveBounds()); diff != "" {
		t.Errorf("explicit bounds mismatch (-want +got):\n%s", diff)
	}
	if natural.ID == explicit.ID {
		t.Error("attachments share an id")
	}

	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
	if want := "see " + strings.Repeat(ObjectReplacement, 2); b.String() != want {
		t.Errorf("String() = %q, want %q", b.String(), want)
	}
}

func TestLenCountsGraphemes(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("cafe\u0301 ").Append("👍🏽", kern(1))

	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
	m, ok := b.AttributesAt(5)
	if !ok || m[attrs.KeyKern] != attrs.Float(1) {
		t.Errorf("AttributesAt(5) = %v, %v, want kern 1", m, ok)
	}
	m, ok = b.AttributesAt(3)
	if !ok || len(m) != 0 {
		t.Errorf("AttributesAt(3) = %v, %v, want no attributes", m, ok)
	}
	if _, ok := b.AttributesAt(6); ok {
		t.Error("AttributesAt(6) reported a character past the end")
	}
}

func TestSpansAreCopies(t *testing.T) {
	b := newTestBuilder(t)
	b.Append("x", kern(1))

	spans := b.Spans()
	spans[0].Attributes[attrs.KeyKern] = attrs.Float(99)
	spans[0].Content = Text("y")

	if got := b.Spans()[0]; got.Attributes[attrs.KeyKern] != attrs.Float(1) || got.Content != Text("x") {
		t.Errorf("builder span changed through Spans(): %+v", got)
	}
}

func spanLink(t *testing.T, s Span) string {
	t.Helper()
	l, ok := s.Attributes[attrs.KeyLink].(attrs.Link)
	if !ok {
		t.Fatalf("span %v has no link", s.Content)
	}
	return l.String()
}

func TestLinksAreNotShared(t *testing.T) {
	b := newTestBuilder(t)
	u, err := url.Parse("https://example.com/a")
	if err != nil {
		t.Fatalf("url.Parse() error = %v", err)
	}
	b.Append("first", func(a attrs.Attributes) attrs.Attributes {
		a.URL = u
		return a
	})
	b.Append("second", func(a attrs.Attributes) attrs.Attributes {
		a.URL.Path = "/changed"
		return a
	})
	u.Host = "elsewhere.test"

	spans := b.Spans()
	if got := spanLink(t, spans[0]); got != "https://example.com/a" {
		t.Errorf("first span link = %q, want unchanged", got)
	}
	if got := spanLink(t, spans[1]); got != "https://example.com/changed" {
		t.Errorf("second span link = %q", got)
	}

	spans[0].Attributes[attrs.KeyLink].(attrs.Link).URL.Path = "/copy"
	if got := spanLink(t, b.Spans()[0]); got != "https://example.com/a" {
		t.Errorf("first span link changed through Spans(): %q", got)
	}

	running := b.RunningAttributes()
	running.URL.Host = "running.test"
	if got := b.RunningAttributes().URL.String(); got != "https://example.com/changed" {
		t.Errorf("running link changed through RunningAttributes(): %q", got)
	}
}

func TestDefaultCodec(t *testing.T) {
	b := New()
	if b.Codec() == nil {
		t.Fatal("New() without options has no codec")
	}
	b.Append("x", align(attrs.TextAlignmentNatural))
	if got := b.RunningAttributes(); got.Alignment != nil {
		t.Errorf("default alignment did not collapse: %v", *got.Alignment)
	}
}
