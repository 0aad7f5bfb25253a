package debug

import (
	"bytes"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"negative depth", -1, "flat", nil, "flat\n"},
		{"with formatting", 1, "span %d: %s", []any{3, "text"}, "  span 3: text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "  text: \"\"\n"},
		{"plain", "hello", "  text: \"hello\"\n"},
		{"newline", "a\nb", "  text: \"a\\nb\"\n"},
		{"zero width space", "a\u200bb", "  text: \"a\\u200bb\"\n"},
		{"accent", "café", "  text: \"café\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(1, "text", tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_FieldAndWriteTo(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "run")
	tw.Field(1, "kern", 1.5)
	tw.Field(1, "ligature", true)

	var buf bytes.Buffer
	n, err := tw.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "run\n  kern = 1.5\n  ligature = true\n"
	if buf.String() != want || n != int64(len(want)) {
		t.Errorf("WriteTo() = %q (%d), want %q", buf.String(), n, want)
	}
}
