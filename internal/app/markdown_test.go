package app

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestBuildStyleConfigDisablesDocumentOuterMargins(t *testing.T) {
	for _, dark := range []bool{true, false} {
		cfg := buildStyleConfig(dark)
		if cfg.Document.StylePrimitive.BlockPrefix != "" {
			t.Fatalf("expected empty document block prefix, got %q", cfg.Document.StylePrimitive.BlockPrefix)
		}
		if cfg.Document.StylePrimitive.BlockSuffix != "" {
			t.Fatalf("expected empty document block suffix, got %q", cfg.Document.StylePrimitive.BlockSuffix)
		}
		if cfg.Document.Margin == nil || *cfg.Document.Margin != 0 {
			t.Fatalf("expected document margin 0")
		}
	}
}

func TestRenderMarkdownKeepsTextAndWidth(t *testing.T) {
	out := RenderMarkdown("# Shopping\n\n- milk\n- eggs", 30, true)
	plain := xansi.Strip(out)
	if !strings.Contains(plain, "Shopping") || !strings.Contains(plain, "milk") {
		t.Fatalf("expected rendered text, got %q", plain)
	}
	for _, line := range strings.Split(plain, "\n") {
		if w := xansi.StringWidth(line); w > 30 {
			t.Fatalf("line wider than 30: %d %q", w, line)
		}
	}
	if RenderMarkdown("\n\n", 30, true) != "" {
		t.Fatalf("expected empty output for blank input")
	}
}
