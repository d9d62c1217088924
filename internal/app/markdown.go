package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	rendererMu       sync.Mutex
	renderersByStyle = map[markdownRendererKey]*glamour.TermRenderer{}
)

type markdownRendererKey struct {
	width int
	dark  bool
}

// RenderMarkdown renders note content for a terminal of the given width.
// It falls back to the raw text when glamour cannot render it.
func RenderMarkdown(input string, width int, dark bool) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width, dark)
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = strings.TrimRight(out, "\n")
	out = xansi.Hardwrap(out, width, true)
	return strings.TrimRight(out, "\n")
}

func getRenderer(width int, dark bool) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := markdownRendererKey{width: width, dark: dark}
	if renderer, ok := renderersByStyle[key]; ok && renderer != nil {
		return renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyleConfig(dark)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByStyle[key] = r
	return r
}

func buildStyleConfig(dark bool) glamouransi.StyleConfig {
	var base glamouransi.StyleConfig
	if dark {
		base = styles.DarkStyleConfig
	} else {
		base = styles.LightStyleConfig
	}
	// The preview pane supplies its own frame.
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero
	faint := true
	color := "245"
	base.BlockQuote.StylePrimitive.Faint = &faint
	base.BlockQuote.StylePrimitive.Color = &color
	return base
}
