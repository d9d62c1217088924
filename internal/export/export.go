// Package export renders a note list for the one-shot CLI commands.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"

	"notepad/internal/datefmt"
	"notepad/internal/sanitizer"
	"notepad/internal/types"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %v)", raw, Formats)
}

// FilterByTitle keeps notes whose title matches a doublestar glob,
// case-insensitively. An empty pattern keeps everything.
func FilterByTitle(notes []types.Note, pattern string) ([]types.Note, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return notes, nil
	}
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	out := make([]types.Note, 0, len(notes))
	for _, note := range notes {
		ok, err := doublestar.Match(pattern, strings.ToLower(note.Title))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, note)
		}
	}
	return out, nil
}

type Renderer struct {
	dates   *datefmt.Formatter
	title   sanitizer.Sanitizer
	content sanitizer.Sanitizer
}

func NewRenderer(dates *datefmt.Formatter) *Renderer {
	if dates == nil {
		dates = datefmt.New("")
	}
	return &Renderer{
		dates:   dates,
		title:   sanitizer.ForTitle(),
		content: sanitizer.ForContent(),
	}
}

func (r *Renderer) Render(format Format, notes []types.Note) ([]byte, error) {
	switch format {
	case FormatTable:
		return r.table(notes), nil
	case FormatJSON:
		return r.json(notes)
	case FormatYAML:
		return r.yaml(notes)
	case FormatMarkdown:
		return r.markdown(notes), nil
	case FormatHTML:
		return r.html(notes), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func (r *Renderer) table(notes []types.Note) []byte {
	var buf bytes.Buffer
	writer := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tCREATED\tTITLE\tCONTENT")
	for _, note := range notes {
		content := strings.ReplaceAll(r.content.Sanitize(note.Content), "\n", " ")
		if content == "" {
			content = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", note.ID, r.dates.Date(note.CreatedAt), r.title.Sanitize(note.Title), truncate(content, 60))
	}
	_ = writer.Flush()
	return buf.Bytes()
}

func (r *Renderer) json(notes []types.Note) ([]byte, error) {
	if notes == nil {
		notes = []types.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (r *Renderer) yaml(notes []types.Note) ([]byte, error) {
	if notes == nil {
		notes = []types.Note{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) markdown(notes []types.Note) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Your Notes (%s)\n", r.dates.Count(len(notes)))
	if len(notes) == 0 {
		b.WriteString("\nNo notes yet.\n")
		return []byte(b.String())
	}
	for _, note := range notes {
		fmt.Fprintf(&b, "\n## %s\n\n", r.title.Sanitize(note.Title))
		content := strings.TrimSpace(r.content.Sanitize(note.Content))
		if content == "" {
			content = "_No content_"
		}
		b.WriteString(content)
		fmt.Fprintf(&b, "\n\n_Created: %s_\n", r.dates.Date(note.CreatedAt))
	}
	return []byte(b.String())
}

func (r *Renderer) html(notes []types.Note) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse(r.markdown(notes))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank})
	body := sanitizer.UGC().Sanitize(string(markdown.Render(doc, renderer)))

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString("Your Notes"))
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
