package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"notepad/internal/datefmt"
	"notepad/internal/sanitizer"
	"notepad/internal/types"
)

const (
	minCardWidth     = 28
	maxGridColumns   = 4
	cardGap          = 1
	cardContentLines = 3
	emptyGridText    = "No notes yet. Create your first note above!"
	emptyContentText = "No content"
)

type gridLayout struct {
	columns   int
	cardWidth int
}

func computeGridLayout(width int) gridLayout {
	if width < minCardWidth {
		return gridLayout{columns: 1, cardWidth: max(minViewWidth, width)}
	}
	columns := (width + cardGap) / (minCardWidth + cardGap)
	columns = clamp(columns, 1, maxGridColumns)
	cardWidth := (width - cardGap*(columns-1)) / columns
	return gridLayout{columns: columns, cardWidth: cardWidth}
}

// moveGridSelection maps a navigation key to the next card index.
func moveGridSelection(index, count, columns int, key string) int {
	if count <= 0 {
		return 0
	}
	columns = max(1, columns)
	switch key {
	case "left", "h":
		index--
	case "right", "l":
		index++
	case "up", "k":
		if index-columns >= 0 {
			index -= columns
		}
	case "down", "j":
		if index+columns < count {
			index += columns
		} else if index/columns < (count-1)/columns {
			index = count - 1
		}
	case "home", "g":
		index = 0
	case "end", "G":
		index = count - 1
	}
	return clamp(index, 0, count-1)
}

type cardRenderer struct {
	dates   *datefmt.Formatter
	title   sanitizer.Sanitizer
	content sanitizer.Sanitizer
}

func (r cardRenderer) render(note types.Note, width int, selected, editing bool) string {
	style := cardStyle
	switch {
	case editing:
		style = cardEditingStyle
	case selected:
		style = cardSelectedStyle
	}
	inner := max(1, width-2-2*cardPaddingHorizontal)

	title := strings.TrimSpace(r.title.Sanitize(note.Title))
	title = runewidth.Truncate(title, inner, "…")

	lines := []string{cardTitleStyle.Render(title)}
	lines = append(lines, r.contentLines(note.Content, inner)...)
	lines = append(lines,
		cardMetaStyle.Render(runewidth.Truncate("Created: "+r.dates.Date(note.CreatedAt), inner, "…")),
		editButtonStyle.Render("edit")+" "+deleteButtonStyle.Render("delete"),
	)
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r cardRenderer) contentLines(content string, width int) []string {
	content = strings.TrimSpace(r.content.Sanitize(content))
	if content == "" {
		lines := []string{cardEmptyStyle.Render(emptyContentText)}
		for len(lines) < cardContentLines {
			lines = append(lines, "")
		}
		return lines
	}
	wrapped := xansi.Hardwrap(xansi.Wordwrap(content, width, "-"), width, true)
	all := strings.Split(wrapped, "\n")
	lines := all
	if len(all) > cardContentLines {
		lines = append([]string(nil), all[:cardContentLines]...)
		last := strings.TrimRight(lines[cardContentLines-1], " ")
		if runewidth.StringWidth(last) >= width {
			last = runewidth.Truncate(last, width, "…")
		} else {
			last += "…"
		}
		lines[cardContentLines-1] = last
	}
	for len(lines) < cardContentLines {
		lines = append(lines, "")
	}
	return lines
}

// renderGrid lays cards out in rows. It also returns the first line of
// each row so the caller can scroll the selection into view.
func (r cardRenderer) renderGrid(notes []types.Note, width, selected int, editingID types.NoteID) (string, []int) {
	if len(notes) == 0 {
		return "", nil
	}
	layout := computeGridLayout(width)
	gap := strings.Repeat(" ", cardGap)
	var rows []string
	var rowStarts []int
	line := 0
	for start := 0; start < len(notes); start += layout.columns {
		end := min(start+layout.columns, len(notes))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			note := notes[i]
			editing := !editingID.IsZero() && note.ID == editingID
			cards = append(cards, r.render(note, layout.cardWidth, i == selected, editing))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rows = append(rows, row)
		rowStarts = append(rowStarts, line)
		line += lipgloss.Height(row)
	}
	return strings.Join(rows, "\n"), rowStarts
}
