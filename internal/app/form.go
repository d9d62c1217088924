package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notepad/internal/notes"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusContent
	focusGrid
	focusAreaCount
)

const (
	formContentHeight = 4
	titleCharLimit    = 200
	contentCharLimit  = 10000
)

// NoteForm is the title input and content area used to create or edit a note.
type NoteForm struct {
	title   textinput.Model
	content textarea.Model
	width   int
}

func NewNoteForm(width int) *NoteForm {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Note title"
	title.CharLimit = titleCharLimit

	content := textarea.New()
	content.Placeholder = "Note content"
	content.ShowLineNumbers = false
	content.CharLimit = contentCharLimit
	content.SetHeight(formContentHeight)

	f := &NoteForm{title: title, content: content}
	f.SetWidth(width)
	return f
}

// SetWidth sizes the form to an outer width that includes its frame.
func (f *NoteForm) SetWidth(width int) {
	if width < minViewWidth {
		width = minViewWidth
	}
	f.width = width
	inner := f.innerWidth()
	f.title.Width = max(1, inner-1)
	f.content.SetWidth(inner)
}

func (f *NoteForm) innerWidth() int {
	return max(1, f.width-4)
}

func (f *NoteForm) Focus(area focusArea) tea.Cmd {
	switch area {
	case focusTitle:
		f.content.Blur()
		return f.title.Focus()
	case focusContent:
		f.title.Blur()
		return f.content.Focus()
	}
	f.Blur()
	return nil
}

func (f *NoteForm) Blur() {
	f.title.Blur()
	f.content.Blur()
}

func (f *NoteForm) Update(area focusArea, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch area {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusContent:
		f.content, cmd = f.content.Update(msg)
	}
	return cmd
}

func (f *NoteForm) Values() (string, string) {
	return f.title.Value(), f.content.Value()
}

func (f *NoteForm) Load(buf notes.Buffer) {
	f.title.SetValue(buf.Title)
	f.title.CursorEnd()
	f.content.SetValue(buf.Content)
}

func (f *NoteForm) Reset() {
	f.title.Reset()
	f.content.Reset()
}

func (f *NoteForm) View(editing, saving bool, focus focusArea) string {
	heading := "Create New Note"
	submit := "Save Note"
	if editing {
		heading = "Edit Note"
		submit = "Update Note"
	}
	lines := []string{
		headerStyle.Render(heading),
		formLabel("Title", focus == focusTitle),
		f.title.View(),
		formLabel("Content", focus == focusContent),
		f.content.View(),
	}
	buttons := []string{saveButtonStyle.Render("ctrl+s " + submit)}
	if editing {
		buttons = append(buttons, cancelButtonStyle.Render("esc Cancel"))
	}
	if saving {
		buttons = append(buttons, activityStyle.Render("Saving..."))
	}
	lines = append(lines, strings.Join(buttons, "  "))
	return formFrameStyle.Width(f.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formLabel(text string, active bool) string {
	if active {
		return formLabelActiveStyle.Render(text)
	}
	return formLabelStyle.Render(text)
}
