package notes

import (
	"strings"

	"notepad/internal/types"
)

// Buffer is the note being composed. An empty ID means a new note.
type Buffer struct {
	ID      types.NoteID
	Title   string
	Content string
}

func BufferFrom(note types.Note) Buffer {
	return Buffer{ID: note.ID, Title: note.Title, Content: note.Content}
}

func (b Buffer) IsNew() bool {
	return b.ID.IsZero()
}

func (b Buffer) IsEmpty() bool {
	return b.ID.IsZero() && strings.TrimSpace(b.Title) == "" && strings.TrimSpace(b.Content) == ""
}

func (b Buffer) Input() types.NoteInput {
	return types.NoteInput{Title: b.Title, Content: b.Content}
}

type State struct {
	Notes   []types.Note
	Buffer  Buffer
	Editing bool
	Loading bool
	// Degraded is set when the last list response had an unexpected shape
	// and was replaced by an empty list.
	Degraded bool
}

func (s State) clone() State {
	out := s
	out.Notes = append(make([]types.Note, 0, len(s.Notes)), s.Notes...)
	return out
}

func (s State) Find(id types.NoteID) (types.Note, bool) {
	for _, note := range s.Notes {
		if note.ID == id {
			return note, true
		}
	}
	return types.Note{}, false
}
