package types

import "time"

// Draft is an unsaved edit buffer kept between runs of the terminal UI.
type Draft struct {
	NoteID  NoteID    `json:"note_id,omitempty"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Editing bool      `json:"editing"`
	SavedAt time.Time `json:"saved_at"`
}
