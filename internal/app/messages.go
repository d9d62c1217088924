package app

import (
	"time"

	"notepad/internal/types"
)

type notesRefreshedMsg struct {
	manual bool
	err    error
}

type noteSubmittedMsg struct {
	created bool
	err     error
}

type noteRemovedMsg struct {
	id  types.NoteID
	err error
}

type draftLoadedMsg struct {
	draft *types.Draft
	err   error
}

type draftSavedMsg struct {
	cleared bool
	err     error
}

type tickMsg time.Time
