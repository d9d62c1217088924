package notes

import (
	"errors"
	"fmt"

	"notepad/internal/types"
)

var ErrEmptyTitle = errors.New("title is required")

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// WriteError wraps a failed create, update, or delete.
type WriteError struct {
	Op  Op
	ID  types.NoteID
	Err error
}

func (e *WriteError) Error() string {
	if e.ID.IsZero() {
		return fmt.Sprintf("%s note: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s note %s: %v", e.Op, e.ID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// AlertMessage maps an operation error to the text shown to the user.
func AlertMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEmptyTitle) {
		return "Please enter a title"
	}
	var writeErr *WriteError
	if errors.As(err, &writeErr) {
		if writeErr.Op == OpDelete {
			return "Error deleting note"
		}
		return "Error saving note"
	}
	return err.Error()
}
