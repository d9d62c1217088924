package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"notepad/internal/client"
	"notepad/internal/logging"
	"notepad/internal/types"
)

const DeletePrompt = "Are you sure you want to delete this note?"

// Store is the remote collection of record.
type Store interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	CreateNote(ctx context.Context, input types.NoteInput) (*types.Note, error)
	UpdateNote(ctx context.Context, id types.NoteID, input types.NoteInput) (*types.Note, error)
	DeleteNote(ctx context.Context, id types.NoteID) error
}

// Notifier shows a blocking, user-facing alert.
type Notifier interface {
	Alert(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Alert(message string) { f(message) }

// Confirmer asks the user a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed is used by views that already asked the user.
var Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })

type Options struct {
	Notifier Notifier
	Logger   logging.Logger
}

// Controller owns the note list and the edit buffer and mediates every
// read and write against the Store. It is safe for concurrent use; network
// calls run without holding the state lock.
type Controller struct {
	store    Store
	notifier Notifier
	logger   logging.Logger

	mu         sync.Mutex
	state      State
	refreshSeq uint64
}

func NewController(store Store, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{
		store:    store,
		notifier: opts.Notifier,
		logger:   logger.With(logging.F("component", "notes")),
		state: State{
			Notes:   []types.Note{},
			Loading: true,
		},
	}
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Refresh replaces the list with the store's collection. Read failures
// degrade to an empty list and are only logged; the returned error is for
// logging by the caller. Responses from a refresh that was overtaken by a
// newer one are discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshSeq++
	seq := c.refreshSeq
	c.mu.Unlock()

	fetched, err := c.store.ListNotes(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.refreshSeq {
		c.logger.Debug("discarding stale refresh", logging.F("seq", seq), logging.F("latest", c.refreshSeq))
		return nil
	}
	c.state.Loading = false
	switch {
	case err == nil:
		c.state.Notes = persistedOnly(fetched)
		c.state.Degraded = false
		c.logger.Debug("notes refreshed", logging.F("count", len(c.state.Notes)))
		return nil
	case errors.Is(err, client.ErrMalformedList):
		c.state.Notes = []types.Note{}
		c.state.Degraded = true
		c.logger.Warn("unexpected notes payload", logging.Err(err))
		return nil
	default:
		c.state.Notes = []types.Note{}
		c.state.Degraded = false
		c.logger.Error("error fetching notes", logging.Err(err))
		return fmt.Errorf("fetch notes: %w", err)
	}
}

// Submit creates the buffer's note when it has no id and replaces the
// title and content of the existing note otherwise.
func (c *Controller) Submit(ctx context.Context, buf Buffer) error {
	if strings.TrimSpace(buf.Title) == "" {
		c.alert(ErrEmptyTitle)
		return ErrEmptyTitle
	}

	c.mu.Lock()
	c.state.Buffer = buf
	c.mu.Unlock()

	input := buf.Input()
	var err error
	if buf.IsNew() {
		_, err = c.store.CreateNote(ctx, input)
		if err != nil {
			err = &WriteError{Op: OpCreate, Err: err}
		}
	} else {
		_, err = c.store.UpdateNote(ctx, buf.ID, input)
		if err != nil {
			err = &WriteError{Op: OpUpdate, ID: buf.ID, Err: err}
		}
	}
	if err != nil {
		c.logger.Error("error saving note", logging.Err(err), logging.F("id", buf.ID))
		c.alert(err)
		return err
	}

	c.mu.Lock()
	c.state.Buffer = Buffer{}
	c.state.Editing = false
	c.mu.Unlock()

	_ = c.Refresh(ctx)
	return nil
}

// UpdateBuffer records form input without touching the store.
func (c *Controller) UpdateBuffer(title, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Buffer.Title = title
	c.state.Buffer.Content = content
}

func (c *Controller) BeginEdit(note types.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Buffer = BufferFrom(note)
	c.state.Editing = true
}

func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Buffer = Buffer{}
	c.state.Editing = false
}

// Remove deletes a note after confirmation. Declining is not an error.
func (c *Controller) Remove(ctx context.Context, id types.NoteID, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		c.logger.Debug("delete declined", logging.F("id", id))
		return nil
	}
	if err := c.store.DeleteNote(ctx, id); err != nil {
		err = &WriteError{Op: OpDelete, ID: id, Err: err}
		c.logger.Error("error deleting note", logging.Err(err), logging.F("id", id))
		c.alert(err)
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

func (c *Controller) alert(err error) {
	if c.notifier == nil {
		return
	}
	c.notifier.Alert(AlertMessage(err))
}

func persistedOnly(notes []types.Note) []types.Note {
	out := make([]types.Note, 0, len(notes))
	for _, note := range notes {
		if note.ID.IsZero() {
			continue
		}
		out = append(out, note)
	}
	return out
}
