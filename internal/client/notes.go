package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"notepad/internal/logging"
	"notepad/internal/types"
)

// ErrMalformedList marks a list response that was not a JSON array of
// notes. ListNotes still returns a usable empty slice alongside it.
var ErrMalformedList = errors.New("notes response is not a list")

const notesPath = "/notes"

func notePath(id types.NoteID) string {
	return notesPath + "/" + url.PathEscape(strings.TrimSpace(id.String()))
}

// ListNotes fetches the full collection. A payload that is not an array
// yields an empty, non-nil slice and an error wrapping ErrMalformedList.
func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	data, err := c.do(ctx, http.MethodGet, notesPath, nil)
	if err != nil {
		return nil, err
	}
	notes, dropped, err := decodeNoteList(data)
	if dropped > 0 {
		c.logger.Warn("dropped notes without id", logging.F("count", dropped))
	}
	return notes, err
}

func (c *Client) GetNote(ctx context.Context, id types.NoteID) (*types.Note, error) {
	if id.IsZero() {
		return nil, errors.New("note id is required")
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodGet, notePath(id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, input types.NoteInput) (*types.Note, error) {
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPost, notesPath, input, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id types.NoteID, input types.NoteInput) (*types.Note, error) {
	if id.IsZero() {
		return nil, errors.New("note id is required")
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPut, notePath(id), input, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id types.NoteID) error {
	if id.IsZero() {
		return errors.New("note id is required")
	}
	_, err := c.do(ctx, http.MethodDelete, notePath(id), nil)
	return err
}

// decodeNoteList validates the list shape before decoding. Anything other
// than an array, or an array whose elements do not decode as notes, is
// reported as malformed with an empty result. Notes without an id are
// dropped since only persisted notes belong in the list.
func decodeNoteList(data []byte) ([]types.Note, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []types.Note{}, 0, ErrMalformedList
	}
	var raw []types.Note
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return []types.Note{}, 0, errors.Join(ErrMalformedList, err)
	}
	notes := make([]types.Note, 0, len(raw))
	dropped := 0
	for _, note := range raw {
		if note.ID.IsZero() {
			dropped++
			continue
		}
		notes = append(notes, note)
	}
	return notes, dropped, nil
}
