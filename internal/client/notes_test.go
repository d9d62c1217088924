package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"notepad/internal/types"
)

type recordedRequest struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

type fakeNotesServer struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func newFakeNotesServer(t *testing.T, handler http.HandlerFunc) (*fakeNotesServer, *Client) {
	t.Helper()
	fake := &fakeNotesServer{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fake.mu.Lock()
		fake.requests = append(fake.requests, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			RequestID: r.Header.Get("X-Request-ID"),
		})
		fake.mu.Unlock()
		fake.handler(w, r)
	}))
	t.Cleanup(server.Close)
	return fake, New(server.URL+"/api", Options{Timeout: 2 * time.Second})
}

func (f *fakeNotesServer) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListNotesDecodesArray(t *testing.T) {
	fake, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":1,"title":"A","content":"x","createdAt":"2024-01-01T09:30:00"}]`)
	})

	notes, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, types.NoteID("1"), notes[0].ID)
	assert.Equal(t, "A", notes[0].Title)
	assert.Equal(t, "x", notes[0].Content)
	assert.Equal(t, 2024, notes[0].CreatedAt.Year())

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/api/notes", reqs[0].Path)
	assert.NotEmpty(t, reqs[0].RequestID)
}

func TestListNotesNormalisesNonArrayPayloads(t *testing.T) {
	for name, body := range map[string]string{
		"object":  `{"notes":[]}`,
		"null":    `null`,
		"empty":   ``,
		"string":  `"oops"`,
		"badItem": `[1,2,3]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, body)
			})
			notes, err := c.ListNotes(context.Background())
			require.ErrorIs(t, err, ErrMalformedList)
			require.NotNil(t, notes)
			assert.Empty(t, notes)
		})
	}
}

func TestListNotesDropsEntriesWithoutID(t *testing.T) {
	_, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"title":"draft"},{"id":7,"title":"kept"},null]`)
	})
	notes, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, types.NoteID("7"), notes[0].ID)
}

func TestCreateAndUpdateSendFullPayload(t *testing.T) {
	fake, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		var input types.NoteInput
		_ = json.NewDecoder(r.Body).Decode(&input)
		writeJSON(w, http.StatusOK, `{"id":5,"title":"T","content":"","createdAt":"2024-02-02T00:00:00Z"}`)
	})

	created, err := c.CreateNote(context.Background(), types.NoteInput{Title: "T", Content: ""})
	require.NoError(t, err)
	assert.Equal(t, types.NoteID("5"), created.ID)

	_, err = c.UpdateNote(context.Background(), "5", types.NoteInput{Title: "T2", Content: "body"})
	require.NoError(t, err)

	reqs := fake.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/notes", reqs[0].Path)
	assert.JSONEq(t, `{"title":"T","content":""}`, reqs[0].Body)
	assert.Equal(t, http.MethodPut, reqs[1].Method)
	assert.Equal(t, "/api/notes/5", reqs[1].Path)
	assert.JSONEq(t, `{"title":"T2","content":"body"}`, reqs[1].Body)
}

func TestDeleteNoteAcceptsEmptyBody(t *testing.T) {
	fake, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, c.DeleteNote(context.Background(), "1"))
	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Equal(t, "/api/notes/1", reqs[0].Path)
}

func TestMissingIDIsRejectedLocally(t *testing.T) {
	fake, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	require.Error(t, c.DeleteNote(context.Background(), ""))
	_, err := c.UpdateNote(context.Background(), " ", types.NoteInput{Title: "x"})
	require.Error(t, err)
	_, err = c.GetNote(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, fake.Requests())
}

func TestNotFoundMapsToAPIError(t *testing.T) {
	_, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"note 9 not found"}`)
	})
	_, err := c.GetNote(context.Background(), "9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "note 9 not found", apiErr.Message)
}

func TestServerErrorWithoutBodyUsesStatus(t *testing.T) {
	_, c := newFakeNotesServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.CreateNote(context.Background(), types.NoteInput{Title: "x"})
	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "500")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestRateLimiterHonoursContext(t *testing.T) {
	c := New("http://127.0.0.1:1/api", Options{RequestsPerSecond: 0.001})
	// first token is available immediately; the second must wait ~1000s
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, c.limiter.Wait(ctx))
	_, err := c.ListNotes(ctx)
	require.Error(t, err)
}

func testDecodeNoteListNeverPanics(t *rapid.T) {
	payload := rapid.OneOf(
		rapid.Just(`[]`),
		rapid.Just(`{}`),
		rapid.Just(`null`),
		rapid.StringMatching(`\[(\{"id":[0-9]{1,4},"title":"[a-z]{0,6}"\},?){0,4}\]`),
		rapid.String(),
	).Draw(t, "payload")

	notes, _, err := decodeNoteList([]byte(payload))
	if notes == nil {
		t.Fatalf("expected non-nil slice for %q", payload)
	}
	if err != nil && len(notes) != 0 {
		t.Fatalf("malformed payload %q produced notes %v", payload, notes)
	}
	for _, note := range notes {
		if note.ID.IsZero() {
			t.Fatalf("note without id leaked from %q", payload)
		}
	}
}

func TestDecodeNoteListNeverPanics(t *testing.T) {
	rapid.Check(t, testDecodeNoteListNeverPanics)
}
