package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"notepad/internal/datefmt"
	"notepad/internal/types"
)

func sampleNotes() []types.Note {
	return []types.Note{
		{ID: "1", Title: "Groceries", Content: "milk\neggs", CreatedAt: types.NewTimestamp(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))},
		{ID: "2", Title: "Ideas <b>bold</b>", Content: "", CreatedAt: types.Timestamp{}},
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{
		"":         FormatTable,
		"TABLE":    FormatTable,
		"json":     FormatJSON,
		"yml":      FormatYAML,
		"md":       FormatMarkdown,
		" html ":   FormatHTML,
		"markdown": FormatMarkdown,
	} {
		got, err := ParseFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFilterByTitle(t *testing.T) {
	notes := sampleNotes()

	all, err := FilterByTitle(notes, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := FilterByTitle(notes, "groc*")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.NoteID("1"), got[0].ID)

	none, err := FilterByTitle(notes, "nothing*")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = FilterByTitle(notes, "[")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	out, err := NewRenderer(utcDates()).Render(FormatTable, sampleNotes())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "3/5/2024")
	assert.Contains(t, lines[1], "milk eggs")
	assert.Contains(t, lines[2], datefmt.InvalidDate)
}

func TestRenderJSONAndYAML(t *testing.T) {
	r := NewRenderer(utcDates())

	out, err := r.Render(FormatJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out))

	out, err = r.Render(FormatJSON, sampleNotes()[:1])
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Groceries", decoded[0]["title"])

	out, err = r.Render(FormatYAML, sampleNotes()[:1])
	require.NoError(t, err)
	var asYAML []map[string]any
	require.NoError(t, yaml.Unmarshal(out, &asYAML))
	require.Len(t, asYAML, 1)
	assert.Equal(t, "Groceries", asYAML[0]["title"])
}

func TestRenderJSONKeepsStringIDs(t *testing.T) {
	var listed []types.Note
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"007","title":"A"},{"id":7,"title":"B"}]`), &listed))

	out, err := NewRenderer(utcDates()).Render(FormatJSON, listed)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "007", decoded[0]["id"])
	assert.Equal(t, float64(7), decoded[1]["id"])
}

func TestRenderMarkdown(t *testing.T) {
	out, err := NewRenderer(utcDates()).Render(FormatMarkdown, sampleNotes())
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "# Your Notes (2)")
	assert.Contains(t, text, "## Groceries")
	assert.Contains(t, text, "_No content_")
	assert.Contains(t, text, "_Created: 3/5/2024_")

	empty, err := NewRenderer(nil).Render(FormatMarkdown, nil)
	require.NoError(t, err)
	assert.Contains(t, string(empty), "No notes yet.")
}

func TestRenderHTMLIsSanitised(t *testing.T) {
	notes := []types.Note{{ID: "1", Title: "XSS", Content: "<script>alert(1)</script>\n\n[link](https://example.com)"}}
	out, err := NewRenderer(utcDates()).Render(FormatHTML, notes)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "<!DOCTYPE html>")
	assert.Contains(t, text, "XSS")
	assert.Contains(t, text, "https://example.com")
	assert.NotContains(t, text, "<script>")
}

func TestWriteFileAtomic(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFileAtomic(fs, "/out/notes.json", []byte("first")))
	require.NoError(t, WriteFileAtomic(fs, "/out/notes.json", []byte("second")))

	data, err := afero.ReadFile(fs, "/out/notes.json")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func utcDates() *datefmt.Formatter {
	return datefmt.New("en-US").WithLocation(time.UTC)
}
