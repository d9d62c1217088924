package app

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"notepad/internal/types"
)

type noteSource []types.Note

func (s noteSource) String(i int) string {
	return s[i].Title + " " + s[i].Content
}

func (s noteSource) Len() int {
	return len(s)
}

// filterNotes keeps the notes that fuzzily match query, in store order.
func filterNotes(notes []types.Note, query string) []types.Note {
	query = strings.TrimSpace(query)
	if query == "" {
		return notes
	}
	matches := fuzzy.FindFrom(query, noteSource(notes))
	indices := make([]int, 0, len(matches))
	for _, match := range matches {
		indices = append(indices, match.Index)
	}
	sort.Ints(indices)
	out := make([]types.Note, 0, len(indices))
	for _, index := range indices {
		out = append(out, notes[index])
	}
	return out
}
