package app

import (
	"testing"

	"notepad/internal/types"
)

func TestFilterNotesKeepsStoreOrder(t *testing.T) {
	all := []types.Note{
		{ID: "1", Title: "Groceries", Content: "milk"},
		{ID: "2", Title: "Work", Content: "standup notes"},
		{ID: "3", Title: "Gym", Content: "legs"},
	}
	if got := filterNotes(all, "  "); len(got) != 3 {
		t.Fatalf("expected blank query to keep all notes, got %d", len(got))
	}
	got := filterNotes(all, "g")
	if len(got) == 0 {
		t.Fatalf("expected matches for g")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID > got[i].ID {
			t.Fatalf("expected store order, got %v", got)
		}
	}
	got = filterNotes(all, "stndp")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected fuzzy content match on note 2, got %v", got)
	}
	if got := filterNotes(all, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
