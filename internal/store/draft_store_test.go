package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"notepad/internal/types"
)

func TestDraftStoreRoundTripPerService(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "drafts.db")
	s, err := NewBboltDraftStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Load(ctx, "http://a/api"); err != nil || ok {
		t.Fatalf("expected no draft, ok=%v err=%v", ok, err)
	}

	draft := &types.Draft{NoteID: "4", Title: "half", Content: "written", Editing: true}
	if err := s.Save(ctx, "http://a/api/", draft); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.Load(ctx, "http://a/api")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.NoteID != "4" || got.Title != "half" || got.Content != "written" || !got.Editing {
		t.Fatalf("unexpected draft: %#v", got)
	}
	if got.SavedAt.IsZero() {
		t.Fatalf("expected SavedAt to be stamped")
	}

	if _, ok, _ := s.Load(ctx, "http://b/api"); ok {
		t.Fatalf("draft leaked across services")
	}

	if err := s.Clear(ctx, "http://a/api"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Load(ctx, "http://a/api"); ok {
		t.Fatalf("expected draft cleared")
	}
}

func TestDraftStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "drafts.db")
	s, err := NewBboltDraftStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	saved := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if err := s.Save(ctx, "", &types.Draft{Title: "kept", SavedAt: saved}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewBboltDraftStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, ok, err := reopened.Load(ctx, "")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Title != "kept" || !got.SavedAt.Equal(saved) {
		t.Fatalf("unexpected draft: %#v", got)
	}
}

func TestDraftStoreRejectsEmptyPathAndNilDraft(t *testing.T) {
	if _, err := NewBboltDraftStore("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
	s, err := NewBboltDraftStore(filepath.Join(t.TempDir(), "d.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if err := s.Save(context.Background(), "x", nil); err == nil {
		t.Fatalf("expected error for nil draft")
	}
}
