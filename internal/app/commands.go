package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/notes"
	"notepad/internal/store"
	"notepad/internal/types"
)

const (
	tickInterval = 250 * time.Millisecond
	draftTimeout = 2 * time.Second
)

func refreshCmd(ctrl *notes.Controller, timeout time.Duration, manual bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := ctrl.Refresh(ctx)
		return notesRefreshedMsg{manual: manual, err: err}
	}
}

// Writes are followed by a refresh under the same context, so they get
// twice the request timeout.
func submitCmd(ctrl *notes.Controller, buf notes.Buffer, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()
		err := ctrl.Submit(ctx, buf)
		return noteSubmittedMsg{created: buf.IsNew(), err: err}
	}
}

func removeCmd(ctrl *notes.Controller, id types.NoteID, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()
		err := ctrl.Remove(ctx, id, notes.Confirmed)
		return noteRemovedMsg{id: id, err: err}
	}
}

func loadDraftCmd(drafts store.DraftStore, service string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
		defer cancel()
		draft, ok, err := drafts.Load(ctx, service)
		if err != nil || !ok {
			return draftLoadedMsg{err: err}
		}
		return draftLoadedMsg{draft: draft}
	}
}

// saveDraftCmd stores draft, or clears the saved one when draft is nil.
func saveDraftCmd(drafts store.DraftStore, service string, draft *types.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
		defer cancel()
		if draft == nil {
			return draftSavedMsg{cleared: true, err: drafts.Clear(ctx, service)}
		}
		return draftSavedMsg{err: drafts.Save(ctx, service, draft)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
