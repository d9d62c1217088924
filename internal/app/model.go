package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"notepad/internal/datefmt"
	"notepad/internal/logging"
	"notepad/internal/notes"
	"notepad/internal/sanitizer"
	"notepad/internal/store"
	"notepad/internal/types"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultViewWidth      = 80
	defaultViewHeight     = 24
	minViewWidth          = 20
	minGridHeight         = 3
	statusLinePadding     = 1
	appTitle              = "Notepad"
)

type uiMode int

const (
	uiModeNormal uiMode = iota
	uiModeFilter
	uiModePreview
)

type Options struct {
	Controller *notes.Controller
	// Drafts is optional; without it unsaved edits are lost on quit.
	Drafts store.DraftStore
	// Service keys the saved draft, normally the notes API base URL.
	Service        string
	Dates          *datefmt.Formatter
	Logger         logging.Logger
	Markdown       bool
	RequestTimeout time.Duration
}

type Model struct {
	ctrl     *notes.Controller
	drafts   store.DraftStore
	service  string
	dates    *datefmt.Formatter
	logger   logging.Logger
	markdown bool
	timeout  time.Duration

	form        *NoteForm
	confirm     *ConfirmController
	loader      spinner.Model
	preview     viewport.Model
	filterInput textinput.Model
	hotkeys     *HotkeyRenderer
	cards       cardRenderer
	contentSan  sanitizer.Sanitizer

	state         notes.State
	mode          uiMode
	focus         focusArea
	selected      int
	gridTop       int
	filterQuery   string
	pendingDelete types.NoteID
	previewID     types.NoteID
	saving        bool
	deleting      bool

	width  int
	height int
	status string

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
	now        func() time.Time
}

func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	dates := opts.Dates
	if dates == nil {
		dates = datefmt.New("")
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	loader := spinner.New()
	loader.Spinner = spinner.Dot
	loader.Style = activityStyle

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter notes"
	filter.CharLimit = titleCharLimit

	form := NewNoteForm(defaultViewWidth)
	form.Focus(focusTitle)

	m := Model{
		ctrl:        opts.Controller,
		drafts:      opts.Drafts,
		service:     opts.Service,
		dates:       dates,
		logger:      logger.With(logging.F("component", "tui")),
		markdown:    opts.Markdown,
		timeout:     timeout,
		form:        form,
		confirm:     NewConfirmController(),
		loader:      loader,
		preview:     viewport.New(defaultViewWidth, defaultViewHeight-4),
		filterInput: filter,
		hotkeys:     NewHotkeyRenderer(DefaultHotkeys(), DefaultHotkeyResolver{}),
		cards: cardRenderer{
			dates:   dates,
			title:   sanitizer.ForTitle(),
			content: sanitizer.ForContent(),
		},
		contentSan: sanitizer.ForContent(),
		focus:      focusTitle,
		width:      defaultViewWidth,
		height:     defaultViewHeight,
		now:        time.Now,
	}
	m.sync()
	return m
}

func Run(opts Options) error {
	model := NewModel(opts)
	p := tea.NewProgram(&model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loader.Tick, refreshCmd(m.ctrl, m.timeout, false), tickCmd(), textinput.Blink}
	if m.drafts != nil {
		cmds = append(cmds, loadDraftCmd(m.drafts, m.service))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.handleTick(msg)
		return m, tickCmd()
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case notesRefreshedMsg:
		m.handleRefreshed(msg)
		return m, nil
	case noteSubmittedMsg:
		return m, m.handleSubmitted(msg)
	case noteRemovedMsg:
		m.handleRemoved(msg)
		return m, nil
	case draftLoadedMsg:
		m.handleDraftLoaded(msg)
		return m, nil
	case draftSavedMsg:
		if msg.err != nil {
			m.logger.Warn("draft save failed", logging.Err(msg.err))
		}
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if m.mode == uiModeFilter {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, m.form.Update(m.focus, msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quitCmd()
	}
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleKey(msg)
		return m.resolveConfirm(choice)
	}
	switch m.mode {
	case uiModeFilter:
		return m.handleFilterKey(msg)
	case uiModePreview:
		return m.handlePreviewKey(msg)
	}
	if m.state.Loading {
		if key == "q" {
			return m.quitCmd()
		}
		return nil
	}
	switch key {
	case "tab":
		return m.setFocus((m.focus + 1) % focusAreaCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusAreaCount - 1) % focusAreaCount)
	case "ctrl+s":
		return m.submit()
	case "esc":
		if m.state.Editing {
			m.cancelEdit()
			return nil
		}
		if m.focus != focusGrid {
			return m.setFocus(focusGrid)
		}
		return nil
	}
	if m.focus == focusGrid {
		return m.handleGridKey(key)
	}
	cmd := m.form.Update(m.focus, msg)
	title, content := m.form.Values()
	m.ctrl.UpdateBuffer(title, content)
	m.sync()
	return cmd
}

func (m *Model) handleGridKey(key string) tea.Cmd {
	visible := m.visibleNotes()
	switch key {
	case "q":
		return m.quitCmd()
	case "left", "h", "right", "l", "up", "k", "down", "j", "home", "g", "end", "G":
		layout := computeGridLayout(m.width)
		m.selected = moveGridSelection(m.selected, len(visible), layout.columns, key)
	case "e", "enter":
		if note, ok := m.selectedNote(); ok {
			m.beginEdit(note)
			return m.setFocus(focusTitle)
		}
	case "d", "delete":
		m.openDeleteConfirm()
	case "n":
		if m.state.Editing {
			m.cancelEdit()
		}
		return m.setFocus(focusTitle)
	case "r":
		m.status = "Refreshing..."
		return refreshCmd(m.ctrl, m.timeout, true)
	case "y":
		if note, ok := m.selectedNote(); ok {
			m.copyWithToast(note.Content, "Note content copied")
		}
	case "/":
		m.enterFilter()
		return textinput.Blink
	case "v":
		m.openPreview()
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filterQuery = ""
		m.exitFilter()
		return nil
	case "enter":
		m.exitFilter()
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = strings.TrimSpace(m.filterInput.Value())
	m.selected = 0
	m.gridTop = 0
	return cmd
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "v", "q":
		m.closePreview()
		return nil
	case "y":
		if note, ok := m.state.Find(m.previewID); ok {
			m.copyWithToast(note.Content, "Note content copied")
		}
		return nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleMouse(msg, m.width, m.height)
		return m.resolveConfirm(choice)
	}
	if m.mode == uiModePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return cmd
	}
	if m.focus != focusGrid || m.mode != uiModeNormal {
		return nil
	}
	layout := computeGridLayout(m.width)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.selected = moveGridSelection(m.selected, len(m.visibleNotes()), layout.columns, "up")
	case tea.MouseButtonWheelDown:
		m.selected = moveGridSelection(m.selected, len(m.visibleNotes()), layout.columns, "down")
	}
	return nil
}

func (m *Model) setFocus(area focusArea) tea.Cmd {
	m.focus = area
	return m.form.Focus(area)
}

func (m *Model) submit() tea.Cmd {
	if m.saving {
		return nil
	}
	title, content := m.form.Values()
	buf := notes.Buffer{ID: m.state.Buffer.ID, Title: title, Content: content}
	m.saving = true
	m.status = "Saving..."
	return submitCmd(m.ctrl, buf, m.timeout)
}

func (m *Model) beginEdit(note types.Note) {
	m.ctrl.BeginEdit(note)
	m.sync()
	m.form.Load(m.state.Buffer)
	m.status = "Editing " + strings.TrimSpace(m.cards.title.Sanitize(note.Title))
}

func (m *Model) cancelEdit() {
	m.ctrl.CancelEdit()
	m.sync()
	m.form.Reset()
	m.status = "Edit cancelled"
}

func (m *Model) openDeleteConfirm() {
	note, ok := m.selectedNote()
	if !ok || m.deleting {
		return
	}
	m.pendingDelete = note.ID
	m.confirm.Open("Delete Note", notes.DeletePrompt, "Delete", "Cancel")
}

func (m *Model) resolveConfirm(choice confirmChoice) tea.Cmd {
	switch choice {
	case confirmChoiceConfirm:
		id := m.pendingDelete
		m.confirm.Close()
		m.pendingDelete = ""
		if id.IsZero() {
			return nil
		}
		m.deleting = true
		m.status = "Deleting..."
		return removeCmd(m.ctrl, id, m.timeout)
	case confirmChoiceCancel:
		m.confirm.Close()
		m.pendingDelete = ""
		m.status = "Delete cancelled"
	}
	return nil
}

func (m *Model) handleRefreshed(msg notesRefreshedMsg) {
	m.sync()
	switch {
	case m.state.Degraded:
		m.status = "Unexpected response from the notes service"
	case msg.err != nil:
		m.status = ""
	case msg.manual:
		m.status = "Notes refreshed"
	}
}

func (m *Model) handleSubmitted(msg noteSubmittedMsg) tea.Cmd {
	m.saving = false
	m.status = ""
	m.sync()
	if msg.err != nil {
		m.showErrorToast(notes.AlertMessage(msg.err))
		if errors.Is(msg.err, notes.ErrEmptyTitle) {
			return m.setFocus(focusTitle)
		}
		return nil
	}
	m.form.Reset()
	if msg.created {
		m.showInfoToast("Note saved")
	} else {
		m.showInfoToast("Note updated")
	}
	if m.drafts == nil {
		return nil
	}
	return saveDraftCmd(m.drafts, m.service, nil)
}

func (m *Model) handleRemoved(msg noteRemovedMsg) {
	m.deleting = false
	m.status = ""
	m.sync()
	if msg.err != nil {
		m.showErrorToast(notes.AlertMessage(msg.err))
		return
	}
	m.showInfoToast("Note deleted")
}

func (m *Model) enterFilter() {
	m.mode = uiModeFilter
	m.filterInput.SetValue(m.filterQuery)
	m.filterInput.CursorEnd()
	m.filterInput.Focus()
}

func (m *Model) exitFilter() {
	m.mode = uiModeNormal
	m.filterInput.Blur()
	m.selected = 0
	m.gridTop = 0
	m.clampSelection()
}

func (m *Model) openPreview() {
	note, ok := m.selectedNote()
	if !ok {
		return
	}
	m.previewID = note.ID
	m.mode = uiModePreview
	m.renderPreview()
	m.preview.GotoTop()
}

func (m *Model) closePreview() {
	m.mode = uiModeNormal
	m.previewID = ""
}

func (m *Model) renderPreview() {
	note, ok := m.state.Find(m.previewID)
	if !ok {
		m.closePreview()
		return
	}
	width := max(minViewWidth, m.width-2)
	title := strings.TrimSpace(m.cards.title.Sanitize(note.Title))
	content := m.contentSan.Sanitize(note.Content)
	meta := "Created: " + m.dates.Date(note.CreatedAt)
	var body string
	if m.markdown {
		body = RenderMarkdown("# "+title+"\n\n"+content, width, true)
	} else {
		body = headerStyle.Render(title) + "\n\n" + xansi.Hardwrap(xansi.Wordwrap(content, width, "-"), width, true)
	}
	m.preview.SetContent(body + "\n\n" + cardMetaStyle.Render(meta))
}

// sync re-reads the controller state after anything that may have changed it.
func (m *Model) sync() {
	if m.ctrl == nil {
		return
	}
	m.state = m.ctrl.Snapshot()
	m.clampSelection()
	if m.mode == uiModePreview {
		m.renderPreview()
	}
}

func (m *Model) visibleNotes() []types.Note {
	return filterNotes(m.state.Notes, m.filterQuery)
}

func (m *Model) selectedNote() (types.Note, bool) {
	visible := m.visibleNotes()
	if m.selected < 0 || m.selected >= len(visible) {
		return types.Note{}, false
	}
	return visible[m.selected], true
}

func (m *Model) clampSelection() {
	count := len(m.visibleNotes())
	if count == 0 {
		m.selected = 0
		return
	}
	m.selected = clamp(m.selected, 0, count-1)
}

func (m *Model) currentDraft() *types.Draft {
	title, content := m.form.Values()
	buf := notes.Buffer{ID: m.state.Buffer.ID, Title: title, Content: content}
	if buf.IsEmpty() && !m.state.Editing {
		return nil
	}
	return &types.Draft{
		NoteID:  buf.ID,
		Title:   buf.Title,
		Content: buf.Content,
		Editing: m.state.Editing,
		SavedAt: m.now(),
	}
}

func (m *Model) handleDraftLoaded(msg draftLoadedMsg) {
	if msg.err != nil {
		m.logger.Warn("draft load failed", logging.Err(msg.err))
		return
	}
	draft := msg.draft
	if draft == nil {
		return
	}
	if title, content := m.form.Values(); m.state.Editing || title != "" || content != "" {
		return
	}
	if draft.Editing && !draft.NoteID.IsZero() {
		m.ctrl.BeginEdit(types.Note{ID: draft.NoteID, Title: draft.Title, Content: draft.Content})
	} else {
		m.ctrl.UpdateBuffer(draft.Title, draft.Content)
	}
	m.sync()
	m.form.Load(m.state.Buffer)
	m.showInfoToast("Restored unsaved draft")
}

func (m *Model) quitCmd() tea.Cmd {
	if m.drafts == nil {
		return tea.Quit
	}
	return tea.Sequence(saveDraftCmd(m.drafts, m.service, m.currentDraft()), tea.Quit)
}

func (m *Model) resize(width, height int) {
	m.width = max(minViewWidth, width)
	m.height = max(1, height)
	m.form.SetWidth(m.width)
	m.filterInput.Width = max(1, m.width-2)
	m.preview.Width = m.width
	m.preview.Height = max(1, m.height-3)
	if m.mode == uiModePreview {
		m.renderPreview()
	}
}

func (m *Model) View() string {
	width := m.width
	header := renderStatusLine(width, headerStyle.Render(appTitle), statusStyle.Render(m.serviceLabel()))
	footer := []string{}
	if toast := m.toastLine(width); toast != "" {
		footer = append(footer, toast)
	}
	footer = append(footer, renderStatusLine(width, helpStyle.Render(m.hotkeys.Render(m)), statusStyle.Render(m.status)))

	var body string
	switch {
	case m.state.Loading:
		body = m.loader.View() + " Loading notes..."
	case m.mode == uiModePreview:
		body = m.preview.View()
	default:
		formView := m.form.View(m.state.Editing, m.saving, m.focus)
		gridHeader := m.gridHeader()
		used := lipgloss.Height(header) + lipgloss.Height(formView) + lipgloss.Height(gridHeader) + len(footer)
		body = lipgloss.JoinVertical(lipgloss.Left, formView, gridHeader, m.gridView(max(minGridHeight, m.height-used)))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, append([]string{header, body}, footer...)...)
	if m.confirm.IsOpen() {
		dialog, row := m.confirm.View(width, m.height)
		view = overlayBlock(view, dialog, row)
	}
	return view
}

func (m *Model) serviceLabel() string {
	if m.service == "" {
		return ""
	}
	return truncateToWidth(m.service, max(1, m.width/2))
}

func (m *Model) gridHeader() string {
	title := headerStyle.Render("Your Notes (" + m.dates.Count(len(m.state.Notes)) + ")")
	switch {
	case m.mode == uiModeFilter:
		return title + " " + m.filterInput.View()
	case m.filterQuery != "":
		shown := m.dates.Count(len(m.visibleNotes()))
		return title + " " + filterStyle.Render("filter: "+m.filterQuery+" ("+shown+" shown)")
	}
	return title
}

// gridView renders the cards and scrolls so the selected row is visible.
func (m *Model) gridView(height int) string {
	if len(m.state.Notes) == 0 {
		return placeholderStyle.Render(emptyGridText)
	}
	visible := m.visibleNotes()
	if len(visible) == 0 {
		return placeholderStyle.Render("No notes match \"" + m.filterQuery + "\"")
	}
	selected := -1
	if m.focus == focusGrid {
		selected = m.selected
	}
	grid, rowStarts := m.cards.renderGrid(visible, m.width, selected, m.editingID())
	lines := strings.Split(grid, "\n")
	if len(lines) <= height {
		m.gridTop = 0
		return grid
	}
	layout := computeGridLayout(m.width)
	row := clamp(m.selected/layout.columns, 0, len(rowStarts)-1)
	rowStart := rowStarts[row]
	rowEnd := len(lines)
	if row+1 < len(rowStarts) {
		rowEnd = rowStarts[row+1]
	}
	if rowStart < m.gridTop {
		m.gridTop = rowStart
	}
	if rowEnd > m.gridTop+height {
		m.gridTop = rowEnd - height
	}
	m.gridTop = clamp(m.gridTop, 0, len(lines)-height)
	return strings.Join(lines[m.gridTop:m.gridTop+height], "\n")
}

func (m *Model) editingID() types.NoteID {
	if !m.state.Editing {
		return ""
	}
	return m.state.Buffer.ID
}

func renderStatusLine(width int, left, right string) string {
	if width <= 0 {
		return left + " " + right
	}
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < statusLinePadding {
		padding = statusLinePadding
	}
	return left + strings.Repeat(" ", padding) + right
}

func overlayBlock(base, block string, row int) string {
	lines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		idx := row + i
		if idx < 0 {
			continue
		}
		for idx >= len(lines) {
			lines = append(lines, "")
		}
		lines[idx] = line
	}
	return strings.Join(lines, "\n")
}

func indentBlock(block string, spaces int) string {
	if spaces <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func clamp(value, minValue, maxValue int) int {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func truncateToWidth(text string, width int) string {
	if width <= 0 || xansi.StringWidth(text) <= width {
		return text
	}
	return xansi.Truncate(text, width, "…")
}

func padToWidth(text string, width int) string {
	if w := xansi.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}
