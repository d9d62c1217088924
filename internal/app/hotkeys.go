package app

type HotkeyContext int

const (
	HotkeyGlobal HotkeyContext = iota
	HotkeyForm
	HotkeyEditing
	HotkeyGrid
	HotkeyFilter
	HotkeyPreview
	HotkeyConfirm
)

type Hotkey struct {
	Key      string
	Label    string
	Context  HotkeyContext
	Priority int
}

type HotkeyResolver interface {
	ActiveContexts(*Model) []HotkeyContext
}

func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{Key: "tab", Label: "focus", Context: HotkeyGlobal, Priority: 80},
		{Key: "ctrl+c", Label: "quit", Context: HotkeyGlobal, Priority: 91},
		{Key: "ctrl+s", Label: "save", Context: HotkeyForm, Priority: 10},
		{Key: "esc", Label: "cancel edit", Context: HotkeyEditing, Priority: 11},
		{Key: "e", Label: "edit", Context: HotkeyGrid, Priority: 20},
		{Key: "d", Label: "delete", Context: HotkeyGrid, Priority: 21},
		{Key: "n", Label: "new", Context: HotkeyGrid, Priority: 22},
		{Key: "r", Label: "refresh", Context: HotkeyGrid, Priority: 30},
		{Key: "y", Label: "copy", Context: HotkeyGrid, Priority: 31},
		{Key: "/", Label: "filter", Context: HotkeyGrid, Priority: 32},
		{Key: "v", Label: "preview", Context: HotkeyGrid, Priority: 33},
		{Key: "←↑↓→", Label: "move", Context: HotkeyGrid, Priority: 40},
		{Key: "q", Label: "quit", Context: HotkeyGrid, Priority: 90},
		{Key: "enter", Label: "apply", Context: HotkeyFilter, Priority: 10},
		{Key: "esc", Label: "clear", Context: HotkeyFilter, Priority: 11},
		{Key: "↑/↓", Label: "scroll", Context: HotkeyPreview, Priority: 10},
		{Key: "esc", Label: "close", Context: HotkeyPreview, Priority: 11},
		{Key: "y", Label: "delete", Context: HotkeyConfirm, Priority: 10},
		{Key: "n/esc", Label: "keep", Context: HotkeyConfirm, Priority: 11},
	}
}

type DefaultHotkeyResolver struct{}

func (r DefaultHotkeyResolver) ActiveContexts(m *Model) []HotkeyContext {
	if m == nil {
		return []HotkeyContext{HotkeyGlobal}
	}
	switch {
	case m.confirm.IsOpen():
		return []HotkeyContext{HotkeyConfirm}
	case m.mode == uiModeFilter:
		return []HotkeyContext{HotkeyFilter}
	case m.mode == uiModePreview:
		return []HotkeyContext{HotkeyPreview}
	}
	contexts := []HotkeyContext{HotkeyGlobal}
	if m.state.Editing {
		contexts = append(contexts, HotkeyEditing)
	}
	if m.focus == focusGrid {
		contexts = append(contexts, HotkeyGrid)
	} else {
		contexts = append(contexts, HotkeyForm)
	}
	return contexts
}
