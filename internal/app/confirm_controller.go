package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const (
	confirmMinWidth = 24
	confirmMaxWidth = 60
)

type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	c.active = true
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	c.selected = 0
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	c.active = false
	c.title = ""
	c.message = ""
	c.confirmLabel = ""
	c.cancelLabel = ""
	c.selected = 0
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q":
		return true, confirmChoiceCancel
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab", "shift+tab":
		if c.selected == 0 {
			c.selected = 1
		} else {
			c.selected = 0
		}
		return true, confirmChoiceNone
	case "y":
		return true, confirmChoiceConfirm
	case "n":
		return true, confirmChoiceCancel
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	// modal: swallow everything else
	return true, confirmChoiceNone
}

func (c *ConfirmController) HandleMouse(msg tea.MouseMsg, maxWidth, maxHeight int) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, confirmChoiceNone
	}
	x, y, width, height := c.layout(maxWidth, maxHeight)
	if msg.X < x || msg.X >= x+width || msg.Y < y || msg.Y >= y+height {
		return false, confirmChoiceNone
	}
	buttonRow := y + height - 2
	if msg.Y != buttonRow {
		return true, confirmChoiceNone
	}
	contentX := x + 1
	contentWidth := max(1, width-2)
	if msg.X < contentX || msg.X >= contentX+contentWidth {
		return true, confirmChoiceNone
	}
	mid := contentX + contentWidth/2
	if msg.X < mid {
		c.selected = 0
		return true, confirmChoiceConfirm
	}
	c.selected = 1
	return true, confirmChoiceCancel
}

// View returns the bordered dialog, already indented to its column, and
// the row it starts on.
func (c *ConfirmController) View(maxWidth, maxHeight int) (string, int) {
	if c == nil || !c.active {
		return "", 0
	}
	x, y, width, _ := c.layout(maxWidth, maxHeight)
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)
	title := c.title
	if title == "" {
		title = "Confirm"
	}
	title = truncateToWidth(title, contentWidth)
	lines := []string{contextMenuHeaderStyle.Render(" " + padToWidth(title, contentWidth) + " ")}

	if c.message != "" {
		wrapped := xansi.Hardwrap(xansi.Wordwrap(c.message, contentWidth, ""), contentWidth, true)
		for _, line := range strings.Split(wrapped, "\n") {
			line = truncateToWidth(line, contentWidth)
			lines = append(lines, menuDropStyle.Render(" "+padToWidth(line, contentWidth)+" "))
		}
	}

	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth
	confirm := padToWidth(truncateToWidth("["+c.confirmLabel+"]", leftWidth), leftWidth)
	cancel := padToWidth(truncateToWidth("["+c.cancelLabel+"]", rightWidth), rightWidth)
	if c.selected == 0 {
		confirm = selectedStyle.Render(confirm)
		cancel = menuDropStyle.Render(cancel)
	} else {
		confirm = menuDropStyle.Render(confirm)
		cancel = selectedStyle.Render(cancel)
	}
	lines = append(lines, padToWidth(" "+confirm+cancel+" ", innerWidth))

	block := confirmDialogBorderStyle.Render(strings.Join(lines, "\n"))
	return indentBlock(block, x), y
}

func (c *ConfirmController) layout(maxWidth, maxHeight int) (int, int, int, int) {
	width := c.dialogWidth()
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	height := c.dialogHeight(width)
	x, y := 0, 0
	if maxWidth > 0 {
		x = max(0, (maxWidth-width)/2)
	}
	if maxHeight > 0 {
		y = max(0, (maxHeight-height)/2)
	}
	return x, y, width, height
}

func (c *ConfirmController) dialogWidth() int {
	contentWidth := xansi.StringWidth(c.title)
	if w := xansi.StringWidth(c.message); w > contentWidth {
		contentWidth = w
	}
	if w := xansi.StringWidth(c.confirmLabel) + xansi.StringWidth(c.cancelLabel) + 6; w > contentWidth {
		contentWidth = w
	}
	return clamp(contentWidth+4, confirmMinWidth, confirmMaxWidth)
}

func (c *ConfirmController) dialogHeight(width int) int {
	contentWidth := max(1, width-4)
	height := 2 // title + buttons
	if c.message != "" {
		wrapped := xansi.Hardwrap(xansi.Wordwrap(c.message, contentWidth, ""), contentWidth, true)
		height += len(strings.Split(wrapped, "\n"))
	}
	return height + 2
}
