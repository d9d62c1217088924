package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const toastDuration = 3 * time.Second

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

func (m *Model) showInfoToast(message string) {
	m.showToast(toastLevelInfo, message)
}

func (m *Model) showWarningToast(message string) {
	m.showToast(toastLevelWarning, message)
}

func (m *Model) showErrorToast(message string) {
	m.showToast(toastLevelError, message)
}

func (m *Model) showToast(level toastLevel, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = m.now().Add(toastDuration)
}

func (m *Model) clearToast() {
	m.toastText = ""
	m.toastLevel = toastLevelInfo
	m.toastUntil = time.Time{}
}

func (m *Model) toastActive(at time.Time) bool {
	if strings.TrimSpace(m.toastText) == "" {
		return false
	}
	if m.toastUntil.IsZero() {
		return true
	}
	return at.Before(m.toastUntil)
}

func (m *Model) handleTick(msg tickMsg) {
	if m.toastText != "" && !m.toastActive(time.Time(msg)) {
		m.clearToast()
	}
}

func (m *Model) toastLine(width int) string {
	if !m.toastActive(m.now()) || width <= 0 {
		return ""
	}
	text := truncateToWidth(m.toastText, max(1, width-4))
	pill := m.toastStyle().Render(" " + text + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, pill)
}

func (m *Model) toastStyle() lipgloss.Style {
	switch m.toastLevel {
	case toastLevelWarning:
		return toastWarningStyle
	case toastLevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
