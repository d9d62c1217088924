package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"notepad/internal/logging"
)

type clipboardMethod uint8

const (
	clipboardMethodSystem clipboardMethod = iota
	clipboardMethodOSC52
)

var clipboardWriteAll = clipboard.WriteAll
var clipboardWriteOSC52 = writeOSC52Clipboard
var openTTYForWrite = func() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

func copyTextToClipboard(text string) (clipboardMethod, error) {
	err := clipboardWriteAll(text)
	if err == nil {
		return clipboardMethodSystem, nil
	}
	if oscErr := clipboardWriteOSC52(text); oscErr != nil {
		return clipboardMethodSystem, combineClipboardErrors(err, oscErr)
	}
	return clipboardMethodOSC52, nil
}

func (m *Model) copyWithToast(text, success string) bool {
	if _, err := copyTextToClipboard(text); err != nil {
		m.logger.Warn("copy failed", logging.Err(err))
		m.showErrorToast("copy failed: " + err.Error())
		return false
	}
	m.showInfoToast(success)
	return true
}

func writeOSC52Clipboard(text string) error {
	if !shouldAttemptOSC52() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := openTTYForWrite()
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text)
}

func writeOSC52Sequence(w io.Writer, text string) error {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if os.Getenv("TMUX") != "" {
		// tmux may or may not pass plain OSC52 through; send both forms.
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	}
	if strings.HasPrefix(termName, "screen") {
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	}
	_, err := osc52.New(text).WriteTo(w)
	return err
}

func shouldAttemptOSC52() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOTEPAD_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(os.Getenv("TERM"))
	if termName == "" || strings.EqualFold(termName, "dumb") {
		return false
	}
	return true
}

func combineClipboardErrors(systemErr, oscErr error) error {
	oscMsg := humanizeClipboardError(oscErr)
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %s", oscMsg)
	}
	return fmt.Errorf("system clipboard failed: %s; OSC52 fallback failed: %s", humanizeClipboardError(systemErr), oscMsg)
}

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" {
		if missingDisplay() {
			return "no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset)"
		}
		return "clipboard helper exited with status 1"
	}
	return msg
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
