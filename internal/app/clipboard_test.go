package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestCopyTextToClipboardUsesSystemBackend(t *testing.T) {
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})

	fallbackCalled := false
	clipboardWriteAll = func(string) error { return nil }
	clipboardWriteOSC52 = func(string) error {
		fallbackCalled = true
		return nil
	}

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodSystem {
		t.Fatalf("expected system method, got %v", method)
	}
	if fallbackCalled {
		t.Fatalf("expected no OSC52 fallback call")
	}
}

func TestCopyTextToClipboardFallsBackToOSC52(t *testing.T) {
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})

	fallbackCalled := false
	clipboardWriteAll = func(string) error { return errors.New("exit status 1") }
	clipboardWriteOSC52 = func(string) error {
		fallbackCalled = true
		return nil
	}

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodOSC52 {
		t.Fatalf("expected OSC52 method, got %v", method)
	}
	if !fallbackCalled {
		t.Fatalf("expected OSC52 fallback call")
	}
}

func TestCopyTextToClipboardHelpfulErrorWhenDisplayMissing(t *testing.T) {
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})

	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("TERM", "xterm-256color")

	clipboardWriteAll = func(string) error { return errors.New("exit status 1") }
	clipboardWriteOSC52 = func(string) error { return errors.New("open /dev/tty: no such device") }

	_, err := copyTextToClipboard("hello")
	if err == nil {
		t.Fatalf("expected copy error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "no GUI clipboard available") {
		t.Fatalf("expected no-display guidance, got %q", msg)
	}
	if !strings.Contains(msg, "OSC52 fallback failed") {
		t.Fatalf("expected OSC52 fallback details, got %q", msg)
	}
}

func TestWriteOSC52ClipboardReportsTTYError(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NOTEPAD_DISABLE_OSC52", "")
	origOpenTTY := openTTYForWrite
	t.Cleanup(func() { openTTYForWrite = origOpenTTY })
	openTTYForWrite = func() (io.WriteCloser, error) {
		return nil, os.ErrNotExist
	}

	err := writeOSC52Clipboard("hello")
	if err == nil {
		t.Fatalf("expected writeOSC52Clipboard to fail without /dev/tty in test process")
	}
	if !strings.Contains(err.Error(), "open /dev/tty") {
		t.Fatalf("expected /dev/tty error, got %q", err.Error())
	}
}

func TestWriteOSC52SequenceWrapsForTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	t.Setenv("TERM", "screen-256color")

	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "]52;") != 2 {
		t.Fatalf("expected plain and tmux sequences, got %q", out)
	}
	if !strings.Contains(out, "\x1bPtmux;") {
		t.Fatalf("expected tmux passthrough, got %q", out)
	}
}

func TestShouldAttemptOSC52HonoursOptOut(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NOTEPAD_DISABLE_OSC52", "yes")
	if shouldAttemptOSC52() {
		t.Fatalf("expected opt-out to disable OSC52")
	}
	t.Setenv("NOTEPAD_DISABLE_OSC52", "")
	if !shouldAttemptOSC52() {
		t.Fatalf("expected OSC52 for a capable terminal")
	}
	t.Setenv("TERM", "dumb")
	if shouldAttemptOSC52() {
		t.Fatalf("expected dumb terminal to skip OSC52")
	}
}
