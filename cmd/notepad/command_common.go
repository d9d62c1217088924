package main

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/manifoldco/promptui"

	"notepad/internal/config"
	"notepad/internal/logging"
	"notepad/internal/notes"
)

const version = "dev"

// session bundles what a one-shot command needs to talk to the service.
type session struct {
	cfg    config.Config
	logger logging.Logger
	store  noteStore
	ctrl   *notes.Controller
	closer io.Closer
}

func (s *session) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}

// requestContext bounds a command by twice the request timeout, enough for
// a write plus the refresh that follows it.
func (s *session) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, 2*s.cfg.Timeout())
}

func loadSessionConfig(w commandWiring, flags *rootFlags) (config.Config, error) {
	cfg, err := w.loadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if flags != nil && strings.TrimSpace(flags.baseURL) != "" {
		cfg.API.BaseURL = flags.baseURL
	}
	return cfg, nil
}

func openSession(w commandWiring, flags *rootFlags) (*session, error) {
	cfg, err := loadSessionConfig(w, flags)
	if err != nil {
		return nil, err
	}
	logger, closer := w.openLogger(cfg)
	logger = logger.With(logging.F("cmd", "cli"))
	store := w.newStore(cfg, logger)
	ctrl := notes.NewController(store, notes.Options{
		Notifier: stderrNotifier(w.stderr),
		Logger:   logger,
	})
	return &session{cfg: cfg, logger: logger, store: store, ctrl: ctrl, closer: closer}, nil
}

// openFileLogger logs to the configured file so command output stays clean.
// Logging is dropped when the file cannot be opened.
func openFileLogger(cfg config.Config) (logging.Logger, io.Closer) {
	path, err := cfg.LogFile()
	if err != nil {
		return logging.Nop(), nil
	}
	logger, closer, err := logging.OpenFile(path, logging.ParseLevel(cfg.LogLevel()))
	if err != nil {
		return logging.Nop(), nil
	}
	return logger, closer
}

func stderrNotifier(stderr io.Writer) notes.Notifier {
	return notes.NotifierFunc(func(message string) {
		fmt.Fprintln(stderr, message)
	})
}

func promptConfirmer(stdin io.ReadCloser, stdout io.WriteCloser) notes.Confirmer {
	return notes.ConfirmFunc(func(prompt string) bool {
		p := promptui.Prompt{
			Label:     strings.TrimSuffix(prompt, "?"),
			IsConfirm: true,
			Stdin:     stdin,
			Stdout:    stdout,
		}
		_, err := p.Run()
		return err == nil
	})
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	if msg := errorLine(label, err); msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	os.Exit(1)
}

// errorLine is empty for errors the notifier has already printed.
func errorLine(label string, err error) string {
	if err == nil || errors.Is(err, notes.ErrEmptyTitle) {
		return ""
	}
	return fmt.Sprintf("%s error: %v", label, err)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}
	return version
}
