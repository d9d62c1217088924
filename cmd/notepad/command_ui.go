package main

import (
	"github.com/spf13/cobra"

	"notepad/internal/app"
	"notepad/internal/config"
	"notepad/internal/datefmt"
	"notepad/internal/logging"
	"notepad/internal/notes"
	"notepad/internal/store"
)

func newUICommand(w commandWiring, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUICommand(cmd, w, flags)
		},
	}
}

func runUICommand(cmd *cobra.Command, w commandWiring, flags *rootFlags) error {
	cfg, err := loadSessionConfig(w, flags)
	if err != nil {
		return err
	}
	logger, closer := w.openLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}
	logger = logger.With(logging.F("cmd", "ui"))
	logger.Info("starting", logging.F("version", w.version), logging.F("base_url", cfg.BaseURL()))

	opts := app.Options{
		Controller:     notes.NewController(w.newStore(cfg, logger), notes.Options{Logger: logger}),
		Service:        cfg.BaseURL(),
		Dates:          datefmt.New(cfg.DateLocale()),
		Logger:         logger,
		Markdown:       cfg.MarkdownEnabled(),
		RequestTimeout: cfg.Timeout(),
	}
	if cfg.DraftsEnabled() {
		if drafts, err := openDrafts(cfg); err != nil {
			// usually another instance holding the lock
			logger.Warn("drafts disabled", logging.Err(err))
		} else {
			defer drafts.Close()
			opts.Drafts = drafts
		}
	}
	return w.runUI(opts)
}

func openDrafts(cfg config.Config) (store.DraftStore, error) {
	path, err := cfg.DraftsFile()
	if err != nil {
		return nil, err
	}
	return store.NewBboltDraftStore(path)
}
