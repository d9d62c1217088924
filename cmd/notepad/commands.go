package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"notepad/internal/app"
	"notepad/internal/client"
	"notepad/internal/config"
	"notepad/internal/logging"
	"notepad/internal/notes"
	"notepad/internal/types"
)

// noteStore is the slice of the notes API the commands use.
type noteStore interface {
	notes.Store
	GetNote(ctx context.Context, id types.NoteID) (*types.Note, error)
}

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	fs         afero.Fs
	loadConfig func() (config.Config, error)
	openLogger func(cfg config.Config) (logging.Logger, io.Closer)
	newStore   func(cfg config.Config, logger logging.Logger) noteStore
	confirmer  func() notes.Confirmer
	runUI      func(opts app.Options) error
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		fs:         afero.NewOsFs(),
		loadConfig: config.Load,
		openLogger: openFileLogger,
		newStore: func(cfg config.Config, logger logging.Logger) noteStore {
			return client.NewFromConfig(cfg, logger)
		},
		confirmer: func() notes.Confirmer { return promptConfirmer(os.Stdin, os.Stdout) },
		runUI:     app.Run,
		version:   buildVersion(),
	}
}

type rootFlags struct {
	baseURL string
}

func newRootCommand(w commandWiring) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "notepad",
		Short: "Create, edit and delete notes on a notes service",
		Long: `notepad is a client for a REST notes service.

Run without a command to open the terminal UI.

Examples:
  notepad
  notepad list --output markdown --out notes.md
  notepad add --title "Groceries" --content "milk, eggs"
  notepad rm 3`,
		Version:       w.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUICommand(cmd, w, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "notes API base URL (overrides config and API_BASE_URL)")

	root.AddCommand(
		newUICommand(w, flags),
		newListCommand(w, flags),
		newAddCommand(w, flags),
		newEditCommand(w, flags),
		newRemoveCommand(w, flags),
		newShowCommand(w, flags),
		newConfigCommand(w, flags),
	)
	return root
}
