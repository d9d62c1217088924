package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notepad/internal/datefmt"
	"notepad/internal/export"
)

type listFlags struct {
	output string
	match  string
	out    string
}

func newListCommand(w commandWiring, root *rootFlags) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long: `List the notes held by the service, in the order it returns them.

Examples:
  notepad list
  notepad list --match "work*" --output json
  notepad list --output html --out notes.html`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, w, root, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", string(export.FormatTable), "output format: table, json, yaml, markdown or html")
	cmd.Flags().StringVar(&flags.match, "match", "", "only notes whose title matches this glob (case-insensitive)")
	cmd.Flags().StringVar(&flags.out, "out", "", "write to this file instead of stdout")
	return cmd
}

func runList(cmd *cobra.Command, w commandWiring, root *rootFlags, flags *listFlags) error {
	format, err := export.ParseFormat(flags.output)
	if err != nil {
		return err
	}
	s, err := openSession(w, root)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := s.requestContext(cmd.Context())
	defer cancel()
	if err := s.ctrl.Refresh(ctx); err != nil {
		return err
	}
	state := s.ctrl.Snapshot()
	if state.Degraded {
		fmt.Fprintln(w.stderr, "warning: unexpected response from the notes service; showing no notes")
	}

	selected, err := export.FilterByTitle(state.Notes, flags.match)
	if err != nil {
		return err
	}
	data, err := export.NewRenderer(datefmt.New(s.cfg.DateLocale())).Render(format, selected)
	if err != nil {
		return err
	}
	if flags.out == "" {
		_, err = w.stdout.Write(data)
		return err
	}
	if err := export.WriteFileAtomic(w.fs, flags.out, data); err != nil {
		return err
	}
	fmt.Fprintf(w.stderr, "wrote %d notes to %s\n", len(selected), flags.out)
	return nil
}
