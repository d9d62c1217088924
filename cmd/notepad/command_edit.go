package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notepad/internal/notes"
	"notepad/internal/types"
)

type editFlags struct {
	title   string
	content string
}

func newEditCommand(w commandWiring, root *rootFlags) *cobra.Command {
	flags := &editFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the title and/or content of a note",
		Long: `Fetch a note, replace the fields given on the command line and send
the full title and content back to the service.

Examples:
  notepad edit 3 --title "Groceries (Sat)"
  notepad edit 3 --content ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titleSet := cmd.Flags().Changed("title")
			contentSet := cmd.Flags().Changed("content")
			if !titleSet && !contentSet {
				return fmt.Errorf("nothing to change: pass --title and/or --content")
			}
			s, err := openSession(w, root)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			id := types.NoteID(strings.TrimSpace(args[0]))
			note, err := s.store.GetNote(ctx, id)
			if err != nil {
				return err
			}
			buf := notes.BufferFrom(*note)
			if titleSet {
				buf.Title = flags.title
			}
			if contentSet {
				buf.Content = flags.content
			}
			if err := s.ctrl.Submit(ctx, buf); err != nil {
				return err
			}
			fmt.Fprintf(w.stdout, "updated note %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&flags.content, "content", "c", "", "new content")
	return cmd
}
