package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notepad/internal/notes"
)

type addFlags struct {
	title   string
	content string
}

func newAddCommand(w commandWiring, root *rootFlags) *cobra.Command {
	flags := &addFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(w, root)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			if err := s.ctrl.Submit(ctx, notes.Buffer{Title: flags.title, Content: flags.content}); err != nil {
				return err
			}
			fmt.Fprintf(w.stdout, "saved note %q\n", flags.title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "note title (required)")
	cmd.Flags().StringVarP(&flags.content, "content", "c", "", "note content")
	return cmd
}
