package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notepad/internal/notes"
	"notepad/internal/types"
)

func newRemoveCommand(w commandWiring, root *rootFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a note after confirmation",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(w, root)
			if err != nil {
				return err
			}
			defer s.Close()

			confirmer := notes.Confirmed
			if !yes {
				confirmer = w.confirmer()
			}
			answered := false
			recorded := notes.ConfirmFunc(func(prompt string) bool {
				answered = confirmer.Confirm(prompt)
				return answered
			})

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			id := types.NoteID(strings.TrimSpace(args[0]))
			if err := s.ctrl.Remove(ctx, id, recorded); err != nil {
				return err
			}
			if !answered {
				fmt.Fprintln(w.stdout, "cancelled")
				return nil
			}
			fmt.Fprintf(w.stdout, "deleted note %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
