package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notepad/internal/app"
	"notepad/internal/datefmt"
	"notepad/internal/sanitizer"
	"notepad/internal/types"
)

const showWidth = 80

func newShowCommand(w commandWiring, root *rootFlags) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(w, root)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			note, err := s.store.GetNote(ctx, types.NoteID(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}
			markdown := s.cfg.MarkdownEnabled() && !raw
			fmt.Fprintln(w.stdout, formatNote(*note, datefmt.New(s.cfg.DateLocale()), markdown))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print content without markdown rendering")
	return cmd
}

func formatNote(note types.Note, dates *datefmt.Formatter, markdown bool) string {
	title := sanitizer.ForTitle().Sanitize(note.Title)
	content := strings.TrimSpace(sanitizer.ForContent().Sanitize(note.Content))
	created := "Created: " + dates.Date(note.CreatedAt)
	if markdown {
		body := "# " + title + "\n\n"
		if content != "" {
			body += content + "\n\n"
		}
		return app.RenderMarkdown(body+"_"+created+"_", showWidth, true)
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(created + "\n")
	if content != "" {
		b.WriteString("\n" + content + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
