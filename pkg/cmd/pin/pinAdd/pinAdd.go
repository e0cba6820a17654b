package pinAdd

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/fzf"
	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/pkg/flags"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [query] [--path relative_path]",
		Aliases: []string{"a"},
		Short:   "Pin a document to the start page.",
		Long: heredoc.Doc(`
			The add command pins a document. Without --path it opens an
			interactive picker over the vault, optionally pre-filtered by the
			query argument. Adding an already pinned document is a no-op.

			Examples:
			  startpage pin add
			  startpage pin add roadmap
			  startpage pin add --path projects/Roadmap.md
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	flags.AddPath(cmd)

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	path := flags.HandlePath(cmd)

	if path == "" {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		picker := fzf.NewDocumentPicker(s.Source, "Select document to pin.")
		doc, err := picker.Pick(query)
		if err != nil {
			return fmt.Errorf("error picking document: %w", err)
		}
		path = doc.Path
	} else if !s.Source.Exists(path) {
		return errors.New("the specified document does not exist")
	}

	if s.Pinned.Contains(path) {
		fmt.Printf("%s is already pinned\n", path)
		return nil
	}

	if err := s.Pinned.Add(path); err != nil {
		return err
	}

	fmt.Printf("Pinned %s\n", path)
	return nil
}
