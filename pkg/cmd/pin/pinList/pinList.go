package pinList

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/state"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "Print the pinned documents in order.",
		Long: heredoc.Doc(`
			The list command prints the pinned documents with their indexes.
			Pins whose documents no longer exist are marked missing but kept,
			matching the start page.

			Examples:
			  startpage pin list
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	paths := s.Pinned.Paths()
	if len(paths) == 0 {
		fmt.Println("No pinned documents.")
		return nil
	}

	snapshot, err := s.Source.Snapshot()
	if err != nil {
		return err
	}

	for i, path := range paths {
		if _, ok := snapshot.Lookup(path); ok {
			fmt.Printf("%d  %s\n", i, path)
		} else {
			fmt.Printf("%d  %s (missing)\n", i, path)
		}
	}
	return nil
}
