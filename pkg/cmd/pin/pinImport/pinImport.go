package pinImport

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/state"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import",
		Aliases: []string{"imp"},
		Short:   "Import Obsidian bookmarks as pins.",
		Long: heredoc.Doc(`
			The import command reads .obsidian/bookmarks.json from the vault
			and appends every bookmarked document that is not already pinned,
			keeping the bookmark order. A vault without a bookmarks file
			imports nothing.

			Examples:
			  startpage pin import
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	paths, err := s.Source.ListBookmarkedPaths()
	if err != nil {
		return fmt.Errorf("failed to read bookmarks: %w", err)
	}

	added, err := s.Pinned.ImportBulk(paths)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d of %d bookmarked documents\n", added, len(paths))
	return nil
}
