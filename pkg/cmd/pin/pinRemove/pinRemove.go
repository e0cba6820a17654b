package pinRemove

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/pkg/flags"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [--path relative_path]",
		Aliases: []string{"rm", "r"},
		Short:   "Unpin a document.",
		Long: heredoc.Doc(`
			The remove command unpins a document by its vault-relative path.
			Removing a path that is not pinned is a no-op, so it is safe to
			clean up pins whose documents were deleted.

			Examples:
			  startpage pin remove --path projects/Roadmap.md
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	flags.AddPath(cmd)

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	path := flags.HandlePath(cmd)
	if path == "" {
		return fmt.Errorf("--path is required")
	}

	if !s.Pinned.Contains(path) {
		fmt.Printf("%s is not pinned\n", path)
		return nil
	}

	if err := s.Pinned.Remove(path); err != nil {
		return err
	}

	fmt.Printf("Unpinned %s\n", path)
	return nil
}
