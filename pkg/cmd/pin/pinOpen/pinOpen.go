package pinOpen

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/opener"
	"github.com/kuzzh/obsidian-startpage/internal/state"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [index]",
		Aliases: []string{"o"},
		Short:   "Open a pinned document in the editor.",
		Long: heredoc.Doc(`
			The open command opens a pinned document by its index, defaulting
			to the first pin. Opening records the document in the
			recently-opened list.

			Examples:
			  startpage pin open
			  startpage pin open 2
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, s)
		},
	}

	return cmd
}

func run(args []string, s *state.State) error {
	paths := s.Pinned.Paths()
	if len(paths) == 0 {
		return fmt.Errorf("no pinned documents")
	}

	index := 0
	if len(args) > 0 {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		index = i
	}
	if index < 0 || index >= len(paths) {
		return fmt.Errorf("index out of range: the pinned list has %d entries", len(paths))
	}

	path := paths[index]
	if !s.Source.Exists(path) {
		return fmt.Errorf("%s no longer exists; unpin it with: startpage pin remove --path %s", path, path)
	}

	if err := s.Settings.TouchRecentlyOpened(path); err != nil {
		return err
	}
	return opener.Open(s.Settings, s.Source.Abs(path))
}
