package pinMove

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/pinned"
	"github.com/kuzzh/obsidian-startpage/internal/state"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move <from> <to>",
		Aliases: []string{"mv", "m"},
		Short:   "Reorder the pinned list.",
		Long: heredoc.Doc(`
			The move command reorders pins by zero-based index: the pin at
			position from is removed and re-inserted at position to, shifting
			the pins in between.

			Examples:
			  startpage pin move 2 0
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, s)
		},
	}

	return cmd
}

func run(args []string, s *state.State) error {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid from index %q", args[0])
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid to index %q", args[1])
	}

	if err := s.Pinned.Move(from, to); err != nil {
		if errors.Is(err, pinned.ErrOutOfRange) {
			return fmt.Errorf(
				"index out of range: the pinned list has %d entries",
				s.Pinned.Len(),
			)
		}
		return err
	}

	for i, path := range s.Pinned.Paths() {
		fmt.Printf("%d  %s\n", i, path)
	}
	return nil
}
