package stats

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

func NewCmdStats(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print vault statistics.",
		Long: heredoc.Doc(`
			The stats command prints the numbers the start page stat bar
			shows: total notes, notes edited today, and total vault size.

			Examples:
			  startpage stats
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	snapshot, err := s.Source.Snapshot()
	if err != nil {
		return err
	}

	st := vault.ComputeStats(snapshot, time.Now())
	fmt.Printf("Notes:        %d\n", st.TotalNotes)
	fmt.Printf("Edited today: %d\n", st.TodayEdited)
	fmt.Printf("Total size:   %s\n", vault.ReadableSize(st.TotalSize))
	return nil
}
