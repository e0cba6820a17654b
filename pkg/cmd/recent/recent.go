package recent

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

func NewCmdRecent(s *state.State) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "recent [--limit n]",
		Aliases: []string{"r"},
		Short:   "Print the recency-ranked document list.",
		Long: heredoc.Doc(`
			The recent command prints the same list the start page shows:
			documents ranked by the later of their modification time and
			their position in the recently-opened history.

			Examples:
			  startpage recent
			  startpage recent --limit 5
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries, defaulting to the configured limit")

	return cmd
}

func run(s *state.State, limit int) error {
	if limit <= 0 {
		limit = s.Settings.RecentLimit
	}

	snapshot, err := s.Source.Snapshot()
	if err != nil {
		return err
	}

	entries, err := s.Ranker.Rank(snapshot, s.Settings.RecentlyOpened, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No documents in the vault.")
		return nil
	}

	for _, entry := range entries {
		doc := entry.Document
		fmt.Printf(
			"%-40s  %s  %s\n",
			doc.Path,
			doc.ModifiedAt.Format("2006-01-02 15:04"),
			vault.ReadableSize(doc.SizeBytes),
		)
	}
	return nil
}
