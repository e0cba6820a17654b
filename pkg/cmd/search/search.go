package search

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/opener"
	"github.com/kuzzh/obsidian-startpage/internal/quickopen"
	"github.com/kuzzh/obsidian-startpage/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var caseSensitive bool
	var open bool

	cmd := &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{"find", "f"},
		Short:   "Find documents by name or alias.",
		Long: heredoc.Doc(`
			The search command runs one quick-open query and prints every
			document whose name or alias contains it. With --open the first
			match opens in the editor instead.

			Examples:
			  startpage search roadmap
			  startpage search --case-sensitive API
			  startpage search --open standup
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args[0], caseSensitive, open)
		},
	}

	cmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "Match case exactly")
	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the first match in the editor")

	return cmd
}

func run(s *state.State, query string, caseSensitive, open bool) error {
	snapshot, err := s.Source.Snapshot()
	if err != nil {
		return err
	}

	session := quickopen.Open(snapshot, "")
	if caseSensitive {
		session.ToggleCaseSensitivity()
	}
	session.SetQuery(query)

	results := session.Results()
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	if open {
		doc := results[0]
		if err := s.Settings.TouchRecentlyOpened(doc.Path); err != nil {
			return err
		}
		return opener.Open(s.Settings, s.Source.Abs(doc.Path))
	}

	for _, doc := range results {
		if alias := session.MatchedAlias(doc); alias != "" {
			fmt.Printf("%s  (as %q)\n", doc.Path, alias)
		} else {
			fmt.Println(doc.Path)
		}
	}
	return nil
}
