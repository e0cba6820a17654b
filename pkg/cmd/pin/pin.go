package pin

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin/pinAdd"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin/pinImport"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin/pinList"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin/pinMove"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin/pinOpen"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin/pinRemove"
)

func NewCmdPin(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pin",
		Aliases: []string{"p"},
		Short:   "Manage the pinned documents shown at the top of the start page.",
		Long: heredoc.Doc(`
			The pin command group manages the ordered list of pinned documents.
			Pins keep their order across sessions and sit above the recent list
			on the start page.

			Examples:
			  startpage pin add my-note
			  startpage pin list
			  startpage pin move 2 0
			  startpage pin import
		`),
		RunE: pinList.Command(s).RunE,
	}

	cmd.AddCommand(
		pinAdd.Command(s),
		pinRemove.Command(s),
		pinMove.Command(s),
		pinList.Command(s),
		pinImport.Command(s),
		pinOpen.Command(s),
	)

	return cmd
}
