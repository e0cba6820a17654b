package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kuzzh/obsidian-startpage/internal/config"
	"github.com/kuzzh/obsidian-startpage/internal/constants"
	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/internal/tui/startpage"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/initialize"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/pin"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/quote"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/recent"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/search"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/settings"
	"github.com/kuzzh/obsidian-startpage/pkg/cmd/stats"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "startpage",
		Aliases: []string{"sp"},
		Short:   "A start page for your markdown vault: pinned and recent documents at a glance.",
		Long: `Open a dashboard over an Obsidian-style vault: pinned documents, a
recency-ranked recent list, vault statistics and a daily quote. Press any
letter to quick-open a document by name or alias.`,
		Version: constants.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startpage.Run(s)
		},
	}
	cmd.SetHelpTemplate(constants.Help)

	cmd.AddCommand(
		initialize.NewCmdInit(s.Home),
		pin.NewCmdPin(s),
		recent.NewCmdRecent(s),
		search.NewCmdSearch(s),
		quote.NewCmdQuote(s),
		settings.NewCmdSettings(s),
		stats.NewCmdStats(s),
	)

	return cmd, nil
}

// Execute wires configuration and state, then runs the matched command. A
// missing vault configuration degrades to a root command that only carries
// init, so the first run can set things up.
func Execute() {
	home, err := state.GetHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	s, stateErr := state.NewState()
	if stateErr != nil {
		var initErr *config.ConfigInitError
		if errors.As(stateErr, &initErr) {
			executeUninitialized(home, initErr)
			return
		}
		fmt.Fprintln(os.Stderr, stateErr)
		os.Exit(1)
	}
	defer s.Close()

	rootCmd, err := NewCmdRoot(s)
	cobra.CheckErr(err)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func executeUninitialized(home string, initErr *config.ConfigInitError) {
	cmd := &cobra.Command{
		Use:   "startpage",
		Short: "A start page for your markdown vault.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\nRun: startpage init <vault-dir>\n", initErr.Error())
			return nil
		},
	}
	cmd.AddCommand(initialize.NewCmdInit(home))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
