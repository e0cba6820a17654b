package initialize

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/config"
)

// NewCmdInit takes the home directory rather than a loaded state so it can
// run before the settings file carries a vault directory.
func NewCmdInit(home string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init [vault-dir]",
		Aliases: []string{"i", "initialize"},
		Short:   "Set up the start page configuration.",
		Long: heredoc.Doc(`
			The init command creates the settings file and records the vault
			directory every other command operates on. Run it again to point
			at a different vault.

			Examples:
			  startpage init ~/vault
			  startpage init
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(home, args)
		},
	}

	return cmd
}

func run(home string, args []string) error {
	if err := config.EnsureConfigFile(home); err != nil {
		return err
	}

	settings, err := config.Load(home)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	vaultDir := ""
	if len(args) > 0 {
		vaultDir = args[0]
	} else {
		input := textinput.New("Vault directory:")
		input.InitialValue = settings.VaultDir
		input.Placeholder = "~/vault"

		vaultDir, err = input.RunPrompt()
		if err != nil {
			return err
		}
	}

	vaultDir = expandHome(home, strings.TrimSpace(vaultDir))
	info, err := os.Stat(vaultDir)
	if err != nil {
		return fmt.Errorf("vault directory %s is not accessible: %w", vaultDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", vaultDir)
	}

	settings.VaultDir = vaultDir
	if err := settings.Save(); err != nil {
		return err
	}

	fmt.Printf("Configured vault %s\nSettings written to %s\n", vaultDir, config.GetConfigPath(home))
	return nil
}

func expandHome(home, path string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return home + path[1:]
	}
	return path
}
