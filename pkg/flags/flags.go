package flags

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// AddPath registers the --path flag used by pin commands to bypass the
// interactive picker.
func AddPath(cmd *cobra.Command) {
	cmd.Flags().
		StringP(
			"path",
			"p",
			"",
			"Vault-relative path of the document, skipping the picker",
		)
}

func HandlePath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		fmt.Printf("error retrieving path flag: %s\n", err)
		os.Exit(1)
	}
	return path
}

// AddLang registers the --lang flag for quote-aware commands.
func AddLang(cmd *cobra.Command) {
	cmd.Flags().
		StringP(
			"lang",
			"l",
			"",
			"Quote language (en or zh), defaulting to the configured one",
		)
}

func HandleLang(cmd *cobra.Command) string {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		fmt.Printf("error retrieving lang flag: %s\n", err)
		os.Exit(1)
	}
	return lang
}
