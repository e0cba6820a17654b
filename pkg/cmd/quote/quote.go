package quote

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/pkg/flags"
)

func NewCmdQuote(s *state.State) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:     "quote [--refresh] [--lang en|zh]",
		Aliases: []string{"q"},
		Short:   "Print today's footer quote.",
		Long: heredoc.Doc(`
			The quote command prints the daily quote the start page footer
			shows. The quote is fetched at most once per day per language and
			cached in the settings file; --refresh discards today's entry and
			fetches a new one.

			Examples:
			  startpage quote
			  startpage quote --refresh
			  startpage quote --lang zh
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, refresh)
		},
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "Discard today's cached quote and fetch a new one")
	flags.AddLang(cmd)

	return cmd
}

func run(cmd *cobra.Command, s *state.State, refresh bool) error {
	lang := flags.HandleLang(cmd)
	if lang == "" {
		lang = s.Settings.Language
	}

	text, err := s.Footer.DailyQuote(cmd.Context(), lang, refresh)
	if err != nil {
		return fmt.Errorf("failed to fetch quote: %w", err)
	}

	fmt.Println(wrapToTerminal(text))
	return nil
}

// wrapToTerminal soft-wraps the quote at word boundaries to the terminal
// width so long quotes stay readable.
func wrapToTerminal(text string) string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
