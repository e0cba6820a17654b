package settings

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/kuzzh/obsidian-startpage/internal/config"
	"github.com/kuzzh/obsidian-startpage/internal/state"
)

const (
	settingLanguage    = "Quote language"
	settingFooterMode  = "Footer mode"
	settingFooterText  = "Custom footer text"
	settingEditor      = "Editor"
	settingRecentLimit = "Recent list size"
)

const (
	footerModeDefault = "default text"
	footerModeCustom  = "custom text"
	footerModeQuote   = "daily quote"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Adjust start page settings interactively.",
		Long: heredoc.Doc(`
			The settings command walks through changing one setting: the
			quote language, the footer mode, the custom footer text, the
			editor, or the recent list size. Changes persist immediately.

			Examples:
			  startpage settings
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	sel := selection.New("Which setting do you want to change?", []string{
		settingLanguage,
		settingFooterMode,
		settingFooterText,
		settingEditor,
		settingRecentLimit,
	})
	sel.Filter = nil

	choice, err := sel.RunPrompt()
	if err != nil {
		return err
	}

	switch choice {
	case settingLanguage:
		return changeLanguage(s.Settings)
	case settingFooterMode:
		return changeFooterMode(s.Settings)
	case settingFooterText:
		return changeFooterText(s.Settings)
	case settingEditor:
		return changeEditor(s.Settings)
	case settingRecentLimit:
		return changeRecentLimit(s.Settings)
	}
	return nil
}

func changeLanguage(settings *config.Settings) error {
	sel := selection.New("Select the daily quote language.", []string{
		config.LangEN,
		config.LangZH,
	})
	sel.Filter = nil

	lang, err := sel.RunPrompt()
	if err != nil {
		return err
	}

	if err := settings.SetLanguage(lang); err != nil {
		return err
	}
	fmt.Println("Language set to", lang)
	return nil
}

func changeFooterMode(settings *config.Settings) error {
	sel := selection.New("Select the footer mode.", []string{
		footerModeDefault,
		footerModeCustom,
		footerModeQuote,
	})
	sel.Filter = nil

	mode, err := sel.RunPrompt()
	if err != nil {
		return err
	}

	switch mode {
	case footerModeDefault:
		settings.ShowCustomFooter = false
		settings.UseRandomFooter = false
	case footerModeCustom:
		settings.ShowCustomFooter = true
		settings.UseRandomFooter = false
	case footerModeQuote:
		settings.ShowCustomFooter = true
		settings.UseRandomFooter = true
	}

	if err := settings.Save(); err != nil {
		return err
	}
	fmt.Println("Footer mode set to", mode)
	return nil
}

func changeFooterText(settings *config.Settings) error {
	input := textinput.New("Custom footer text:")
	input.InitialValue = settings.CustomFooterText

	text, err := input.RunPrompt()
	if err != nil {
		return err
	}

	settings.CustomFooterText = text
	if err := settings.Save(); err != nil {
		return err
	}
	fmt.Println("Footer text updated")
	return nil
}

func changeEditor(settings *config.Settings) error {
	input := textinput.New("Editor command:")
	input.InitialValue = settings.Editor
	input.Placeholder = "nvim"

	editor, err := input.RunPrompt()
	if err != nil {
		return err
	}

	settings.Editor = editor
	if err := settings.Save(); err != nil {
		return err
	}
	fmt.Println("Editor set to", editor)
	return nil
}

func changeRecentLimit(settings *config.Settings) error {
	input := textinput.New("Recent list size:")
	input.InitialValue = strconv.Itoa(settings.RecentLimit)
	input.Validate = func(value string) error {
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("not a number")
		}
		return nil
	}

	value, err := input.RunPrompt()
	if err != nil {
		return err
	}

	limit, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	if err := settings.SetRecentLimit(limit); err != nil {
		return err
	}
	fmt.Println("Recent list size set to", settings.RecentLimit)
	return nil
}
