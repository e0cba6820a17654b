package utils

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// RenderMarkdown colorizes markdown content for a terminal pane. Render
// failures fall back to the raw content so something always shows.
func RenderMarkdown(content []byte, wrap int) string {
	if wrap <= 0 {
		wrap = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return string(content)
	}

	rendered, err := r.Render(string(content))
	if err != nil {
		return string(content)
	}

	return rendered
}
