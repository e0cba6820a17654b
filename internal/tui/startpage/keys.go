package startpage

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	openDocument    key.Binding
	switchFocus     key.Binding
	togglePin       key.Binding
	movePinUp       key.Binding
	movePinDown     key.Binding
	yankPath        key.Binding
	importBookmarks key.Binding
	refreshFooter   key.Binding
	toggleStatBar   key.Binding
	search          key.Binding
	quit            key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		openDocument: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		switchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		togglePin: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "pin/unpin"),
		),
		movePinUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move pin up"),
		),
		movePinDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move pin down"),
		),
		yankPath: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank path"),
		),
		importBookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "import bookmarks"),
		),
		refreshFooter: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "new quote"),
		),
		toggleStatBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle stats"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		m.openDocument,
		m.switchFocus,
		m.togglePin,
		m.search,
	}
}

func (m keyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.openDocument,
		m.switchFocus,
		m.togglePin,
		m.movePinUp,
		m.movePinDown,
		m.yankPath,
		m.importBookmarks,
		m.refreshFooter,
		m.toggleStatBar,
		m.search,
		m.quit,
	}
}
