package startpage

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// newItemDelegate renders list rows and owns the keys that act on a single
// row without touching the rest of the dashboard.
func newItemDelegate(keys *keyMap, source *vault.Source) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		item, ok := m.SelectedItem().(documentItem)
		if !ok {
			return nil
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			if key.Matches(msg, keys.yankPath) {
				if err := clipboard.WriteAll(source.Abs(item.path)); err != nil {
					return m.NewStatusMessage(statusStyle("Failed to copy path"))
				}
				return m.NewStatusMessage(statusStyle("Copied " + item.path))
			}
		}

		return nil
	}

	d.ShortHelpFunc = func() []key.Binding {
		return []key.Binding{keys.yankPath}
	}
	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{{keys.yankPath}}
	}

	return d
}
