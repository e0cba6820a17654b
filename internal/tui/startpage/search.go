package startpage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kuzzh/obsidian-startpage/internal/quickopen"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

const maxVisibleResults = 12

type searchKeyMap struct {
	confirm    key.Binding
	cancel     key.Binding
	moveUp     key.Binding
	moveDown   key.Binding
	toggleCase key.Binding
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open / create"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		moveUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		moveDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		toggleCase: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "match case"),
		),
	}
}

// searchModel is the quick-open overlay. It owns a session over the
// snapshot taken when the overlay opened and a text input seeded with the
// keystroke that opened it.
type searchModel struct {
	session *quickopen.Session
	input   textinput.Model
	keys    searchKeyMap
	read    func(string) ([]byte, error)
}

func newSearchModel(snapshot vault.Snapshot, seed string, read func(string) ([]byte, error)) *searchModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "document name or alias"
	input.SetValue(seed)
	input.CursorEnd()
	input.Focus()

	return &searchModel{
		session: quickopen.Open(snapshot, seed),
		input:   input,
		keys:    newSearchKeyMap(),
		read:    read,
	}
}

// searchClosedMsg reports the overlay outcome back to the dashboard. A nil
// outcome means the overlay was dismissed.
type searchClosedMsg struct {
	outcome *quickopen.Outcome
}

func (m *searchModel) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	switch {
	case key.Matches(keyMsg, m.keys.cancel):
		return func() tea.Msg { return searchClosedMsg{} }, true

	case key.Matches(keyMsg, m.keys.confirm):
		outcome := m.session.Confirm()
		if outcome.Kind == quickopen.OutcomeNone {
			return func() tea.Msg { return searchClosedMsg{} }, true
		}
		return func() tea.Msg { return searchClosedMsg{outcome: &outcome} }, true

	case key.Matches(keyMsg, m.keys.moveUp):
		m.session.MoveSelection(quickopen.Previous)
		return nil, false

	case key.Matches(keyMsg, m.keys.moveDown):
		m.session.MoveSelection(quickopen.Next)
		return nil, false

	case key.Matches(keyMsg, m.keys.toggleCase):
		m.session.ToggleCaseSensitivity()
		return nil, false
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.Query() {
		m.session.SetQuery(m.input.Value())
	}
	return cmd, false
}

func (m *searchModel) View(width int) string {
	var b strings.Builder

	header := "Quick open"
	if m.session.CaseSensitive() {
		header += "  [Aa]"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.session.Results()
	switch {
	case m.session.Query() == "":
		b.WriteString(helpStyle.Render("Type to search by name or alias."))
	case len(results) == 0:
		name := quickopen.SanitizeName(m.session.Query())
		if name == "" {
			b.WriteString(helpStyle.Render("No matches."))
		} else {
			b.WriteString(helpStyle.Render(fmt.Sprintf("No matches. ↵ creates %q.", name+".md")))
		}
	default:
		b.WriteString(m.renderResults(results))
		if line := m.selectedPreview(results); line != "" {
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render(line))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↵ open  ·  esc close  ·  ctrl+t match case"))

	return overlayStyle.Width(width).Render(b.String())
}

func (m *searchModel) renderResults(results vault.Snapshot) string {
	selected := m.session.SelectedIndex()

	start := 0
	if selected >= maxVisibleResults {
		start = selected - maxVisibleResults + 1
	}
	end := start + maxVisibleResults
	if end > len(results) {
		end = len(results)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		doc := results[i]
		line := doc.Basename()
		if alias := m.session.MatchedAlias(doc); alias != "" {
			line = fmt.Sprintf("%s  (as %q)", line, alias)
		}
		if doc.ParentFolder != "/" {
			line += "  " + doc.ParentFolder
		}

		if i == selected {
			line = selectedItemStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	if end < len(results) {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("  … %d more", len(results)-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// selectedPreview renders one line of plain text from the selected markdown
// result so a name match can be confirmed without opening the document.
func (m *searchModel) selectedPreview(results vault.Snapshot) string {
	selected := m.session.SelectedIndex()
	if m.read == nil || selected < 0 || selected >= len(results) {
		return ""
	}

	doc := results[selected]
	if !doc.IsMarkdown() {
		return ""
	}

	content, err := m.read(doc.Path)
	if err != nil {
		return ""
	}
	return vault.PreviewText(content, 120)
}
