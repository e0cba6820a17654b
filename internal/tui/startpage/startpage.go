package startpage

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kuzzh/obsidian-startpage/internal/cache"
	"github.com/kuzzh/obsidian-startpage/internal/constants"
	"github.com/kuzzh/obsidian-startpage/internal/opener"
	"github.com/kuzzh/obsidian-startpage/internal/quickopen"
	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

type focusArea int

const (
	focusPinned focusArea = iota
	focusRecent
)

const scrollDebounceKey = "scroll"
const scrollDebounceDelay = 500 * time.Millisecond

type footerLoadedMsg struct {
	gen  int
	text string
}

type refreshTickMsg struct{}

type editorClosedMsg struct {
	path string
	err  error
}

// StartPageModel is the dashboard: pinned and recent documents on the
// left, a preview pane on the right, a stat bar and a footer line. A quick
// open overlay sits on top when active.
type StartPageModel struct {
	state      *state.State
	keys       *keyMap
	pinnedList list.Model
	recentList list.Model
	focus      focusArea
	snapshot   vault.Snapshot
	stats      vault.Stats
	previews   *cache.LRUCache[string]
	preview    string
	footerText string
	footerGen  int

	refreshPending bool
	search         *searchModel
	width          int
	height         int
}

func NewStartPageModel(s *state.State) (*StartPageModel, error) {
	keys := newKeyMap()
	delegate := newItemDelegate(keys, s.Source)

	newList := func(title string) list.Model {
		l := list.New(nil, delegate, 0, 0)
		l.Title = title
		l.Styles.Title = titleStyle
		l.SetFilteringEnabled(false)
		l.SetShowHelp(false)
		l.SetShowStatusBar(false)
		return l
	}

	recentList := newList("Recent")
	recentList.SetShowHelp(true)
	recentList.AdditionalShortHelpKeys = keys.shortHelp
	recentList.AdditionalFullHelpKeys = keys.fullHelp

	m := &StartPageModel{
		state:      s,
		keys:       keys,
		pinnedList: newList("Pinned"),
		recentList: recentList,
		focus:      focusRecent,
		previews:   newPreviewCache(),
		footerText: constants.DefaultFooterText,
	}

	if err := m.refreshData(); err != nil {
		return nil, err
	}

	if pos := s.Settings.ScrollPosition; pos > 0 && pos < len(m.recentList.Items()) {
		m.recentList.Select(pos)
	}
	m.applyFocusStyles()
	m.handlePreview()

	return m, nil
}

func (m *StartPageModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadFooter(false)}
	if m.state.Watcher != nil {
		cmds = append(cmds, m.state.Watcher.Start())
	}
	if cmd := m.scheduleRefresh(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *StartPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.previews.Clear()

	case footerLoadedMsg:
		// A stale generation means the user forced a newer fetch while
		// this one was in flight.
		if msg.gen == m.footerGen {
			m.footerText = msg.text
		}

	case refreshTickMsg:
		m.refreshPending = false
		if err := m.refreshData(); err == nil {
			if cmd := m.scheduleRefresh(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case state.DocumentChangedMsg:
		m.previews.Remove(msg.Path)
		_ = m.refreshData()
		m.handlePreview()
		if m.state.Watcher != nil {
			cmds = append(cmds, m.state.Watcher.Start())
		}
		if cmd := m.scheduleRefresh(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case state.WatcherErrMsg:
		cmds = append(cmds, m.focusedList().NewStatusMessage(
			statusStyle(fmt.Sprintf("Watcher error: %v", msg.Err)),
		))
		if m.state.Watcher != nil {
			cmds = append(cmds, m.state.Watcher.Start())
		}

	case searchClosedMsg:
		m.search = nil
		if msg.outcome != nil {
			if cmd := m.resolveSearchOutcome(*msg.outcome); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case editorClosedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.focusedList().NewStatusMessage(
				statusStyle(fmt.Sprintf("Editor error: %v", msg.err)),
			))
		}
		m.previews.Remove(msg.path)
		_ = m.refreshData()
		m.handlePreview()

	case tea.KeyMsg:
		if m.search != nil {
			cmd, _ := m.search.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *StartPageModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keys.quit):
		m.persistScrollNow()
		return m, tea.Quit

	case key.Matches(msg, m.keys.switchFocus):
		if m.focus == focusPinned {
			m.focus = focusRecent
		} else {
			m.focus = focusPinned
		}
		m.applyFocusStyles()
		m.handlePreview()
		return m, nil

	case key.Matches(msg, m.keys.openDocument):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.togglePin):
		return m, m.toggleSelectedPin()

	case key.Matches(msg, m.keys.movePinUp):
		return m, m.moveSelectedPin(-1)

	case key.Matches(msg, m.keys.movePinDown):
		return m, m.moveSelectedPin(1)

	case key.Matches(msg, m.keys.importBookmarks):
		return m, m.importBookmarks()

	case key.Matches(msg, m.keys.refreshFooter):
		return m, m.loadFooter(true)

	case key.Matches(msg, m.keys.toggleStatBar):
		m.state.Settings.ShowStatBar = !m.state.Settings.ShowStatBar
		_ = m.state.Settings.Save()
		return m, nil

	case key.Matches(msg, m.keys.search):
		m.search = newSearchModel(m.snapshot, "", m.state.Source.ReadContent)
		return m, nil
	}

	// yankPath is handled by the row delegate inside the list update.
	if seed, ok := printableSeed(msg); ok && !key.Matches(msg, m.keys.yankPath) {
		m.search = newSearchModel(m.snapshot, seed, m.state.Source.ReadContent)
		return m, nil
	}

	focused, cmd := m.focusedList().Update(msg)
	m.setFocusedList(focused)
	cmds = append(cmds, cmd)

	m.handlePreview()
	m.debounceScrollPersist()

	return m, tea.Batch(cmds...)
}

// printableSeed reports whether a key press is a single printable rune
// that should open the quick open overlay pre-seeded.
func printableSeed(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return "", false
	}
	return string(msg.Runes), true
}

func (m *StartPageModel) resolveSearchOutcome(outcome quickopen.Outcome) tea.Cmd {
	switch outcome.Kind {
	case quickopen.OutcomeOpen:
		return m.openDocument(outcome.Document.Path)

	case quickopen.OutcomeCreate:
		if err := m.state.Source.Create(outcome.NewPath); err != nil {
			return m.focusedList().NewStatusMessage(
				statusStyle(fmt.Sprintf("Failed to create %s: %v", outcome.NewPath, err)),
			)
		}
		return m.openDocument(outcome.NewPath)
	}
	return nil
}

func (m *StartPageModel) openSelected() tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return nil
	}
	if item.broken {
		return m.focusedList().NewStatusMessage(
			statusStyle("Document is missing. Unpin it with P."),
		)
	}
	return m.openDocument(item.path)
}

func (m *StartPageModel) openDocument(path string) tea.Cmd {
	if err := m.state.Settings.TouchRecentlyOpened(path); err != nil {
		return m.focusedList().NewStatusMessage(
			statusStyle(fmt.Sprintf("Failed to record open: %v", err)),
		)
	}

	cmd, err := opener.EditorCommand(m.state.Settings, m.state.Source.Abs(path))
	if err != nil {
		return m.focusedList().NewStatusMessage(statusStyle(err.Error()))
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorClosedMsg{path: path, err: err}
	})
}

func (m *StartPageModel) toggleSelectedPin() tea.Cmd {
	item, ok := m.selectedItem()
	if !ok {
		return nil
	}

	var err error
	var verb string
	if item.pinned {
		err = m.state.Pinned.Remove(item.path)
		verb = "Unpinned"
	} else {
		err = m.state.Pinned.Add(item.path)
		verb = "Pinned"
	}
	if err != nil {
		return m.focusedList().NewStatusMessage(
			statusStyle(fmt.Sprintf("Failed to update pins: %v", err)),
		)
	}

	_ = m.refreshData()
	m.handlePreview()
	return m.focusedList().NewStatusMessage(statusStyle(verb + " " + item.path))
}

func (m *StartPageModel) moveSelectedPin(delta int) tea.Cmd {
	if m.focus != focusPinned {
		return nil
	}

	from := m.pinnedList.Index()
	to := from + delta
	if err := m.state.Pinned.Move(from, to); err != nil {
		return nil
	}

	_ = m.refreshData()
	m.pinnedList.Select(to)
	m.handlePreview()
	return nil
}

func (m *StartPageModel) importBookmarks() tea.Cmd {
	paths, err := m.state.Source.ListBookmarkedPaths()
	if err != nil {
		return m.focusedList().NewStatusMessage(
			statusStyle(fmt.Sprintf("Failed to read bookmarks: %v", err)),
		)
	}

	added, err := m.state.Pinned.ImportBulk(paths)
	if err != nil {
		return m.focusedList().NewStatusMessage(
			statusStyle(fmt.Sprintf("Failed to import bookmarks: %v", err)),
		)
	}

	_ = m.refreshData()
	m.handlePreview()
	return m.focusedList().NewStatusMessage(
		statusStyle(fmt.Sprintf("Imported %d bookmarked documents", added)),
	)
}

func (m *StartPageModel) loadFooter(force bool) tea.Cmd {
	m.footerGen++
	gen := m.footerGen
	settings := m.state.Settings
	svc := m.state.Footer

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.QuoteFetchTimeout)
		defer cancel()
		return footerLoadedMsg{gen: gen, text: svc.Text(ctx, settings, force)}
	}
}

func (m *StartPageModel) refreshData() error {
	snapshot, err := m.state.Source.Snapshot()
	if err != nil {
		return err
	}
	m.snapshot = snapshot

	entries, err := m.state.Ranker.Rank(
		snapshot,
		m.state.Settings.RecentlyOpened,
		m.state.Settings.RecentLimit,
	)
	if err != nil {
		return err
	}

	m.pinnedList.SetItems(pinnedItems(m.state.Pinned.Paths(), snapshot))
	m.recentList.SetItems(recentItems(entries, m.state.Pinned.Contains))
	m.stats = vault.ComputeStats(snapshot, time.Now())
	return nil
}

// scheduleRefresh arms the one-minute re-render tick, but only while a
// displayed document was modified within the last day. At most one tick is
// pending at a time.
func (m *StartPageModel) scheduleRefresh() tea.Cmd {
	if m.refreshPending || !m.hasFreshDocument(time.Now()) {
		return nil
	}

	m.refreshPending = true
	return tea.Tick(constants.RefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m *StartPageModel) hasFreshDocument(now time.Time) bool {
	fresh := func(items []list.Item) bool {
		for _, it := range items {
			item, ok := it.(documentItem)
			if !ok || item.broken {
				continue
			}
			if now.Sub(item.doc.ModifiedAt) < constants.RefreshWindow {
				return true
			}
		}
		return false
	}
	return fresh(m.pinnedList.Items()) || fresh(m.recentList.Items())
}

func (m *StartPageModel) debounceScrollPersist() {
	pos := m.recentList.Index()
	settings := m.state.Settings
	m.state.Debouncer.Debounce(scrollDebounceKey, scrollDebounceDelay, func() {
		_ = settings.SetScrollPosition(pos)
	})
}

func (m *StartPageModel) persistScrollNow() {
	m.state.Debouncer.Cancel(scrollDebounceKey)
	_ = m.state.Settings.SetScrollPosition(m.recentList.Index())
}

func (m *StartPageModel) selectedItem() (documentItem, bool) {
	item, ok := m.focusedList().SelectedItem().(documentItem)
	return item, ok
}

func (m *StartPageModel) focusedList() *list.Model {
	if m.focus == focusPinned {
		return &m.pinnedList
	}
	return &m.recentList
}

func (m *StartPageModel) setFocusedList(l list.Model) {
	if m.focus == focusPinned {
		m.pinnedList = l
	} else {
		m.recentList = l
	}
}

func (m *StartPageModel) applyFocusStyles() {
	if m.focus == focusPinned {
		m.pinnedList.Styles.Title = titleStyle
		m.recentList.Styles.Title = dimTitleStyle
	} else {
		m.pinnedList.Styles.Title = dimTitleStyle
		m.recentList.Styles.Title = titleStyle
	}
}

func (m *StartPageModel) handlePreview() {
	if item, ok := m.selectedItem(); ok {
		m.preview = m.renderPreview(item)
	} else {
		m.preview = ""
	}
}

func (m *StartPageModel) resize() {
	h, v := appStyle.GetFrameSize()
	width := m.width - h
	height := m.height - v

	// Two stacked lists share the left half; stat bar and footer take a
	// row each below.
	listWidth := width / 2
	listHeight := (height - 2) / 2
	if listHeight < 3 {
		listHeight = 3
	}

	m.pinnedList.SetSize(listWidth, listHeight)
	m.recentList.SetSize(listWidth, listHeight)
}

func (m *StartPageModel) View() string {
	if m.search != nil {
		return appStyle.Render(m.search.View(m.width - 6))
	}

	lists := lipgloss.JoinVertical(
		lipgloss.Left,
		m.pinnedList.View(),
		m.recentList.View(),
	)
	left := listStyle.Width(m.width / 2).Render(lists)

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			Height(lipgloss.Height(lists)).
			MaxHeight(lipgloss.Height(lists)).
			MaxWidth(800).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview)),
	)

	layout := lipgloss.JoinHorizontal(lipgloss.Top, left, preview)

	var rows []string
	rows = append(rows, layout)
	if m.state.Settings.ShowStatBar {
		rows = append(rows, statBarStyle.Render(m.statLine()))
	}
	rows = append(rows, footerStyle.Render(m.footerText))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *StartPageModel) statLine() string {
	parts := []string{
		fmt.Sprintf("%d notes", m.stats.TotalNotes),
		fmt.Sprintf("%d edited today", m.stats.TodayEdited),
		vault.ReadableSize(m.stats.TotalSize),
	}
	return strings.Join(parts, "  ·  ")
}

// Run starts the dashboard program and blocks until it exits.
func Run(s *state.State) error {
	m, err := NewStartPageModel(s)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}
