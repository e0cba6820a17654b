package startpage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kuzzh/obsidian-startpage/internal/config"
	"github.com/kuzzh/obsidian-startpage/internal/constants"
	"github.com/kuzzh/obsidian-startpage/internal/debounce"
	"github.com/kuzzh/obsidian-startpage/internal/footer"
	"github.com/kuzzh/obsidian-startpage/internal/pinned"
	"github.com/kuzzh/obsidian-startpage/internal/recency"
	"github.com/kuzzh/obsidian-startpage/internal/state"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

func testState(t *testing.T, notes ...string) *state.State {
	t.Helper()

	dir := t.TempDir()
	for _, name := range notes {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# "+name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	settings := &config.Settings{
		VaultDir:       dir,
		RecentLimit:    10,
		PinnedNotes:    []string{},
		RecentlyOpened: []string{},
		DailyQuotes:    map[string]string{},
		Language:       config.LangEN,
		ShowStatBar:    true,
	}

	source, err := vault.NewSource(dir, nil, false)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	return &state.State{
		Settings: settings,
		Source:   source,
		Pinned: pinned.NewManager(settings.PinnedNotes, func(paths []string) error {
			settings.PinnedNotes = paths
			return nil
		}, nil),
		Ranker:    &recency.Ranker{},
		Footer:    footer.NewService(settings),
		Debouncer: debounce.New(),
		Vault:     dir,
	}
}

func TestNewModelBuildsLists(t *testing.T) {
	s := testState(t, "a.md", "b.md", "sub/c.md")
	s.Settings.RecentlyOpened = []string{"b.md"}

	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	if got := len(m.recentList.Items()); got != 3 {
		t.Errorf("recent items = %d, want 3", got)
	}
	if got := len(m.pinnedList.Items()); got != 0 {
		t.Errorf("pinned items = %d, want 0", got)
	}

	first, ok := m.recentList.Items()[0].(documentItem)
	if !ok {
		t.Fatal("recent list holds a non-document item")
	}
	if first.path != "b.md" {
		t.Errorf("top recent = %q, want the opened document b.md", first.path)
	}
}

func TestBrokenPinStaysVisible(t *testing.T) {
	s := testState(t, "a.md")
	s.Settings.PinnedNotes = []string{"gone.md", "a.md"}
	s.Pinned = pinned.NewManager(s.Settings.PinnedNotes, func([]string) error { return nil }, nil)

	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	items := m.pinnedList.Items()
	if len(items) != 2 {
		t.Fatalf("pinned items = %d, want 2", len(items))
	}
	broken := items[0].(documentItem)
	if !broken.broken || broken.path != "gone.md" {
		t.Errorf("first pinned item = %+v, want broken gone.md", broken)
	}
	if items[1].(documentItem).broken {
		t.Error("existing pin reported broken")
	}
}

func TestStaleFooterGenerationIsIgnored(t *testing.T) {
	s := testState(t, "a.md")
	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	m.footerGen = 2
	m.Update(footerLoadedMsg{gen: 1, text: "stale"})
	if m.footerText == "stale" {
		t.Error("stale footer generation was applied")
	}

	m.Update(footerLoadedMsg{gen: 2, text: "current"})
	if m.footerText != "current" {
		t.Errorf("footer = %q, want current", m.footerText)
	}
}

func TestScheduleRefreshOnlyWithFreshDocuments(t *testing.T) {
	s := testState(t, "a.md")
	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	// A freshly written file is younger than the refresh window.
	if cmd := m.scheduleRefresh(); cmd == nil {
		t.Error("expected a scheduled tick for a fresh vault")
	}
	if cmd := m.scheduleRefresh(); cmd != nil {
		t.Error("second schedule while pending should be a no-op")
	}

	m.refreshPending = false
	old := time.Now().Add(-2 * constants.RefreshWindow)
	items := m.recentList.Items()
	for i, it := range items {
		item := it.(documentItem)
		item.doc.ModifiedAt = old
		items[i] = item
	}
	m.recentList.SetItems(items)

	if cmd := m.scheduleRefresh(); cmd != nil {
		t.Error("tick scheduled although nothing was modified within the window")
	}
}

func TestPrintableSeedOpensSearch(t *testing.T) {
	s := testState(t, "alpha.md", "beta.md")
	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if m.search == nil {
		t.Fatal("printable key did not open the search overlay")
	}
	if m.search.session.Query() != "a" {
		t.Errorf("seed query = %q, want a", m.search.session.Query())
	}
	if got := len(m.search.session.Results()); got != 2 {
		t.Errorf("seeded results = %d, want 2 (alpha, beta)", got)
	}
}

func TestArrowKeysDoNotOpenSearch(t *testing.T) {
	s := testState(t, "alpha.md", "beta.md")
	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if m.search != nil {
		t.Error("arrow key opened the search overlay")
	}
}

func TestTogglePinFromRecentList(t *testing.T) {
	s := testState(t, "a.md", "b.md")
	m, err := NewStartPageModel(s)
	if err != nil {
		t.Fatalf("NewStartPageModel: %v", err)
	}

	m.toggleSelectedPin()
	if got := len(m.pinnedList.Items()); got != 1 {
		t.Fatalf("pinned items after toggle = %d, want 1", got)
	}

	// Toggling the same document again unpins it.
	item, _ := m.selectedItem()
	if !item.pinned {
		t.Fatal("selected recent item not marked pinned after toggle")
	}
	m.toggleSelectedPin()
	if got := len(m.pinnedList.Items()); got != 0 {
		t.Errorf("pinned items after second toggle = %d, want 0", got)
	}
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
		{now.Add(-30 * 24 * time.Hour), "2023-02-08"},
		{time.Time{}, "unknown"},
	}
	for _, tc := range cases {
		if got := relativeAge(tc.t, now); got != tc.want {
			t.Errorf("relativeAge(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}
