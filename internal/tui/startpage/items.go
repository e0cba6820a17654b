package startpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/kuzzh/obsidian-startpage/internal/recency"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// documentItem is one row in the pinned or recent list. A pinned path whose
// document no longer exists is kept visible as broken so the user can unpin
// it deliberately.
type documentItem struct {
	doc    vault.DocumentRef
	path   string
	broken bool
	pinned bool
}

func newDocumentItem(doc vault.DocumentRef, pinned bool) documentItem {
	return documentItem{doc: doc, path: doc.Path, pinned: pinned}
}

func newBrokenItem(path string) documentItem {
	return documentItem{path: path, broken: true, pinned: true}
}

func (i documentItem) Title() string {
	if i.broken {
		return fmt.Sprintf("%s (missing)", i.path)
	}
	return i.doc.Basename()
}

func (i documentItem) Description() string {
	if i.broken {
		return "pinned document no longer exists"
	}

	parts := []string{
		i.doc.ParentFolder,
		vault.ReadableSize(i.doc.SizeBytes),
		relativeAge(i.doc.ModifiedAt, time.Now()),
	}
	if len(i.doc.Aliases) > 0 {
		parts = append(parts, strings.Join(i.doc.Aliases, ", "))
	}
	return strings.Join(parts, "  ·  ")
}

func (i documentItem) FilterValue() string {
	if i.broken {
		return i.path
	}
	return i.doc.Basename() + " " + strings.Join(i.doc.Aliases, " ")
}

// relativeAge renders a modification timestamp the way the dashboard shows
// it: coarse buckets, never exact past a week.
func relativeAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

func pinnedItems(persisted []string, snapshot vault.Snapshot) []list.Item {
	items := make([]list.Item, 0, len(persisted))
	for _, path := range persisted {
		if doc, ok := snapshot.Lookup(path); ok {
			items = append(items, newDocumentItem(doc, true))
		} else {
			items = append(items, newBrokenItem(path))
		}
	}
	return items
}

func recentItems(entries []recency.Entry, pinned func(string) bool) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, newDocumentItem(entry.Document, pinned(entry.Document.Path)))
	}
	return items
}
