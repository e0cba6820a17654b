package pinned

import (
	"errors"
	"strings"

	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// ErrOutOfRange signals a Move index outside the current list bounds. The
// move is rejected before any mutation; the list is never left half-applied.
var ErrOutOfRange = errors.New("pinned: index out of range")

// Saver persists the pinned list after a mutation. The write is awaited
// before the manager accepts the next mutation, so persisted order always
// matches in-memory order.
type Saver func(paths []string) error

// Manager owns the user-curated ordered pinned list. Order is meaningful
// and entirely user-controlled; no path appears twice. Paths that no longer
// resolve to documents are kept in the persisted list and only skipped at
// render time.
type Manager struct {
	paths  []string
	save   Saver
	notify func()
}

// NewManager wraps an initial list loaded from settings. The initial list
// is deduplicated defensively in case the persisted state was edited by
// hand; save and notify may be nil.
func NewManager(initial []string, save Saver, notify func()) *Manager {
	m := &Manager{save: save, notify: notify}
	seen := make(map[string]struct{}, len(initial))
	for _, p := range initial {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		m.paths = append(m.paths, p)
	}
	return m
}

// Paths returns a copy of the current list in display order.
func (m *Manager) Paths() []string {
	return append([]string(nil), m.paths...)
}

// Len returns the number of pinned paths.
func (m *Manager) Len() int {
	return len(m.paths)
}

// Contains reports whether path is currently pinned.
func (m *Manager) Contains(path string) bool {
	return m.indexOf(path) != -1
}

// Add appends path to the end of the list. Re-pinning an already pinned
// path is a no-op, not an error.
func (m *Manager) Add(path string) error {
	path = strings.TrimSpace(path)
	if path == "" || m.Contains(path) {
		return nil
	}

	m.paths = append(m.paths, path)
	return m.persist()
}

// Remove drops path from the list. Removing an absent path is a no-op.
func (m *Manager) Remove(path string) error {
	idx := m.indexOf(path)
	if idx == -1 {
		return nil
	}

	m.paths = append(m.paths[:idx], m.paths[idx+1:]...)
	return m.persist()
}

// Move removes the element at from and reinserts it at to within the
// remaining sequence. Both indices must be valid for the current length.
func (m *Manager) Move(from, to int) error {
	if from < 0 || from >= len(m.paths) || to < 0 || to >= len(m.paths) {
		return ErrOutOfRange
	}
	if from == to {
		return nil
	}

	path := m.paths[from]
	rest := append(append([]string{}, m.paths[:from]...), m.paths[from+1:]...)
	m.paths = append(append(append([]string{}, rest[:to]...), path), rest[to:]...)
	return m.persist()
}

// ImportBulk appends each path not already pinned, in input order, and
// returns the count actually added. Already-pinned paths are silently
// skipped.
func (m *Manager) ImportBulk(paths []string) (int, error) {
	added := 0
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || m.Contains(p) {
			continue
		}
		m.paths = append(m.paths, p)
		added++
	}

	if added == 0 {
		return 0, nil
	}
	return added, m.persist()
}

// Resolve maps the pinned paths onto the snapshot, dropping paths that no
// longer resolve from the rendered view only. The persisted list is left
// untouched; unpinning a missing document stays an explicit user action.
func (m *Manager) Resolve(snapshot vault.Snapshot) vault.Snapshot {
	docs := make(vault.Snapshot, 0, len(m.paths))
	for _, p := range m.paths {
		if doc, ok := snapshot.Lookup(p); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

func (m *Manager) indexOf(path string) int {
	for i, p := range m.paths {
		if p == path {
			return i
		}
	}
	return -1
}

func (m *Manager) persist() error {
	if m.save != nil {
		if err := m.save(m.Paths()); err != nil {
			return err
		}
	}
	if m.notify != nil {
		m.notify()
	}
	return nil
}
