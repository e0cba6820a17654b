package quickopen

import (
	"strings"

	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// Direction selects which way MoveSelection advances.
type Direction int

const (
	Next Direction = iota
	Previous
)

// OutcomeKind describes what Confirm resolved to.
type OutcomeKind int

const (
	// OutcomeNone means nothing actionable: blank query with no results.
	OutcomeNone OutcomeKind = iota
	// OutcomeOpen opens an existing document.
	OutcomeOpen
	// OutcomeCreate creates a new markdown note from the query text.
	OutcomeCreate
)

// Outcome is the result of confirming a quick-open session.
type Outcome struct {
	Kind     OutcomeKind
	Document vault.DocumentRef
	// NewPath carries the sanitized target path for OutcomeCreate.
	NewPath string
}

// Session is one quick-open overlay lifecycle. It operates on a
// point-in-time snapshot taken at Open; vault changes during the session
// are not reflected. All methods are synchronous and never block.
type Session struct {
	allDocuments  vault.Snapshot
	query         string
	caseSensitive bool
	results       vault.Snapshot
	selected      int
}

// Open starts a session over the snapshot. A non-empty initialQuery is
// applied immediately, mirroring the single-keystroke entry path.
func Open(snapshot vault.Snapshot, initialQuery string) *Session {
	s := &Session{
		allDocuments: snapshot,
		selected:     -1,
	}
	if initialQuery != "" {
		s.SetQuery(initialQuery)
	}
	return s
}

// Query returns the current query text.
func (s *Session) Query() string {
	return s.query
}

// CaseSensitive reports the current case-sensitivity toggle.
func (s *Session) CaseSensitive() bool {
	return s.caseSensitive
}

// Results returns the current match list in snapshot order.
func (s *Session) Results() vault.Snapshot {
	return s.results
}

// SelectedIndex returns the highlighted result index, -1 when none.
func (s *Session) SelectedIndex() int {
	return s.selected
}

// SetQuery recomputes the result list wholesale. An empty query clears
// results and selection; otherwise every document whose name or any alias
// contains the query as a substring matches, and selection resets to the
// first result.
func (s *Session) SetQuery(text string) {
	s.query = text

	if text == "" {
		s.results = nil
		s.selected = -1
		return
	}

	s.results = s.results[:0:0]
	for _, doc := range s.allDocuments {
		if s.matches(doc, text) {
			s.results = append(s.results, doc)
		}
	}

	if len(s.results) > 0 {
		s.selected = 0
	} else {
		s.selected = -1
	}
}

// ToggleCaseSensitivity flips the flag and re-runs the current query so the
// result list stays consistent with the toggle.
func (s *Session) ToggleCaseSensitivity() {
	s.caseSensitive = !s.caseSensitive
	s.SetQuery(s.query)
}

// MoveSelection advances the highlight with cyclic wraparound. No-op when
// there are no results.
func (s *Session) MoveSelection(dir Direction) {
	n := len(s.results)
	if n == 0 {
		return
	}

	switch dir {
	case Next:
		s.selected = (s.selected + 1) % n
	case Previous:
		s.selected--
		if s.selected < 0 {
			s.selected = n - 1
		}
	}
}

// MatchedAlias returns the alias that matched the current query for a
// result document, or "" when its name matched directly.
func (s *Session) MatchedAlias(doc vault.DocumentRef) string {
	if s.query == "" {
		return ""
	}
	if containsSubstring(doc.Basename(), s.query, s.caseSensitive) {
		return ""
	}
	for _, alias := range doc.Aliases {
		if containsSubstring(alias, s.query, s.caseSensitive) {
			return alias
		}
	}
	return ""
}

// Confirm resolves the session. With results, the highlighted document is
// opened. With no results and a non-blank query, a create intent is emitted
// for the sanitized name; if a document with that sanitized name already
// exists in the snapshot the intent degrades to opening it.
func (s *Session) Confirm() Outcome {
	if len(s.results) > 0 {
		if s.selected < 0 || s.selected >= len(s.results) {
			return Outcome{Kind: OutcomeNone}
		}
		return Outcome{Kind: OutcomeOpen, Document: s.results[s.selected]}
	}

	name := SanitizeName(s.query)
	if name == "" {
		return Outcome{Kind: OutcomeNone}
	}

	newPath := name + ".md"
	if doc, ok := s.allDocuments.Lookup(newPath); ok {
		return Outcome{Kind: OutcomeOpen, Document: doc}
	}
	return Outcome{Kind: OutcomeCreate, NewPath: newPath}
}

func (s *Session) matches(doc vault.DocumentRef, query string) bool {
	if containsSubstring(doc.Basename(), query, s.caseSensitive) {
		return true
	}
	for _, alias := range doc.Aliases {
		if containsSubstring(alias, query, s.caseSensitive) {
			return true
		}
	}
	return false
}

func containsSubstring(haystack, needle string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SanitizeName strips characters that cannot appear in a note file name and
// trims surrounding whitespace.
func SanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(cleaned)
}
