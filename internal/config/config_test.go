package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kuzzh/obsidian-startpage/internal/constants"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadEmptyFileYieldsDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if s.RecentLimit != constants.DefaultRecentLimit {
		t.Fatalf("expected default recent limit %d, got %d", constants.DefaultRecentLimit, s.RecentLimit)
	}
	if s.Language != LangEN {
		t.Fatalf("expected default language en, got %q", s.Language)
	}
	if s.PinnedNotes == nil || s.DailyQuotes == nil {
		t.Fatalf("expected collections to be initialized")
	}
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "recent_limit: -3\nlanguage: fr\n")

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if s.RecentLimit != constants.DefaultRecentLimit {
		t.Fatalf("expected clamped recent limit, got %d", s.RecentLimit)
	}
	if s.Language != LangEN {
		t.Fatalf("expected invalid language to fall back to en, got %q", s.Language)
	}
}

func TestSaveRoundTripsPinnedAndQuotes(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := s.SetPinnedNotes([]string{"a.md", "b.md"}); err != nil {
		t.Fatalf("SetPinnedNotes returned error: %v", err)
	}
	if err := s.SetQuoteEntry(LangZH, "2025-01-02|text"); err != nil {
		t.Fatalf("SetQuoteEntry returned error: %v", err)
	}

	reloaded, err := Load(home)
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if len(reloaded.PinnedNotes) != 2 || reloaded.PinnedNotes[0] != "a.md" {
		t.Fatalf("expected pinned notes to round-trip, got %v", reloaded.PinnedNotes)
	}
	if got := reloaded.QuoteEntry(LangZH); got != "2025-01-02|text" {
		t.Fatalf("expected quote entry to round-trip, got %q", got)
	}
}

func TestTouchRecentlyOpenedDeduplicatesAndCaps(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	for _, p := range []string{"a.md", "b.md", "a.md"} {
		if err := s.TouchRecentlyOpened(p); err != nil {
			t.Fatalf("TouchRecentlyOpened(%q) returned error: %v", p, err)
		}
	}

	if len(s.RecentlyOpened) != 2 {
		t.Fatalf("expected deduplicated list of 2, got %v", s.RecentlyOpened)
	}
	if s.RecentlyOpened[0] != "a.md" || s.RecentlyOpened[1] != "b.md" {
		t.Fatalf("expected most-recent-first order [a.md b.md], got %v", s.RecentlyOpened)
	}

	for i := 0; i < constants.RecentlyOpenedCap+10; i++ {
		if err := s.TouchRecentlyOpened(strings.Repeat("x", 2) + string(rune('a'+i%26)) + ".md"); err != nil {
			t.Fatalf("TouchRecentlyOpened returned error: %v", err)
		}
	}
	if len(s.RecentlyOpened) > constants.RecentlyOpenedCap {
		t.Fatalf("expected recently-opened list capped at %d, got %d", constants.RecentlyOpenedCap, len(s.RecentlyOpened))
	}
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "")

	s, err := Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := s.SetLanguage("fr"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
	if err := s.SetLanguage(LangZH); err != nil {
		t.Fatalf("SetLanguage(zh) returned error: %v", err)
	}
}

func TestEnsureConfigExistsRequiresVaultDir(t *testing.T) {
	home := t.TempDir()

	err := EnsureConfigExists(home)
	if err == nil {
		t.Fatalf("expected init error for missing VaultDir")
	}
	if _, ok := err.(*ConfigInitError); !ok {
		t.Fatalf("expected ConfigInitError, got %T: %v", err, err)
	}

	writeConfig(t, home, "vaultdir: /tmp/vault\n")
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error with vaultdir set: %v", err)
	}
}
