package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func collectMsg(t *testing.T, w *VaultWatcher) tea.Msg {
	t.Helper()

	msgs := make(chan tea.Msg, 1)
	go func() {
		msgs <- w.Start()()
	}()

	select {
	case msg := <-msgs:
		return msg
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher message")
		return nil
	}
}

func TestWatcherReportsMarkdownWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := NewVaultWatcher(dir, false)
	if err != nil {
		t.Fatalf("NewVaultWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	var seen string
	w.OnChange(func(rel string) { seen = rel })

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "note.md"), []byte("# hi"), 0o644)
	}()

	msg := collectMsg(t, w)
	changed, ok := msg.(DocumentChangedMsg)
	if !ok {
		t.Fatalf("msg = %T, want DocumentChangedMsg", msg)
	}
	if changed.Path != "note.md" {
		t.Errorf("path = %q, want note.md", changed.Path)
	}
	if seen != "note.md" {
		t.Errorf("callback path = %q, want note.md", seen)
	}
}

func TestWatcherIgnoresNonMarkdownInNotesOnlyMode(t *testing.T) {
	dir := t.TempDir()

	w, err := NewVaultWatcher(dir, false)
	if err != nil {
		t.Fatalf("NewVaultWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "image.png"), []byte{1}, 0o644)
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "note.md"), []byte("# hi"), 0o644)
	}()

	msg := collectMsg(t, w)
	changed, ok := msg.(DocumentChangedMsg)
	if !ok {
		t.Fatalf("msg = %T, want DocumentChangedMsg", msg)
	}
	if changed.Path != "note.md" {
		t.Errorf("path = %q, want note.md (png should be skipped)", changed.Path)
	}
}

func TestWatcherIncludeAllReportsAnyFile(t *testing.T) {
	dir := t.TempDir()

	w, err := NewVaultWatcher(dir, true)
	if err != nil {
		t.Fatalf("NewVaultWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "image.png"), []byte{1}, 0o644)
	}()

	msg := collectMsg(t, w)
	if changed, ok := msg.(DocumentChangedMsg); !ok || changed.Path != "image.png" {
		t.Fatalf("msg = %#v, want DocumentChangedMsg{image.png}", msg)
	}
}

func TestWatcherCloseUnblocksStart(t *testing.T) {
	dir := t.TempDir()

	w, err := NewVaultWatcher(dir, false)
	if err != nil {
		t.Fatalf("NewVaultWatcher: %v", err)
	}

	msgs := make(chan tea.Msg, 1)
	go func() {
		msgs <- w.Start()()
	}()

	time.Sleep(50 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case msg := <-msgs:
		if msg != nil {
			t.Errorf("msg after close = %#v, want nil", msg)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Start did not return after Close")
	}

	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestHiddenComponent(t *testing.T) {
	if !hiddenComponent(".obsidian/bookmarks.json") {
		t.Error("dot directory path should be hidden")
	}
	if hiddenComponent("notes/daily.md") {
		t.Error("plain path reported hidden")
	}
}
