package vault

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeVaultFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestSnapshotOrderAndMetadata(t *testing.T) {
	dir := t.TempDir()
	writeVaultFile(t, dir, "b.md", "# b")
	writeVaultFile(t, dir, "a.md", "# a")
	writeVaultFile(t, dir, "sub/nested.md", "# nested")

	src, err := NewSource(dir, nil, true)
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}

	snap, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	if len(snap) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(snap))
	}
	if snap[0].Path != "a.md" || snap[1].Path != "b.md" || snap[2].Path != "sub/nested.md" {
		t.Fatalf("expected sorted path order, got %v", snap)
	}

	nested := snap[2]
	if nested.Name != "nested.md" || nested.Extension != "md" {
		t.Fatalf("unexpected name/extension: %q %q", nested.Name, nested.Extension)
	}
	if nested.ParentFolder != "/sub" {
		t.Fatalf("expected parent folder /sub, got %q", nested.ParentFolder)
	}
	if nested.SizeBytes == 0 {
		t.Fatalf("expected non-zero size")
	}
}

func TestSnapshotRespectsExcludeListAndDotDirs(t *testing.T) {
	dir := t.TempDir()
	writeVaultFile(t, dir, "keep.md", "keep")
	writeVaultFile(t, dir, "archive/old.md", "old")
	writeVaultFile(t, dir, ".obsidian/workspace.json", "{}")

	src, err := NewSource(dir, []string{"archive"}, true)
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}

	snap, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	if len(snap) != 1 || snap[0].Path != "keep.md" {
		t.Fatalf("expected only keep.md, got %v", snap)
	}
}

func TestSnapshotMarkdownOnlyMode(t *testing.T) {
	dir := t.TempDir()
	writeVaultFile(t, dir, "note.md", "note")
	writeVaultFile(t, dir, "image.png", "binary")

	src, err := NewSource(dir, nil, false)
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}

	snap, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if len(snap) != 1 || snap[0].Path != "note.md" {
		t.Fatalf("expected markdown-only snapshot, got %v", snap)
	}
}

func TestSnapshotExtractsAliases(t *testing.T) {
	dir := t.TempDir()
	writeVaultFile(t, dir, "single.md", "---\naliases: proj\n---\nbody")
	writeVaultFile(t, dir, "many.md", "---\naliases:\n  - proj-x\n  - px\n---\nbody")
	writeVaultFile(t, dir, "none.md", "no frontmatter here")

	src, err := NewSource(dir, nil, false)
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}

	snap, err := src.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	byPath := map[string][]string{}
	for _, doc := range snap {
		byPath[doc.Path] = doc.Aliases
	}

	if got := byPath["single.md"]; len(got) != 1 || got[0] != "proj" {
		t.Fatalf("expected scalar alias normalized to slice, got %v", got)
	}
	if got := byPath["many.md"]; len(got) != 2 || got[1] != "px" {
		t.Fatalf("expected sequence aliases preserved, got %v", got)
	}
	if got := byPath["none.md"]; got != nil {
		t.Fatalf("expected no aliases, got %v", got)
	}
}

func TestCreateRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	writeVaultFile(t, dir, "existing.md", "content")

	src, err := NewSource(dir, nil, true)
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}

	if err := src.Create("existing.md"); err == nil {
		t.Fatalf("expected error creating over existing file")
	}
	if err := src.Create("fresh.md"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !src.Exists("fresh.md") {
		t.Fatalf("expected fresh.md to exist after Create")
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	snap := Snapshot{
		{Path: "a.md", Extension: "md", SizeBytes: 100, ModifiedAt: now.Add(-time.Hour)},
		{Path: "b.md", Extension: "md", SizeBytes: 200, ModifiedAt: now.Add(-48 * time.Hour)},
		{Path: "c.png", Extension: "png", SizeBytes: 700, ModifiedAt: now},
	}

	stats := ComputeStats(snap, now)
	if stats.TotalNotes != 2 {
		t.Fatalf("expected 2 markdown notes, got %d", stats.TotalNotes)
	}
	if stats.TodayEdited != 1 {
		t.Fatalf("expected 1 note edited today, got %d", stats.TodayEdited)
	}
	if stats.TotalSize != 1000 {
		t.Fatalf("expected total size 1000, got %d", stats.TotalSize)
	}
}

func TestReadableSize(t *testing.T) {
	if got := ReadableSize(512); got != "512 B" {
		t.Fatalf("expected '512 B', got %q", got)
	}
	if got := ReadableSize(2048); got != "2.0 KB" {
		t.Fatalf("expected '2.0 KB', got %q", got)
	}
}
