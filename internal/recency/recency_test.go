package recency

import (
	"testing"
	"time"

	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

func fixedRanker(now time.Time) Ranker {
	return Ranker{Now: func() time.Time { return now }}
}

func doc(path string, modified time.Time) vault.DocumentRef {
	return vault.DocumentRef{Path: path, Name: path, Extension: "md", ModifiedAt: modified}
}

func TestRankOpenedDocumentOutranksNewerMtime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	snapshot := vault.Snapshot{
		doc("a.md", time.UnixMilli(1000)),
		doc("b.md", time.UnixMilli(2000)),
	}

	entries, err := fixedRanker(now).Rank(snapshot, []string{"a.md"}, 2)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Document.Path != "a.md" || entries[1].Document.Path != "b.md" {
		t.Fatalf("expected order [a.md b.md], got [%s %s]",
			entries[0].Document.Path, entries[1].Document.Path)
	}
	if !entries[0].Score.Equal(now) {
		t.Fatalf("expected synthetic access time now for a.md, got %v", entries[0].Score)
	}
}

func TestRankDecaysByListPosition(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	snapshot := vault.Snapshot{
		doc("first.md", time.Time{}),
		doc("second.md", time.Time{}),
		doc("third.md", time.Time{}),
	}

	entries, err := fixedRanker(now).Rank(snapshot, []string{"second.md", "third.md", "first.md"}, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	want := []string{"second.md", "third.md", "first.md"}
	for i, w := range want {
		if entries[i].Document.Path != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, entries[i].Document.Path)
		}
	}

	if got := entries[0].Score.Sub(entries[1].Score); got != time.Minute {
		t.Fatalf("expected one decay step between positions, got %v", got)
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	now := time.Now()
	snapshot := vault.Snapshot{
		doc("a.md", now.Add(-1*time.Hour)),
		doc("b.md", now.Add(-2*time.Hour)),
		doc("c.md", now.Add(-3*time.Hour)),
	}

	entries, err := Rank(snapshot, nil, 2)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(entries))
	}
	if entries[0].Document.Path != "a.md" {
		t.Fatalf("expected newest first, got %s", entries[0].Document.Path)
	}
}

func TestRankStableForEqualScores(t *testing.T) {
	modified := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	snapshot := vault.Snapshot{
		doc("x.md", modified),
		doc("y.md", modified),
		doc("z.md", modified),
	}

	first, err := Rank(snapshot, nil, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	second, err := Rank(snapshot, nil, 3)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	for i := range first {
		if first[i].Document.Path != snapshot[i].Path {
			t.Fatalf("expected snapshot order preserved for ties, got %s at %d",
				first[i].Document.Path, i)
		}
		if first[i].Document.Path != second[i].Document.Path {
			t.Fatalf("expected deterministic output, diverged at %d", i)
		}
	}
}

func TestRankIgnoresUnknownRecentPaths(t *testing.T) {
	snapshot := vault.Snapshot{doc("a.md", time.UnixMilli(1000))}

	entries, err := Rank(snapshot, []string{"ghost.md", "a.md"}, 5)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Document.Path != "a.md" {
		t.Fatalf("expected only a.md, got %v", entries)
	}
}

func TestRankRejectsInvalidLimit(t *testing.T) {
	if _, err := Rank(vault.Snapshot{doc("a.md", time.Now())}, nil, 0); err != ErrInvalidLimit {
		t.Fatalf("expected ErrInvalidLimit for limit 0, got %v", err)
	}
	if _, err := Rank(vault.Snapshot{doc("a.md", time.Now())}, nil, -1); err != ErrInvalidLimit {
		t.Fatalf("expected ErrInvalidLimit for negative limit, got %v", err)
	}
}

func TestRankEmptySnapshot(t *testing.T) {
	entries, err := Rank(nil, []string{"a.md"}, 10)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %v", entries)
	}
}
