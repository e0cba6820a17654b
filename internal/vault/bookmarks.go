package vault

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// bookmarkItem mirrors one entry of Obsidian's .obsidian/bookmarks.json.
// Groups nest arbitrarily; only file entries carry a path.
type bookmarkItem struct {
	Type  string         `json:"type"`
	Path  string         `json:"path"`
	Items []bookmarkItem `json:"items"`
}

type bookmarkFile struct {
	Items []bookmarkItem `json:"items"`
}

// ListBookmarkedPaths reads the vault's bookmark file and returns the
// bookmarked document paths in file order, flattening nested groups. A
// missing bookmark file is not an error; it simply yields no paths.
func (s *Source) ListBookmarkedPaths() ([]string, error) {
	path := filepath.Join(s.vaultDir, ".obsidian", "bookmarks.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var parsed bookmarkFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	var paths []string
	var walk func(items []bookmarkItem)
	walk = func(items []bookmarkItem) {
		for _, item := range items {
			if item.Type == "file" && strings.TrimSpace(item.Path) != "" {
				paths = append(paths, filepath.ToSlash(item.Path))
			}
			if len(item.Items) > 0 {
				walk(item.Items)
			}
		}
	}
	walk(parsed.Items)

	return paths, nil
}
