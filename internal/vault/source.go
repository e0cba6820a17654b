package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kuzzh/obsidian-startpage/internal/pathutil"
)

// Source reads document snapshots from a vault directory. It is the only
// component that touches the filesystem; everything downstream works on the
// immutable Snapshot it produces.
type Source struct {
	vaultDir    string
	excludeList []string
	includeAll  bool

	readFile func(string) ([]byte, error)
}

// NewSource constructs a Source rooted at vaultDir. When includeAll is false
// only markdown notes appear in snapshots; excludeList entries are matched
// against vault-relative path prefixes.
func NewSource(vaultDir string, excludeList []string, includeAll bool) (*Source, error) {
	normalized := pathutil.NormalizePath(vaultDir)
	if normalized == "" || normalized == "." {
		return nil, errors.New("vault directory cannot be empty")
	}

	return &Source{
		vaultDir:    normalized,
		excludeList: append([]string(nil), excludeList...),
		includeAll:  includeAll,
		readFile:    os.ReadFile,
	}, nil
}

// VaultDir returns the normalized vault root.
func (s *Source) VaultDir() string {
	return s.vaultDir
}

// Abs converts a vault-relative document path back to an absolute path.
func (s *Source) Abs(rel string) string {
	return filepath.Join(s.vaultDir, filepath.FromSlash(rel))
}

// Snapshot walks the vault and returns the current document set in
// deterministic sorted-path order. Unreadable files are skipped rather than
// failing the whole snapshot.
func (s *Source) Snapshot() (Snapshot, error) {
	if s == nil {
		return nil, errors.New("nil vault source")
	}

	var docs Snapshot
	err := filepath.WalkDir(s.vaultDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		rel, relErr := pathutil.VaultRelative(s.vaultDir, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if s.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || s.excluded(rel) {
			return nil
		}

		isMarkdown := strings.EqualFold(filepath.Ext(d.Name()), ".md")
		if !s.includeAll && !isMarkdown {
			return nil
		}

		info, statErr := d.Info()
		if statErr != nil {
			return nil
		}

		var aliases []string
		if isMarkdown {
			if content, readErr := s.readFile(path); readErr == nil {
				aliases = ParseAliases(content).Strings()
			}
		}

		docs = append(docs, newDocumentRef(rel, info.Size(), info.ModTime(), aliases))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Path < docs[j].Path
	})
	return docs, nil
}

// ReadContent returns the raw bytes of a document, addressed by its
// vault-relative path.
func (s *Source) ReadContent(rel string) ([]byte, error) {
	return s.readFile(s.Abs(rel))
}

// Exists reports whether a vault-relative path currently resolves to a file.
func (s *Source) Exists(rel string) bool {
	info, err := os.Stat(s.Abs(rel))
	return err == nil && !info.IsDir()
}

// Create writes an empty document at the vault-relative path, creating
// parent directories as needed. It refuses to clobber an existing file.
func (s *Source) Create(rel string) error {
	abs := s.Abs(rel)
	if _, err := os.Stat(abs); err == nil {
		return fs.ErrExist
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(""), 0o644)
}

func (s *Source) excluded(rel string) bool {
	if len(s.excludeList) == 0 {
		return false
	}
	slashed := filepath.ToSlash(rel)
	for _, entry := range s.excludeList {
		cleaned := strings.Trim(filepath.ToSlash(strings.TrimSpace(entry)), "/")
		if cleaned == "" {
			continue
		}
		if slashed == cleaned || strings.HasPrefix(slashed, cleaned+"/") {
			return true
		}
	}
	return false
}
