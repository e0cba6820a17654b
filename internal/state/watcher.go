package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kuzzh/obsidian-startpage/internal/pathutil"
)

// DocumentChangedMsg reports a created, written, removed or renamed vault
// document by its vault-relative path.
type DocumentChangedMsg struct {
	Path string
}

// WatcherErrMsg surfaces a watcher failure to the running program.
type WatcherErrMsg struct {
	Err error
}

// VaultWatcher streams document changes out of the vault directory tree so
// the start page can refresh its lists without polling. Directories created
// while watching are picked up; dot directories such as .obsidian are not
// watched.
type VaultWatcher struct {
	watcher    *fsnotify.Watcher
	vault      string
	includeAll bool
	done       chan struct{}
	once       sync.Once
	onChange   func(string)
}

func NewVaultWatcher(vaultDir string, includeAll bool) (*VaultWatcher, error) {
	normalized := pathutil.NormalizePath(vaultDir)
	if normalized == "" {
		return nil, errors.New("vault directory cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &VaultWatcher{
		watcher:    w,
		vault:      normalized,
		includeAll: includeAll,
		done:       make(chan struct{}),
	}

	if err := watcher.addRecursive(normalized); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

// Start returns a command that blocks until the next relevant vault event
// and reports it as a message. The caller re-invokes it after each message
// to keep listening.
func (w *VaultWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursive(event.Name)
						continue
					}
				}

				rel, ok := w.relevantPath(event)
				if !ok {
					continue
				}

				if w.onChange != nil {
					w.onChange(rel)
				}
				return DocumentChangedMsg{Path: rel}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

// OnChange registers a callback invoked with the relative path of every
// relevant change, in addition to the message emitted from Start.
func (w *VaultWatcher) OnChange(fn func(string)) {
	if w == nil {
		return
	}
	w.onChange = fn
}

func (w *VaultWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *VaultWatcher) addRecursive(root string) error {
	normalized := pathutil.NormalizePath(root)
	return filepath.WalkDir(normalized, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && path != normalized {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
}

func (w *VaultWatcher) relevantPath(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}

	rel, err := w.relativePath(event.Name)
	if err != nil || rel == "" {
		return "", false
	}

	if hiddenComponent(rel) {
		return "", false
	}
	if !w.includeAll && !strings.EqualFold(filepath.Ext(rel), ".md") {
		return "", false
	}

	return rel, true
}

func (w *VaultWatcher) relativePath(path string) (string, error) {
	normalized := pathutil.NormalizePath(path)
	rel, err := pathutil.VaultRelative(w.vault, normalized)
	if err != nil {
		return "", err
	}

	if rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
		return "", nil
	}

	return rel, nil
}

func hiddenComponent(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
