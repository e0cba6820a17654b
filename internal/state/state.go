package state

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/kuzzh/obsidian-startpage/internal/config"
	"github.com/kuzzh/obsidian-startpage/internal/constants"
	"github.com/kuzzh/obsidian-startpage/internal/debounce"
	"github.com/kuzzh/obsidian-startpage/internal/footer"
	"github.com/kuzzh/obsidian-startpage/internal/pinned"
	"github.com/kuzzh/obsidian-startpage/internal/recency"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// State wires the loaded settings to every service the commands and the
// start page share. One State is built per invocation and threaded through
// explicitly.
type State struct {
	Settings  *config.Settings
	Source    *vault.Source
	Pinned    *pinned.Manager
	Ranker    *recency.Ranker
	Footer    *footer.Service
	Debouncer *debounce.Debouncer
	Home      string
	Vault     string
	Watcher   *VaultWatcher
}

// NewState loads settings from the user's home directory and constructs the
// service graph. The vault watcher is optional: a vault that cannot be
// watched still yields a usable State.
func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	settings, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	source, err := vault.NewSource(settings.VaultDir, settings.ExcludeList, settings.IncludeAllFiles)
	if err != nil {
		return nil, err
	}

	manager := pinned.NewManager(settings.PinnedNotes, func(paths []string) error {
		return settings.SetPinnedNotes(paths)
	}, nil)

	watcher, err := NewVaultWatcher(settings.VaultDir, settings.IncludeAllFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault watcher: %w", err)
	}

	return &State{
		Settings:  settings,
		Source:    source,
		Pinned:    manager,
		Ranker:    &recency.Ranker{},
		Footer:    footer.NewService(settings),
		Debouncer: debounce.New(),
		Home:      home,
		Vault:     settings.VaultDir,
		Watcher:   watcher,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Settings, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// RecentDocuments ranks the current snapshot against the persisted
// recently-opened list, honoring the configured limit.
func (s *State) RecentDocuments() ([]recency.Entry, error) {
	snapshot, err := s.Source.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.Ranker.Rank(snapshot, s.Settings.RecentlyOpened, s.Settings.RecentLimit)
}

// Close releases the vault watcher and any pending debounced work.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	s.Debouncer.CancelAll()

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
