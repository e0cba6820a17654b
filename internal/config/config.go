package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kuzzh/obsidian-startpage/internal/constants"
)

// Language keys accepted for the daily footer quote.
const (
	LangEN = "en"
	LangZH = "zh"
)

var ValidLanguages = map[string]bool{
	LangEN: true,
	LangZH: true,
}

// Settings is the single persisted settings record for the start page. The
// pinned list, the recently-opened list, and the daily quote cache entries
// all live here; components receive the loaded *Settings explicitly rather
// than reaching for ambient global state.
type Settings struct {
	VaultDir        string   `yaml:"vaultdir"          json:"vault_dir"`
	Editor          string   `yaml:"editor"            json:"editor"`
	RecentLimit     int      `yaml:"recent_limit"      json:"recent_limit"`
	IncludeAllFiles bool     `yaml:"include_all_files" json:"include_all_files"`
	PinnedNotes     []string `yaml:"pinned_notes"      json:"pinned_notes"`
	RecentlyOpened  []string `yaml:"recently_opened"   json:"recently_opened"`
	ExcludeList     []string `yaml:"exclude_list"      json:"exclude_list"`

	ShowCustomFooter bool              `yaml:"show_custom_footer" json:"show_custom_footer"`
	UseRandomFooter  bool              `yaml:"use_random_footer"  json:"use_random_footer"`
	CustomFooterText string            `yaml:"custom_footer_text" json:"custom_footer_text"`
	Language         string            `yaml:"language"           json:"language"`
	DailyQuotes      map[string]string `yaml:"daily_quotes"       json:"daily_quotes"`

	ShowStatBar    bool `yaml:"show_stat_bar"   json:"show_stat_bar"`
	ScrollPosition int  `yaml:"scroll_position" json:"scroll_position"`

	home string `yaml:"-" json:"-"`
}

func newSettings(home string) *Settings {
	return &Settings{
		RecentLimit:     constants.DefaultRecentLimit,
		IncludeAllFiles: true,
		PinnedNotes:     []string{},
		RecentlyOpened:  []string{},
		ExcludeList:     []string{},
		Language:        LangEN,
		DailyQuotes:     make(map[string]string),
		ShowStatBar:     true,
		home:            home,
	}
}

func (s *Settings) ensureDefaults() {
	if s.RecentLimit < constants.MinRecentLimit {
		s.RecentLimit = constants.DefaultRecentLimit
	}
	if s.PinnedNotes == nil {
		s.PinnedNotes = []string{}
	}
	if s.RecentlyOpened == nil {
		s.RecentlyOpened = []string{}
	}
	if s.ExcludeList == nil {
		s.ExcludeList = []string{}
	}
	if s.DailyQuotes == nil {
		s.DailyQuotes = make(map[string]string)
	}
	if !ValidLanguages[s.Language] {
		s.Language = LangEN
	}
}

// Load reads the settings file under the provided home directory. An empty
// file yields defaults rather than an error so a freshly-initialized config
// is usable immediately.
func Load(home string) (*Settings, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := newSettings(home)
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, err
		}
	}

	s.home = home
	s.ensureDefaults()
	s.syncViper()

	return s, nil
}

func (s *Settings) syncViper() {
	viper.Set("vaultdir", s.VaultDir)
	viper.Set("vaultDir", s.VaultDir)
	viper.Set("editor", s.Editor)
	viper.Set("recent_limit", s.RecentLimit)
	viper.Set("include_all_files", s.IncludeAllFiles)
	viper.Set("language", s.Language)
	if s.ExcludeList == nil {
		viper.Set("exclude_list", []string{})
	} else {
		viper.Set("exclude_list", append([]string(nil), s.ExcludeList...))
	}
}

// GetConfigPath returns the settings file location under the home directory.
func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

func (s *Settings) configPath() string {
	if s.home != "" {
		return GetConfigPath(s.home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

// Save writes the settings record back to disk and refreshes the viper
// mirror. Failures are returned to the caller; in-memory state is not rolled
// back.
func (s *Settings) Save() error {
	s.syncViper()

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	path := s.configPath()
	if path == "" {
		return fmt.Errorf("cannot resolve settings path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// SetPinnedNotes replaces the persisted pinned list and saves.
func (s *Settings) SetPinnedNotes(paths []string) error {
	s.PinnedNotes = append([]string(nil), paths...)
	return s.Save()
}

// SetRecentLimit updates the recent list size. Non-positive values are
// clamped to the minimum rather than rejected; the UI adjusts the limit in
// coarse increments and a zero from a bad parse should not wedge the page.
func (s *Settings) SetRecentLimit(limit int) error {
	if limit < constants.MinRecentLimit {
		limit = constants.MinRecentLimit
	}
	s.RecentLimit = limit
	return s.Save()
}

// SetLanguage changes the quote language after validation.
func (s *Settings) SetLanguage(lang string) error {
	if !ValidLanguages[lang] {
		return fmt.Errorf("invalid language: %q. Valid options are 'en' and 'zh'", lang)
	}
	s.Language = lang
	return s.Save()
}

// TouchRecentlyOpened moves path to the front of the recently-opened list,
// deduplicating and capping the retained history.
func (s *Settings) TouchRecentlyOpened(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	updated := make([]string, 0, len(s.RecentlyOpened)+1)
	updated = append(updated, path)
	for _, existing := range s.RecentlyOpened {
		if existing == path {
			continue
		}
		updated = append(updated, existing)
	}
	if len(updated) > constants.RecentlyOpenedCap {
		updated = updated[:constants.RecentlyOpenedCap]
	}

	s.RecentlyOpened = updated
	return s.Save()
}

// QuoteEntry returns the raw cached daily quote entry for a language key.
func (s *Settings) QuoteEntry(lang string) string {
	if s.DailyQuotes == nil {
		return ""
	}
	return s.DailyQuotes[lang]
}

// SetQuoteEntry persists a daily quote cache entry for a language key.
func (s *Settings) SetQuoteEntry(lang, entry string) error {
	if s.DailyQuotes == nil {
		s.DailyQuotes = make(map[string]string)
	}
	s.DailyQuotes[lang] = entry
	return s.Save()
}

// ClearQuoteEntry drops a cached daily quote so the next lookup refetches.
func (s *Settings) ClearQuoteEntry(lang string) error {
	if s.DailyQuotes == nil {
		return nil
	}
	delete(s.DailyQuotes, lang)
	return s.Save()
}

// SetScrollPosition records the start page cursor position. Callers are
// expected to debounce; this writes through to disk.
func (s *Settings) SetScrollPosition(pos int) error {
	if pos < 0 {
		pos = 0
	}
	s.ScrollPosition = pos
	return s.Save()
}
