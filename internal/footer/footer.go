package footer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kuzzh/obsidian-startpage/internal/config"
	"github.com/kuzzh/obsidian-startpage/internal/constants"
)

var (
	// ErrFetchFailed wraps any network or decode failure while retrieving a
	// daily quote. Callers fall back to the default footer text.
	ErrFetchFailed = errors.New("failed to fetch daily quote")

	// ErrEmptyQuote is returned when a provider responds without usable text.
	ErrEmptyQuote = errors.New("daily quote response is empty")
)

// Cache persists one daily quote entry per language across sessions. The
// settings record satisfies this.
type Cache interface {
	QuoteEntry(lang string) string
	SetQuoteEntry(lang, entry string) error
	ClearQuoteEntry(lang string) error
}

// Service resolves the footer line shown at the bottom of the start page:
// either a fixed message, a user-configured one, or a once-per-day fetched
// quote cached in the settings file.
type Service struct {
	cache     Cache
	client    *http.Client
	now       func() time.Time
	endpoints map[string]string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService wires a footer service against the quote cache. The HTTP
// client carries the fetch deadline so a slow provider cannot stall the UI
// beyond it.
func NewService(cache Cache) *Service {
	return &Service{
		cache:  cache,
		client: &http.Client{Timeout: constants.QuoteFetchTimeout},
		now:    time.Now,
		endpoints: map[string]string{
			config.LangEN: constants.QuoteEndpointEN,
			config.LangZH: constants.QuoteEndpointZH,
		},
		inFlight: make(map[string]struct{}),
	}
}

// Text resolves the footer for the given settings. It never returns an
// error: any failure along the quote path degrades to the default text so
// the start page always renders.
func (s *Service) Text(ctx context.Context, settings *config.Settings, forceRefresh bool) string {
	if settings == nil || !settings.ShowCustomFooter {
		return constants.DefaultFooterText
	}

	if !settings.UseRandomFooter {
		if text := strings.TrimSpace(settings.CustomFooterText); text != "" {
			return text
		}
		return constants.DefaultFooterText
	}

	text, err := s.DailyQuote(ctx, settings.Language, forceRefresh)
	if err != nil {
		log.Printf("daily quote unavailable: %v", err)
		return constants.DefaultFooterText
	}
	return text
}

// DailyQuote returns today's quote for a language, fetching at most once per
// day. Entries persist as "YYYY-MM-DD|text"; a stale or missing entry
// triggers a fetch, and fetch failures are never written back so the next
// call retries.
func (s *Service) DailyQuote(ctx context.Context, lang string, forceRefresh bool) (string, error) {
	if !config.ValidLanguages[lang] {
		lang = config.LangEN
	}

	if forceRefresh {
		if err := s.cache.ClearQuoteEntry(lang); err != nil {
			return "", err
		}
	}

	today := s.now().Format("2006-01-02")
	if text, ok := cachedFor(s.cache.QuoteEntry(lang), today); ok {
		return text, nil
	}

	if !s.begin(lang) {
		// Another refresh for this language is already running. Serve the
		// fallback now rather than blocking the caller behind it.
		return "", ErrFetchFailed
	}
	defer s.end(lang)

	text, err := s.fetch(ctx, lang)
	if err != nil {
		return "", err
	}

	if err := s.cache.SetQuoteEntry(lang, today+"|"+text); err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) begin(lang string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[lang]; busy {
		return false
	}
	s.inFlight[lang] = struct{}{}
	return true
}

func (s *Service) end(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, lang)
}

// cachedFor parses a "YYYY-MM-DD|text" entry and returns the text when the
// stamp matches today.
func cachedFor(entry, today string) (string, bool) {
	stamp, text, found := strings.Cut(entry, "|")
	if !found || stamp != today || text == "" {
		return "", false
	}
	return text, true
}

func (s *Service) fetch(ctx context.Context, lang string) (string, error) {
	endpoint, ok := s.endpoints[lang]
	if !ok {
		endpoint = s.endpoints[config.LangEN]
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	text, err := decodeQuote(lang, body)
	if err != nil {
		return "", err
	}
	return text, nil
}

type quotablePayload struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type jinrishiciPayload struct {
	Data struct {
		Content string `json:"content"`
		Origin  struct {
			Author string `json:"author"`
		} `json:"origin"`
	} `json:"data"`
}

func decodeQuote(lang string, body []byte) (string, error) {
	switch lang {
	case config.LangZH:
		var payload jinrishiciPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", fmt.Errorf("%w: %s", ErrFetchFailed, err)
		}
		return formatQuote(payload.Data.Content, payload.Data.Origin.Author)
	default:
		var payload quotablePayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", fmt.Errorf("%w: %s", ErrFetchFailed, err)
		}
		return formatQuote(payload.Content, payload.Author)
	}
}

func formatQuote(content, author string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyQuote
	}
	// The cache entry format reserves "|" as the date separator.
	content = strings.ReplaceAll(content, "|", "/")
	author = strings.TrimSpace(strings.ReplaceAll(author, "|", "/"))
	if author == "" {
		return content, nil
	}
	return content + " - " + author, nil
}
