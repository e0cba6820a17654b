package recency

import (
	"errors"
	"sort"
	"time"

	"github.com/kuzzh/obsidian-startpage/internal/constants"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// ErrInvalidLimit signals a non-positive recent list limit.
var ErrInvalidLimit = errors.New("recency: limit must be positive")

// Entry pairs a document with the score that ranked it.
type Entry struct {
	Document vault.DocumentRef
	Score    time.Time
}

// Ranker computes the recency ordering of a snapshot. The recently-opened
// list only exposes an order, so a synthetic access time is derived from
// rank position: the i-th entry is treated as opened i decay steps ago. The
// step is an ordering surrogate, not a real timestamp.
type Ranker struct {
	// DecayStep is the per-position decay. Zero selects the default.
	DecayStep time.Duration

	// Now is injectable for tests; nil selects time.Now.
	Now func() time.Time
}

func (r Ranker) decayStep() time.Duration {
	if r.DecayStep > 0 {
		return r.DecayStep
	}
	return constants.RecencyDecayStep
}

func (r Ranker) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Rank returns up to limit documents ordered by descending recency score,
// where the score is the greater of the document's modified time and its
// synthetic access time. Ties keep snapshot enumeration order. Paths in
// recentlyOpened that are absent from the snapshot are ignored.
func Rank(snapshot vault.Snapshot, recentlyOpened []string, limit int) ([]Entry, error) {
	return Ranker{}.Rank(snapshot, recentlyOpened, limit)
}

// Rank implements the ordering contract; see the package-level Rank.
func (r Ranker) Rank(snapshot vault.Snapshot, recentlyOpened []string, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if len(snapshot) == 0 {
		return nil, nil
	}

	now := r.now()
	step := r.decayStep()

	accessTimes := make(map[string]time.Time, len(recentlyOpened))
	for i, path := range recentlyOpened {
		if _, seen := accessTimes[path]; seen {
			continue
		}
		accessTimes[path] = now.Add(-time.Duration(i) * step)
	}

	entries := make([]Entry, 0, len(snapshot))
	for _, doc := range snapshot {
		score := doc.ModifiedAt
		if access, ok := accessTimes[doc.Path]; ok && access.After(score) {
			score = access
		}
		entries = append(entries, Entry{Document: doc, Score: score})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score.After(entries[j].Score)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
