package vault

import (
	"fmt"
	"time"
)

// Stats summarizes a snapshot for the start page stat bar.
type Stats struct {
	TotalNotes  int
	TodayEdited int
	TotalSize   int64
}

// ComputeStats derives snapshot statistics relative to now. TodayEdited
// counts markdown notes modified since local midnight; TotalSize sums every
// document in the snapshot.
func ComputeStats(snapshot Snapshot, now time.Time) Stats {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := Stats{}
	for _, doc := range snapshot {
		stats.TotalSize += doc.SizeBytes
		if !doc.IsMarkdown() {
			continue
		}
		stats.TotalNotes++
		if !doc.ModifiedAt.Before(midnight) {
			stats.TodayEdited++
		}
	}
	return stats
}

// ReadableSize renders a byte count with a binary unit suffix.
func ReadableSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
