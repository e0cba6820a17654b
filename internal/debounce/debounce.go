package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls per key: each Debounce resets the
// key's timer, so the callback fires once, delay after the last call. Keys
// are independent.
type Debouncer struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New returns a ready Debouncer.
func New() *Debouncer {
	return &Debouncer{timers: make(map[string]*time.Timer)}
}

// Debounce schedules fn to run after delay, cancelling any pending run for
// the same key. fn runs on a timer goroutine.
func (d *Debouncer) Debounce(key string, delay time.Duration, fn func()) {
	if d == nil || fn == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[key]; ok {
		timer.Stop()
	}
	d.timers[key] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending run for a key, if any. Cancelling an unknown key
// is a no-op.
func (d *Debouncer) Cancel(key string) {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[key]; ok {
		timer.Stop()
		delete(d.timers, key)
	}
}

// CancelAll drops every pending run. Safe to call repeatedly.
func (d *Debouncer) CancelAll() {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}

// Pending reports whether a run is scheduled for the key.
func (d *Debouncer) Pending(key string) bool {
	if d == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.timers[key]
	return ok
}
