// Package cooldown tracks per-key rate limiters, typically one per
// guild/user pair, so callers can throttle repeated command use without
// keeping limiter bookkeeping themselves.
//
// Example usage:
//
//	cd := cooldown.New(3*time.Second, 1)
//	if !cd.Allow("guild:user") {
//	    // tell the user to slow down
//	}
//
// Idle entries are dropped lazily; call Sweep from a background job if
// the key space is unbounded.
package cooldown

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Tracker manages one rate.Limiter per key. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	entries  map[string]*entry
	interval time.Duration
	burst    int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a Tracker allowing one event per interval with the given
// burst. A burst below 1 is treated as 1.
func New(interval time.Duration, burst int) *Tracker {
	if burst < 1 {
		burst = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Tracker{
		entries:  make(map[string]*entry),
		interval: interval,
		burst:    burst,
	}
}

// Allow reports whether an event for key may proceed now.
func (t *Tracker) Allow(key string) bool {
	return t.get(key).Allow()
}

// Retry returns how long the caller should wait before the next event
// for key is allowed. Zero means it may proceed immediately.
func (t *Tracker) Retry(key string) time.Duration {
	r := t.get(key).Reserve()
	if !r.OK() {
		return t.interval
	}
	delay := r.Delay()
	r.Cancel()
	return delay
}

// Sweep removes entries idle for longer than maxIdle and returns how
// many were dropped.
func (t *Tracker) Sweep(maxIdle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	dropped := 0
	for key, e := range t.entries {
		if e.lastSeen.Before(cutoff) {
			delete(t.entries, key)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of tracked keys.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Tracker) get(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Every(t.interval), t.burst)}
		t.entries[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}
