package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter counts failures per key inside a sliding window. It is
// process-local.
type MemoryLimiter struct {
	mu       sync.Mutex
	history  map[string][]time.Time
	window   time.Duration
	maxFails int
	now      func() time.Time
}

func NewMemoryLimiter(window time.Duration, maxFails int) *MemoryLimiter {
	return &MemoryLimiter{
		history:  make(map[string][]time.Time),
		window:   window,
		maxFails: maxFails,
		now:      time.Now,
	}
}

// TooMany reports whether key has reached maxFails within the window.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	pruned := r.history[key][:0]
	for _, t := range r.history[key] {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) == 0 {
		delete(r.history, key)
		return false
	}
	r.history[key] = pruned
	return len(pruned) >= r.maxFails
}

func (r *MemoryLimiter) Fail(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.history[key], r.now())
}
