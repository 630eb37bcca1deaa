package requests

import (
	"sync"
	"time"
)

// RateLimiter enforces a fixed delay between outbound calls.
// The stats API has no published quota, a fixed spacing keeps it happy.
type RateLimiter struct {
	interval time.Duration

	// Last request and the mutex.
	lastRequest time.Time
	mu          sync.Mutex
}

// NewRateLimiter creates a instance of the rate limiter.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		interval: interval,
	}
}

// Wait blocks until the configured interval elapsed since the last call.
func (r *RateLimiter) Wait() {
	// Locks the limiter.
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed := time.Since(r.lastRequest)
	if elapsed < r.interval {
		time.Sleep(r.interval - elapsed)
	}

	r.lastRequest = time.Now()
}
