// Package ratelimit implements a fixed-window in-memory request limiter
// keyed by client address.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request counts in fixed windows per client.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string]*window
}

type window struct {
	count     int
	windowEnd time.Time
}

// NewLimiter creates a limiter allowing limit requests per windowDuration
// for each client key.
func NewLimiter(limit int, windowDuration time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  windowDuration,
		clients: make(map[string]*window),
	}
}

// Allow reports whether the client identified by key is within its budget.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	win := l.clients[key]
	if win == nil || now.After(win.windowEnd) {
		l.clients[key] = &window{
			count:     1,
			windowEnd: now.Add(l.window),
		}
		return true
	}

	if win.count < l.limit {
		win.count++
		return true
	}

	return false
}

// StartCleanup periodically evicts stale windows to limit memory usage.
func (l *Limiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			l.mu.Lock()
			now := time.Now()
			for key, win := range l.clients {
				if now.After(win.windowEnd.Add(5 * time.Minute)) {
					delete(l.clients, key)
				}
			}
			l.mu.Unlock()
		}
	}()
}
