package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store decides whether a client may issue another request in the current
// window. Implementations must be safe for concurrent use.
//
// The limiter is a coarse abuse-prevention control, not a billing-grade one:
// the in-memory store resets on process restart, and in a multi-instance
// deployment each instance enforces its own independent quota.
type Store interface {
	// Allow records one request attempt for clientID and reports whether it
	// is within the configured ceiling for the current window.
	Allow(ctx context.Context, clientID string) (bool, error)
}

type window struct {
	count   int
	startAt time.Time
}

// MemoryStore is a fixed-window, per-client request counter held in process
// memory behind a mutex. A janitor goroutine evicts entries whose window has
// expired so the map does not grow with the number of distinct clients seen.
type MemoryStore struct {
	mu      sync.Mutex
	clients map[string]*window

	limit    int
	interval time.Duration

	stop chan struct{}
}

func NewMemoryStore(limit int, interval time.Duration) *MemoryStore {
	s := &MemoryStore{
		clients:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Allow implements Store.
//
// Requests past the ceiling do not increment the count further; an already
// limited window stays at the ceiling rather than growing unbounded.
func (s *MemoryStore) Allow(_ context.Context, clientID string) (bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.clients[clientID]
	if !ok || now.Sub(w.startAt) >= s.interval {
		s.clients[clientID] = &window{count: 1, startAt: now}
		return true, nil
	}

	if w.count >= s.limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() error {
	close(s.stop)
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, w := range s.clients {
				if now.Sub(w.startAt) >= s.interval {
					delete(s.clients, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
