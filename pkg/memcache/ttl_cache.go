// Package mem holds short-lived read caches.
package mem

import (
	"context"
	"sync"
	"time"
)

// Clock returns the current time. Tests pass a fake one.
type Clock func() time.Time

type Cache[V any] interface {
	// Get returns the value for key when present and not expired.
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is an in-process Cache whose entries expire after their ttl.
type TTLCache[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  Clock
}

func NewTTLCache[V any](now Clock) *TTLCache[V] {
	if now == nil {
		now = time.Now
	}
	return &TTLCache[V]{
		data: make(map[string]entry[V]),
		now:  now,
	}
}

func (s *TTLCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLCache[V]) Get(_ context.Context, key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		// re-check: a concurrent Set may have refreshed the entry
		if cur, still := s.data[key]; still && !s.now().Before(cur.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *TTLCache[V]) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len counts stored entries, expired ones included until they are read.
func (s *TTLCache[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
