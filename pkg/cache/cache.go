// Package cache provides a TTL-bounded in-process cache.
//
// Each process owns its own cache; there is no cross-process coordination.
// Staleness is checked on read, expired entries are overwritten on the next
// write to the same key rather than swept in the background.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time for TTL checks so expiry can be tested
// without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// Service is a key -> value map where entries are valid only while
// now - storedAt < ttl. Expired entries are treated as absent.
type Service[T any] struct {
	ttl   time.Duration
	clock Clock

	mu      sync.RWMutex
	entries map[string]entry[T]
}

func New[T any](ttl time.Duration, clock Clock) *Service[T] {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service[T]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the cached value for key if it is still valid.
func (s *Service[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !s.valid(e) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
// Writes are last-write-wins.
func (s *Service[T]) Set(key string, value T) {
	s.mu.Lock()
	s.entries[key] = entry[T]{value: value, storedAt: s.clock.Now()}
	s.mu.Unlock()
}

// HasValid reports whether key holds an unexpired entry.
func (s *Service[T]) HasValid(key string) bool {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	return ok && s.valid(e)
}

// Len counts currently valid entries.
func (s *Service[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.entries {
		if s.valid(e) {
			n++
		}
	}
	return n
}

func (s *Service[T]) valid(e entry[T]) bool {
	return s.clock.Now().Sub(e.storedAt) < s.ttl
}
