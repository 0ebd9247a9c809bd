// Package memory is a trivial in-memory byte cache with per-key expiry.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content  []byte
	deadline time.Time
}

// Storage ...
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
}

// NewStorage creates new Storage.
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
	}
}

// Get returns cached content or nil when the key is missing or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(v.deadline) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()

		return nil
	}

	return v.content
}

// Set stores content under key for duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	s.items[key] = item{
		content:  content,
		deadline: time.Now().Add(duration),
	}
	s.mu.Unlock()
}
