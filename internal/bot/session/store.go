package session

import (
	"sync"
	"time"
)

// Store keeps at most one in-flight wizard session per chat. Each
// wizard kind gets its own Store instance; nothing is persisted, so a
// restart drops every in-flight wizard.
type Store[T any] interface {
	Get(chatID int64) (T, bool)
	Set(chatID int64, s T)
	Delete(chatID int64)
}

type memoryEntry[T any] struct {
	value   T
	touched time.Time
}

// MemoryStore is a mutex-guarded map with idle eviction. Abandoned
// wizards would otherwise linger and swallow unrelated later messages.
type MemoryStore[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[int64]*memoryEntry[T]
}

// NewMemoryStore creates a store evicting sessions idle longer than
// ttl. ttl <= 0 disables eviction.
func NewMemoryStore[T any](ttl time.Duration) *MemoryStore[T] {
	return &MemoryStore[T]{
		ttl:     ttl,
		entries: make(map[int64]*memoryEntry[T]),
	}
}

func (s *MemoryStore[T]) Get(chatID int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chatID]
	if !ok {
		var zero T
		return zero, false
	}
	if s.expired(e, time.Now()) {
		delete(s.entries, chatID)
		var zero T
		return zero, false
	}
	e.touched = time.Now()
	return e.value, true
}

func (s *MemoryStore[T]) Set(chatID int64, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[chatID] = &memoryEntry[T]{value: v, touched: time.Now()}
}

func (s *MemoryStore[T]) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, chatID)
}

// Sweep evicts idle sessions and returns how many were dropped.
func (s *MemoryStore[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	dropped := 0
	for chatID, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, chatID)
			dropped++
		}
	}
	return dropped
}

func (s *MemoryStore[T]) expired(e *memoryEntry[T], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.touched) > s.ttl
}

// StartSweeper runs Sweep on an interval until stop is closed.
func (s *MemoryStore[T]) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
