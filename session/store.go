package session

import (
	"sync"
)

// Store is the local-storage-equivalent the gate reads and writes. Watch
// delivers change notifications so one context clearing the session is
// observed by every other context sharing the store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Watch(fn func(key, newValue string)) (cancel func())
}

// MemoryStore is an in-process Store with watcher fan-out. Deletes notify
// with an empty value, mirroring a storage-change event for a removed key.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	watchers map[int]func(key, newValue string)
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		watchers: make(map[int]func(key, newValue string)),
	}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(key, value)
	}
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	_, existed := s.values[key]
	delete(s.values, key)
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	if !existed {
		return
	}
	for _, fn := range watchers {
		fn(key, "")
	}
}

func (s *MemoryStore) Watch(fn func(key, newValue string)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// snapshotWatchers must be called with mu held; callbacks run after release.
func (s *MemoryStore) snapshotWatchers() []func(key, newValue string) {
	watchers := make([]func(key, newValue string), 0, len(s.watchers))
	for _, fn := range s.watchers {
		watchers = append(watchers, fn)
	}
	return watchers
}
