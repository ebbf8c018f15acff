// Package prefs persists the browsing client's local state: bookmarks,
// expanded verse details and display preferences.
package prefs

import (
	"context"
	"errors"
	"sync"
)

// Keys under which each slice of state is stored.
const (
	KeyBookmarks   = "bookmarkedVerses"
	KeyExpanded    = "expandedVerses"
	KeyFontSize    = "fontSize"
	KeyDisplayMode = "displayMode"
	KeyTheme       = "theme"
)

// ErrNotFound is returned by a Store when a key holds no value.
var ErrNotFound = errors.New("prefs: key not found")

// Store is a string-keyed byte store, the client-side analogue of browser local storage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
