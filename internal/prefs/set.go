package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"quran-explorer/internal/contextutil"
)

// idSet is an ordered set of ids persisted as a JSON array under one key.
// It loads lazily on first access and writes through on every mutation.
type idSet struct {
	store  Store
	key    string
	ids    []string
	loaded bool
}

func newIDSet(store Store, key string) *idSet {
	return &idSet{store: store, key: key}
}

// load reads the stored array once. Absent or malformed values leave the set empty.
func (s *idSet) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.ids = []string{}

	logger := contextutil.LoggerFromContext(ctx).With("key", s.key)
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to read stored ids, using empty set", "error", err)
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		logger.WarnContext(ctx, "stored ids are malformed, using empty set", "error", err)
		return
	}
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
}

// commit persists next and adopts it only once the store accepted the write.
func (s *idSet) commit(ctx context.Context, next []string) error {
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return err
	}
	s.ids = next
	return nil
}

func (s *idSet) contains(ctx context.Context, id string) bool {
	s.load(ctx)
	return slices.Contains(s.ids, id)
}

func (s *idSet) list(ctx context.Context) []string {
	s.load(ctx)
	return slices.Clone(s.ids)
}

func (s *idSet) add(ctx context.Context, id string) error {
	s.load(ctx)
	if slices.Contains(s.ids, id) {
		return nil
	}
	return s.commit(ctx, append(slices.Clone(s.ids), id))
}

func (s *idSet) remove(ctx context.Context, id string) error {
	s.load(ctx)
	next := slices.DeleteFunc(slices.Clone(s.ids), func(v string) bool { return v == id })
	return s.commit(ctx, next)
}

// toggle removes id if present and adds it otherwise. It reports whether id is now in the set.
func (s *idSet) toggle(ctx context.Context, id string) (bool, error) {
	if s.contains(ctx, id) {
		return false, s.remove(ctx, id)
	}
	return true, s.add(ctx, id)
}

func (s *idSet) replace(ctx context.Context, ids []string) error {
	s.load(ctx)
	next := []string{}
	for _, id := range ids {
		if !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	return s.commit(ctx, next)
}

func (s *idSet) clear(ctx context.Context) error {
	s.load(ctx)
	if err := s.store.Remove(ctx, s.key); err != nil {
		return err
	}
	s.ids = []string{}
	return nil
}
