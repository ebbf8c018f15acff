package prefs

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// VerseID formats the bookmark id of a verse as "sura:aya".
func VerseID(sura, aya int) string {
	return fmt.Sprintf("%d:%d", sura, aya)
}

// ParseVerseID splits a "sura:aya" id into its numbers.
func ParseVerseID(id string) (sura, aya int, err error) {
	s, a, ok := strings.Cut(id, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid verse id %q: want sura:aya", id)
	}
	if sura, err = strconv.Atoi(s); err != nil {
		return 0, 0, fmt.Errorf("invalid verse id %q: %w", id, err)
	}
	if aya, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("invalid verse id %q: %w", id, err)
	}
	return sura, aya, nil
}

// Bookmarks is the user's set of bookmarked verses.
type Bookmarks struct {
	set *idSet
}

// NewBookmarks creates a bookmark set backed by store.
func NewBookmarks(store Store) *Bookmarks {
	return &Bookmarks{set: newIDSet(store, KeyBookmarks)}
}

// Toggle bookmarks the verse if it is not bookmarked and removes it otherwise.
// It returns true if the verse is bookmarked afterwards.
func (b *Bookmarks) Toggle(ctx context.Context, sura, aya int) (bool, error) {
	return b.set.toggle(ctx, VerseID(sura, aya))
}

func (b *Bookmarks) Add(ctx context.Context, sura, aya int) error {
	return b.set.add(ctx, VerseID(sura, aya))
}

func (b *Bookmarks) Remove(ctx context.Context, sura, aya int) error {
	return b.set.remove(ctx, VerseID(sura, aya))
}

func (b *Bookmarks) IsBookmarked(ctx context.Context, sura, aya int) bool {
	return b.set.contains(ctx, VerseID(sura, aya))
}

// Contains reports whether a raw "sura:aya" id is bookmarked.
func (b *Bookmarks) Contains(ctx context.Context, id string) bool {
	return b.set.contains(ctx, id)
}

// List returns bookmark ids in insertion order.
func (b *Bookmarks) List(ctx context.Context) []string {
	return b.set.list(ctx)
}

// Clear removes every bookmark and the stored key.
func (b *Bookmarks) Clear(ctx context.Context) error {
	return b.set.clear(ctx)
}

// Expanded tracks which verses show their word-by-word details.
type Expanded struct {
	set *idSet
}

func NewExpanded(store Store) *Expanded {
	return &Expanded{set: newIDSet(store, KeyExpanded)}
}

// Toggle flips the detail view of a verse and returns whether it is now expanded.
func (e *Expanded) Toggle(ctx context.Context, verseID string) (bool, error) {
	return e.set.toggle(ctx, verseID)
}

func (e *Expanded) IsExpanded(ctx context.Context, verseID string) bool {
	return e.set.contains(ctx, verseID)
}

func (e *Expanded) List(ctx context.Context) []string {
	return e.set.list(ctx)
}

// Reset collapses every verse.
func (e *Expanded) Reset(ctx context.Context) error {
	return e.set.replace(ctx, nil)
}

// SetAll replaces the expanded set with verseIDs.
func (e *Expanded) SetAll(ctx context.Context, verseIDs []string) error {
	return e.set.replace(ctx, verseIDs)
}
