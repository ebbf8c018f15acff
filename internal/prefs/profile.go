package prefs

import (
	"fmt"

	"quran-explorer/internal/config"
)

// Profile groups the local state of one user.
type Profile struct {
	Bookmarks   *Bookmarks
	Expanded    *Expanded
	Preferences *Preferences

	close func() error
}

// NewProfile builds a profile on top of store.
func NewProfile(store Store) *Profile {
	return &Profile{
		Bookmarks:   NewBookmarks(store),
		Expanded:    NewExpanded(store),
		Preferences: NewPreferences(store),
		close:       func() error { return nil },
	}
}

// Open builds the profile for the configured backend.
func Open(cfg *config.Config) (*Profile, error) {
	switch cfg.PrefsBackend {
	case config.PrefsBackendFile:
		return NewProfile(NewFileStore(cfg.PrefsPath)), nil
	case config.PrefsBackendMemory:
		return NewProfile(NewMemoryStore()), nil
	case config.PrefsBackendRedis:
		client, err := NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		p := NewProfile(NewRedisStore(client, cfg.PrefsUser))
		p.close = client.Close
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported prefs backend %q", cfg.PrefsBackend)
	}
}

// Close releases the backing store.
func (p *Profile) Close() error {
	return p.close()
}
