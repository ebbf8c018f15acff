package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"quran-explorer/internal/contextutil"
)

// Display modes of the chapter reader.
const (
	DisplayStandard   = "standard"
	DisplayReading    = "reading"
	DisplaySideBySide = "side-by-side"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Font size kinds accepted by SetFontSize.
const (
	FontArabic      = "arabic"
	FontTranslation = "translation"
)

// ErrInvalidValue is returned when a preference update is rejected.
var ErrInvalidValue = errors.New("invalid preference value")

var validate = validator.New(validator.WithRequiredStructEnabled())

// FontSize holds text sizes in rem.
type FontSize struct {
	Arabic      float64 `json:"arabic" validate:"gte=1.2,lte=3.5"`
	Translation float64 `json:"translation" validate:"gte=0.8,lte=2"`
}

// DefaultFontSize is used until the user changes a size.
var DefaultFontSize = FontSize{Arabic: 2, Translation: 1}

// Settings is a snapshot of the display preferences.
type Settings struct {
	FontSize    FontSize `json:"fontSize"`
	DisplayMode string   `json:"displayMode" validate:"oneof=standard reading side-by-side"`
	Theme       string   `json:"theme" validate:"oneof=light dark"`
}

// DefaultSettings returns the preferences of a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		FontSize:    DefaultFontSize,
		DisplayMode: DisplayStandard,
		Theme:       ThemeLight,
	}
}

// Preferences reads and updates display preferences.
// Display mode and theme are stored as bare strings, font sizes as a JSON object.
type Preferences struct {
	store    Store
	settings Settings
	loaded   bool
}

func NewPreferences(store Store) *Preferences {
	return &Preferences{store: store, settings: DefaultSettings()}
}

// Get returns the current preferences, loading them on first use.
func (p *Preferences) Get(ctx context.Context) Settings {
	p.load(ctx)
	return p.settings
}

// SetFontSize merges one size into the stored font sizes.
func (p *Preferences) SetFontSize(ctx context.Context, kind string, value float64) error {
	p.load(ctx)

	next := p.settings.FontSize
	switch kind {
	case FontArabic:
		next.Arabic = value
	case FontTranslation:
		next.Translation = value
	default:
		return fmt.Errorf("%w: font kind must be %s or %s, got %q", ErrInvalidValue, FontArabic, FontTranslation, kind)
	}
	if err := validate.Struct(next); err != nil {
		return fmt.Errorf("%w: %s font size %s out of range", ErrInvalidValue, kind, strconv.FormatFloat(value, 'f', -1, 64))
	}

	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := p.store.Set(ctx, KeyFontSize, data); err != nil {
		return err
	}
	p.settings.FontSize = next
	return nil
}

func (p *Preferences) SetDisplayMode(ctx context.Context, mode string) error {
	p.load(ctx)
	if err := validate.Var(mode, "oneof=standard reading side-by-side"); err != nil {
		return fmt.Errorf("%w: display mode must be one of standard, reading, side-by-side, got %q", ErrInvalidValue, mode)
	}
	if err := p.store.Set(ctx, KeyDisplayMode, []byte(mode)); err != nil {
		return err
	}
	p.settings.DisplayMode = mode
	return nil
}

func (p *Preferences) SetTheme(ctx context.Context, theme string) error {
	p.load(ctx)
	if err := validate.Var(theme, "oneof=light dark"); err != nil {
		return fmt.Errorf("%w: theme must be light or dark, got %q", ErrInvalidValue, theme)
	}
	if err := p.store.Set(ctx, KeyTheme, []byte(theme)); err != nil {
		return err
	}
	p.settings.Theme = theme
	return nil
}

func (p *Preferences) load(ctx context.Context) {
	if p.loaded {
		return
	}
	p.loaded = true
	logger := contextutil.LoggerFromContext(ctx)

	if data, ok := p.read(ctx, KeyFontSize); ok {
		size := DefaultFontSize
		if err := json.Unmarshal(data, &size); err != nil {
			logger.WarnContext(ctx, "stored font size is malformed, using default", "error", err)
		} else if err := validate.Struct(size); err != nil {
			logger.WarnContext(ctx, "stored font size out of range, using default", "error", err)
		} else {
			p.settings.FontSize = size
		}
	}

	if data, ok := p.read(ctx, KeyDisplayMode); ok {
		if mode := decodeString(data); validate.Var(mode, "oneof=standard reading side-by-side") == nil {
			p.settings.DisplayMode = mode
		} else {
			logger.WarnContext(ctx, "stored display mode is invalid, using default", "value", mode)
		}
	}

	if data, ok := p.read(ctx, KeyTheme); ok {
		if theme := decodeString(data); validate.Var(theme, "oneof=light dark") == nil {
			p.settings.Theme = theme
		} else {
			logger.WarnContext(ctx, "stored theme is invalid, using default", "value", theme)
		}
	}
}

func (p *Preferences) read(ctx context.Context, key string) ([]byte, bool) {
	data, err := p.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to read preference, using default", "key", key, "error", err)
		return nil, false
	}
	return data, true
}

// decodeString accepts both a bare string and a JSON-encoded one.
func decodeString(data []byte) string {
	var s string
	if len(data) > 0 && data[0] == '"' && json.Unmarshal(data, &s) == nil {
		return s
	}
	return string(data)
}
