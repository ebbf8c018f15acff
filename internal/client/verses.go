package client

import (
	"context"
	"fmt"
	"unicode/utf8"

	"quran-explorer/internal/contextutil"
	"quran-explorer/internal/prefs"
	"quran-explorer/internal/storage"
)

// longVerseSuras are chapters known to hold long verses.
var longVerseSuras = []int{2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 16, 18, 20, 21, 22, 23, 24, 26, 28, 33, 34, 35, 39, 40, 42, 48}

// MinFeaturedLength is the minimum Arabic length, in runes, of a featured verse.
const MinFeaturedLength = 150

// FeaturedVerse is a verse picked for display together with its chapter name.
type FeaturedVerse struct {
	storage.Verse
	SuraName   string `json:"suraName"`
	SuraNameFr string `json:"suraNameFr"`
}

// fallbackVerse is returned when no verse can be fetched.
var fallbackVerse = FeaturedVerse{
	Verse: storage.Verse{
		Sura:     48,
		Aya:      23,
		TextAr:   "سُنَّةَ ٱللَّهِ ٱلَّتِى قَدْ خَلَتْ مِن قَبْلُ ۖ وَلَن تَجِدَ لِسُنَّةِ ٱللَّهِ تَبْدِيلًا",
		TextFr:   "Telle est la règle d'Allah établie depuis toujours. Et tu ne saurais trouver changement à la règle d'Allah.",
		Segments: []storage.Segment{},
	},
	SuraName:   "الفتح",
	SuraNameFr: "Al-Fath (La Victoire)",
}

// GetVerseByID fetches a verse by its "sura:aya" id. When the request fails and
// the id is bookmarked, a placeholder verse is returned instead of the error.
func (c *Client) GetVerseByID(ctx context.Context, id string) (*storage.Verse, error) {
	sura, aya, err := prefs.ParseVerseID(id)
	if err != nil {
		return nil, err
	}

	verse, err := c.GetVerse(ctx, sura, aya)
	if err == nil {
		return verse, nil
	}

	logger := contextutil.LoggerFromContext(ctx)
	logger.WarnContext(ctx, "failed to fetch verse", "id", id, "error", err)
	if c.bookmarks == nil || !c.bookmarks.Contains(ctx, id) {
		return nil, err
	}

	return &storage.Verse{
		ID:       id,
		Sura:     sura,
		Aya:      aya,
		TextAr:   "",
		TextFr:   fmt.Sprintf("Verset %d de la sourate %d", aya, sura),
		Segments: []storage.Segment{},
	}, nil
}

// LoadBookmarkedVerses resolves every bookmark in order, skipping the ones that cannot be resolved.
func (c *Client) LoadBookmarkedVerses(ctx context.Context) []storage.Verse {
	if c.bookmarks == nil {
		return []storage.Verse{}
	}

	logger := contextutil.LoggerFromContext(ctx)
	ids := c.bookmarks.List(ctx)
	verses := make([]storage.Verse, 0, len(ids))
	for _, id := range ids {
		v, err := c.GetVerseByID(ctx, id)
		if err != nil {
			logger.WarnContext(ctx, "skipping bookmark", "id", id, "error", err)
			continue
		}
		verses = append(verses, *v)
	}
	return verses
}

// RandomVerse picks a verse of at least MinFeaturedLength Arabic runes from a chapter
// known for long verses, or the longest verse of that chapter. It never fails: any
// error yields a fixed verse.
func (c *Client) RandomVerse(ctx context.Context) FeaturedVerse {
	logger := contextutil.LoggerFromContext(ctx)
	number := longVerseSuras[c.intN(len(longVerseSuras))]

	verses, err := c.ListVersesBySura(ctx, number)
	if err != nil || len(verses) == 0 {
		logger.WarnContext(ctx, "failed to fetch random verse, using fallback", "sura", number, "error", err)
		return fallbackVerse
	}

	var long []storage.Verse
	longest := verses[0]
	for _, v := range verses {
		n := utf8.RuneCountInString(v.TextAr)
		if n >= MinFeaturedLength {
			long = append(long, v)
		}
		if n > utf8.RuneCountInString(longest.TextAr) {
			longest = v
		}
	}

	picked := longest
	if len(long) > 0 {
		picked = long[c.intN(len(long))]
	}

	featured := FeaturedVerse{Verse: picked, SuraNameFr: fmt.Sprintf("Sourate %d", number)}
	if sura, err := c.GetSura(ctx, number); err == nil {
		featured.SuraName = sura.NameArabic
		featured.SuraNameFr = sura.NameSimple
	} else {
		logger.DebugContext(ctx, "chapter name unavailable", "sura", number, "error", err)
	}
	return featured
}
