package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_word_service.go -package=mocks quran-explorer/internal/service WordService

import (
	"context"

	"quran-explorer/internal/contextutil"
	"quran-explorer/internal/storage"
)

// WordPage is one page of root index rows.
type WordPage struct {
	Words []storage.Word
	PageInfo
}

// Occurrence is a word joined to its parent verse and matching segment.
// The verse-derived fields are nil when the parent verse is missing.
type Occurrence struct {
	WordID      string
	Root        string
	Sura        int
	Aya         int
	Position    int
	VerseTextAr *string
	VerseTextFr *string
	Segment     *storage.Segment
}

// OccurrencePage is one page of occurrences.
type OccurrencePage struct {
	Occurrences []Occurrence
	PageInfo
}

// WordService provides read access to the root index.
type WordService interface {
	// List returns a page of words ordered by (sura, aya, pos).
	List(ctx context.Context, req PageRequest) (WordPage, error)
	// ListByRoot returns words whose root contains root, or ErrNotFound when the page is empty.
	ListByRoot(ctx context.Context, root string, req PageRequest) (WordPage, error)
	// Occurrences is ListByRoot joined to verse context.
	Occurrences(ctx context.Context, root string, req PageRequest) (OccurrencePage, error)
}

type wordService struct {
	words     storage.WordStore
	verses    storage.VerseStore
	matcher   storage.Matcher
	paginator paginator
}

// NewWordService creates a new WordService. maxLimit caps the page size.
func NewWordService(words storage.WordStore, verses storage.VerseStore, matcher storage.Matcher, maxLimit int) WordService {
	return &wordService{
		words:     words,
		verses:    verses,
		matcher:   matcher,
		paginator: newPaginator(maxLimit),
	}
}

func (s *wordService) List(ctx context.Context, req PageRequest) (WordPage, error) {
	if err := s.paginator.check(req); err != nil {
		return WordPage{}, err
	}
	words, total, err := s.words.List(ctx, req.Window())
	if err != nil {
		return WordPage{}, WrapError(err, "failed to list words")
	}
	return WordPage{Words: words, PageInfo: pageInfo(total, req)}, nil
}

func (s *wordService) ListByRoot(ctx context.Context, root string, req PageRequest) (WordPage, error) {
	if err := s.paginator.check(req); err != nil {
		return WordPage{}, err
	}
	pattern, err := buildPattern(ctx, s.matcher, "root", root)
	if err != nil {
		return WordPage{}, err
	}

	words, total, err := s.words.ListByRoot(ctx, pattern, req.Window())
	if err != nil {
		return WordPage{}, WrapError(err, "failed to list words by root")
	}
	if len(words) == 0 {
		return WordPage{}, notFound("no words with root %q", root)
	}
	return WordPage{Words: words, PageInfo: pageInfo(total, req)}, nil
}

func (s *wordService) Occurrences(ctx context.Context, root string, req PageRequest) (OccurrencePage, error) {
	page, err := s.ListByRoot(ctx, root, req)
	if err != nil {
		return OccurrencePage{}, err
	}

	keys := make([]storage.VerseKey, len(page.Words))
	for i, w := range page.Words {
		keys[i] = storage.VerseKey{Sura: w.Sura, Aya: w.Aya}
	}
	verses, err := s.verses.GetMany(ctx, keys)
	if err != nil {
		return OccurrencePage{}, WrapError(err, "failed to load verses for occurrences")
	}

	occurrences := make([]Occurrence, 0, len(page.Words))
	dangling := 0
	for _, w := range page.Words {
		occ := Occurrence{
			WordID:   w.ID,
			Root:     w.Root,
			Sura:     w.Sura,
			Aya:      w.Aya,
			Position: w.Pos,
		}
		if verse, ok := verses[storage.VerseKey{Sura: w.Sura, Aya: w.Aya}]; ok {
			occ.VerseTextAr = &verse.TextAr
			occ.VerseTextFr = &verse.TextFr
			occ.Segment = verse.SegmentAt(w.Pos)
		} else {
			dangling++
		}
		occurrences = append(occurrences, occ)
	}

	if dangling > 0 {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "occurrences reference missing verses", "root", root, "count", dangling)
	}

	return OccurrencePage{Occurrences: occurrences, PageInfo: page.PageInfo}, nil
}
