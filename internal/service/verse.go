package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_verse_service.go -package=mocks quran-explorer/internal/service VerseService

import (
	"context"
	"errors"
	"strings"

	"quran-explorer/internal/contextutil"
	"quran-explorer/internal/storage"
)

// Search languages.
const (
	LanguageAll    = "all"
	LanguageArabic = "ar"
	LanguageFrench = "fr"
)

// SearchRequest is a verse text search.
type SearchRequest struct {
	Query    string `validate:"required"`
	Language string `validate:"oneof=all ar fr"`
	PageRequest
}

// VersePage is one page of verses.
type VersePage struct {
	Verses []storage.Verse
	PageInfo
}

// VerseService provides read access to verses.
type VerseService interface {
	// List returns a page of verses ordered by (sura, aya).
	List(ctx context.Context, req PageRequest) (VersePage, error)
	// ListBySura returns the verses of one chapter, or ErrNotFound when it has none.
	ListBySura(ctx context.Context, sura int) ([]storage.Verse, error)
	// Get returns one verse or ErrNotFound.
	Get(ctx context.Context, sura, aya int) (*storage.Verse, error)
	// Search matches req.Query case-insensitively against the selected texts.
	Search(ctx context.Context, req SearchRequest) (VersePage, error)
}

type verseService struct {
	verses    storage.VerseStore
	matcher   storage.Matcher
	paginator paginator
}

// NewVerseService creates a new VerseService. maxLimit caps the page size.
func NewVerseService(verses storage.VerseStore, matcher storage.Matcher, maxLimit int) VerseService {
	return &verseService{
		verses:    verses,
		matcher:   matcher,
		paginator: newPaginator(maxLimit),
	}
}

func (s *verseService) List(ctx context.Context, req PageRequest) (VersePage, error) {
	if err := s.paginator.check(req); err != nil {
		return VersePage{}, err
	}
	verses, total, err := s.verses.List(ctx, req.Window())
	if err != nil {
		return VersePage{}, WrapError(err, "failed to list verses")
	}
	return VersePage{Verses: verses, PageInfo: pageInfo(total, req)}, nil
}

func (s *verseService) ListBySura(ctx context.Context, sura int) ([]storage.Verse, error) {
	verses, err := s.verses.ListBySura(ctx, sura)
	if err != nil {
		return nil, WrapError(err, "failed to list verses of sura")
	}
	if len(verses) == 0 {
		return nil, notFound("no verses for sura %d", sura)
	}
	return verses, nil
}

func (s *verseService) Get(ctx context.Context, sura, aya int) (*storage.Verse, error) {
	verse, err := s.verses.Get(ctx, sura, aya)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("verse %d:%d", sura, aya)
	}
	if err != nil {
		return nil, WrapError(err, "failed to get verse")
	}
	return verse, nil
}

func (s *verseService) Search(ctx context.Context, req SearchRequest) (VersePage, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Language == "" {
		req.Language = LanguageAll
	}
	// a blank query is missing, but surrounding spaces are part of the substring
	checked := req
	checked.Query = strings.TrimSpace(req.Query)
	if err := validate.Struct(checked); err != nil {
		logger.WarnContext(ctx, "invalid search request", "error", err)
		return VersePage{}, fromValidator(err)
	}
	if err := s.paginator.check(req.PageRequest); err != nil {
		return VersePage{}, err
	}

	pattern, err := buildPattern(ctx, s.matcher, "query", req.Query)
	if err != nil {
		return VersePage{}, err
	}

	verses, total, err := s.verses.Search(ctx, pattern, searchFields(req.Language), req.Window())
	if err != nil {
		return VersePage{}, WrapError(err, "failed to search verses")
	}

	logger.DebugContext(ctx, "verse search", "language", req.Language, "total", total)
	return VersePage{Verses: verses, PageInfo: pageInfo(total, req.PageRequest)}, nil
}

func searchFields(language string) []storage.TextField {
	switch language {
	case LanguageArabic:
		return []storage.TextField{storage.TextArabic}
	case LanguageFrench:
		return []storage.TextField{storage.TextFrench}
	default:
		return []storage.TextField{storage.TextArabic, storage.TextFrench}
	}
}
