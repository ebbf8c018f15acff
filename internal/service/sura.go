package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_sura_service.go -package=mocks quran-explorer/internal/service SuraService

import (
	"context"
	"errors"

	"quran-explorer/internal/contextutil"
	"quran-explorer/internal/storage"
)

// SuraService provides read access to chapters.
type SuraService interface {
	// List returns every chapter ordered by number.
	List(ctx context.Context) ([]storage.Sura, error)
	// ListByRevelationOrder returns every chapter ordered by revelation order.
	ListByRevelationOrder(ctx context.Context) ([]storage.Sura, error)
	// ListByRevelationPlace returns chapters whose revelation place contains place.
	// An empty result is not an error.
	ListByRevelationPlace(ctx context.Context, place string) ([]storage.Sura, error)
	// Get returns one chapter or ErrNotFound.
	Get(ctx context.Context, number int) (*storage.Sura, error)
}

type suraService struct {
	suras   storage.SuraStore
	matcher storage.Matcher
}

// NewSuraService creates a new SuraService.
func NewSuraService(suras storage.SuraStore, matcher storage.Matcher) SuraService {
	return &suraService{suras: suras, matcher: matcher}
}

func (s *suraService) List(ctx context.Context) ([]storage.Sura, error) {
	suras, err := s.suras.List(ctx, storage.OrderByNumber)
	if err != nil {
		return nil, WrapError(err, "failed to list suras")
	}
	return suras, nil
}

func (s *suraService) ListByRevelationOrder(ctx context.Context) ([]storage.Sura, error) {
	suras, err := s.suras.List(ctx, storage.OrderByRevelationOrder)
	if err != nil {
		return nil, WrapError(err, "failed to list suras by revelation order")
	}
	return suras, nil
}

func (s *suraService) ListByRevelationPlace(ctx context.Context, place string) ([]storage.Sura, error) {
	pattern, err := buildPattern(ctx, s.matcher, "place", place)
	if err != nil {
		return nil, err
	}
	suras, err := s.suras.ListByRevelationPlace(ctx, pattern)
	if err != nil {
		return nil, WrapError(err, "failed to list suras by revelation place")
	}
	return suras, nil
}

func (s *suraService) Get(ctx context.Context, number int) (*storage.Sura, error) {
	sura, err := s.suras.GetByNumber(ctx, number)
	if errors.Is(err, storage.ErrNotFound) {
		contextutil.LoggerFromContext(ctx).DebugContext(ctx, "sura not found", "number", number)
		return nil, notFound("sura %d", number)
	}
	if err != nil {
		return nil, WrapError(err, "failed to get sura")
	}
	return sura, nil
}

// buildPattern maps an uncompilable raw pattern to a validation error on field.
func buildPattern(ctx context.Context, m storage.Matcher, field, input string) (string, error) {
	pattern, err := m.Pattern(input)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rejected search pattern", "field", field, "error", err)
		return "", &ValidationError{Field: field, Message: "is not a valid pattern"}
	}
	return pattern, nil
}
