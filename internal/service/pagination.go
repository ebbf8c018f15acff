package service

import (
	"math"
	"strconv"

	"quran-explorer/internal/storage"
)

// Default page sizes per listing.
const (
	DefaultPage            = 1
	DefaultVerseLimit      = 20
	DefaultWordLimit       = 50
	DefaultOccurrenceLimit = 20
	DefaultMaxLimit        = 500
)

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1"`
}

// PageInfo carries the pagination fields echoed back to callers.
type PageInfo struct {
	TotalResults int
	TotalPages   int
	CurrentPage  int
}

type paginator struct {
	maxLimit int
}

func newPaginator(maxLimit int) paginator {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return paginator{maxLimit: maxLimit}
}

func (p paginator) check(req PageRequest) error {
	if err := validate.Struct(req); err != nil {
		return fromValidator(err)
	}
	if req.Limit > p.maxLimit {
		return &ValidationError{Field: "limit", Message: "must be at most " + strconv.Itoa(p.maxLimit)}
	}
	// keeps the offset in Window from overflowing
	if req.Page-1 > math.MaxInt/req.Limit {
		return &ValidationError{Field: "page", Message: "is too large"}
	}
	return nil
}

// Window converts the request into a storage offset window.
func (r PageRequest) Window() storage.Page {
	return storage.Page{Limit: r.Limit, Offset: (r.Page - 1) * r.Limit}
}

// TotalPages returns ceil(total/limit), or 0 for an empty result.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func pageInfo(total int, req PageRequest) PageInfo {
	return PageInfo{
		TotalResults: total,
		TotalPages:   TotalPages(total, req.Limit),
		CurrentPage:  req.Page,
	}
}
