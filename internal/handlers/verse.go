package handlers

import (
	"net/http"

	"quran-explorer/internal/service"
	"quran-explorer/internal/storage"
)

// VerseHandler serves the verse endpoints.
type VerseHandler struct {
	verseService service.VerseService
}

// NewVerseHandler creates a new VerseHandler.
func NewVerseHandler(verseService service.VerseService) *VerseHandler {
	return &VerseHandler{verseService: verseService}
}

// VerseListResponse is the paginated verse listing.
type VerseListResponse struct {
	Verses      []storage.Verse `json:"verses"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// VerseSearchResponse is the paginated search result.
type VerseSearchResponse struct {
	Verses       []storage.Verse `json:"verses"`
	TotalResults int             `json:"totalResults"`
	TotalPages   int             `json:"totalPages"`
	CurrentPage  int             `json:"currentPage"`
}

// List handles GET /api/verses.
func (h *VerseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := pageRequest(r, service.DefaultVerseLimit)
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	page, err := h.verseService.List(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list verses")
		return
	}

	writeJSON(ctx, w, http.StatusOK, VerseListResponse{
		Verses:      nonNil(page.Verses),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	})
}

// ListBySura handles GET /api/verses/sura/{suraNumber}.
func (h *VerseHandler) ListBySura(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sura, err := pathInt(r, "suraNumber")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	verses, err := h.verseService.ListBySura(ctx, sura)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list verses")
		return
	}
	writeJSON(ctx, w, http.StatusOK, verses)
}

// Get handles GET /api/verses/sura/{suraNumber}/aya/{ayaNumber}.
func (h *VerseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sura, err := pathInt(r, "suraNumber")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}
	aya, err := pathInt(r, "ayaNumber")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	verse, err := h.verseService.Get(ctx, sura, aya)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get verse")
		return
	}
	writeJSON(ctx, w, http.StatusOK, verse)
}

// Search handles GET /api/verses/search.
func (h *VerseHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := pageRequest(r, service.DefaultVerseLimit)
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	q := r.URL.Query()
	page, err := h.verseService.Search(ctx, service.SearchRequest{
		Query:       q.Get("query"),
		Language:    q.Get("language"),
		PageRequest: req,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search verses")
		return
	}

	writeJSON(ctx, w, http.StatusOK, VerseSearchResponse{
		Verses:       nonNil(page.Verses),
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
	})
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
