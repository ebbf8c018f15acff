package handlers

import (
	"net/http"

	"quran-explorer/internal/service"
	"quran-explorer/internal/storage"
)

// WordHandler serves the root index endpoints.
type WordHandler struct {
	wordService service.WordService
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(wordService service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// WordListResponse is the paginated word listing.
type WordListResponse struct {
	Words       []storage.Word `json:"words"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// WordRootResponse is the paginated root lookup.
type WordRootResponse struct {
	Words        []storage.Word `json:"words"`
	TotalResults int            `json:"totalResults"`
	TotalPages   int            `json:"totalPages"`
	CurrentPage  int            `json:"currentPage"`
}

// Occurrence is one word occurrence with its verse context.
type Occurrence struct {
	WordID      string           `json:"wordId"`
	Root        string           `json:"root"`
	Sura        int              `json:"sura"`
	Aya         int              `json:"aya"`
	Position    int              `json:"position"`
	VerseTextAr *string          `json:"verseTextAr"`
	VerseTextFr *string          `json:"verseTextFr"`
	Segment     *storage.Segment `json:"segment"`
}

// OccurrenceResponse is the paginated occurrence listing.
type OccurrenceResponse struct {
	Occurrences  []Occurrence `json:"occurrences"`
	TotalResults int          `json:"totalResults"`
	TotalPages   int          `json:"totalPages"`
	CurrentPage  int          `json:"currentPage"`
}

// List handles GET /api/words.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := pageRequest(r, service.DefaultWordLimit)
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	page, err := h.wordService.List(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list words")
		return
	}

	writeJSON(ctx, w, http.StatusOK, WordListResponse{
		Words:       nonNil(page.Words),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	})
}

// ListByRoot handles GET /api/words/root/{root}.
func (h *WordHandler) ListByRoot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := pageRequest(r, service.DefaultWordLimit)
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	root, err := pathString(r, "root")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	page, err := h.wordService.ListByRoot(ctx, root, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list words")
		return
	}

	writeJSON(ctx, w, http.StatusOK, WordRootResponse{
		Words:        nonNil(page.Words),
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
	})
}

// Occurrences handles GET /api/words/root/{root}/context.
func (h *WordHandler) Occurrences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := pageRequest(r, service.DefaultOccurrenceLimit)
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	root, err := pathString(r, "root")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	page, err := h.wordService.Occurrences(ctx, root, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list word occurrences")
		return
	}

	occurrences := make([]Occurrence, len(page.Occurrences))
	for i, o := range page.Occurrences {
		occurrences[i] = Occurrence(o)
	}

	writeJSON(ctx, w, http.StatusOK, OccurrenceResponse{
		Occurrences:  occurrences,
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
	})
}
