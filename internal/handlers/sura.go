package handlers

import (
	"net/http"

	"quran-explorer/internal/service"
)

// SuraHandler serves the chapter endpoints.
type SuraHandler struct {
	suraService service.SuraService
}

// NewSuraHandler creates a new SuraHandler.
func NewSuraHandler(suraService service.SuraService) *SuraHandler {
	return &SuraHandler{suraService: suraService}
}

// List handles GET /api/suras.
func (h *SuraHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	suras, err := h.suraService.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list suras")
		return
	}
	writeJSON(ctx, w, http.StatusOK, suras)
}

// ListByRevelationOrder handles GET /api/suras/revelation-order.
func (h *SuraHandler) ListByRevelationOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	suras, err := h.suraService.ListByRevelationOrder(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list suras")
		return
	}
	writeJSON(ctx, w, http.StatusOK, suras)
}

// ListByRevelationPlace handles GET /api/suras/revelation-place/{place}.
func (h *SuraHandler) ListByRevelationPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	place, err := pathString(r, "place")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	suras, err := h.suraService.ListByRevelationPlace(ctx, place)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list suras")
		return
	}
	writeJSON(ctx, w, http.StatusOK, suras)
}

// Get handles GET /api/suras/{number}.
func (h *SuraHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := pathInt(r, "number")
	if err != nil {
		handleServiceError(w, ctx, err, "")
		return
	}

	sura, err := h.suraService.Get(ctx, number)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get sura")
		return
	}
	writeJSON(ctx, w, http.StatusOK, sura)
}
