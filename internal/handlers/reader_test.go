package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quran-explorer/internal/service"
	"quran-explorer/internal/service/mocks"
	"quran-explorer/internal/storage"

	"go.uber.org/mock/gomock"
)

var readerVerses = []storage.Verse{
	{Sura: 1, Aya: 1, TextAr: "بِسْمِ ٱللَّهِ", TextFr: "Au nom d'Allah", TextTl: "bismi allahi"},
	{Sura: 1, Aya: 2, TextAr: "ٱلْحَمْدُ لِلَّهِ", TextFr: "Louange à Allah"},
}

func TestReaderHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		wantStatus int
		contains   []string
	}{
		{name: "standard", mode: "", wantStatus: http.StatusOK, contains: []string{"Au nom d'Allah", "<h3", "bismi allahi"}},
		{name: "reading", mode: "reading", wantStatus: http.StatusOK, contains: []string{"﴿1﴾", "﴿2﴾"}},
		{name: "side by side", mode: "side-by-side", wantStatus: http.StatusOK, contains: []string{"<table>", "Louange à Allah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			suras := mocks.NewMockSuraService(ctrl)
			verses := mocks.NewMockVerseService(ctrl)
			suras.EXPECT().Get(gomock.Any(), 1).Return(&storage.Sura{Number: 1, NameSimple: "Al-Fatihah", VerseCount: 7}, nil)
			suras.EXPECT().Get(gomock.Any(), 2).Return(&storage.Sura{Number: 2}, nil)
			verses.EXPECT().ListBySura(gomock.Any(), 1).Return(readerVerses, nil)

			handler := NewReaderHandler(suras, verses)
			target := "/read/1"
			if tt.mode != "" {
				target += "?mode=" + tt.mode
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, newRequest(target, map[string]string{"suraNumber": "1"}))

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			body := w.Body.String()
			for _, want := range append(tt.contains, "Al-Fatihah", `href="/read/2`) {
				if !strings.Contains(body, want) {
					t.Errorf("ServeHTTP() body missing %q", want)
				}
			}
		})
	}
}

func TestReaderHandler_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suras := mocks.NewMockSuraService(ctrl)
	verses := mocks.NewMockVerseService(ctrl)
	handler := NewReaderHandler(suras, verses)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequest("/read/1?mode=fancy", map[string]string{"suraNumber": "1"}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown mode status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	suras.EXPECT().Get(gomock.Any(), 200).Return(nil, service.ErrNotFound)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, newRequest("/read/200", map[string]string{"suraNumber": "200"}))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing sura status = %v, want %v", w.Code, http.StatusNotFound)
	}

	suras.EXPECT().Get(gomock.Any(), 3).Return(&storage.Sura{Number: 3}, nil)
	verses.EXPECT().ListBySura(gomock.Any(), 3).Return(nil, errors.New("db down"))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, newRequest("/read/3", map[string]string{"suraNumber": "3"}))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("store failure status = %v, want %v", w.Code, http.StatusInternalServerError)
	}
}

func TestChapterMarkdown_EscapesText(t *testing.T) {
	sura := &storage.Sura{Number: 9, NameSimple: "At_Tawbah"}
	md := chapterMarkdown(sura, []storage.Verse{{Sura: 9, Aya: 1, TextFr: "a *b* | c"}}, ModeSideBySide)

	if !strings.Contains(md, `a \*b\* \| c`) {
		t.Errorf("chapterMarkdown() did not escape verse text:\n%s", md)
	}
	if !strings.Contains(md, `At\_Tawbah`) {
		t.Errorf("chapterMarkdown() did not escape sura name:\n%s", md)
	}
}
