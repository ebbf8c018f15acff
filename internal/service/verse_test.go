package service_test

import (
	"errors"
	"testing"

	"quran-explorer/internal/service"
	"quran-explorer/internal/storage"
	"quran-explorer/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestVerseService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVerseStore(ctrl)
	svc := service.NewVerseService(store, storage.NewMatcher(false), 100)

	verses := []storage.Verse{{Sura: 1, Aya: 3}, {Sura: 1, Aya: 4}}
	store.EXPECT().List(gomock.Any(), storage.Page{Limit: 2, Offset: 2}).Return(verses, 7, nil)

	page, err := svc.List(testContext(), service.PageRequest{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.TotalPages != 4 || page.CurrentPage != 2 || page.TotalResults != 7 {
		t.Errorf("List() page info = %+v", page.PageInfo)
	}
	if len(page.Verses) != 2 {
		t.Errorf("List() returned %d verses, want 2", len(page.Verses))
	}

	_, err = svc.List(testContext(), service.PageRequest{Page: 1, Limit: 101})
	var verr *service.ValidationError
	if !errors.As(err, &verr) || verr.Field != "limit" {
		t.Errorf("List() over max limit error = %v, want validation error on limit", err)
	}
}

func TestVerseService_ListBySura(t *testing.T) {
	tests := []struct {
		name      string
		result    []storage.Verse
		storeErr  error
		wantErr   error
		wantCount int
	}{
		{name: "found", result: []storage.Verse{{Sura: 1, Aya: 1}, {Sura: 1, Aya: 2}}, wantCount: 2},
		{name: "empty is not found", result: []storage.Verse{}, wantErr: service.ErrNotFound},
		{name: "store error", storeErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockVerseStore(ctrl)
			store.EXPECT().ListBySura(gomock.Any(), 1).Return(tt.result, tt.storeErr)
			svc := service.NewVerseService(store, storage.NewMatcher(false), 0)

			verses, err := svc.ListBySura(testContext(), 1)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ListBySura() error = %v, want %v", err, tt.wantErr)
				}
			case tt.storeErr != nil:
				if err == nil || errors.Is(err, service.ErrNotFound) {
					t.Errorf("ListBySura() error = %v, want wrapped store error", err)
				}
			default:
				if err != nil {
					t.Fatalf("ListBySura() error = %v", err)
				}
				if len(verses) != tt.wantCount {
					t.Errorf("ListBySura() returned %d verses, want %d", len(verses), tt.wantCount)
				}
			}
		})
	}
}

func TestVerseService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVerseStore(ctrl)
	svc := service.NewVerseService(store, storage.NewMatcher(false), 0)

	store.EXPECT().Get(gomock.Any(), 1, 7).Return(&storage.Verse{Sura: 1, Aya: 7}, nil)
	verse, err := svc.Get(testContext(), 1, 7)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if verse.Sura != 1 || verse.Aya != 7 {
		t.Errorf("Get() = %s, want 1:7", verse.Key())
	}

	store.EXPECT().Get(gomock.Any(), 1, 99).Return(nil, storage.ErrNotFound)
	if _, err := svc.Get(testContext(), 1, 99); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get(1, 99) error = %v, want ErrNotFound", err)
	}
}

func TestVerseService_Search(t *testing.T) {
	page := service.PageRequest{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		raw       bool
		req       service.SearchRequest
		mockSetup func(*mocks.MockVerseStore)
		wantField string
		wantTotal int
		wantPages int
	}{
		{
			name: "french only",
			req:  service.SearchRequest{Query: "Allah", Language: "fr", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {
				m.EXPECT().Search(gomock.Any(), "(?i)Allah", []storage.TextField{storage.TextFrench}, storage.Page{Limit: 10}).
					Return([]storage.Verse{{Sura: 1, Aya: 1}}, 11, nil)
			},
			wantTotal: 11,
			wantPages: 2,
		},
		{
			name: "arabic only",
			req:  service.SearchRequest{Query: "كتب", Language: "ar", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {
				m.EXPECT().Search(gomock.Any(), "(?i)كتب", []storage.TextField{storage.TextArabic}, gomock.Any()).
					Return([]storage.Verse{}, 0, nil)
			},
		},
		{
			name: "language defaults to all",
			req:  service.SearchRequest{Query: "mim", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {
				m.EXPECT().Search(gomock.Any(), "(?i)mim", []storage.TextField{storage.TextArabic, storage.TextFrench}, gomock.Any()).
					Return([]storage.Verse{}, 0, nil)
			},
		},
		{
			name: "surrounding spaces are matched",
			req:  service.SearchRequest{Query: " Allah", Language: "fr", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {
				m.EXPECT().Search(gomock.Any(), "(?i) Allah", []storage.TextField{storage.TextFrench}, gomock.Any()).
					Return([]storage.Verse{}, 0, nil)
			},
		},
		{
			name:      "missing query",
			req:       service.SearchRequest{Query: "   ", Language: "all", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {},
			wantField: "query",
		},
		{
			name:      "unknown language",
			req:       service.SearchRequest{Query: "x", Language: "de", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {},
			wantField: "language",
		},
		{
			name:      "bad page",
			req:       service.SearchRequest{Query: "x", Language: "all", PageRequest: service.PageRequest{Page: 0, Limit: 10}},
			mockSetup: func(m *mocks.MockVerseStore) {},
			wantField: "page",
		},
		{
			name:      "invalid raw regex",
			raw:       true,
			req:       service.SearchRequest{Query: "[a-", Language: "all", PageRequest: page},
			mockSetup: func(m *mocks.MockVerseStore) {},
			wantField: "query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockVerseStore(ctrl)
			tt.mockSetup(store)
			svc := service.NewVerseService(store, storage.NewMatcher(tt.raw), 0)

			got, err := svc.Search(testContext(), tt.req)
			if tt.wantField != "" {
				var verr *service.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Search() error = %v, want *ValidationError", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("Search() field = %q, want %q", verr.Field, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if got.TotalResults != tt.wantTotal || got.TotalPages != tt.wantPages || got.CurrentPage != 1 {
				t.Errorf("Search() page info = %+v", got.PageInfo)
			}
		})
	}
}
