package service

import (
	"errors"
	"math"
	"testing"

	"quran-explorer/internal/storage"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 0, limit: 20, want: 0},
		{total: 1, limit: 20, want: 1},
		{total: 20, limit: 20, want: 1},
		{total: 21, limit: 20, want: 2},
		{total: 6236, limit: 20, want: 312},
		{total: 5, limit: 0, want: 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestPageRequest_Window(t *testing.T) {
	tests := []struct {
		req  PageRequest
		want storage.Page
	}{
		{req: PageRequest{Page: 1, Limit: 20}, want: storage.Page{Limit: 20, Offset: 0}},
		{req: PageRequest{Page: 3, Limit: 10}, want: storage.Page{Limit: 10, Offset: 20}},
	}

	for _, tt := range tests {
		if got := tt.req.Window(); got != tt.want {
			t.Errorf("%+v.Window() = %+v, want %+v", tt.req, got, tt.want)
		}
	}
}

func TestPaginator_Check(t *testing.T) {
	p := newPaginator(100)

	tests := []struct {
		name      string
		req       PageRequest
		wantField string
	}{
		{name: "valid", req: PageRequest{Page: 1, Limit: 100}},
		{name: "zero page", req: PageRequest{Page: 0, Limit: 10}, wantField: "page"},
		{name: "negative limit", req: PageRequest{Page: 1, Limit: -1}, wantField: "limit"},
		{name: "limit above max", req: PageRequest{Page: 1, Limit: 101}, wantField: "limit"},
		{name: "last page before overflow", req: PageRequest{Page: math.MaxInt/100 + 1, Limit: 100}},
		{name: "offset overflows", req: PageRequest{Page: math.MaxInt/100 + 2, Limit: 100}, wantField: "page"},
		{name: "max page", req: PageRequest{Page: math.MaxInt, Limit: 2}, wantField: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.check(tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("check() unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("check() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("check() field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}

	if got := newPaginator(0).maxLimit; got != DefaultMaxLimit {
		t.Errorf("newPaginator(0).maxLimit = %d, want %d", got, DefaultMaxLimit)
	}
}
