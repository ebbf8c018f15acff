package storage

import (
	"errors"
	"testing"
)

func TestMatcher_Pattern(t *testing.T) {
	tests := []struct {
		name    string
		raw     bool
		input   string
		want    string
		wantErr error
	}{
		{name: "literal plain", input: "allah", want: "(?i)allah"},
		{name: "literal escapes metacharacters", input: "a.b(c)", want: `(?i)a\.b\(c\)`},
		{name: "literal never invalid", input: "[", want: `(?i)\[`},
		{name: "raw passes through", raw: true, input: "a.b", want: "(?i)a.b"},
		{name: "raw invalid", raw: true, input: "[", wantErr: ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMatcher(tt.raw).Pattern(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Pattern() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pattern() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegexpMatch_UsesCache(t *testing.T) {
	pattern := "(?i)cached-pattern"
	patternCache.Remove(pattern)

	ok, err := regexpMatch(pattern, "a CACHED-PATTERN here")
	if err != nil || !ok {
		t.Fatalf("regexpMatch() = %v, %v", ok, err)
	}
	if !patternCache.Contains(pattern) {
		t.Error("regexpMatch() did not cache the compiled pattern")
	}
}
