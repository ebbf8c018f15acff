package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quran-explorer/internal/handlers"
	"quran-explorer/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestAPI serves the chapter list and verse 1:1; every other route is a 404.
func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/suras", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []storage.Sura{{ID: "s1", Number: 1, NameSimple: "Al-Fatihah"}})
	})
	mux.HandleFunc("GET /api/verses/sura/1/aya/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, storage.Verse{
			ID: "v1-1", Sura: 1, Aya: 1, TextAr: "بِسْمِ ٱللَّهِ", TextFr: "Au nom d'Allah", Segments: []storage.Segment{},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, handlers.ErrorResponse{Message: "not found: " + r.URL.Path})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setEnv(t *testing.T, srv *httptest.Server, backend string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("API_BASE_URL", srv.URL+"/api")
	t.Setenv("PREFS_BACKEND", backend)
	t.Setenv("PREFS_PATH", filepath.Join(dir, "prefs.json"))
	t.Setenv("DB_PATH", filepath.Join(dir, "unused.db"))
	t.Setenv("LOG_LEVEL", "error")
}

// run executes one reader invocation with a fresh command tree.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReader_Commands(t *testing.T) {
	srv := newTestAPI(t)
	setEnv(t, srv, "memory")

	tests := []struct {
		name     string
		args     []string
		contains string
		wantErr  bool
	}{
		{name: "list suras", args: []string{"suras"}, contains: `"nameSimple": "Al-Fatihah"`},
		{name: "verse by id", args: []string{"verse", "1:1"}, contains: `"textFr": "Au nom d'Allah"`},
		{name: "missing verse not bookmarked", args: []string{"verse", "9:9"}, wantErr: true},
		{name: "malformed verse id", args: []string{"verse", "nine"}, wantErr: true},
		{name: "random falls back", args: []string{"random"}, contains: `"sura": 48`},
		{name: "default prefs", args: []string{"prefs"}, contains: `"displayMode": "standard"`},
		{name: "font size out of range", args: []string{"prefs", "font", "arabic", "9"}, wantErr: true},
		{name: "font size not a number", args: []string{"prefs", "font", "arabic", "big"}, wantErr: true},
		{name: "unknown display mode", args: []string{"prefs", "mode", "fancy"}, wantErr: true},
		{name: "unknown theme", args: []string{"prefs", "theme", "blue"}, wantErr: true},
		{name: "toggle bookmark on", args: []string{"bookmark", "toggle", "2:255"}, contains: `"bookmarked": true`},
		{name: "toggle malformed bookmark", args: []string{"bookmark", "toggle", "2-255"}, wantErr: true},
		{name: "toggle expanded on", args: []string{"expand", "toggle", "v1-1"}, contains: `"expanded": true`},
		{name: "empty bookmark list", args: []string{"bookmark", "list"}, contains: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestReader_StatePersistsAcrossRuns(t *testing.T) {
	srv := newTestAPI(t)
	setEnv(t, srv, "file")

	steps := []struct {
		args     []string
		contains string
		excludes string
	}{
		{args: []string{"bookmark", "toggle", "7:3"}, contains: `"bookmarked": true`},
		{args: []string{"bookmark", "toggle", "1:1"}, contains: `"bookmarked": true`},
		{args: []string{"bookmark", "list"}, contains: `"7:3"`},
		{args: []string{"verse", "7:3"}, contains: "Verset 3 de la sourate 7"},
		{args: []string{"bookmark", "list", "--resolve"}, contains: "Au nom d'Allah"},
		{args: []string{"bookmark", "toggle", "7:3"}, contains: `"bookmarked": false`},
		{args: []string{"bookmark", "list"}, excludes: `"7:3"`},
		{args: []string{"bookmark", "clear"}},
		{args: []string{"bookmark", "list"}, excludes: `"1:1"`},
		{args: []string{"expand", "set", "v1-1", "v1-2", "v1-1"}},
		{args: []string{"expand", "list"}, contains: `"v1-2"`},
		{args: []string{"expand", "reset"}},
		{args: []string{"expand", "list"}, excludes: `"v1-1"`},
		{args: []string{"prefs", "mode", "reading"}},
		{args: []string{"prefs", "theme", "dark"}},
		{args: []string{"prefs", "font", "translation", "1.5"}},
		{args: []string{"prefs"}, contains: `"translation": 1.5`},
	}

	for _, step := range steps {
		out, err := run(t, step.args...)
		require.NoError(t, err, step.args)
		if step.contains != "" {
			assert.Contains(t, out, step.contains, step.args)
		}
		if step.excludes != "" {
			assert.NotContains(t, out, step.excludes, step.args)
		}
	}

	out, err := run(t, "prefs")
	require.NoError(t, err)
	var settings struct {
		DisplayMode string `json:"displayMode"`
		Theme       string `json:"theme"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &settings))
	assert.Equal(t, "reading", settings.DisplayMode)
	assert.Equal(t, "dark", settings.Theme)
}
