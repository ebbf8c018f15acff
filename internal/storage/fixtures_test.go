package storage

import (
	"context"
	"database/sql"
	"testing"
)

// newTestDB opens a migrated database in a temp directory.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

var testSuras = []Sura{
	{ID: "s1", Number: 1, NameArabic: "الفاتحة", NameSimple: "Al-Fatihah", RevelationPlace: "makkah", RevelationOrder: 5, BismillahPre: false, VerseCount: 7, PageStart: 1, PageEnd: 1},
	{ID: "s2", Number: 2, NameArabic: "البقرة", NameSimple: "Al-Baqarah", RevelationPlace: "madinah", RevelationOrder: 87, BismillahPre: true, VerseCount: 2, PageStart: 2, PageEnd: 49},
	{ID: "s3", Number: 3, NameArabic: "آل عمران", NameSimple: "Ali 'Imran", RevelationPlace: "madinah", RevelationOrder: 89, BismillahPre: true, VerseCount: 1, PageStart: 50, PageEnd: 76},
}

var testVerses = []Verse{
	{ID: "v1-1", Sura: 1, Aya: 1, TextAr: "بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ", TextFr: "Au nom d'Allah, le Tout Miséricordieux", Segments: []Segment{
		{Ar: "بِسْمِ", En: "In (the) name", Pos: 1, Root: "سمو", Tl: "bis'mi"},
		{Ar: "ٱللَّهِ", En: "(of) Allah", Pos: 2, Root: "اله", Tl: "l-lahi"},
	}},
	{ID: "v1-2", Sura: 1, Aya: 2, TextAr: "ٱلْحَمْدُ لِلَّهِ رَبِّ ٱلْعَٰلَمِينَ", TextFr: "Louange à Allah, Seigneur de l'univers."},
	{ID: "v2-1", Sura: 2, Aya: 1, TextAr: "الٓمٓ", TextFr: "Alif, Lam, Mim."},
	{ID: "v2-2", Sura: 2, Aya: 2, TextAr: "ذَٰلِكَ ٱلْكِتَٰبُ لَا رَيْبَ فِيهِ", TextFr: "C'est le Livre (1+1) au sujet duquel il n'y a aucun doute", Segments: []Segment{
		{Ar: "ٱلْكِتَٰبُ", En: "(is) the book", Pos: 2, Root: "كتب", Tl: "l-kitābu"},
	}},
	{ID: "v3-1", Sura: 3, Aya: 1, TextAr: "الٓمٓ", TextFr: "Alif, Lam, Mim."},
}

var testWords = []Word{
	{ID: "w1", Sura: 1, Aya: 1, Pos: 1, Root: "سمو"},
	{ID: "w2", Sura: 1, Aya: 1, Pos: 2, Root: "اله"},
	{ID: "w3", Sura: 2, Aya: 2, Pos: 2, Root: "كتب"},
	{ID: "w4", Sura: 9, Aya: 9, Pos: 1, Root: "كتب"},
}

// seed loads the fixture corpus.
func seed(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()
	if err := NewSuraRepo(db).InsertBatch(ctx, testSuras); err != nil {
		t.Fatalf("seed suras: %v", err)
	}
	if err := NewVerseRepo(db).InsertBatch(ctx, testVerses); err != nil {
		t.Fatalf("seed verses: %v", err)
	}
	if err := NewWordRepo(db).InsertBatch(ctx, testWords); err != nil {
		t.Fatalf("seed words: %v", err)
	}
}

func mustPattern(t *testing.T, raw bool, input string) string {
	t.Helper()
	p, err := NewMatcher(raw).Pattern(input)
	if err != nil {
		t.Fatalf("Pattern(%q) error = %v", input, err)
	}
	return p
}
