package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_verse_store.go -package=mocks quran-explorer/internal/storage VerseStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var verseColumns = []string{"id", "sura", "aya", "text_ar", "text_fr", "text_tl", "segments"}

// VerseStore defines the read operations on verses.
type VerseStore interface {
	// List returns one page of verses sorted by (sura, aya) and the total verse count.
	List(ctx context.Context, page Page) ([]Verse, int, error)
	// ListBySura returns every verse of a chapter sorted by aya. Empty if none.
	ListBySura(ctx context.Context, sura int) ([]Verse, error)
	// Get returns one verse. Returns nil and ErrNotFound if not found.
	Get(ctx context.Context, sura, aya int) (*Verse, error)
	// Search returns one page of verses whose text in any of fields matches pattern, and the total match count.
	Search(ctx context.Context, pattern string, fields []TextField, page Page) ([]Verse, int, error)
	// GetMany returns the verses for keys that exist; missing keys are absent from the map.
	GetMany(ctx context.Context, keys []VerseKey) (map[VerseKey]Verse, error)
}

// VerseRepo provides methods for verse operations.
// It implements the VerseStore interface.
type VerseRepo struct {
	db *sql.DB
}

// NewVerseRepo creates a new VerseRepo.
func NewVerseRepo(db *sql.DB) *VerseRepo {
	return &VerseRepo{db: db}
}

func selectVerses() sq.SelectBuilder {
	return sq.Select(verseColumns...).From("verses")
}

// List returns one page of verses sorted by (sura, aya) and the total verse count.
func (r *VerseRepo) List(ctx context.Context, page Page) ([]Verse, int, error) {
	return r.paged(ctx, sq.And{}, page)
}

// ListBySura returns every verse of a chapter sorted by aya.
func (r *VerseRepo) ListBySura(ctx context.Context, sura int) ([]Verse, error) {
	return r.query(ctx, selectVerses().Where(sq.Eq{"sura": sura}).OrderBy("aya ASC"))
}

// Get returns one verse by (sura, aya).
// Returns nil and ErrNotFound if not found.
func (r *VerseRepo) Get(ctx context.Context, sura, aya int) (*Verse, error) {
	verses, err := r.query(ctx, selectVerses().Where(sq.Eq{"sura": sura, "aya": aya}).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, ErrNotFound
	}
	return &verses[0], nil
}

// Search returns one page of verses whose text in any of fields matches pattern.
func (r *VerseRepo) Search(ctx context.Context, pattern string, fields []TextField, page Page) ([]Verse, int, error) {
	if len(fields) == 0 {
		return nil, 0, fmt.Errorf("search requires at least one text field")
	}
	or := sq.Or{}
	for _, f := range fields {
		switch f {
		case TextArabic, TextFrench:
		default:
			return nil, 0, fmt.Errorf("unsupported text field %q", f)
		}
		or = append(or, sq.Expr(string(f)+" REGEXP ?", pattern))
	}
	return r.paged(ctx, or, page)
}

// GetMany returns the verses for keys that exist.
func (r *VerseRepo) GetMany(ctx context.Context, keys []VerseKey) (map[VerseKey]Verse, error) {
	result := make(map[VerseKey]Verse, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	or := sq.Or{}
	seen := make(map[VerseKey]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		or = append(or, sq.Eq{"sura": k.Sura, "aya": k.Aya})
	}

	verses, err := r.query(ctx, selectVerses().Where(or))
	if err != nil {
		return nil, err
	}
	for _, v := range verses {
		result[v.Key()] = v
	}
	return result, nil
}

// CountBySura returns the number of verses per chapter number.
func (r *VerseRepo) CountBySura(ctx context.Context) (map[int]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT sura, COUNT(*) FROM verses GROUP BY sura")
	if err != nil {
		return nil, fmt.Errorf("failed to count verses: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var sura, n int
		if err := rows.Scan(&sura, &n); err != nil {
			return nil, fmt.Errorf("failed to scan verse count: %w", err)
		}
		counts[sura] = n
	}
	return counts, rows.Err()
}

// InsertBatch inserts or replaces verses in a single transaction.
func (r *VerseRepo) InsertBatch(ctx context.Context, verses []Verse) error {
	if len(verses) == 0 {
		return nil
	}
	builder := sq.Insert("verses").Options("OR REPLACE").Columns(verseColumns...)
	for _, v := range verses {
		segments := v.Segments
		if segments == nil {
			segments = []Segment{}
		}
		raw, err := json.Marshal(segments)
		if err != nil {
			return fmt.Errorf("failed to encode segments of verse %s: %w", v.Key(), err)
		}
		builder = builder.Values(v.ID, v.Sura, v.Aya, v.TextAr, v.TextFr, v.TextTl, string(raw))
	}
	return execInTx(ctx, r.db, builder)
}

// DeleteAll removes every verse.
func (r *VerseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM verses"); err != nil {
		return fmt.Errorf("failed to delete verses: %w", err)
	}
	return nil
}

func (r *VerseRepo) paged(ctx context.Context, where sq.Sqlizer, page Page) ([]Verse, int, error) {
	countSQL, countArgs, err := sq.Select("COUNT(*)").From("verses").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build verse count: %w", err)
	}
	total, err := count(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count verses: %w", err)
	}

	verses, err := r.query(ctx, selectVerses().
		Where(where).
		OrderBy("sura ASC", "aya ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)))
	if err != nil {
		return nil, 0, err
	}
	return verses, total, nil
}

func (r *VerseRepo) query(ctx context.Context, builder sq.SelectBuilder) ([]Verse, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build verse query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query verses: %w", err)
	}
	defer rows.Close()

	verses := make([]Verse, 0)
	for rows.Next() {
		var v Verse
		var segments string
		if err := rows.Scan(&v.ID, &v.Sura, &v.Aya, &v.TextAr, &v.TextFr, &v.TextTl, &segments); err != nil {
			return nil, fmt.Errorf("failed to scan verse: %w", err)
		}
		if err := json.Unmarshal([]byte(segments), &v.Segments); err != nil {
			return nil, fmt.Errorf("failed to decode segments of verse %s: %w", v.Key(), err)
		}
		if v.Segments == nil {
			v.Segments = []Segment{}
		}
		verses = append(verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate verses: %w", err)
	}

	return verses, nil
}
