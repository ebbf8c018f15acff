package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_word_store.go -package=mocks quran-explorer/internal/storage WordStore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var wordColumns = []string{"id", "sura", "aya", "pos", "root"}

// WordStore defines the read operations on the root index.
type WordStore interface {
	// List returns one page of words sorted by (sura, aya, pos) and the total word count.
	List(ctx context.Context, page Page) ([]Word, int, error)
	// ListByRoot returns one page of words whose root matches pattern and the total match count.
	ListByRoot(ctx context.Context, pattern string, page Page) ([]Word, int, error)
}

// WordRepo provides methods for root index operations.
// It implements the WordStore interface.
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new WordRepo.
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// List returns one page of words sorted by (sura, aya, pos).
func (r *WordRepo) List(ctx context.Context, page Page) ([]Word, int, error) {
	return r.paged(ctx, sq.And{}, page)
}

// ListByRoot returns one page of words whose root matches pattern.
func (r *WordRepo) ListByRoot(ctx context.Context, pattern string, page Page) ([]Word, int, error) {
	return r.paged(ctx, sq.Expr("root REGEXP ?", pattern), page)
}

// InsertBatch inserts or replaces words in a single transaction.
func (r *WordRepo) InsertBatch(ctx context.Context, words []Word) error {
	if len(words) == 0 {
		return nil
	}
	builder := sq.Insert("words").Options("OR REPLACE").Columns(wordColumns...)
	for _, w := range words {
		builder = builder.Values(w.ID, w.Sura, w.Aya, w.Pos, w.Root)
	}
	return execInTx(ctx, r.db, builder)
}

// DeleteAll removes every word.
func (r *WordRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM words"); err != nil {
		return fmt.Errorf("failed to delete words: %w", err)
	}
	return nil
}

func (r *WordRepo) paged(ctx context.Context, where sq.Sqlizer, page Page) ([]Word, int, error) {
	countSQL, countArgs, err := sq.Select("COUNT(*)").From("words").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build word count: %w", err)
	}
	total, err := count(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count words: %w", err)
	}

	query, args, err := sq.Select(wordColumns...).
		From("words").
		Where(where).
		OrderBy("sura ASC", "aya ASC", "pos ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build word query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	words := make([]Word, 0)
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Sura, &w.Aya, &w.Pos, &w.Root); err != nil {
			return nil, 0, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate words: %w", err)
	}

	return words, total, nil
}
